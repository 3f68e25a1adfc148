// Package gitx wraps the few git operations the scanner needs.
package gitx

import (
	"fmt"
	"sort"

	git "github.com/go-git/go-git/v5"
)

// StagedFiles returns the worktree root and the worktree-relative paths of
// all files with changes staged in the index, sorted for deterministic scan
// order. The root may be an ancestor of dir when dir sits inside the repo;
// callers must resolve paths against the returned root, not dir. Deletions
// are omitted since there is no content left to scan.
func StagedFiles(dir string) (string, []string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", nil, fmt.Errorf("open repository at %s: %w", dir, err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return "", nil, err
	}
	status, err := wt.Status()
	if err != nil {
		return "", nil, err
	}

	var out []string
	for path, s := range status {
		switch s.Staging {
		case git.Added, git.Modified, git.Renamed, git.Copied:
			out = append(out, path)
		}
	}
	sort.Strings(out)
	return wt.Filesystem.Root(), out, nil
}
