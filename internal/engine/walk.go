package engine

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/leakgate/leakgate/internal/ignore"
)

var errNotRegular = errors.New("not a regular file")

// walkTree enumerates cfg.Root depth-first in natural directory-listing
// order, pre-order, which makes finding output deterministic within a run.
// Ignored directories are never entered, so their contents are invisible to
// the scan regardless of what they hold. Entry-level errors (permission
// denied, vanished mid-walk, symlinks and other specials) are diagnostics,
// never fatal.
func walkTree(cfg Config, ign ignore.Matcher, res *Result) error {
	return filepath.WalkDir(cfg.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			rel := relpath(cfg.Root, p)
			cfg.Warn(rel, err)
			return nil
		}
		if d.IsDir() {
			if p != cfg.Root && cfg.Excludes.SkipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		rel := relpath(cfg.Root, p)
		if !d.Type().IsRegular() {
			cfg.Warn(rel, errNotRegular)
			res.FilesSkipped++
			return nil
		}
		if skipEntry(cfg, ign, rel) {
			res.FilesSkipped++
			return nil
		}
		if info, ierr := d.Info(); ierr == nil && info.Size() > cfg.MaxBytes {
			res.FilesSkipped++
			return nil
		}
		scanFile(cfg, p, rel, res)
		return nil
	})
}

func relpath(root, p string) string {
	rel, err := filepath.Rel(root, p)
	if err != nil {
		return p
	}
	return filepath.ToSlash(rel)
}
