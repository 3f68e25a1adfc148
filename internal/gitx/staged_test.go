package gitx

import (
	"os"
	"path/filepath"
	"testing"

	git "github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStagedFiles(t *testing.T) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)

	write := func(name, content string) {
		p := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	}
	write("staged.txt", "one")
	write("loose.txt", "two")

	_, err = wt.Add("staged.txt")
	require.NoError(t, err)

	root, got, err := StagedFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"staged.txt"}, got)
	// returned paths resolve against the returned root
	_, err = os.Stat(filepath.Join(root, got[0]))
	assert.NoError(t, err)
}

func TestStagedFilesFromSubdirectory(t *testing.T) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)

	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.MkdirAll(sub, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "creds.env"), []byte("x"), 0644))
	_, err = wt.Add("sub/creds.env")
	require.NoError(t, err)

	// opening from the subdirectory still reports worktree-relative paths
	// against the worktree root, not the subdirectory
	root, got, err := StagedFiles(sub)
	require.NoError(t, err)
	require.Equal(t, []string{"sub/creds.env"}, got)
	_, err = os.Stat(filepath.Join(root, got[0]))
	assert.NoError(t, err)
}

func TestStagedFilesOutsideRepo(t *testing.T) {
	_, _, err := StagedFiles(t.TempDir())
	require.Error(t, err)
}
