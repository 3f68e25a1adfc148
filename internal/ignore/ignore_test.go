package ignore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch(t *testing.T) {
	dir := t.TempDir()
	ig := filepath.Join(dir, ".leakgateignore")
	content := "fixtures/\n*.pem\n# comment\n\nsecret.env\n"
	require.NoError(t, os.WriteFile(ig, []byte(content), 0644))

	m, err := Load(ig)
	require.NoError(t, err)

	cases := map[string]bool{
		"fixtures/tokens.txt":     true,
		"testdata/fixtures/a.txt": true,
		"certs/key.pem":           true,
		"secret.env":              true,
		"src/app.go":              false,
		"fixtures.go":             false,
	}
	for p, want := range cases {
		assert.Equal(t, want, m.Match(p), "Match(%q)", p)
	}
}

func TestLoadMissingFileIsEmptyMatcher(t *testing.T) {
	m, err := Load(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	assert.False(t, m.Match("anything.txt"))
}
