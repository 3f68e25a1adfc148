package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLocal(t *testing.T) {
	dir := t.TempDir()
	body := `
include: "**/*.go"
max_bytes: 2048
no_color: true
extra_patterns:
  - id: internal-token
    severity: high
    pattern: 'itk-[0-9a-f]{32}'
extra_allowlist:
  - INTERNAL_TOKEN_PLACEHOLDER
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".leakgate.yml"), []byte(body), 0644))

	cfg, err := LoadLocal(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg.Include)
	assert.Equal(t, "**/*.go", *cfg.Include)
	require.NotNil(t, cfg.MaxBytes)
	assert.Equal(t, int64(2048), *cfg.MaxBytes)
	require.NotNil(t, cfg.NoColor)
	assert.True(t, *cfg.NoColor)
	require.Len(t, cfg.ExtraPatterns, 1)
	assert.Equal(t, "internal-token", cfg.ExtraPatterns[0].ID)
	assert.Equal(t, []string{"INTERNAL_TOKEN_PLACEHOLDER"}, cfg.ExtraAllowlist)
}

func TestLoadLocalMissing(t *testing.T) {
	_, err := LoadLocal(t.TempDir())
	require.Error(t, err)
}

func TestLoadFileMalformed(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "leakgate.yml")
	require.NoError(t, os.WriteFile(p, []byte("include: [unclosed"), 0644))
	_, err := LoadFile(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestLoadLocalNamePrecedence(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".leakgate.yml"), []byte(`include: "a"`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "leakgate.yml"), []byte(`include: "b"`), 0644))

	cfg, err := LoadLocal(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg.Include)
	assert.Equal(t, "a", *cfg.Include, "dot-prefixed file wins")
}
