package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultExcludesDirs(t *testing.T) {
	e := DefaultExcludes()
	assert.True(t, e.SkipDir("node_modules"))
	assert.True(t, e.SkipDir(".git"))
	assert.False(t, e.SkipDir("src"))
	// matched against base names only
	assert.False(t, e.SkipDir("my-node_modules"))
}

func TestDefaultExcludesFiles(t *testing.T) {
	e := DefaultExcludes()
	assert.True(t, e.SkipFile("yarn.lock"))
	assert.True(t, e.SkipFile("debug.log"))
	assert.True(t, e.SkipFile("logo.PNG"), "suffix check is case-insensitive")
	assert.True(t, e.SkipFile("bundle.min.js"))
	assert.True(t, e.SkipFile("leakgate.baseline.json"), "the baseline must not flag itself")
	assert.False(t, e.SkipFile("main.go"))
	assert.False(t, e.SkipFile("catalog.json"))
}

func TestZeroExcludesExcludesNothing(t *testing.T) {
	var e Excludes
	assert.False(t, e.SkipDir("node_modules"))
	assert.False(t, e.SkipFile("debug.log"))
}

func TestAllowedByGlobs(t *testing.T) {
	tests := []struct {
		name     string
		rel      string
		include  string
		exclude  string
		expected bool
	}{
		{name: "no globs allows all", rel: "a/b.txt", expected: true},
		{name: "include hit", rel: "pkg/a.go", include: "**/*.go", expected: true},
		{name: "include miss", rel: "pkg/a.md", include: "**/*.go", expected: false},
		{name: "exclude hit", rel: "docs/a.md", exclude: "*.md", expected: false},
		{name: "exclude subtracts from include", rel: "pkg/a_test.go", include: "**/*.go", exclude: "*_test.go", expected: false},
		{name: "comma separated lists", rel: "x.yaml", include: "*.yml, *.yaml", expected: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, allowedByGlobs(tt.rel, tt.include, tt.exclude))
		})
	}
}
