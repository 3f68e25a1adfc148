package engine

import (
	"path/filepath"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// Excludes holds the structural exclusion sets: directory base names that are
// never entered, file base names that are never scanned, and file suffixes
// for logs and binary artifacts. A zero Excludes excludes nothing.
type Excludes struct {
	Dirs     map[string]bool
	Files    map[string]bool
	Suffixes []string
}

// DefaultExcludes returns the built-in exclusion sets shipped with the tool.
func DefaultExcludes() Excludes {
	return Excludes{
		Dirs: map[string]bool{
			".git":         true,
			".hg":          true,
			".svn":         true,
			"node_modules": true,
			"vendor":       true,
			"dist":         true,
			"build":        true,
			"out":          true,
			"target":       true,
			"__pycache__":  true,
			".venv":        true,
			"venv":         true,
			"coverage":     true,
		},
		Files: map[string]bool{
			".DS_Store":         true,
			"package-lock.json": true,
			"yarn.lock":         true,
			"pnpm-lock.yaml":    true,
			"go.sum":            true,
			// the baseline file echoes finding excerpts verbatim
			"leakgate.baseline.json": true,
		},
		Suffixes: []string{
			".log",
			".png", ".jpg", ".jpeg", ".gif", ".webp", ".svg", ".ico",
			".pdf", ".zip", ".gz", ".tar",
			".min.js", ".map",
		},
	}
}

// SkipDir matches against a directory's base name, not its path.
func (e Excludes) SkipDir(name string) bool {
	return e.Dirs[name]
}

// SkipFile matches a file's base name against the exact-name set and the
// suffix set. Suffixes compare case-insensitively (IMG.PNG is still an image).
func (e Excludes) SkipFile(base string) bool {
	if e.Files[base] {
		return true
	}
	lower := strings.ToLower(base)
	for _, s := range e.Suffixes {
		if strings.HasSuffix(lower, s) {
			return true
		}
	}
	return false
}

// allowedByGlobs applies the optional comma-separated include/exclude glob
// filters. Include globs, when present, act as a positive filter; exclude
// globs are subtracted last. Matching uses forward-slash semantics.
func allowedByGlobs(rel, include, exclude string) bool {
	rp := strings.ReplaceAll(rel, "\\", "/")
	if globs := parseGlobs(include); len(globs) > 0 && !matchAnyGlob(rp, globs) {
		return false
	}
	if globs := parseGlobs(exclude); len(globs) > 0 && matchAnyGlob(rp, globs) {
		return false
	}
	return true
}

func parseGlobs(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
			if t := trimGlobPrefix(p); t != p {
				out = append(out, t)
			}
		}
	}
	return out
}

// trimGlobPrefix strips leading "./" and "**/" segments so a pattern like
// "**/*.go" also matches files at the root of the tree.
func trimGlobPrefix(g string) string {
	s := strings.TrimPrefix(g, "./")
	for strings.HasPrefix(s, "**/") {
		s = strings.TrimPrefix(s, "**/")
	}
	return s
}

func matchAnyGlob(rel string, globs []string) bool {
	for _, g := range globs {
		if ok, _ := doublestar.Match(g, rel); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, filepath.Base(rel)); ok {
			return true
		}
	}
	return false
}
