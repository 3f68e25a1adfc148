package engine

import (
	"strings"
	"unicode/utf8"

	"github.com/leakgate/leakgate/internal/rules"
	"github.com/leakgate/leakgate/internal/types"
)

// excerptLen bounds the portion of a matched line included in a finding.
const excerptLen = 100

// isCommentLine reports whether the trimmed line starts with a line-comment
// marker or a block-comment continuation. This is a prefix heuristic, not a
// tokenizer: a string literal beginning with "//" is wrongly skipped, and a
// trailing comment after code is not. Both limits are accepted; real comment
// parsing is out of scope.
func isCommentLine(line string) bool {
	t := strings.TrimSpace(line)
	return strings.HasPrefix(t, "//") || strings.HasPrefix(t, "*")
}

// scanLine applies the registry and allowlist to one raw line. At most one
// finding is produced per line, credited to the first matching rule in
// registry order. The allowlist overrides any match.
func scanLine(reg rules.Registry, allow rules.Allowlist, path, line string, n int) (types.Finding, bool) {
	if isCommentLine(line) {
		return types.Finding{}, false
	}
	r, ok := reg.First(line)
	if !ok {
		return types.Finding{}, false
	}
	if allow.Allowed(line) {
		return types.Finding{}, false
	}
	return types.Finding{
		Path:     path,
		Line:     n,
		Rule:     r.ID,
		Severity: r.Severity,
		Excerpt:  truncate(line, excerptLen),
	}, true
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence,
// backing up to the nearest rune boundary when the cut lands mid-rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
