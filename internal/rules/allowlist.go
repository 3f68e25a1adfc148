package rules

import "strings"

// Allowlist holds literal substrings that suppress any finding on a line.
// Matching is plain, case-sensitive containment. Keep it that way: substring
// semantics are the contract, and relaxing them (globs, case folding) changes
// false-positive behavior materially.
type Allowlist []string

// Allowed reports whether line contains any allowlist entry.
func (a Allowlist) Allowed(line string) bool {
	for _, s := range a {
		if strings.Contains(line, s) {
			return true
		}
	}
	return false
}

// DefaultAllowlist covers the three noise classes that dominate in practice:
// documentation placeholders, environment-variable reference idioms, and the
// bare names of the env vars our companion tooling reads (a README mentioning
// GITLAB_API_TOKEN by name is not a leak).
func DefaultAllowlist() Allowlist {
	return Allowlist{
		"your-api-token-here",
		"your-token-here",
		"your-password",
		"changeme",
		"example.com",
		"process.env.",
		"os.environ",
		"os.getenv",
		"${",
		"GITLAB_API_TOKEN",
		"GITLAB_PROJECT_ID",
		"CI_JOB_TOKEN",
	}
}
