package engine

import (
	"errors"
	"os"
	"strings"
)

var errBinaryContent = errors.New("binary content")

// scanFile reads one file and streams a finding for every matching,
// non-allowlisted, non-comment line. Findings are emitted immediately, in
// ascending line order. A file that cannot be read counts as zero findings
// and is only reported through Warn; unreadable files (including binaries
// that slip past the suffix filter) therefore silently pass the scan. That
// trade keeps the run available over complete.
func scanFile(cfg Config, path, rel string, res *Result) {
	b, err := os.ReadFile(path)
	if err != nil {
		cfg.Warn(rel, err)
		res.FilesSkipped++
		return
	}
	if looksBinary(b) {
		cfg.Warn(rel, errBinaryContent)
		res.FilesSkipped++
		return
	}
	res.FilesScanned++

	// Split on the bare newline only; original line indexing is the contract
	// and findings are 1-based.
	for i, line := range strings.Split(string(b), "\n") {
		if f, ok := scanLine(cfg.Registry, cfg.Allowlist, rel, line, i+1); ok {
			cfg.Emit(f)
		}
	}
}

// looksBinary sniffs the leading bytes for a NUL, the cheapest reliable
// signal that line-oriented scanning is meaningless for this file.
func looksBinary(b []byte) bool {
	const sniff = 800
	n := len(b)
	if n > sniff {
		n = sniff
	}
	for i := 0; i < n; i++ {
		if b[i] == 0 {
			return true
		}
	}
	return false
}
