package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/leakgate/leakgate/internal/gitx"
	"github.com/leakgate/leakgate/internal/ignore"
	"github.com/leakgate/leakgate/internal/rules"
	"github.com/leakgate/leakgate/internal/types"
)

// IgnoreFileName is the repo-local ignore file consulted on every scan.
const IgnoreFileName = ".leakgateignore"

// Config controls one scan. It is an explicit value handed to Scan so tests
// can inject alternate registries, allowlists, and exclusion sets without
// touching process state.
type Config struct {
	Root         string
	Registry     rules.Registry
	Allowlist    rules.Allowlist
	Excludes     Excludes
	IncludeGlobs string
	ExcludeGlobs string
	MaxBytes     int64
	Staged       bool

	// Emit receives each finding the moment it is produced, in visit order.
	Emit func(types.Finding)
	// Warn receives per-entry read failures. These never abort the scan.
	Warn func(path string, err error)
}

// Result contains the aggregate verdict and basic scan statistics.
type Result struct {
	Findings     []types.Finding
	Found        bool
	FilesScanned int
	FilesSkipped int
	Duration     time.Duration
}

// Scan walks cfg.Root (or the staged file set) and scans every eligible file.
// Only root-level setup failures return an error; anything local to one file
// or directory is reported through cfg.Warn and swallowed, so the run always
// reaches a verdict.
func Scan(cfg Config) (Result, error) {
	var res Result
	started := time.Now()

	if cfg.Registry == nil {
		cfg.Registry = rules.Default()
	}
	if cfg.Allowlist == nil {
		cfg.Allowlist = rules.DefaultAllowlist()
	}
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = 1 << 20
	}
	if cfg.Emit == nil {
		cfg.Emit = func(types.Finding) {}
	}
	if cfg.Warn == nil {
		cfg.Warn = func(string, error) {}
	}

	abs, err := filepath.Abs(cfg.Root)
	if err != nil {
		return res, fmt.Errorf("resolve root %q: %w", cfg.Root, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return res, fmt.Errorf("cannot scan root: %w", err)
	}
	if !info.IsDir() {
		return res, fmt.Errorf("root is not a directory: %s", abs)
	}
	cfg.Root = abs

	ign, _ := ignore.Load(filepath.Join(abs, IgnoreFileName))

	emit := cfg.Emit
	cfg.Emit = func(f types.Finding) {
		res.Findings = append(res.Findings, f)
		res.Found = true
		emit(f)
	}

	if cfg.Staged {
		err = scanStaged(cfg, ign, &res)
	} else {
		err = walkTree(cfg, ign, &res)
	}
	res.Duration = time.Since(started)
	return res, err
}

// scanStaged scans only the files with changes staged in the index, in the
// order git reports them. Failure to enumerate the index is fatal: a
// pre-commit run that cannot see the commit has nothing to vouch for.
// Staged paths are relative to the worktree root, which may be an ancestor
// of cfg.Root; entries outside cfg.Root are not this scan's concern.
func scanStaged(cfg Config, ign ignore.Matcher, res *Result) error {
	wtRoot, paths, err := gitx.StagedFiles(cfg.Root)
	if err != nil {
		return fmt.Errorf("list staged files: %w", err)
	}
	for _, wtRel := range paths {
		abs := filepath.Join(wtRoot, wtRel)
		rel, err := filepath.Rel(cfg.Root, abs)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			continue
		}
		rel = filepath.ToSlash(rel)
		if skipEntry(cfg, ign, rel) {
			res.FilesSkipped++
			continue
		}
		scanFile(cfg, abs, rel, res)
	}
	return nil
}

// skipEntry applies the file-level exclusion rules shared by the tree walk
// and the staged scan: exact names, suffixes, globs, and the ignore file.
func skipEntry(cfg Config, ign ignore.Matcher, rel string) bool {
	if cfg.Excludes.SkipFile(filepath.Base(rel)) {
		return true
	}
	if !allowedByGlobs(rel, cfg.IncludeGlobs, cfg.ExcludeGlobs) {
		return true
	}
	return ign.Match(rel)
}
