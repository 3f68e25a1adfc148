package leakgate

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/leakgate/leakgate/internal/config"
	"github.com/leakgate/leakgate/internal/engine"
	"github.com/leakgate/leakgate/internal/report"
	"github.com/leakgate/leakgate/internal/rules"
	"github.com/leakgate/leakgate/internal/types"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	flagPath       string
	flagStaged     bool
	flagInclude    string
	flagExclude    string
	flagMaxBytes   int64
	flagJSON       bool
	flagNoBaseline bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "Scan a tree for leaked credentials",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScan,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVarP(&flagPath, "path", "p", ".", "path to scan")
	cmd.Flags().BoolVar(&flagStaged, "staged", false, "scan only files staged in the git index")
	cmd.Flags().StringVar(&flagInclude, "include", "", "comma-separated include globs")
	cmd.Flags().StringVar(&flagExclude, "exclude", "", "comma-separated exclude globs")
	cmd.Flags().Int64Var(&flagMaxBytes, "max-bytes", 1<<20, "skip files larger than this")
	cmd.Flags().BoolVar(&flagJSON, "json", false, "emit findings as JSON on stdout")
	cmd.Flags().BoolVar(&flagNoBaseline, "no-baseline", false, "report baselined findings too")
}

func runScan(cmd *cobra.Command, args []string) error {
	tty := term.IsTerminal(int(os.Stderr.Fd()))
	failed, err := executeScan(args, os.Stdout, os.Stderr, tty, cmd.Flags().Changed("max-bytes"))
	if err != nil {
		return err
	}
	if failed {
		os.Exit(1)
	}
	return nil
}

// loadFileConfigs returns the global and repo-local file configs, leaving
// a zero value where a file is absent or unreadable.
func loadFileConfigs(abs string) (gcfg, lcfg config.FileConfig) {
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if c, err := config.LoadLocal(abs); err == nil {
		lcfg = c
	}
	return gcfg, lcfg
}

// engineConfig assembles the engine configuration shared by the scan and
// baseline commands from the file configs and the scan flags. maxBytesSet
// says whether --max-bytes was given explicitly; only then does the flag
// value beat a configured one.
func engineConfig(abs string, gcfg, lcfg config.FileConfig, maxBytesSet bool) (engine.Config, error) {
	registry, allow, err := buildRules(lcfg, gcfg)
	if err != nil {
		return engine.Config{}, err
	}
	maxBytes := flagMaxBytes
	if !maxBytesSet {
		if lcfg.MaxBytes != nil {
			maxBytes = *lcfg.MaxBytes
		} else if gcfg.MaxBytes != nil {
			maxBytes = *gcfg.MaxBytes
		}
	}
	return engine.Config{
		Root:         abs,
		Registry:     registry,
		Allowlist:    allow,
		Excludes:     engine.DefaultExcludes(),
		IncludeGlobs: pickString(flagInclude, lcfg.Include, gcfg.Include),
		ExcludeGlobs: pickString(flagExclude, lcfg.Exclude, gcfg.Exclude),
		MaxBytes:     maxBytes,
	}, nil
}

// executeScan performs one scan and reports through the given streams.
// It returns whether findings were present; only root-level setup problems
// come back as an error.
func executeScan(args []string, stdout, stderr io.Writer, tty, maxBytesSet bool) (bool, error) {
	root := flagPath
	if len(args) > 0 {
		root = args[0]
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return false, err
	}

	gcfg, lcfg := loadFileConfigs(abs)
	cfg, err := engineConfig(abs, gcfg, lcfg, maxBytesSet)
	if err != nil {
		return false, err
	}

	color := !pickBool(flagNoColor, lcfg.NoColor, gcfg.NoColor) && tty
	printer := report.NewPrinter(stderr, color)

	var base report.Baseline
	if !flagNoBaseline {
		base, _ = report.LoadBaseline(filepath.Join(abs, report.BaselineFileName))
	}

	var kept []types.Finding
	suppressed := 0
	cfg.Staged = flagStaged
	cfg.Emit = func(f types.Finding) {
		if base.Items[report.Fingerprint(f)] {
			suppressed++
			return
		}
		kept = append(kept, f)
		if !flagJSON {
			printer.Finding(f)
		}
	}
	cfg.Warn = printer.ReadError

	res, err := engine.Scan(cfg)
	if err != nil {
		return false, err
	}

	failed := len(kept) > 0
	if flagJSON {
		if err := report.WriteJSON(stdout, kept); err != nil {
			return failed, err
		}
	} else {
		printer.Summary(failed, len(kept), report.SummaryStats{
			FilesScanned: res.FilesScanned,
			FilesSkipped: res.FilesSkipped,
			Suppressed:   suppressed,
		})
	}
	return failed, nil
}

// buildRules assembles the registry and allowlist from the built-ins plus
// any configured extras. A malformed extra pattern is fatal here, before any
// traversal begins.
func buildRules(lcfg, gcfg config.FileConfig) (rules.Registry, rules.Allowlist, error) {
	registry := rules.Default()
	for _, ep := range append(gcfg.ExtraPatterns, lcfg.ExtraPatterns...) {
		r, err := rules.Compile(ep.ID, severityFrom(ep.Severity), ep.Pattern)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid extra pattern: %w", err)
		}
		registry = append(registry, r)
	}
	allow := rules.DefaultAllowlist()
	allow = append(allow, gcfg.ExtraAllowlist...)
	allow = append(allow, lcfg.ExtraAllowlist...)
	return registry, allow, nil
}

func severityFrom(s string) types.Severity {
	switch s {
	case "low":
		return types.SevLow
	case "high":
		return types.SevHigh
	default:
		return types.SevMed
	}
}
