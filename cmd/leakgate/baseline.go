package leakgate

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/leakgate/leakgate/internal/engine"
	"github.com/leakgate/leakgate/internal/report"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "baseline [path]",
		Short: "Accept all current findings into the baseline file",
		Long:  "Runs a scan and records every finding in " + report.BaselineFileName + " so subsequent scans only fail on new leaks.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			root := "."
			if len(args) > 0 {
				root = args[0]
			}
			return runBaseline(root, os.Stderr)
		},
	}
	rootCmd.AddCommand(cmd)
}

// runBaseline scans root with the same rule set and filters a plain scan
// would use and records every finding in the baseline file.
func runBaseline(root string, out io.Writer) error {
	abs, err := filepath.Abs(root)
	if err != nil {
		return err
	}
	gcfg, lcfg := loadFileConfigs(abs)
	cfg, err := engineConfig(abs, gcfg, lcfg, false)
	if err != nil {
		return err
	}
	res, err := engine.Scan(cfg)
	if err != nil {
		return err
	}
	path := filepath.Join(abs, report.BaselineFileName)
	if err := report.SaveBaseline(path, res.Findings); err != nil {
		return fmt.Errorf("write baseline: %w", err)
	}
	fmt.Fprintf(out, "baselined %d finding(s) in %s\n", len(res.Findings), path)
	return nil
}
