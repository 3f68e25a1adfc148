package leakgate

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagNoColor bool

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the leakgate CLI.
var rootCmd = &cobra.Command{
	Use:           "leakgate",
	Short:         "Fail the commit when a secret is about to leak",
	Long:          "Leakgate scans a source tree (or the staged changes) for credential-like patterns and exits non-zero when any are found outside the allowlist.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the leakgate CLI. It should be called by the main package.
// Findings map to exit code 1 inside the scan command; command and setup
// errors exit 2 here.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
}
