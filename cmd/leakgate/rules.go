package leakgate

import (
	"fmt"

	"github.com/leakgate/leakgate/internal/rules"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the built-in detection rules",
		Run: func(cmd *cobra.Command, _ []string) {
			for _, id := range rules.Default().IDs() {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
		},
	}
	rootCmd.AddCommand(cmd)
}
