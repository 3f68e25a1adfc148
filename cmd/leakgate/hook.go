package leakgate

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

const preCommitScript = `#!/bin/sh
# installed by "leakgate hook install"
exec leakgate scan --staged
`

var flagHookForce bool

func init() {
	hook := &cobra.Command{Use: "hook", Short: "Git hook helpers"}
	rootCmd.AddCommand(hook)

	install := &cobra.Command{
		Use:   "install",
		Short: "Install a pre-commit hook that runs leakgate scan --staged",
		RunE: func(_ *cobra.Command, _ []string) error {
			return installHook(".", flagHookForce, os.Stderr)
		},
	}
	install.Flags().BoolVar(&flagHookForce, "force", false, "overwrite an existing pre-commit hook")
	hook.AddCommand(install)
}

func installHook(root string, force bool, out io.Writer) error {
	hooksDir := filepath.Join(root, ".git", "hooks")
	if _, err := os.Stat(filepath.Join(root, ".git")); err != nil {
		return fmt.Errorf("not a git repository: %s", root)
	}
	if err := os.MkdirAll(hooksDir, 0755); err != nil {
		return err
	}
	path := filepath.Join(hooksDir, "pre-commit")
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := os.WriteFile(path, []byte(preCommitScript), 0755); err != nil {
		return err
	}
	fmt.Fprintf(out, "installed %s\n", path)
	return nil
}
