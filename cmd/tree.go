package cmd

import "github.com/spf13/cobra"

// NewTreeCmd creates the `tree` command.
func NewTreeCmd() *cobra.Command {
	cmd := newActionCmd(
		"tree",
		"Create the workspace directory tree",
		`Creates every directory of the fixed workspace layout under the workspace
root. Directories that already exist are reported and left untouched, so the
command is safe to re-run at any time.`,
	)
	cmd.Example = `  # Create the directory layout under the workspace root
  dev-bootstrap tree

  # Same, with machine-readable output
  dev-bootstrap tree --json`
	return cmd
}
