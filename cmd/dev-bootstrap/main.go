package main

import (
	stderrors "errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/juicer149/dev-bootstrap/cli"
	"github.com/juicer149/dev-bootstrap/cmd"
	"github.com/juicer149/dev-bootstrap/errors"
)

func main() {
	rootCmd := cli.NewStandardCommand(
		"dev-bootstrap",
		"Bootstrap a personal development workspace",
	)
	rootCmd.Long = `Creates the workspace directory tree, clones curated groups of
repositories into it, and runs each repository's install hook once after its
first clone. Every action is idempotent: re-running skips what already
exists.`

	// Bare invocation runs the full setup.
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	rootCmd.RunE = func(c *cobra.Command, _ []string) error {
		return cmd.RunAction(c, "all")
	}

	rootCmd.AddCommand(cmd.NewTreeCmd())
	rootCmd.AddCommand(cmd.NewShellCmd())
	rootCmd.AddCommand(cmd.NewEditorCmd())
	rootCmd.AddCommand(cmd.NewTerminalCmd())
	rootCmd.AddCommand(cmd.NewEnvCmd())
	rootCmd.AddCommand(cmd.NewProjectsCmd())
	rootCmd.AddCommand(cmd.NewAllCmd())
	rootCmd.AddCommand(cli.NewVersionCommand())

	if err := rootCmd.Execute(); err != nil {
		// Run errors are already rendered by the error handler; anything
		// else (unknown command, bad flags) still needs printing.
		var bootErr *errors.BootstrapError
		if !stderrors.As(err, &bootErr) {
			cli.PrintError(rootCmd, err)
		}
		os.Exit(1)
	}
}
