package cmd

import "github.com/spf13/cobra"

// NewEnvCmd creates the `env` command.
func NewEnvCmd() *cobra.Command {
	cmd := newActionCmd(
		"env",
		"Set up the full environment (shell, editor, terminal)",
		`Runs the shell, editor and terminal actions in order. A failure in one
repository does not stop the rest; failures are aggregated and reported at
the end of the run.`,
	)
	cmd.Example = `  dev-bootstrap env`
	return cmd
}

// NewAllCmd creates the `all` command.
func NewAllCmd() *cobra.Command {
	cmd := newActionCmd(
		"all",
		"Set up everything (environment plus projects)",
		`Runs the full environment setup followed by the project repositories.
This is the default action when dev-bootstrap is invoked without a
subcommand.`,
	)
	cmd.Example = `  dev-bootstrap all`
	return cmd
}
