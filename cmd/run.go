// Package cmd wires the bootstrap actions into cobra subcommands. Each
// action command resolves the configuration, builds a runner and executes
// one action; the shared plumbing lives in runAction.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/juicer149/dev-bootstrap/cli"
	"github.com/juicer149/dev-bootstrap/pkg/bootstrap"
)

// RunAction executes one bootstrap action on behalf of a command. It loads
// the configuration (honoring --config), runs the action, and renders the
// run state as JSON when --json is set. A run with per-repository failures
// still prints its state before the error is returned.
func RunAction(cmd *cobra.Command, action string) error {
	opts := cli.GetOptions(cmd)
	logger := cli.GetLogger(cmd)
	handler := cli.NewErrorHandler(opts.Verbose)

	cfg, err := cli.LoadConfig(cmd)
	if err != nil {
		return handler.Handle(err)
	}

	runner, err := bootstrap.NewRunner(cfg)
	if err != nil {
		return handler.Handle(err)
	}

	logger.WithField("action", action).WithField("root", runner.Root()).Debug("Starting run")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	state, runErr := runner.Run(ctx, action)

	if opts.JSONOutput && state != nil {
		data, err := json.MarshalIndent(state, "", "  ")
		if err != nil {
			return handler.Handle(err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	}

	if runErr != nil {
		return handler.Handle(runErr)
	}
	return nil
}

// newActionCmd builds a leaf action command. All action commands share the
// same shape: no positional arguments, errors already rendered by the
// handler.
func newActionCmd(action, short, long string) *cobra.Command {
	c := &cobra.Command{
		Use:           action,
		Short:         short,
		Long:          long,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunAction(cmd, action)
		},
	}
	return c
}
