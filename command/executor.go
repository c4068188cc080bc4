package command

import (
	"context"
	"os/exec"
)

// Executor creates exec.Cmd instances. Injecting it lets tests substitute
// command creation (for example a PATH of mock binaries) without touching
// the production wiring.
type Executor interface {
	// CommandContext creates a context-aware exec.Cmd for the given command
	// and arguments.
	CommandContext(ctx context.Context, name string, args ...string) *exec.Cmd
}

// RealExecutor backs the Executor interface with os/exec.
type RealExecutor struct{}

// CommandContext creates a standard context-aware exec.Cmd.
func (e *RealExecutor) CommandContext(ctx context.Context, name string, args ...string) *exec.Cmd {
	return exec.CommandContext(ctx, name, args...)
}
