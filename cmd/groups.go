package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newGroupCmd builds a command that clones one repository group. Every group
// action materializes the directory tree first, then clones each repository
// whose destination does not yet exist, running its install hook right after
// a fresh clone.
func newGroupCmd(group, what string) *cobra.Command {
	cmd := newActionCmd(
		group,
		fmt.Sprintf("Clone the %s repositories", what),
		fmt.Sprintf(`Ensures the workspace directory tree exists, then clones the %s
repositories into their configured destinations. Destinations that already
exist are skipped. A repository that ships an install hook has it run once,
immediately after its first clone.`, what),
	)
	cmd.Example = fmt.Sprintf(`  dev-bootstrap %s`, group)
	return cmd
}

// NewShellCmd creates the `shell` command.
func NewShellCmd() *cobra.Command {
	return newGroupCmd("shell", "shell environment")
}

// NewEditorCmd creates the `editor` command.
func NewEditorCmd() *cobra.Command {
	return newGroupCmd("editor", "editor configuration")
}

// NewTerminalCmd creates the `terminal` command.
func NewTerminalCmd() *cobra.Command {
	return newGroupCmd("terminal", "terminal configuration")
}

// NewProjectsCmd creates the `projects` command.
func NewProjectsCmd() *cobra.Command {
	return newGroupCmd("projects", "personal project")
}
