package bootstrap

import (
	"context"
	"os"
	"os/exec"

	"github.com/juicer149/dev-bootstrap/command"
	"github.com/juicer149/dev-bootstrap/errors"
)

// RequiredCommands is the fixed set of system commands a run depends on:
// git for cloning and bash for executing install hooks.
var RequiredCommands = []string{"git", "bash"}

// PrereqChecker verifies that the required system commands exist and
// installs any missing ones through the host package manager.
type PrereqChecker struct {
	cmdBuilder *command.SafeBuilder
	lookPath   func(string) (string, error)
}

// NewPrereqChecker creates a checker using the real system PATH.
func NewPrereqChecker() *PrereqChecker {
	return &PrereqChecker{
		cmdBuilder: command.NewSafeBuilder(),
		lookPath:   exec.LookPath,
	}
}

// Missing returns the required commands not currently on PATH.
func (c *PrereqChecker) Missing() []string {
	var missing []string
	for _, name := range RequiredCommands {
		if _, err := c.lookPath(name); err != nil {
			missing = append(missing, name)
		}
	}
	return missing
}

// Ensure checks the required commands and installs all missing ones in a
// single package manager invocation. A failed installation is fatal to the
// run: nothing useful can proceed without git and bash.
func (c *PrereqChecker) Ensure(ctx context.Context) error {
	missing := c.Missing()
	if len(missing) == 0 {
		return nil
	}

	for _, name := range missing {
		if err := c.cmdBuilder.Validate("commandName", name); err != nil {
			return errors.Wrap(err, errors.ErrCodeInvalidInput, "invalid prerequisite command name")
		}
	}

	// Installing prerequisites currently assumes a Debian-family host; the
	// capability check keeps other platforms failing with a clear message
	// instead of a confusing exec error.
	if _, err := c.lookPath("apt-get"); err != nil {
		return errors.New(errors.ErrCodePrereqInstallFailed,
			"no supported package manager found (apt-get); install the missing commands manually").
			WithDetail("missing", missing)
	}

	if err := c.runPackageManager(ctx, []string{"update"}); err != nil {
		return errors.PrereqInstallFailed(missing, err)
	}

	installArgs := append([]string{"install", "-y"}, missing...)
	if err := c.runPackageManager(ctx, installArgs); err != nil {
		return errors.PrereqInstallFailed(missing, err)
	}

	// Confirm the install actually provided the commands
	if still := c.Missing(); len(still) > 0 {
		return errors.New(errors.ErrCodePrereqInstallFailed,
			"package manager reported success but commands are still missing").
			WithDetail("missing", still)
	}

	return nil
}

// runPackageManager invokes apt-get, with sudo when not running as root.
// Package installs can block on mirrors, so no deadline is imposed.
func (c *PrereqChecker) runPackageManager(ctx context.Context, args []string) error {
	name := "apt-get"
	if os.Geteuid() != 0 {
		args = append([]string{"apt-get"}, args...)
		name = "sudo"
	}

	cmd, err := c.cmdBuilder.Build(ctx, name, args...)
	if err != nil {
		return err
	}

	execCmd := cmd.WithTimeout(command.NoTimeout).Exec()
	execCmd.Stdout = os.Stdout
	execCmd.Stderr = os.Stderr
	execCmd.Stdin = os.Stdin
	return execCmd.Run()
}
