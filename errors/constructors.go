package errors

import (
	"fmt"
	"os/exec"
)

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *BootstrapError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *BootstrapError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// DuplicateDestination creates an error for a destination claimed by two repository groups
func DuplicateDestination(dest, group, otherGroup string) *BootstrapError {
	return New(ErrCodeDuplicateDestination,
		fmt.Sprintf("destination '%s' is declared by both group '%s' and group '%s'", dest, group, otherGroup)).
		WithDetail("destination", dest).
		WithDetail("group", group).
		WithDetail("otherGroup", otherGroup)
}

// CommandNotFound creates an error for a missing system command
func CommandNotFound(name string) *BootstrapError {
	return New(ErrCodeCommandNotFound, fmt.Sprintf("required command '%s' not found on PATH", name)).
		WithDetail("command", name)
}

// PrereqInstallFailed creates an error for a failed package manager invocation
func PrereqInstallFailed(packages []string, err error) *BootstrapError {
	return Wrap(err, ErrCodePrereqInstallFailed,
		fmt.Sprintf("failed to install prerequisites: %v", packages)).
		WithDetail("packages", packages)
}

// CloneFailed creates an error for a failed git clone
func CloneFailed(url, dest string, err error) *BootstrapError {
	return Wrap(err, ErrCodeGitCloneFailed, fmt.Sprintf("failed to clone %s into %s", url, dest)).
		WithDetail("url", url).
		WithDetail("destination", dest)
}

// HookFailed creates an error for an install hook that exited non-zero
func HookFailed(repo string, err error) *BootstrapError {
	bootErr := Wrap(err, ErrCodeHookFailed, fmt.Sprintf("install hook failed for %s", repo)).
		WithDetail("repository", repo)

	// Extract exit code if available
	if exitErr, ok := err.(*exec.ExitError); ok {
		bootErr = bootErr.WithDetail("exitCode", exitErr.ExitCode())
	}

	return bootErr
}

// CommandFailed creates a command execution failure error
func CommandFailed(cmd string, err error) *BootstrapError {
	bootErr := Wrap(err, ErrCodeCommandFailed, fmt.Sprintf("command failed: %s", cmd)).
		WithDetail("command", cmd)

	// Extract exit code if available
	if exitErr, ok := err.(*exec.ExitError); ok {
		bootErr = bootErr.WithDetail("exitCode", exitErr.ExitCode())
	}

	return bootErr
}

// RunFailed creates an aggregate error for a run with one or more recorded failures
func RunFailed(failures int) *BootstrapError {
	return New(ErrCodeRunFailed, fmt.Sprintf("run completed with %d failure(s)", failures)).
		WithDetail("failures", failures)
}
