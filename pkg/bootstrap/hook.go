package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/juicer149/dev-bootstrap/command"
	"github.com/juicer149/dev-bootstrap/config"
	"github.com/juicer149/dev-bootstrap/errors"
)

// runInstallHook executes the repository's opt-in install script, if it ships
// one. The script runs with the repository root as working directory, full
// inheritance of the parent environment, and no deadline. The script is an
// opaque capability of the cloned repository: its output is passed through,
// not parsed.
func (r *Runner) runInstallHook(ctx context.Context, repoPath string) (HookStatus, error) {
	script := filepath.Join(repoPath, config.InstallHookFile)
	repoName := filepath.Base(repoPath)

	if _, err := os.Stat(script); err != nil {
		r.pretty.Skip(fmt.Sprintf("[=] no install hook for %s", repoName))
		return HookAbsent, nil
	}

	r.pretty.Info(fmt.Sprintf("[run] install hook for %s", repoName))
	r.log.WithField("script", script).Info("running install hook")

	cmd, err := r.cmdBuilder.Build(ctx, "bash", script)
	if err != nil {
		return HookFailed, errors.HookFailed(repoName, err)
	}

	execCmd := cmd.WithTimeout(command.NoTimeout).Exec()
	execCmd.Dir = repoPath
	execCmd.Env = os.Environ()
	execCmd.Stdout = os.Stdout
	execCmd.Stderr = os.Stderr
	execCmd.Stdin = os.Stdin

	if err := execCmd.Run(); err != nil {
		hookErr := errors.HookFailed(repoName, err)
		r.pretty.Error(fmt.Sprintf("install hook failed for %s", repoName), err)
		r.log.WithError(err).WithField("script", script).Error("install hook failed")
		return HookFailed, hookErr
	}

	r.pretty.Success(fmt.Sprintf("install hook completed for %s", repoName))
	return HookRan, nil
}
