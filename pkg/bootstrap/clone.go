package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/juicer149/dev-bootstrap/errors"
	"github.com/juicer149/dev-bootstrap/git"
)

// ProcessGroup clones every repository in the named group and runs the
// install hook for each one cloned during this run. Failures are isolated
// per repository: a failing clone or hook is recorded in the run state and
// processing continues with the remaining repositories.
func (r *Runner) ProcessGroup(ctx context.Context, state *RunState, groupName string) error {
	group, ok := r.cfg.Group(groupName)
	if !ok {
		// An action referencing a group the operator removed from the
		// configuration is acknowledged, not failed.
		r.pretty.Skip(fmt.Sprintf("[%s] no repositories configured", groupName))
		return nil
	}

	r.pretty.Section(groupName)

	// Sort destinations for stable, human-readable output
	dests := make([]string, 0, len(group))
	for dest := range group {
		dests = append(dests, dest)
	}
	sort.Strings(dests)

	for _, dest := range dests {
		url := group[dest]
		result := RepoResult{
			Group: groupName,
			Dest:  filepath.Join(r.root, dest),
			URL:   url,
			Hook:  HookSkipped,
		}

		if _, err := os.Stat(result.Dest); err == nil {
			// Already present: no fetch, no update, no hook. Re-running the
			// command is the documented recovery path and must not touch
			// existing clones.
			result.Clone = StatusExists
			r.pretty.Skip(fmt.Sprintf("[=] exists %s", result.Dest))
			if !git.IsGitRepo(result.Dest) {
				r.log.WithField("path", result.Dest).
					Warn("destination exists but is not a git repository")
			}
			state.Repos = append(state.Repos, result)
			continue
		}

		r.pretty.Info(fmt.Sprintf("[clone] %s → %s", url, result.Dest))
		if err := git.Clone(ctx, url, result.Dest); err != nil {
			result.Clone = StatusFailed
			result.Err = errors.CloneFailed(url, result.Dest, err)
			r.pretty.Error(fmt.Sprintf("clone failed for %s", git.ExtractRepoName(url)), err)
			r.log.WithError(err).WithField("url", url).Error("clone failed")
			state.Repos = append(state.Repos, result)
			continue
		}

		result.Clone = StatusCloned
		r.log.WithField("path", result.Dest).Info("cloned repository")

		// One-shot hook semantics: only a repository cloned during this run
		// is eligible, immediately after its clone.
		hookStatus, hookErr := r.runInstallHook(ctx, result.Dest)
		result.Hook = hookStatus
		if hookErr != nil {
			result.Err = hookErr
		}

		state.Repos = append(state.Repos, result)
	}

	return nil
}
