// Package bootstrap materializes a personal development workspace: a fixed
// directory tree under a workspace root, curated groups of git repositories
// cloned into it, and each repository's opt-in install hook run exactly once,
// immediately after its first clone.
package bootstrap

// CloneStatus describes the outcome of a single repository clone attempt.
type CloneStatus string

const (
	// StatusCloned means the repository was cloned during this run.
	StatusCloned CloneStatus = "cloned"
	// StatusExists means the destination already existed and was left untouched.
	StatusExists CloneStatus = "exists"
	// StatusFailed means the clone was attempted and failed.
	StatusFailed CloneStatus = "failed"
)

// HookStatus describes the outcome of a repository's install hook.
type HookStatus string

const (
	// HookRan means the install hook was present and exited zero.
	HookRan HookStatus = "ran"
	// HookAbsent means the repository ships no install hook.
	HookAbsent HookStatus = "absent"
	// HookFailed means the install hook was present but exited non-zero.
	HookFailed HookStatus = "failed"
	// HookSkipped means the hook was not eligible: the repository was not
	// cloned during this run, or its clone failed.
	HookSkipped HookStatus = "skipped"
)

// TreeResult records the outcome of one directory tree entry.
type TreeResult struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	Created bool   `json:"created"`
}

// RepoResult records the outcome of one repository in a group: the clone
// attempt and, when eligible, its install hook.
type RepoResult struct {
	Group string      `json:"group"`
	Dest  string      `json:"dest"`
	URL   string      `json:"url"`
	Clone CloneStatus `json:"clone"`
	Hook  HookStatus  `json:"hook"`
	Err   error       `json:"-"`
}

// RunState is the ephemeral state of a single invocation: what happened to
// every directory entry and repository touched by the run. Nothing here
// persists across runs; idempotency comes from presence-of-directory checks.
type RunState struct {
	Action string       `json:"action"`
	Tree   []TreeResult `json:"tree,omitempty"`
	Repos  []RepoResult `json:"repos,omitempty"`

	treeDone bool
}

// NewRunState creates the state for one run of the named action.
func NewRunState(action string) *RunState {
	return &RunState{Action: action}
}

// NewlyCloned reports whether dest was cloned during this run. Only such
// destinations are eligible for install hooks.
func (s *RunState) NewlyCloned(dest string) bool {
	for _, r := range s.Repos {
		if r.Dest == dest && r.Clone == StatusCloned {
			return true
		}
	}
	return false
}

// Failures counts the failed clones and hooks recorded in this run.
func (s *RunState) Failures() int {
	count := 0
	for _, r := range s.Repos {
		if r.Clone == StatusFailed {
			count++
			continue
		}
		if r.Hook == HookFailed {
			count++
		}
	}
	return count
}

// FailedRepos returns the results with a failed clone or hook, in the order
// they were recorded.
func (s *RunState) FailedRepos() []RepoResult {
	var failed []RepoResult
	for _, r := range s.Repos {
		if r.Clone == StatusFailed || r.Hook == HookFailed {
			failed = append(failed, r)
		}
	}
	return failed
}
