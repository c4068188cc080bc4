package bootstrap

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/juicer149/dev-bootstrap/command"
	"github.com/juicer149/dev-bootstrap/config"
	"github.com/juicer149/dev-bootstrap/errors"
	"github.com/juicer149/dev-bootstrap/logging"
)

// step is one operation of an action: materialize the tree or process a
// repository group.
type step func(ctx context.Context, state *RunState) error

// Runner executes bootstrap actions against a single workspace root. All
// execution is strictly sequential; progress is reported per step.
type Runner struct {
	cfg        *config.Config
	root       string
	log        *logrus.Entry
	pretty     *logging.PrettyLogger
	prereq     *PrereqChecker
	cmdBuilder *command.SafeBuilder
}

// NewRunner creates a runner for the given configuration.
func NewRunner(cfg *config.Config) (*Runner, error) {
	root, err := cfg.RootPath()
	if err != nil {
		return nil, err
	}

	return &Runner{
		cfg:        cfg,
		root:       root,
		log:        logging.NewLogger("bootstrap"),
		pretty:     logging.NewPrettyLogger(),
		prereq:     NewPrereqChecker(),
		cmdBuilder: command.NewSafeBuilder(),
	}, nil
}

// Root returns the absolute workspace root this runner operates on.
func (r *Runner) Root() string {
	return r.root
}

// Actions lists the valid action names in documentation order.
func Actions() []string {
	return []string{"tree", "shell", "editor", "terminal", "env", "projects", "all"}
}

// steps resolves an action name to its ordered operations. Composite actions
// expand to the same operations their leaf actions perform; every repository
// action materializes the tree first.
func (r *Runner) steps(action string) ([]step, error) {
	tree := func(ctx context.Context, state *RunState) error {
		return r.EnsureTree(state)
	}
	group := func(name string) step {
		return func(ctx context.Context, state *RunState) error {
			if err := r.EnsureTree(state); err != nil {
				return err
			}
			return r.ProcessGroup(ctx, state, name)
		}
	}

	switch action {
	case "tree":
		return []step{tree}, nil
	case "shell":
		return []step{group("shell")}, nil
	case "editor":
		return []step{group("editor")}, nil
	case "terminal":
		return []step{group("terminal")}, nil
	case "env":
		return []step{group("shell"), group("editor"), group("terminal")}, nil
	case "projects":
		return []step{group("projects")}, nil
	case "all":
		return []step{group("shell"), group("editor"), group("terminal"), group("projects")}, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, fmt.Sprintf("unknown action: %s", action)).
			WithDetail("action", action).
			WithDetail("valid", Actions())
	}
}

// Run executes one action. The action name is resolved and the configuration
// validated before any side effect; prerequisite installation failures abort
// the run. Per-repository failures are aggregated: Run returns the run state
// together with a RUN_FAILED error when any clone or hook failed.
func (r *Runner) Run(ctx context.Context, action string) (*RunState, error) {
	steps, err := r.steps(action)
	if err != nil {
		return nil, err
	}

	if err := config.Validate(r.cfg); err != nil {
		return nil, err
	}

	if err := r.prereq.Ensure(ctx); err != nil {
		return nil, err
	}

	state := NewRunState(action)
	for _, s := range steps {
		if err := s(ctx, state); err != nil {
			return state, err
		}
	}

	r.printSummary(state)

	if failures := state.Failures(); failures > 0 {
		return state, errors.RunFailed(failures)
	}
	return state, nil
}

// printSummary reports aggregated failures at the end of a run. Successful
// steps were already reported as they happened.
func (r *Runner) printSummary(state *RunState) {
	failed := state.FailedRepos()
	if len(failed) == 0 {
		return
	}

	r.pretty.Blank()
	r.pretty.Divider()
	r.pretty.Warn(fmt.Sprintf("%d repository step(s) failed:", len(failed)))
	for _, result := range failed {
		switch {
		case result.Clone == StatusFailed:
			r.pretty.Error(fmt.Sprintf("clone %s (%s)", result.Dest, result.URL), result.Err)
		case result.Hook == HookFailed:
			r.pretty.Error(fmt.Sprintf("install hook %s", result.Dest), result.Err)
		}
	}
	r.pretty.Info("re-run the same action after fixing the cause; completed steps are skipped")
}
