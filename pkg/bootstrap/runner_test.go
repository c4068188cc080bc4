package bootstrap

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juicer149/dev-bootstrap/config"
	"github.com/juicer149/dev-bootstrap/errors"
	"github.com/juicer149/dev-bootstrap/testutil"
)

// testConfig builds a minimal valid configuration rooted in a temp dir.
func testConfig(t *testing.T, groups map[string]config.RepoGroup) *config.Config {
	t.Helper()
	return &config.Config{
		Version:       "1.0",
		WorkspaceRoot: t.TempDir(),
		Tree: map[string]string{
			"env":      "env",
			"shell":    filepath.Join("env", "shell"),
			"editor":   filepath.Join("env", "editor"),
			"terminal": filepath.Join("env", "terminal"),
			"project":  "project",
		},
		Groups: groups,
	}
}

// newTestRunner builds a runner whose output goes nowhere.
func newTestRunner(t *testing.T, cfg *config.Config) *Runner {
	t.Helper()

	r, err := NewRunner(cfg)
	require.NoError(t, err)

	quiet := logrus.New()
	quiet.SetOutput(io.Discard)
	r.log = logrus.NewEntry(quiet)
	r.pretty = r.pretty.WithWriter(io.Discard)
	return r
}

func TestEnsureTreeCreatesAllDirectories(t *testing.T) {
	cfg := testConfig(t, nil)
	r := newTestRunner(t, cfg)

	state := NewRunState("tree")
	require.NoError(t, r.EnsureTree(state))

	assert.Len(t, state.Tree, len(cfg.Tree))
	for _, result := range state.Tree {
		assert.True(t, result.Created, "entry %s should be created on first run", result.Name)
		info, err := os.Stat(result.Path)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestEnsureTreeIsIdempotent(t *testing.T) {
	cfg := testConfig(t, nil)

	first := newTestRunner(t, cfg)
	require.NoError(t, first.EnsureTree(NewRunState("tree")))

	second := newTestRunner(t, cfg)
	state := NewRunState("tree")
	require.NoError(t, second.EnsureTree(state))

	for _, result := range state.Tree {
		assert.False(t, result.Created, "entry %s already existed", result.Name)
	}
}

func TestEnsureTreeRunsOncePerState(t *testing.T) {
	cfg := testConfig(t, nil)
	r := newTestRunner(t, cfg)

	state := NewRunState("env")
	require.NoError(t, r.EnsureTree(state))
	require.NoError(t, r.EnsureTree(state))

	// Second call is a no-op; results are not duplicated
	assert.Len(t, state.Tree, len(cfg.Tree))
}

func TestProcessGroupClonesRepository(t *testing.T) {
	testutil.RequireGit(t)

	origin := testutil.CreateOriginRepo(t)
	cfg := testConfig(t, map[string]config.RepoGroup{
		"shell": {filepath.Join("env", "shell", "dotfiles"): origin},
	})
	r := newTestRunner(t, cfg)

	state := NewRunState("shell")
	require.NoError(t, r.EnsureTree(state))
	require.NoError(t, r.ProcessGroup(context.Background(), state, "shell"))

	require.Len(t, state.Repos, 1)
	assert.Equal(t, StatusCloned, state.Repos[0].Clone)
	assert.Equal(t, HookAbsent, state.Repos[0].Hook)
	assert.DirExists(t, filepath.Join(r.Root(), "env", "shell", "dotfiles", ".git"))
}

func TestProcessGroupSkipsExistingDestination(t *testing.T) {
	testutil.RequireGit(t)

	origin := testutil.CreateOriginRepo(t)
	cfg := testConfig(t, map[string]config.RepoGroup{
		"shell": {"env/shell/dotfiles": origin},
	})

	first := newTestRunner(t, cfg)
	state := NewRunState("shell")
	require.NoError(t, first.EnsureTree(state))
	require.NoError(t, first.ProcessGroup(context.Background(), state, "shell"))
	require.Equal(t, StatusCloned, state.Repos[0].Clone)

	// Re-run against the same workspace: the destination is present, so no
	// fetch and no hook.
	second := newTestRunner(t, cfg)
	rerun := NewRunState("shell")
	require.NoError(t, second.EnsureTree(rerun))
	require.NoError(t, second.ProcessGroup(context.Background(), rerun, "shell"))

	require.Len(t, rerun.Repos, 1)
	assert.Equal(t, StatusExists, rerun.Repos[0].Clone)
	assert.Equal(t, HookSkipped, rerun.Repos[0].Hook)
}

func TestProcessGroupMissingGroupIsAcknowledged(t *testing.T) {
	cfg := testConfig(t, nil)
	r := newTestRunner(t, cfg)

	state := NewRunState("shell")
	require.NoError(t, r.ProcessGroup(context.Background(), state, "shell"))
	assert.Empty(t, state.Repos)
}

func TestInstallHookRunsAfterFreshClone(t *testing.T) {
	testutil.RequireGit(t)

	origin := testutil.CreateOriginWithInstallHook(t, config.InstallHookFile, ".hook-ran")
	cfg := testConfig(t, map[string]config.RepoGroup{
		"editor": {"env/editor/nvim": origin},
	})
	r := newTestRunner(t, cfg)

	state := NewRunState("editor")
	require.NoError(t, r.EnsureTree(state))
	require.NoError(t, r.ProcessGroup(context.Background(), state, "editor"))

	require.Len(t, state.Repos, 1)
	assert.Equal(t, StatusCloned, state.Repos[0].Clone)
	assert.Equal(t, HookRan, state.Repos[0].Hook)
	assert.FileExists(t, filepath.Join(r.Root(), "env", "editor", "nvim", ".hook-ran"))
}

func TestInstallHookDoesNotRerunOnExistingClone(t *testing.T) {
	testutil.RequireGit(t)

	origin := testutil.CreateOriginWithInstallHook(t, config.InstallHookFile, ".hook-ran")
	cfg := testConfig(t, map[string]config.RepoGroup{
		"editor": {"env/editor/nvim": origin},
	})

	r := newTestRunner(t, cfg)
	state := NewRunState("editor")
	require.NoError(t, r.EnsureTree(state))
	require.NoError(t, r.ProcessGroup(context.Background(), state, "editor"))

	marker := filepath.Join(r.Root(), "env", "editor", "nvim", ".hook-ran")
	require.FileExists(t, marker)
	require.NoError(t, os.Remove(marker))

	// The hook is one-shot: it never fires for a destination that already
	// exists, even though the script is still there.
	rerun := NewRunState("editor")
	require.NoError(t, r.ProcessGroup(context.Background(), rerun, "editor"))
	assert.Equal(t, HookSkipped, rerun.Repos[0].Hook)
	assert.NoFileExists(t, marker)
}

func TestInstallHookSkippedForPreexistingDirectory(t *testing.T) {
	testutil.RequireGit(t)

	origin := testutil.CreateOriginRepo(t)
	cfg := testConfig(t, map[string]config.RepoGroup{
		"shell": {"env/shell/dotfiles": origin},
	})
	r := newTestRunner(t, cfg)

	// Pre-create the destination with an executable hook inside. The dir
	// exists, so neither clone nor hook may run.
	dest := filepath.Join(r.Root(), "env", "shell", "dotfiles")
	require.NoError(t, os.MkdirAll(dest, 0755))
	script := filepath.Join(dest, config.InstallHookFile)
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\ntouch .hook-ran\n"), 0755))

	state := NewRunState("shell")
	require.NoError(t, r.EnsureTree(state))
	require.NoError(t, r.ProcessGroup(context.Background(), state, "shell"))

	require.Len(t, state.Repos, 1)
	assert.Equal(t, StatusExists, state.Repos[0].Clone)
	assert.Equal(t, HookSkipped, state.Repos[0].Hook)
	assert.NoFileExists(t, filepath.Join(dest, ".hook-ran"))
}

func TestInstallHookFailureIsRecorded(t *testing.T) {
	testutil.RequireGit(t)

	origin := testutil.CreateOriginRepo(t)
	hookPath := filepath.Join(origin, config.InstallHookFile)
	require.NoError(t, os.WriteFile(hookPath, []byte("#!/bin/sh\nexit 3\n"), 0755))
	testutil.RunGitCommand(t, origin, "add", config.InstallHookFile)
	testutil.RunGitCommand(t, origin, "commit", "-m", "Add failing hook")

	cfg := testConfig(t, map[string]config.RepoGroup{
		"terminal": {"env/terminal/alacritty": origin},
	})
	r := newTestRunner(t, cfg)

	state := NewRunState("terminal")
	require.NoError(t, r.EnsureTree(state))
	require.NoError(t, r.ProcessGroup(context.Background(), state, "terminal"))

	require.Len(t, state.Repos, 1)
	assert.Equal(t, StatusCloned, state.Repos[0].Clone, "a failing hook does not undo the clone")
	assert.Equal(t, HookFailed, state.Repos[0].Hook)
	assert.Equal(t, errors.ErrCodeHookFailed, errors.GetCode(state.Repos[0].Err))
	assert.Equal(t, 1, state.Failures())
}

func TestRunContinuesPastCloneFailure(t *testing.T) {
	testutil.RequireGit(t)

	origin := testutil.CreateOriginRepo(t)
	missing := filepath.Join(t.TempDir(), "no-such-origin")
	cfg := testConfig(t, map[string]config.RepoGroup{
		"projects": {
			"project/broken": missing,
			"project/good":   origin,
		},
	})
	r := newTestRunner(t, cfg)

	state, err := r.Run(context.Background(), "projects")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeRunFailed, errors.GetCode(err))

	// The good repository was still cloned
	assert.DirExists(t, filepath.Join(r.Root(), "project", "good", ".git"))
	assert.NoDirExists(t, filepath.Join(r.Root(), "project", "broken"))

	require.Len(t, state.Repos, 2)
	assert.Equal(t, 1, state.Failures())
	failed := state.FailedRepos()
	require.Len(t, failed, 1)
	assert.Equal(t, StatusFailed, failed[0].Clone)
	assert.Equal(t, errors.ErrCodeGitCloneFailed, errors.GetCode(failed[0].Err))
}

func TestRunRejectsUnknownAction(t *testing.T) {
	cfg := testConfig(t, nil)
	r := newTestRunner(t, cfg)

	state, err := r.Run(context.Background(), "bogus")
	require.Error(t, err)
	assert.Nil(t, state)
	assert.Equal(t, errors.ErrCodeInvalidInput, errors.GetCode(err))

	// Rejection happens before any filesystem mutation
	entries, readErr := os.ReadDir(r.Root())
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestRunRejectsInvalidConfigBeforeMutating(t *testing.T) {
	cfg := testConfig(t, map[string]config.RepoGroup{
		"shell":  {"env/dup": "git@example.com:a/a.git"},
		"editor": {"env/dup": "git@example.com:b/b.git"},
	})
	r := newTestRunner(t, cfg)

	_, err := r.Run(context.Background(), "tree")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeDuplicateDestination, errors.GetCode(err))

	entries, readErr := os.ReadDir(r.Root())
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestStepsComposition(t *testing.T) {
	cfg := testConfig(t, nil)
	r := newTestRunner(t, cfg)

	tests := []struct {
		action string
		steps  int
	}{
		{"tree", 1},
		{"shell", 1},
		{"editor", 1},
		{"terminal", 1},
		{"projects", 1},
		{"env", 3},
		{"all", 4},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			steps, err := r.steps(tt.action)
			require.NoError(t, err)
			assert.Len(t, steps, tt.steps)
		})
	}
}

func TestRunTreeAction(t *testing.T) {
	testutil.RequireGit(t)

	cfg := testConfig(t, nil)
	r := newTestRunner(t, cfg)

	state, err := r.Run(context.Background(), "tree")
	require.NoError(t, err)
	assert.Len(t, state.Tree, len(cfg.Tree))
	assert.Empty(t, state.Repos)
}

func TestRunAllClonesEveryGroup(t *testing.T) {
	testutil.RequireGit(t)

	origins := map[string]string{
		"shell":    testutil.CreateOriginRepo(t),
		"editor":   testutil.CreateOriginRepo(t),
		"terminal": testutil.CreateOriginRepo(t),
		"projects": testutil.CreateOriginRepo(t),
	}
	cfg := testConfig(t, map[string]config.RepoGroup{
		"shell":    {"env/shell/dotfiles": origins["shell"]},
		"editor":   {"env/editor/nvim": origins["editor"]},
		"terminal": {"env/terminal/alacritty": origins["terminal"]},
		"projects": {"project/sandbox/scratch": origins["projects"]},
	})
	r := newTestRunner(t, cfg)

	state, err := r.Run(context.Background(), "all")
	require.NoError(t, err)

	require.Len(t, state.Repos, 4)
	for _, result := range state.Repos {
		assert.Equal(t, StatusCloned, result.Clone, "group %s", result.Group)
	}
	assert.Zero(t, state.Failures())
}

func TestPrereqMissingDetection(t *testing.T) {
	checker := NewPrereqChecker()
	checker.lookPath = func(name string) (string, error) {
		if name == "git" {
			return "", os.ErrNotExist
		}
		return "/usr/bin/" + name, nil
	}

	assert.Equal(t, []string{"git"}, checker.Missing())
}

func TestPrereqEnsureNoopWhenAllPresent(t *testing.T) {
	checker := NewPrereqChecker()
	checker.lookPath = func(name string) (string, error) {
		return "/usr/bin/" + name, nil
	}

	assert.NoError(t, checker.Ensure(context.Background()))
}

func TestPrereqEnsureFailsWithoutPackageManager(t *testing.T) {
	checker := NewPrereqChecker()
	checker.lookPath = func(name string) (string, error) {
		// Everything missing, including apt-get
		return "", os.ErrNotExist
	}

	err := checker.Ensure(context.Background())
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodePrereqInstallFailed, errors.GetCode(err))
}
