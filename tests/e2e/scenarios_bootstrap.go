package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/grovetools/tend/pkg/assert"
	"github.com/grovetools/tend/pkg/harness"
)

// TreeScenario tests directory tree materialization and its idempotence.
func TreeScenario() *harness.Scenario {
	return &harness.Scenario{
		Name:        "bootstrap-tree",
		Description: "Verifies that the tree action creates the directory layout and re-runs cleanly.",
		Tags:        []string{"bootstrap", "tree"},
		Steps: []harness.Step{
			{
				Name: "Materialize the tree twice",
				Func: func(ctx *harness.Context) error {
					binary, err := findBootstrapBinary()
					if err != nil {
						return err
					}

					workDir := ctx.NewDir("tree-test")
					root := filepath.Join(workDir, "workspace")
					configPath, err := writeConfig(workDir, "workspace_root: "+root+"\n")
					if err != nil {
						return err
					}

					cmd := ctx.Command(binary, "tree", "--config", configPath).Dir(workDir)
					result := cmd.Run()
					ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)
					if err := assert.Equal(0, result.ExitCode, "tree should exit successfully"); err != nil {
						return err
					}

					// Default layout directories must exist under the root
					for _, rel := range []string{"env/shell", "env/editor", "env/terminal", "project/sandbox", "tools"} {
						if _, err := os.Stat(filepath.Join(root, rel)); err != nil {
							return fmt.Errorf("expected directory %s under workspace root: %w", rel, err)
						}
					}

					// Re-run: everything exists, exit stays zero
					rerun := ctx.Command(binary, "tree", "--config", configPath).Dir(workDir)
					rerunResult := rerun.Run()
					ctx.ShowCommandOutput(rerun.String(), rerunResult.Stdout, rerunResult.Stderr)
					return assert.Equal(0, rerunResult.ExitCode, "re-running tree should exit successfully")
				},
			},
		},
	}
}

// TreeJSONScenario tests the machine-readable run state output.
func TreeJSONScenario() *harness.Scenario {
	return &harness.Scenario{
		Name:        "bootstrap-tree-json",
		Description: "Verifies that --json renders the run state.",
		Tags:        []string{"bootstrap", "tree", "json"},
		Steps: []harness.Step{
			{
				Name: "Run 'dev-bootstrap tree --json'",
				Func: func(ctx *harness.Context) error {
					binary, err := findBootstrapBinary()
					if err != nil {
						return err
					}

					workDir := ctx.NewDir("tree-json-test")
					root := filepath.Join(workDir, "workspace")
					configPath, err := writeConfig(workDir, "workspace_root: "+root+"\n")
					if err != nil {
						return err
					}

					cmd := ctx.Command(binary, "tree", "--json", "--config", configPath).Dir(workDir)
					result := cmd.Run()
					ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

					if err := assert.Equal(0, result.ExitCode, "tree --json should exit successfully"); err != nil {
						return err
					}
					if err := assert.Contains(result.Stdout, `"action": "tree"`, "state should record the action"); err != nil {
						return err
					}
					return assert.Contains(result.Stdout, `"created": true`, "state should record created directories")
				},
			},
		},
	}
}

// CloneWithInstallHookScenario tests cloning a group and running its install hook.
func CloneWithInstallHookScenario() *harness.Scenario {
	return &harness.Scenario{
		Name:        "bootstrap-clone-install-hook",
		Description: "Verifies that a fresh clone runs the repository's install hook.",
		Tags:        []string{"bootstrap", "clone", "hook"},
		Steps: []harness.Step{
			{
				Name: "Clone a repository that ships an install hook",
				Func: func(ctx *harness.Context) error {
					binary, err := findBootstrapBinary()
					if err != nil {
						return err
					}

					origin, err := createOrigin(ctx, "dotfiles-origin")
					if err != nil {
						return err
					}
					if err := addInstallHook(ctx, origin, ".hook-ran"); err != nil {
						return err
					}

					workDir := ctx.NewDir("clone-test")
					root := filepath.Join(workDir, "workspace")
					configPath, err := writeConfig(workDir, fmt.Sprintf(`workspace_root: %s
groups:
  shell:
    env/shell/dotfiles: %s
`, root, origin))
					if err != nil {
						return err
					}

					cmd := ctx.Command(binary, "shell", "--config", configPath).Dir(workDir)
					result := cmd.Run()
					ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)
					if err := assert.Equal(0, result.ExitCode, "shell action should exit successfully"); err != nil {
						return err
					}

					dest := filepath.Join(root, "env", "shell", "dotfiles")
					if _, err := os.Stat(filepath.Join(dest, ".git")); err != nil {
						return fmt.Errorf("expected a git clone at %s: %w", dest, err)
					}
					if _, err := os.Stat(filepath.Join(dest, ".hook-ran")); err != nil {
						return fmt.Errorf("expected the install hook to have run: %w", err)
					}
					return nil
				},
			},
		},
	}
}

// HookOneShotScenario tests that install hooks never re-run for existing clones.
func HookOneShotScenario() *harness.Scenario {
	return &harness.Scenario{
		Name:        "bootstrap-hook-one-shot",
		Description: "Verifies that a re-run skips existing clones and never re-fires their hooks.",
		Tags:        []string{"bootstrap", "clone", "hook"},
		Steps: []harness.Step{
			{
				Name: "Run the shell action twice and check the hook fired once",
				Func: func(ctx *harness.Context) error {
					binary, err := findBootstrapBinary()
					if err != nil {
						return err
					}

					origin, err := createOrigin(ctx, "one-shot-origin")
					if err != nil {
						return err
					}
					if err := addInstallHook(ctx, origin, ".hook-ran"); err != nil {
						return err
					}

					workDir := ctx.NewDir("one-shot-test")
					root := filepath.Join(workDir, "workspace")
					configPath, err := writeConfig(workDir, fmt.Sprintf(`workspace_root: %s
groups:
  shell:
    env/shell/dotfiles: %s
`, root, origin))
					if err != nil {
						return err
					}

					first := ctx.Command(binary, "shell", "--config", configPath).Dir(workDir)
					firstResult := first.Run()
					ctx.ShowCommandOutput(first.String(), firstResult.Stdout, firstResult.Stderr)
					if err := assert.Equal(0, firstResult.ExitCode, "first run should exit successfully"); err != nil {
						return err
					}

					// Remove the marker; a second run must not recreate it
					marker := filepath.Join(root, "env", "shell", "dotfiles", ".hook-ran")
					if err := os.Remove(marker); err != nil {
						return fmt.Errorf("expected hook marker after first run: %w", err)
					}

					second := ctx.Command(binary, "shell", "--config", configPath).Dir(workDir)
					secondResult := second.Run()
					ctx.ShowCommandOutput(second.String(), secondResult.Stdout, secondResult.Stderr)
					if err := assert.Equal(0, secondResult.ExitCode, "second run should exit successfully"); err != nil {
						return err
					}

					if _, err := os.Stat(marker); err == nil {
						return fmt.Errorf("install hook re-ran for an existing clone")
					}
					return nil
				},
			},
		},
	}
}

// FailureAggregationScenario tests per-repository failure isolation.
func FailureAggregationScenario() *harness.Scenario {
	return &harness.Scenario{
		Name:        "bootstrap-failure-aggregation",
		Description: "Verifies that one failing clone does not stop the rest and the run exits non-zero.",
		Tags:        []string{"bootstrap", "clone", "failure"},
		Steps: []harness.Step{
			{
				Name: "Run a group with one broken and one working repository",
				Func: func(ctx *harness.Context) error {
					binary, err := findBootstrapBinary()
					if err != nil {
						return err
					}

					origin, err := createOrigin(ctx, "good-origin")
					if err != nil {
						return err
					}

					workDir := ctx.NewDir("failure-test")
					root := filepath.Join(workDir, "workspace")
					missing := filepath.Join(workDir, "no-such-origin")
					configPath, err := writeConfig(workDir, fmt.Sprintf(`workspace_root: %s
groups:
  projects:
    project/broken: %s
    project/good: %s
`, root, missing, origin))
					if err != nil {
						return err
					}

					cmd := ctx.Command(binary, "projects", "--config", configPath).Dir(workDir)
					result := cmd.Run()
					ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

					if result.ExitCode == 0 {
						return fmt.Errorf("run with a failed clone must exit non-zero")
					}

					// The working repository was still cloned
					if _, err := os.Stat(filepath.Join(root, "project", "good", ".git")); err != nil {
						return fmt.Errorf("expected the working repository to be cloned: %w", err)
					}
					if _, err := os.Stat(filepath.Join(root, "project", "broken")); err == nil {
						return fmt.Errorf("failed clone must not leave a destination directory")
					}
					return nil
				},
			},
		},
	}
}
