package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/grovetools/tend/pkg/assert"
	"github.com/grovetools/tend/pkg/fs"
	"github.com/grovetools/tend/pkg/harness"
)

// ConfigOverrideScenario tests that a partial bootstrap.yml overrides only
// what it declares.
func ConfigOverrideScenario() *harness.Scenario {
	return &harness.Scenario{
		Name:        "bootstrap-config-override",
		Description: "Verifies that a partial config keeps the built-in defaults for undeclared sections.",
		Tags:        []string{"bootstrap", "config"},
		Steps: []harness.Step{
			{
				Name: "Run tree with a config that only sets the workspace root",
				Func: func(ctx *harness.Context) error {
					binary, err := findBootstrapBinary()
					if err != nil {
						return err
					}

					workDir := ctx.NewDir("override-test")
					root := filepath.Join(workDir, "elsewhere")
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

					// The default tree was created under the overridden root
					if _, err := os.Stat(filepath.Join(root, "env", "shell")); err != nil {
						return fmt.Errorf("expected the default layout under the overridden root: %w", err)
					}
					return nil
				},
			},
		},
	}
}

// RegistryOverrideScenario tests the repos.toml registry next to the config file.
func RegistryOverrideScenario() *harness.Scenario {
	return &harness.Scenario{
		Name:        "bootstrap-registry-override",
		Description: "Verifies that repos.toml replaces the declared group wholesale.",
		Tags:        []string{"bootstrap", "config", "registry"},
		Steps: []harness.Step{
			{
				Name: "Clone projects defined only in repos.toml",
				Func: func(ctx *harness.Context) error {
					binary, err := findBootstrapBinary()
					if err != nil {
						return err
					}

					origin, err := createOrigin(ctx, "registry-origin")
					if err != nil {
						return err
					}

					workDir := ctx.NewDir("registry-test")
					root := filepath.Join(workDir, "workspace")
					configPath, err := writeConfig(workDir, fmt.Sprintf(`workspace_root: %s
groups:
  projects:
    project/from-yaml: %s
`, root, origin))
					if err != nil {
						return err
					}

					registry := fmt.Sprintf(`[groups.projects]
"project/from-toml" = "%s"
`, origin)
					if err := fs.WriteString(filepath.Join(workDir, "repos.toml"), registry); err != nil {
						return err
					}

					cmd := ctx.Command(binary, "projects", "--config", configPath).Dir(workDir)
					result := cmd.Run()
					ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)
					if err := assert.Equal(0, result.ExitCode, "projects should exit successfully"); err != nil {
						return err
					}

					// The registry group replaces the YAML group wholesale
					if _, err := os.Stat(filepath.Join(root, "project", "from-toml", ".git")); err != nil {
						return fmt.Errorf("expected the registry repository to be cloned: %w", err)
					}
					if _, err := os.Stat(filepath.Join(root, "project", "from-yaml")); err == nil {
						return fmt.Errorf("the YAML group should have been replaced by the registry")
					}
					return nil
				},
			},
		},
	}
}
