package main

import (
	"github.com/grovetools/tend/pkg/assert"
	"github.com/grovetools/tend/pkg/harness"
)

// VersionScenario tests the 'version' command.
func VersionScenario() *harness.Scenario {
	return &harness.Scenario{
		Name:        "bootstrap-basic-version",
		Description: "Verifies that the version command reports build information.",
		Tags:        []string{"bootstrap", "basic"},
		Steps: []harness.Step{
			{
				Name: "Run 'dev-bootstrap version'",
				Func: func(ctx *harness.Context) error {
					binary, err := findBootstrapBinary()
					if err != nil {
						return err
					}

					cmd := ctx.Command(binary, "version")
					result := cmd.Run()
					ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

					if err := assert.Equal(0, result.ExitCode, "version should exit successfully"); err != nil {
						return err
					}
					if err := assert.Contains(result.Stdout, "dev-bootstrap", "output should name the binary"); err != nil {
						return err
					}
					if err := assert.Contains(result.Stdout, "Commit:", "output should contain Commit"); err != nil {
						return err
					}
					return assert.Contains(result.Stdout, "Go version:", "output should contain the Go version")
				},
			},
		},
	}
}

// UnknownActionScenario tests that an unknown action fails fast without side effects.
func UnknownActionScenario() *harness.Scenario {
	return &harness.Scenario{
		Name:        "bootstrap-basic-unknown-action",
		Description: "Verifies that an unknown action is rejected with a non-zero exit.",
		Tags:        []string{"bootstrap", "basic"},
		Steps: []harness.Step{
			{
				Name: "Run 'dev-bootstrap frobnicate'",
				Func: func(ctx *harness.Context) error {
					binary, err := findBootstrapBinary()
					if err != nil {
						return err
					}

					cmd := ctx.Command(binary, "frobnicate")
					result := cmd.Run()
					ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

					if result.ExitCode == 0 {
						return assert.Equal(1, result.ExitCode, "unknown action must not exit zero")
					}
					return nil
				},
			},
		},
	}
}
