package main

import (
	"fmt"
	"os/exec"
	"path/filepath"

	"github.com/grovetools/tend/pkg/fs"
	"github.com/grovetools/tend/pkg/harness"
)

// findBootstrapBinary finds the dev-bootstrap binary under test.
// It relies on the Makefile setting the PATH to include the local ./bin directory.
func findBootstrapBinary() (string, error) {
	path, err := exec.LookPath("dev-bootstrap")
	if err != nil {
		return "", fmt.Errorf("could not find 'dev-bootstrap' binary in PATH. Ensure 'make test-e2e' is used")
	}
	return path, nil
}

// writeConfig writes a bootstrap.yml into dir and returns its path.
func writeConfig(dir, content string) (string, error) {
	path := filepath.Join(dir, "bootstrap.yml")
	if err := fs.WriteString(path, content); err != nil {
		return "", err
	}
	return path, nil
}

// createOrigin initializes a local git repository with one commit so it can
// serve as a clone source inside the sandbox.
func createOrigin(ctx *harness.Context, name string) (string, error) {
	dir := ctx.NewDir(name)
	if err := fs.WriteString(filepath.Join(dir, "README.md"), "# "+name+"\n"); err != nil {
		return "", err
	}
	steps := [][]string{
		{"init"},
		{"add", "."},
		{"-c", "user.email=e2e@example.com", "-c", "user.name=e2e", "commit", "-m", "initial"},
	}
	for _, args := range steps {
		cmd := ctx.Command("git", args...).Dir(dir)
		if result := cmd.Run(); result.Error != nil {
			return "", fmt.Errorf("git %v failed in %s: %w\n%s", args, dir, result.Error, result.Stderr)
		}
	}
	return dir, nil
}

// addInstallHook commits an install hook into origin that touches marker in
// the repository root when executed.
func addInstallHook(ctx *harness.Context, origin, marker string) error {
	script := "#!/bin/sh\ntouch \"$(pwd)/" + marker + "\"\n"
	if err := fs.WriteString(filepath.Join(origin, "dev-bootstrap.install.sh"), script); err != nil {
		return err
	}
	steps := [][]string{
		{"add", "dev-bootstrap.install.sh"},
		{"-c", "user.email=e2e@example.com", "-c", "user.name=e2e", "commit", "-m", "add install hook"},
	}
	for _, args := range steps {
		cmd := ctx.Command("git", args...).Dir(origin)
		if result := cmd.Run(); result.Error != nil {
			return fmt.Errorf("git %v failed in %s: %w\n%s", args, origin, result.Error, result.Stderr)
		}
	}
	return nil
}
