package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/juicer149/dev-bootstrap/command"
)

// Clone clones the repository at url into dest. The destination's parent
// directories are created as needed. Output from git is passed through to
// the user's terminal, and no deadline is imposed on the clone.
func Clone(ctx context.Context, url, dest string) error {
	cmdBuilder := command.NewSafeBuilder()

	if err := cmdBuilder.Validate("gitURL", url); err != nil {
		return fmt.Errorf("invalid clone URL: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return fmt.Errorf("create parent directory: %w", err)
	}

	cmd, err := cmdBuilder.Build(ctx, "git", "clone", url, dest)
	if err != nil {
		return fmt.Errorf("failed to build command: %w", err)
	}
	execCmd := cmd.WithTimeout(command.NoTimeout).Exec()
	execCmd.Stdout = os.Stdout
	execCmd.Stderr = os.Stderr
	if err := execCmd.Run(); err != nil {
		return fmt.Errorf("clone %s: %w", url, err)
	}

	return nil
}

// IsGitRepo reports whether dir is the root of a git working tree (the
// directory exists and contains a .git entry).
func IsGitRepo(dir string) bool {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return false
	}
	_, err = os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}

// ExtractRepoName extracts the repository name from a git URL
func ExtractRepoName(url string) string {
	// Remove .git suffix
	url = strings.TrimSuffix(url, ".git")

	// Handle SSH URLs (git@github.com:user/repo)
	if strings.HasPrefix(url, "git@") {
		parts := strings.Split(url, ":")
		if len(parts) >= 2 {
			url = parts[1]
		}
	}

	// Strip protocol from HTTP(S) URLs
	url = strings.TrimPrefix(url, "https://")
	url = strings.TrimPrefix(url, "http://")

	// Get the last part of the path
	parts := strings.Split(strings.TrimSuffix(url, "/"), "/")
	if len(parts) > 0 && parts[len(parts)-1] != "" {
		return parts[len(parts)-1]
	}

	return "unknown"
}
