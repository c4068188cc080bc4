package git

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juicer149/dev-bootstrap/testutil"
)

func TestExtractRepoName(t *testing.T) {
	testCases := []struct {
		name     string
		url      string
		expected string
	}{
		{
			name:     "SSH URL with .git",
			url:      "git@github.com:juicer149/shell-env.git",
			expected: "shell-env",
		},
		{
			name:     "HTTPS URL with .git",
			url:      "https://github.com/juicer149/nvim-config.git",
			expected: "nvim-config",
		},
		{
			name:     "HTTPS URL without .git",
			url:      "https://github.com/juicer149/wezterm-config",
			expected: "wezterm-config",
		},
		{
			name:     "GitLab nested groups",
			url:      "https://gitlab.com/group/subgroup/project.git",
			expected: "project",
		},
		{
			name:     "local path",
			url:      "/tmp/repos/tmux-config",
			expected: "tmux-config",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ExtractRepoName(tc.url))
		})
	}
}

func TestClone(t *testing.T) {
	testutil.RequireGit(t)

	origin := testutil.CreateOriginRepo(t)
	dest := filepath.Join(t.TempDir(), "env", "shell")

	err := Clone(context.Background(), origin, dest)
	require.NoError(t, err)

	// Cloned content is present
	assert.FileExists(t, filepath.Join(dest, "README.md"))
	assert.True(t, IsGitRepo(dest))
}

func TestCloneInvalidURL(t *testing.T) {
	testutil.RequireGit(t)

	dest := filepath.Join(t.TempDir(), "env", "shell")
	err := Clone(context.Background(), filepath.Join(t.TempDir(), "does-not-exist"), dest)
	require.Error(t, err)
}

func TestCloneRejectsUnsafeURL(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "dest")
	err := Clone(context.Background(), "--upload-pack=touch /tmp/pwned", dest)
	require.Error(t, err)
	assert.NoDirExists(t, dest)
}

func TestIsGitRepo(t *testing.T) {
	testutil.RequireGit(t)

	tmpDir := t.TempDir()
	assert.False(t, IsGitRepo(tmpDir))
	assert.False(t, IsGitRepo(filepath.Join(tmpDir, "missing")))

	repoDir := filepath.Join(tmpDir, "repo")
	require.NoError(t, os.MkdirAll(repoDir, 0755))
	testutil.InitGitRepo(t, repoDir)
	assert.True(t, IsGitRepo(repoDir))
}
