package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBootstrapError_Error(t *testing.T) {
	testCases := []struct {
		name     string
		err      *BootstrapError
		expected string
	}{
		{
			name:     "without cause",
			err:      New(ErrCodeConfigInvalid, "bad tree entry"),
			expected: "CONFIG_INVALID: bad tree entry",
		},
		{
			name:     "with cause",
			err:      Wrap(stderrors.New("exit status 128"), ErrCodeGitCloneFailed, "clone failed"),
			expected: "GIT_CLONE_FAILED: clone failed (caused by: exit status 128)",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.err.Error())
		})
	}
}

func TestIs(t *testing.T) {
	err := CloneFailed("git@github.com:user/repo.git", "/tmp/dest", stderrors.New("network down"))

	assert.True(t, Is(err, ErrCodeGitCloneFailed))
	assert.False(t, Is(err, ErrCodeHookFailed))
	assert.False(t, Is(nil, ErrCodeGitCloneFailed))

	// Wrapped in a plain fmt error, the code is still discoverable
	wrapped := fmt.Errorf("processing group: %w", err)
	assert.True(t, Is(wrapped, ErrCodeGitCloneFailed))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, ErrCodeDuplicateDestination,
		GetCode(DuplicateDestination("env/shell", "shell", "editor")))
	assert.Equal(t, ErrorCode(""), GetCode(nil))
	assert.Equal(t, ErrorCode(""), GetCode(stderrors.New("plain")))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrCodeHookFailed, "hook failed").WithDetail("repository", "nvim-config")
	assert.Equal(t, "nvim-config", err.Details["repository"])
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("exit status 1")
	err := Wrap(cause, ErrCodeCommandFailed, "apt-get install failed")
	assert.Equal(t, cause, stderrors.Unwrap(err))
}
