package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juicer149/dev-bootstrap/errors"
)

func validForTest() *Config {
	return &Config{
		Version:       "1.0",
		WorkspaceRoot: "~/dev",
		Tree:          map[string]string{"env": "env"},
		Groups: map[string]RepoGroup{
			"shell": {"env/shell/dotfiles": "git@github.com:someone/dotfiles.git"},
		},
	}
}

func TestValidateAcceptsWellFormedConfig(t *testing.T) {
	assert.NoError(t, Validate(validForTest()))
}

func TestValidateRejectsAbsoluteTreePath(t *testing.T) {
	cfg := validForTest()
	cfg.Tree["bad"] = "/etc/passwd"

	err := Validate(cfg)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeConfigInvalid, errors.GetCode(err))
}

func TestValidateRejectsEscapingPath(t *testing.T) {
	cfg := validForTest()
	cfg.Groups["shell"]["../outside"] = "git@example.com:a/a.git"

	err := Validate(cfg)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeConfigInvalid, errors.GetCode(err))
}

func TestValidateRejectsEmptyURL(t *testing.T) {
	cfg := validForTest()
	cfg.Groups["shell"]["env/shell/extra"] = "   "

	err := Validate(cfg)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeConfigInvalid, errors.GetCode(err))
}

func TestValidateRejectsDuplicateDestinationAcrossGroups(t *testing.T) {
	cfg := validForTest()
	cfg.Groups["editor"] = RepoGroup{
		"env/shell/dotfiles": "git@example.com:other/dotfiles.git",
	}

	err := Validate(cfg)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeDuplicateDestination, errors.GetCode(err))
}

func TestValidateRejectsDestinationShadowingTreeEntry(t *testing.T) {
	// The tree step would create this directory first, so the clone
	// would be skipped on every run
	cfg := validForTest()
	cfg.Groups["shell"]["env"] = "git@example.com:someone/env.git"

	err := Validate(cfg)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeConfigInvalid, errors.GetCode(err))
	assert.Contains(t, err.Error(), "collides with tree entry")
}

func TestValidateDetectsAliasedDuplicates(t *testing.T) {
	// The same destination spelled differently still collides
	cfg := validForTest()
	cfg.Groups["editor"] = RepoGroup{
		"env/shell/./dotfiles": "git@example.com:other/dotfiles.git",
	}

	err := Validate(cfg)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeDuplicateDestination, errors.GetCode(err))
}
