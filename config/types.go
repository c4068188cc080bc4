package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/juicer149/dev-bootstrap/util/pathutil"
)

//go:generate sh -c "cd .. && go run ./tools/schema-generator/"

// InstallHookFile is the opt-in install script a cloned repository may ship
// at its root. Its presence is the sole trigger for hook execution.
const InstallHookFile = "dev-bootstrap.install.sh"

// RepoGroup maps a destination path (relative to the workspace root) to the
// remote URL cloned into it.
type RepoGroup map[string]string

// Config is the full declarative configuration for a bootstrap run: the
// workspace root, the directory tree to materialize, and the curated
// repository groups.
type Config struct {
	Version string `yaml:"version,omitempty" jsonschema:"description=Configuration version (e.g. '1.0')"`

	// WorkspaceRoot is the single top-level directory under which all managed
	// structure and clones live. Supports ~ and environment variables.
	WorkspaceRoot string `yaml:"workspace_root,omitempty" jsonschema:"description=Workspace root directory (default: ~/dev)"`

	// Tree maps a symbolic entry name to a relative path created under the
	// workspace root. Entries are independent; parents are created as needed.
	Tree map[string]string `yaml:"tree,omitempty" jsonschema:"description=Map of symbolic name to relative directory path created under the workspace root"`

	// Groups holds the named repository groups (shell, editor, terminal,
	// projects). Destination paths must be unique across all groups.
	Groups map[string]RepoGroup `yaml:"groups,omitempty" jsonschema:"description=Map of group name to destination-path/clone-URL pairs"`

	// Extensions captures tool-specific sections (e.g. logging) that are not
	// part of the core configuration.
	Extensions map[string]interface{} `yaml:",inline" jsonschema:"-"`
}

// RootPath returns the workspace root as an absolute path with ~ and
// environment variables expanded.
func (c *Config) RootPath() (string, error) {
	root := c.WorkspaceRoot
	if root == "" {
		root = DefaultWorkspaceRoot
	}
	expanded, err := pathutil.Expand(root)
	if err != nil {
		return "", fmt.Errorf("expanding workspace root: %w", err)
	}
	return expanded, nil
}

// Group returns the named repository group. The boolean reports whether the
// group exists.
func (c *Config) Group(name string) (RepoGroup, bool) {
	group, ok := c.Groups[name]
	return group, ok
}

// UnmarshalExtension decodes a specific extension's configuration from the
// loaded bootstrap.yml into the provided target struct. The target must be a
// pointer. This provides a type-safe way for extensions to access their
// custom configuration sections.
//
// Example:
//
//	var logCfg logging.Config
//	err := cfg.UnmarshalExtension("logging", &logCfg)
func (c *Config) UnmarshalExtension(key string, target interface{}) error {
	extensionConfig, ok := c.Extensions[key]
	if !ok {
		// It's not an error if the key doesn't exist.
		// The target struct will simply remain zero-valued.
		return nil
	}

	// Use mapstructure to decode the generic map[string]interface{}
	// into the strongly-typed target struct. We configure it to use
	// `yaml` tags for consistency.
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  target,
		TagName: "yaml",
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(extensionConfig); err != nil {
		return fmt.Errorf("failed to decode extension config for '%s': %w", key, err)
	}

	return nil
}
