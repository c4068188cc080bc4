package config

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/juicer149/dev-bootstrap/errors"
	"github.com/juicer149/dev-bootstrap/schema"
)

// Validate checks the structural invariants of the configuration: every tree
// and destination path is relative and stays inside the workspace root, clone
// URLs are non-empty, no two groups claim the same destination, and no
// destination shadows a tree entry. It runs before any filesystem mutation.
func Validate(cfg *Config) error {
	treePaths := make(map[string]string) // cleaned path -> tree entry name
	for name, path := range cfg.Tree {
		if err := checkRelative(path); err != nil {
			return errors.ConfigInvalid(fmt.Sprintf("tree entry '%s': %v", name, err))
		}
		treePaths[filepath.ToSlash(filepath.Clean(path))] = name
	}

	// Deterministic group order so duplicate reports are stable
	groupNames := make([]string, 0, len(cfg.Groups))
	for name := range cfg.Groups {
		groupNames = append(groupNames, name)
	}
	sort.Strings(groupNames)

	claimed := make(map[string]string) // cleaned destination -> group name
	for _, groupName := range groupNames {
		for dest, url := range cfg.Groups[groupName] {
			if err := checkRelative(dest); err != nil {
				return errors.ConfigInvalid(fmt.Sprintf("group '%s' destination '%s': %v", groupName, dest, err))
			}
			if strings.TrimSpace(url) == "" {
				return errors.ConfigInvalid(fmt.Sprintf("group '%s' destination '%s': clone URL is empty", groupName, dest))
			}

			key := filepath.ToSlash(filepath.Clean(dest))
			if owner, dup := claimed[key]; dup {
				return errors.DuplicateDestination(dest, owner, groupName)
			}
			claimed[key] = groupName

			// The tree step creates its directories before any group is
			// processed, and an existing destination is always skipped, so
			// a destination matching a tree entry could never clone.
			if entry, shadowed := treePaths[key]; shadowed {
				return errors.ConfigInvalid(fmt.Sprintf(
					"group '%s' destination '%s' collides with tree entry '%s'; clone into a subdirectory instead",
					groupName, dest, entry))
			}
		}
	}

	return nil
}

// checkRelative rejects absolute paths and paths escaping the workspace root.
func checkRelative(path string) error {
	if path == "" {
		return fmt.Errorf("path is empty")
	}
	if filepath.IsAbs(path) {
		return fmt.Errorf("path must be relative")
	}
	for _, part := range strings.Split(filepath.ToSlash(filepath.Clean(path)), "/") {
		if part == ".." {
			return fmt.Errorf("path escapes the workspace root")
		}
	}
	return nil
}

// validateSchema validates raw configuration data against the embedded JSON
// Schema before it is decoded into the Config struct.
func validateSchema(raw map[string]interface{}) error {
	validator, err := schema.NewValidator()
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "failed to load embedded schema")
	}

	if err := validator.Validate(raw); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigInvalid, "configuration does not match schema")
	}

	return nil
}
