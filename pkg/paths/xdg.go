// Package paths provides XDG-compliant path resolution for dev-bootstrap.
//
// Resolution order:
// 1. DEV_BOOTSTRAP_HOME (portable root) → $DEV_BOOTSTRAP_HOME/{config,state}
// 2. XDG env vars → $XDG_*_HOME/dev-bootstrap
// 3. Platform defaults → ~/.config/dev-bootstrap, ~/.local/state/dev-bootstrap
package paths

import (
	"os"
	"path/filepath"
)

const appDir = "dev-bootstrap"

// getConfigHome returns the base config home directory.
func getConfigHome() string {
	if home := os.Getenv("DEV_BOOTSTRAP_HOME"); home != "" {
		return filepath.Join(home, "config")
	}
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return xdgConfigHome
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".config")
	}
	return ""
}

// getStateHome returns the base state home directory.
func getStateHome() string {
	if home := os.Getenv("DEV_BOOTSTRAP_HOME"); home != "" {
		return filepath.Join(home, "state")
	}
	if xdgStateHome := os.Getenv("XDG_STATE_HOME"); xdgStateHome != "" {
		return xdgStateHome
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".local", "state")
	}
	return ""
}

// ConfigDir returns the dev-bootstrap configuration directory.
// Used for bootstrap.yml and repos.toml.
func ConfigDir() string {
	base := getConfigHome()
	if base == "" {
		return ""
	}
	return filepath.Join(base, appDir)
}

// StateDir returns the dev-bootstrap state directory.
// Used for logs.
func StateDir() string {
	base := getStateHome()
	if base == "" {
		return ""
	}
	return filepath.Join(base, appDir)
}

// LogDir returns the directory log files are written to.
func LogDir() string {
	state := StateDir()
	if state == "" {
		return ""
	}
	return filepath.Join(state, "logs")
}
