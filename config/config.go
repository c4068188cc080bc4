package config

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/juicer149/dev-bootstrap/errors"
	"github.com/juicer149/dev-bootstrap/pkg/paths"
)

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// Load reads and parses a bootstrap configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config file").
			WithDetail("path", path)
	}

	cfg, err := LoadFromBytes(data)
	if err != nil {
		return nil, err
	}

	// A repos.toml next to the config file may add or override groups
	if err := MergeRegistry(cfg, filepath.Dir(path)); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadDefault finds and loads the configuration:
// 1. bootstrap.yml found by walking up from the working directory
// 2. ~/.config/dev-bootstrap/bootstrap.yml (XDG)
// 3. the built-in curated defaults when no file exists
func LoadDefault() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to get current directory")
	}

	path, err := FindConfigFile(cwd)
	if err != nil {
		// No config file anywhere: the built-in defaults are the configuration.
		return DefaultConfig(), nil
	}

	return Load(path)
}

// LoadFromBytes parses configuration data, validates it against the embedded
// schema, and fills unset fields from the built-in defaults.
func LoadFromBytes(data []byte) (*Config, error) {
	expanded := expandEnvVars(string(data))

	// Validate the raw document against the embedded schema before decoding
	var raw map[string]interface{}
	if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse config file")
	}
	if err := validateSchema(raw); err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse config file")
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// applyDefaults fills unset fields from the built-in curated configuration.
// A partial bootstrap.yml overrides only what it declares.
func applyDefaults(cfg *Config) {
	defaults := DefaultConfig()
	if cfg.Version == "" {
		cfg.Version = defaults.Version
	}
	if cfg.WorkspaceRoot == "" {
		cfg.WorkspaceRoot = defaults.WorkspaceRoot
	}
	if len(cfg.Tree) == 0 {
		cfg.Tree = defaults.Tree
	}
	if len(cfg.Groups) == 0 {
		cfg.Groups = defaults.Groups
	}
}

// FindConfigFile locates a bootstrap configuration file, searching from
// startDir up to the filesystem root and then the XDG config directory.
func FindConfigFile(startDir string) (string, error) {
	configNames := []string{
		"bootstrap.yml",
		"bootstrap.yaml",
		".bootstrap.yml",
		".bootstrap.yaml",
	}

	// 1. Search from the start directory up to the filesystem root
	dir := startDir
	for {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	// 2. Check the XDG config directory
	if xdgConfigPath := getXDGConfigPath(); xdgConfigPath != "" {
		if info, err := os.Stat(xdgConfigPath); err == nil && !info.IsDir() {
			return xdgConfigPath, nil
		}
	}

	return "", errors.ConfigNotFound(startDir).WithDetail("searchPath", startDir)
}

// expandEnvVars replaces ${VAR} with environment variable values
func expandEnvVars(content string) string {
	return envVarRegex.ReplaceAllStringFunc(content, func(match string) string {
		varName := envVarRegex.FindStringSubmatch(match)[1]

		// Handle default values: ${VAR:-default}
		parts := strings.SplitN(varName, ":-", 2)
		varName = parts[0]
		defaultValue := ""
		if len(parts) > 1 {
			defaultValue = parts[1]
		}

		if value := os.Getenv(varName); value != "" {
			return value
		}

		return defaultValue
	})
}

// getXDGConfigPath returns the XDG config path for dev-bootstrap
func getXDGConfigPath() string {
	configDir := paths.ConfigDir()
	if configDir == "" {
		return ""
	}
	return filepath.Join(configDir, "bootstrap.yml")
}
