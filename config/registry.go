package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/juicer149/dev-bootstrap/errors"
)

// RegistryFileName is the optional TOML registry that adds or overrides
// repository groups next to the bootstrap configuration file.
const RegistryFileName = "repos.toml"

// registryFile mirrors the on-disk shape of repos.toml:
//
//	[groups.projects]
//	"project/packages/curate" = "git@github.com:juicer149/curate.git"
type registryFile struct {
	Groups map[string]RepoGroup `toml:"groups"`
}

// MergeRegistry merges an optional repos.toml found in dir into the
// configuration. A group declared in the registry replaces the group of the
// same name wholesale; groups not mentioned are left untouched. A missing
// registry file is not an error.
func MergeRegistry(cfg *Config, dir string) error {
	path := filepath.Join(dir, RegistryFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read repository registry").
			WithDetail("path", path)
	}

	var registry registryFile
	if err := toml.Unmarshal(data, &registry); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse repository registry").
			WithDetail("path", path)
	}

	if len(registry.Groups) == 0 {
		return nil
	}

	if cfg.Groups == nil {
		cfg.Groups = make(map[string]RepoGroup)
	}
	for name, group := range registry.Groups {
		cfg.Groups[name] = group
	}

	return nil
}
