package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// GenerateSchema generates the JSON Schema for the bootstrap configuration.
// It reflects the Config struct but excludes the inline 'Extensions' field,
// whose sections (e.g. logging) validate themselves.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		// Extension sections live at the top level of bootstrap.yml, so
		// unknown properties must be allowed.
		AllowAdditionalProperties: true,
		// Expand struct references instead of using $ref for a cleaner schema.
		ExpandedStruct: true,
		// Use YAML field names for property names
		FieldNameTag: "yaml",
	}

	// A temporary struct without the Extensions field keeps extension
	// sections out of the schema.
	type BaseConfig struct {
		Version       string               `yaml:"version,omitempty" jsonschema:"description=Configuration version (e.g. '1.0')"`
		WorkspaceRoot string               `yaml:"workspace_root,omitempty" jsonschema:"description=Workspace root directory (default: ~/dev)"`
		Tree          map[string]string    `yaml:"tree,omitempty" jsonschema:"description=Map of symbolic name to relative directory path created under the workspace root"`
		Groups        map[string]RepoGroup `yaml:"groups,omitempty" jsonschema:"description=Map of group name to destination-path/clone-URL pairs"`
	}

	schema := r.Reflect(&BaseConfig{})
	schema.Title = "Dev Bootstrap Configuration"
	schema.Description = "Schema for bootstrap.yml properties."
	schema.Version = "http://json-schema.org/draft-07/schema#"

	return json.MarshalIndent(schema, "", "  ")
}
