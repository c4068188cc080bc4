package config

import (
	"encoding/json"
	"testing"
)

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	if err != nil {
		t.Fatalf("GenerateSchema failed: %v", err)
	}

	var schema map[string]interface{}
	if err := json.Unmarshal(data, &schema); err != nil {
		t.Fatalf("generated schema is not valid JSON: %v", err)
	}

	if schema["$schema"] != "http://json-schema.org/draft-07/schema#" {
		t.Errorf("expected JSON Schema draft-07, got %v", schema["$schema"])
	}

	props, ok := schema["properties"].(map[string]interface{})
	if !ok {
		t.Fatal("expected properties to be defined")
	}

	for _, name := range []string{"version", "workspace_root", "tree", "groups"} {
		if _, ok := props[name]; !ok {
			t.Errorf("expected property %q in generated schema", name)
		}
	}

	// Extension sections live at the top level, so additional properties
	// must be allowed
	if allow, ok := schema["additionalProperties"]; ok && allow == false {
		t.Error("expected additionalProperties to be allowed")
	}
}
