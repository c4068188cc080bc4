package schema

import (
	"strings"
	"testing"
)

func TestValidatorAcceptsValidConfig(t *testing.T) {
	v, err := NewValidator()
	if err != nil {
		t.Fatalf("NewValidator failed: %v", err)
	}

	doc := map[string]interface{}{
		"version":        "1.0",
		"workspace_root": "~/dev",
		"tree": map[string]interface{}{
			"env": "env",
		},
		"groups": map[string]interface{}{
			"shell": map[string]interface{}{
				"env/shell/dotfiles": "git@github.com:someone/dotfiles.git",
			},
		},
	}

	if err := v.Validate(doc); err != nil {
		t.Errorf("expected valid config to pass, got: %v", err)
	}
}

func TestValidatorAllowsExtensionSections(t *testing.T) {
	v, err := NewValidator()
	if err != nil {
		t.Fatalf("NewValidator failed: %v", err)
	}

	doc := map[string]interface{}{
		"workspace_root": "~/dev",
		"logging": map[string]interface{}{
			"level": "debug",
		},
	}

	if err := v.Validate(doc); err != nil {
		t.Errorf("expected extension section to be allowed, got: %v", err)
	}
}

func TestValidatorRejectsWrongTypes(t *testing.T) {
	v, err := NewValidator()
	if err != nil {
		t.Fatalf("NewValidator failed: %v", err)
	}

	tests := []struct {
		name string
		doc  map[string]interface{}
	}{
		{"workspace_root not a string", map[string]interface{}{"workspace_root": 42}},
		{"tree value not a string", map[string]interface{}{"tree": map[string]interface{}{"env": 42}}},
		{"group not an object", map[string]interface{}{"groups": map[string]interface{}{"shell": "nope"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.doc)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), "schema validation failed") {
				t.Errorf("unexpected error message: %v", err)
			}
		})
	}
}
