// Package schema validates bootstrap configuration documents against the
// embedded JSON Schema. The schema file is generated from the Config struct
// by tools/schema-generator.
package schema

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed bootstrap.embedded.schema.json
var embeddedSchemaData []byte

// Validator validates raw configuration documents.
type Validator struct {
	schema *jsonschema.Schema
}

// NewValidator compiles the embedded schema.
func NewValidator() (*Validator, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("bootstrap.json", bytes.NewReader(embeddedSchemaData)); err != nil {
		return nil, fmt.Errorf("loading embedded schema: %w", err)
	}

	compiled, err := compiler.Compile("bootstrap.json")
	if err != nil {
		return nil, fmt.Errorf("compiling embedded schema: %w", err)
	}

	return &Validator{schema: compiled}, nil
}

// Validate checks doc against the schema. The document may be any value that
// marshals to JSON; YAML-decoded maps work directly.
func (v *Validator) Validate(doc interface{}) error {
	// Round-trip through JSON so the validator sees plain JSON values
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling config for validation: %w", err)
	}
	var plain interface{}
	if err := json.Unmarshal(data, &plain); err != nil {
		return fmt.Errorf("unmarshaling config for validation: %w", err)
	}

	if err := v.schema.Validate(plain); err != nil {
		if validationErr, ok := err.(*jsonschema.ValidationError); ok {
			return fmt.Errorf("schema validation failed:\n%s", strings.Join(flatten(validationErr), "\n"))
		}
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// flatten collects the leaf messages of a validation error tree.
func flatten(err *jsonschema.ValidationError) []string {
	var messages []string
	if err.InstanceLocation != "" {
		messages = append(messages, fmt.Sprintf("- %s: %s", err.InstanceLocation, err.Message))
	}
	for _, cause := range err.Causes {
		messages = append(messages, flatten(cause)...)
	}
	return messages
}
