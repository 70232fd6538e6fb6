package wave

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// InputSchema renders the declared inputs as a JSON Schema object. JSON typed
// inputs stay unconstrained; mandatory inputs without defaults become required
// properties.
func (s Spec) InputSchema() map[string]any {
	props := make(map[string]any, len(s.Inputs))
	var required []string

	for _, in := range s.Inputs {
		prop := map[string]any{}
		if t, ok := schemaType(in.Type); ok {
			prop["type"] = t
		}
		if in.Description != "" {
			prop["description"] = in.Description
		}
		if in.Default != nil {
			prop["default"] = in.Default
		}
		if in.Example != nil {
			prop["examples"] = []any{in.Example}
		}
		props[in.Name] = prop

		if in.Mandatory && in.Default == nil {
			required = append(required, in.Name)
		}
	}

	schema := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// schemaType maps a wave type to its JSON Schema counterpart.
func schemaType(t Type) (string, bool) {
	switch t {
	case TypeString:
		return "string", true
	case TypeNumber:
		return "number", true
	case TypeBoolean:
		return "boolean", true
	default:
		return "", false
	}
}

// ValidateInputs checks a host-supplied value set against the inputs the spec
// declares. Values beyond the declared inputs are tolerated.
func ValidateInputs(spec Spec, values map[string]any) error {
	schemaJSON, err := json.Marshal(spec.InputSchema())
	if err != nil {
		return fmt.Errorf("marshal input schema: %w", err)
	}
	if values == nil {
		values = map[string]any{}
	}
	valuesJSON, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("marshal input values: %w", err)
	}

	schemaLoader := gojsonschema.NewBytesLoader(schemaJSON)
	documentLoader := gojsonschema.NewBytesLoader(valuesJSON)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("validate inputs: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, resErr := range result.Errors() {
			msgs = append(msgs, resErr.String())
		}
		return fmt.Errorf("input validation failed: %s", strings.Join(msgs, "; "))
	}
	return nil
}
