package wave

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Inputs holds the host-supplied value set for one execution, resolved
// against the declaring spec. Values are copied on construction and never
// mutated afterwards.
type Inputs struct {
	spec   Spec
	values map[string]any
}

// NewInputs builds the input container from raw host values.
func NewInputs(spec Spec, values map[string]any) *Inputs {
	vals := make(map[string]any, len(values))
	for k, v := range values {
		key := strings.TrimSpace(k)
		if key == "" {
			continue
		}
		vals[key] = v
	}
	return &Inputs{spec: spec, values: vals}
}

// Value returns the raw value for the named input, falling back to the
// declared default. The second return is false when the input is not
// declared or has neither a value nor a default.
func (in *Inputs) Value(name string) (any, bool) {
	decl, ok := in.spec.InputByName(name)
	if !ok {
		return nil, false
	}
	if v, present := in.values[decl.Name]; present && v != nil {
		return v, true
	}
	if decl.Default != nil {
		return decl.Default, true
	}
	return nil, false
}

// resolve looks up the declared input and applies default and mandatory rules.
// A nil value with a nil error means the input is optional and unset.
func (in *Inputs) resolve(name string) (any, error) {
	decl, ok := in.spec.InputByName(name)
	if !ok {
		return nil, fmt.Errorf("no input named %q", name)
	}
	if v, present := in.values[decl.Name]; present && v != nil {
		return v, nil
	}
	if decl.Default != nil {
		return decl.Default, nil
	}
	if decl.Mandatory {
		return nil, fmt.Errorf("mandatory input %q has no value", decl.Name)
	}
	return nil, nil
}

// String returns the named input as a string.
func (in *Inputs) String(name string) (string, error) {
	v, err := in.resolve(name)
	if err != nil {
		return "", err
	}
	if v == nil {
		return "", nil
	}
	switch s := v.(type) {
	case string:
		return s, nil
	case []byte:
		return string(s), nil
	default:
		return "", fmt.Errorf("input %q is not a string (got %T)", name, v)
	}
}

// Number returns the named input as a float64. String values that parse as
// numbers are accepted so that file-loaded values stay usable.
func (in *Inputs) Number(name string) (float64, error) {
	v, err := in.resolve(name)
	if err != nil {
		return 0, err
	}
	if v == nil {
		return 0, nil
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case json.Number:
		f, convErr := n.Float64()
		if convErr != nil {
			return 0, fmt.Errorf("input %q is not a number: %w", name, convErr)
		}
		return f, nil
	case string:
		f, convErr := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if convErr != nil {
			return 0, fmt.Errorf("input %q is not a number: %w", name, convErr)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("input %q is not a number (got %T)", name, v)
	}
}

// Bool returns the named input as a bool. String values that parse as
// booleans are accepted.
func (in *Inputs) Bool(name string) (bool, error) {
	v, err := in.resolve(name)
	if err != nil {
		return false, err
	}
	if v == nil {
		return false, nil
	}
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		parsed, convErr := strconv.ParseBool(strings.TrimSpace(b))
		if convErr != nil {
			return false, fmt.Errorf("input %q is not a boolean: %w", name, convErr)
		}
		return parsed, nil
	default:
		return false, fmt.Errorf("input %q is not a boolean (got %T)", name, v)
	}
}

// JSON returns the named input as a decoded document. String values are
// decoded as JSON text; structured values pass through unchanged.
func (in *Inputs) JSON(name string) (any, error) {
	v, err := in.resolve(name)
	if err != nil {
		return nil, err
	}
	switch doc := v.(type) {
	case nil:
		return nil, nil
	case string:
		var decoded any
		if convErr := json.Unmarshal([]byte(doc), &decoded); convErr != nil {
			return nil, fmt.Errorf("input %q is not valid JSON: %w", name, convErr)
		}
		return decoded, nil
	case []byte:
		var decoded any
		if convErr := json.Unmarshal(doc, &decoded); convErr != nil {
			return nil, fmt.Errorf("input %q is not valid JSON: %w", name, convErr)
		}
		return decoded, nil
	default:
		return v, nil
	}
}
