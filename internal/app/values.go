package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/wavekit/wave-nodes-http/pkg/wave"
)

// valuesFile represents the structure of an inputs file.
type valuesFile struct {
	Inputs map[string]any `json:"inputs" yaml:"inputs"`
}

// LoadValues loads node input values from a YAML/JSON file.
func LoadValues(path string) (map[string]any, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("inputs file path is empty")
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open inputs file: %w", err)
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read inputs file: %w", err)
	}

	vf, err := parseValuesFile(raw, filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	if len(vf.Inputs) == 0 {
		return nil, errors.New("inputs file contains no inputs entries")
	}

	values := make(map[string]any, len(vf.Inputs))
	for k, v := range vf.Inputs {
		key := strings.TrimSpace(k)
		if key == "" {
			continue
		}
		values[key] = v
	}
	return values, nil
}

// parseValuesFile attempts to decode the inputs file content.
func parseValuesFile(data []byte, ext string) (valuesFile, error) {
	ext = strings.ToLower(strings.TrimSpace(ext))
	decoders := []struct {
		name string
		ext  string
		fn   func([]byte, any) error
	}{
		{name: "yaml", ext: ".yaml", fn: yaml.Unmarshal},
		{name: "yaml", ext: ".yml", fn: yaml.Unmarshal},
		{name: "json", ext: ".json", fn: json.Unmarshal},
	}

	for _, d := range decoders {
		if ext != "" && ext != d.ext {
			continue
		}
		if vf, err := unmarshalValuesFile(d.name, data, d.fn); err == nil {
			return vf, nil
		}
	}

	return valuesFile{}, errors.New("inputs file format not recognized (expected YAML or JSON)")
}

// unmarshalValuesFile decodes the inputs file using the provided function.
func unmarshalValuesFile(name string, data []byte, fn func([]byte, any) error) (valuesFile, error) {
	var vf valuesFile
	if err := fn(data, &vf); err != nil {
		return valuesFile{}, fmt.Errorf("decode %s inputs: %w", name, err)
	}
	return vf, nil
}

// ParseOverride splits a NAME=VALUE flag and coerces the value to the type
// the spec declares for that input.
func ParseOverride(spec wave.Spec, raw string) (string, any, error) {
	name, val, ok := strings.Cut(raw, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return "", nil, fmt.Errorf("override %q must be NAME=VALUE", raw)
	}

	decl, ok := spec.InputByName(name)
	if !ok {
		return "", nil, fmt.Errorf("no input named %q", name)
	}

	v, err := coerceOverride(decl.Type, strings.TrimSpace(val))
	if err != nil {
		return "", nil, fmt.Errorf("input %q: %w", decl.Name, err)
	}
	return decl.Name, v, nil
}

// coerceOverride converts the textual flag value to the declared type.
func coerceOverride(t wave.Type, raw string) (any, error) {
	switch t {
	case wave.TypeNumber:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("not a number: %q", raw)
		}
		return f, nil
	case wave.TypeBoolean:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("not a boolean: %q", raw)
		}
		return b, nil
	case wave.TypeJSON:
		var doc any
		if err := json.Unmarshal([]byte(raw), &doc); err != nil {
			return nil, fmt.Errorf("not valid JSON: %q", raw)
		}
		return doc, nil
	default:
		return raw, nil
	}
}

// ExtractOutput evaluates a gjson path against the JSON form of the named
// output and returns the matched value as a string.
func ExtractOutput(outputs map[string]any, name, path string) (string, error) {
	raw, ok := outputs[name]
	if !ok {
		return "", fmt.Errorf("no output named %q", name)
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return "", fmt.Errorf("encode output %q: %w", name, err)
	}

	res := gjson.GetBytes(data, path)
	if !res.Exists() {
		return "", fmt.Errorf("path %q not found in output %q", path, name)
	}
	return res.String(), nil
}
