package wave

import (
	"strings"
	"testing"
)

func TestInputSchemaShape(t *testing.T) {
	schema := testSpec().InputSchema()

	if schema["type"] != "object" {
		t.Fatalf("expected object schema, got %v", schema["type"])
	}

	props, ok := schema["properties"].(map[string]any)
	if !ok {
		t.Fatalf("expected properties map, got %T", schema["properties"])
	}
	host, ok := props["Host"].(map[string]any)
	if !ok {
		t.Fatalf("expected Host property")
	}
	if host["type"] != "string" {
		t.Fatalf("expected Host to be string typed, got %v", host["type"])
	}
	if _, ok := host["examples"]; !ok {
		t.Fatalf("expected Host example carried as annotation")
	}

	payload, ok := props["Payload"].(map[string]any)
	if !ok {
		t.Fatalf("expected Payload property")
	}
	if _, constrained := payload["type"]; constrained {
		t.Fatalf("JSON inputs must stay unconstrained, got %v", payload["type"])
	}

	required, ok := schema["required"].([]string)
	if !ok || len(required) != 1 || required[0] != "Host" {
		t.Fatalf("expected required [Host], got %v", schema["required"])
	}
}

func TestValidateInputsAccepts(t *testing.T) {
	values := map[string]any{
		"Host":             "https://example.com",
		"Timeout":          30,
		"Follow redirects": false,
	}
	if err := ValidateInputs(testSpec(), values); err != nil {
		t.Fatalf("ValidateInputs: %v", err)
	}
}

func TestValidateInputsRejectsMissingMandatory(t *testing.T) {
	err := ValidateInputs(testSpec(), map[string]any{"Timeout": 30})
	if err == nil {
		t.Fatalf("expected error for missing mandatory input")
	}
	if !strings.Contains(err.Error(), "Host") {
		t.Fatalf("error should name the missing input, got %v", err)
	}
}

func TestValidateInputsRejectsWrongType(t *testing.T) {
	values := map[string]any{
		"Host":    "https://example.com",
		"Timeout": "plenty",
	}
	err := ValidateInputs(testSpec(), values)
	if err == nil {
		t.Fatalf("expected error for wrong-typed input")
	}
	if !strings.Contains(err.Error(), "Timeout") {
		t.Fatalf("error should name the offending input, got %v", err)
	}
}

func TestValidateInputsToleratesExtraKeys(t *testing.T) {
	values := map[string]any{
		"Host":  "https://example.com",
		"Extra": "ignored",
	}
	if err := ValidateInputs(testSpec(), values); err != nil {
		t.Fatalf("extra keys should be tolerated, got %v", err)
	}
}
