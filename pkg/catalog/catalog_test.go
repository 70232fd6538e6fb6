package catalog

import (
	"context"
	"strings"
	"testing"

	"github.com/wavekit/wave-nodes-http/pkg/wave"
)

// stubNode is a minimal node used to exercise the catalog.
type stubNode struct{}

func (stubNode) Spec() wave.Spec {
	return wave.Spec{
		SchemaVersion: wave.SchemaVersion,
		Inputs: []wave.Input{
			{Name: "Host", Type: wave.TypeString, Mandatory: true},
		},
		Outputs: []wave.Output{
			{Name: "Execution", Type: wave.TypeJSON},
		},
	}
}

func (stubNode) Execute(_ context.Context, _ *wave.Wave) error { return nil }

func stubEntry(name string) Entry {
	return Entry{
		Name:    name,
		Version: "1.0.0",
		New:     func() wave.Node { return stubNode{} },
	}
}

func TestCatalogRegisterAndLookup(t *testing.T) {
	c := New()
	if err := c.Register(stubEntry("HTTP GET")); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if c.Size() != 1 {
		t.Fatalf("expected 1 entry, got %d", c.Size())
	}

	e, ok := c.Lookup("http get")
	if !ok {
		t.Fatalf("lookup should be case-insensitive")
	}
	if e.Name != "HTTP GET" {
		t.Fatalf("unexpected entry name %q", e.Name)
	}
}

func TestCatalogRejectsDuplicates(t *testing.T) {
	c := New()
	if err := c.Register(stubEntry("HTTP GET")); err != nil {
		t.Fatalf("Register: %v", err)
	}
	err := c.Register(stubEntry("http get"))
	if err == nil {
		t.Fatalf("expected duplicate registration error")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestCatalogRejectsIncompleteEntries(t *testing.T) {
	c := New()
	if err := c.Register(Entry{Version: "1.0.0"}); err == nil {
		t.Fatalf("expected error for entry without name")
	}
	if err := c.Register(Entry{Name: "x", New: func() wave.Node { return stubNode{} }}); err == nil {
		t.Fatalf("expected error for entry without version")
	}
	if err := c.Register(Entry{Name: "x", Version: "1.0.0"}); err == nil {
		t.Fatalf("expected error for entry without factory")
	}
}

func TestCatalogEntriesReturnsCopy(t *testing.T) {
	c := New()
	if err := c.Register(stubEntry("HTTP GET")); err != nil {
		t.Fatalf("Register: %v", err)
	}

	entries := c.Entries()
	entries[0].Name = "mutated"

	e, ok := c.Lookup("HTTP GET")
	if !ok || e.Name != "HTTP GET" {
		t.Fatalf("Entries must return a copy, internal state was mutated")
	}
}

func TestManifestCarriesPorts(t *testing.T) {
	c := New()
	if err := c.Register(stubEntry("HTTP GET")); err != nil {
		t.Fatalf("Register: %v", err)
	}

	m := c.Manifest()
	if m.SchemaVersion != wave.SchemaVersion {
		t.Fatalf("unexpected schema version %d", m.SchemaVersion)
	}
	if len(m.Nodes) != 1 {
		t.Fatalf("expected 1 node, got %d", len(m.Nodes))
	}
	node := m.Nodes[0]
	if node.Version != "1.0.0" {
		t.Fatalf("unexpected version %q", node.Version)
	}
	if len(node.Inputs) != 1 || node.Inputs[0].Name != "Host" {
		t.Fatalf("manifest must carry declared inputs, got %+v", node.Inputs)
	}
	if len(node.Outputs) != 1 || node.Outputs[0].Name != "Execution" {
		t.Fatalf("manifest must carry declared outputs, got %+v", node.Outputs)
	}
}

func TestManifestEncodings(t *testing.T) {
	c := New()
	if err := c.Register(stubEntry("HTTP GET")); err != nil {
		t.Fatalf("Register: %v", err)
	}
	m := c.Manifest()

	yamlOut, err := m.YAML()
	if err != nil {
		t.Fatalf("YAML: %v", err)
	}
	if !strings.Contains(string(yamlOut), "HTTP GET") {
		t.Fatalf("yaml manifest missing node name: %s", yamlOut)
	}

	jsonOut, err := m.JSON()
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	if !strings.Contains(string(jsonOut), "schema_version") {
		t.Fatalf("json manifest missing schema version: %s", jsonOut)
	}
}
