package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/wavekit/wave-nodes-http/pkg/catalog"
	"github.com/wavekit/wave-nodes-http/pkg/wave"
)

// stubNode echoes its host input and optionally fails after writing outputs.
type stubNode struct {
	err error
}

func (s *stubNode) Spec() wave.Spec {
	return wave.Spec{
		SchemaVersion: wave.SchemaVersion,
		Inputs: []wave.Input{
			{Name: "Host", Type: wave.TypeString, Mandatory: true},
			{Name: "Timeout", Type: wave.TypeNumber, Default: float64(60)},
		},
		Outputs: []wave.Output{
			{Name: "Echo", Type: wave.TypeString},
		},
	}
}

func (s *stubNode) Execute(_ context.Context, w *wave.Wave) error {
	host, err := w.Inputs.String("Host")
	if err != nil {
		return err
	}
	w.Outputs.Set("Echo", host)
	return s.err
}

func testCatalog(node wave.Node) *catalog.Catalog {
	c := catalog.New()
	c.MustRegister(catalog.Entry{
		Name:    "Echo",
		Version: "1.0.0",
		New:     func() wave.Node { return node },
	})
	return c
}

func TestRunnerRunSuccess(t *testing.T) {
	runner, err := NewRunner(testCatalog(&stubNode{}), nil)
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}

	result, err := runner.Run(context.Background(), "echo", map[string]any{"Host": "https://example.com"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if result.RunID == "" {
		t.Fatalf("expected a run id")
	}
	if result.Node != "Echo" {
		t.Fatalf("unexpected node name %q", result.Node)
	}
	if result.Outputs["Echo"] != "https://example.com" {
		t.Fatalf("outputs not propagated, got %v", result.Outputs)
	}
	if result.Elapsed < 0 {
		t.Fatalf("unexpected elapsed %v", result.Elapsed)
	}
}

func TestRunnerRejectsInvalidInputs(t *testing.T) {
	runner, err := NewRunner(testCatalog(&stubNode{}), nil)
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}

	result, err := runner.Run(context.Background(), "Echo", map[string]any{"Timeout": 5})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !strings.Contains(err.Error(), "Host") {
		t.Fatalf("error should name the missing input, got %v", err)
	}
	if result != nil {
		t.Fatalf("no result expected when validation fails")
	}
}

func TestRunnerUnknownNode(t *testing.T) {
	runner, err := NewRunner(testCatalog(&stubNode{}), nil)
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}

	if _, err := runner.Run(context.Background(), "missing", nil); err == nil {
		t.Fatalf("expected error for unknown node")
	}
}

func TestRunnerPreservesOutputsOnFailure(t *testing.T) {
	boom := errors.New("boom")
	runner, err := NewRunner(testCatalog(&stubNode{err: boom}), nil)
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}

	result, err := runner.Run(context.Background(), "Echo", map[string]any{"Host": "https://example.com"})
	if !errors.Is(err, boom) {
		t.Fatalf("expected node error to surface, got %v", err)
	}
	if result == nil {
		t.Fatalf("result must carry outputs written before the failure")
	}
	if result.Outputs["Echo"] != "https://example.com" {
		t.Fatalf("outputs lost on failure, got %v", result.Outputs)
	}
}

func TestNewRunnerRequiresCatalog(t *testing.T) {
	if _, err := NewRunner(nil, nil); err == nil {
		t.Fatalf("expected error for nil catalog")
	}
}
