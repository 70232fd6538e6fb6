package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wavekit/wave-nodes-http/internal/logger"
	"github.com/wavekit/wave-nodes-http/pkg/catalog"
	"github.com/wavekit/wave-nodes-http/pkg/wave"
)

// Runner executes catalog nodes on behalf of the developer harness. It owns
// the host-side control flow: look the node up, validate the inputs, build an
// execution context, run, and collect whatever the node reported.
type Runner struct {
	catalog *catalog.Catalog
	log     logger.Logger
}

// NewRunner builds a runner over the given catalog.
func NewRunner(cat *catalog.Catalog, log logger.Logger) (*Runner, error) {
	if cat == nil {
		return nil, fmt.Errorf("catalog must not be nil")
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Runner{catalog: cat, log: log}, nil
}

// RunResult captures a finished node execution.
type RunResult struct {
	RunID   string
	Node    string
	Outputs map[string]any
	Elapsed time.Duration
}

// Run executes the named node with the provided input values. Outputs written
// before a failure are preserved in the result alongside the error.
func (r *Runner) Run(ctx context.Context, nodeName string, values map[string]any) (*RunResult, error) {
	entry, ok := r.catalog.Lookup(nodeName)
	if !ok {
		return nil, fmt.Errorf("no node named %q in catalog", nodeName)
	}

	node := entry.New()
	spec := node.Spec()
	if err := wave.ValidateInputs(spec, values); err != nil {
		return nil, fmt.Errorf("node %q: %w", entry.Name, err)
	}

	runID := uuid.New().String()
	w := wave.New(spec, values)

	r.log.InfoObj("run started", "run_meta", map[string]any{
		"run_id":  runID,
		"node":    entry.Name,
		"version": entry.Version,
	})

	start := time.Now()
	err := node.Execute(ctx, w)
	result := &RunResult{
		RunID:   runID,
		Node:    entry.Name,
		Outputs: w.Outputs.Values(),
		Elapsed: time.Since(start),
	}

	if err != nil {
		r.log.ErrorObj("run failed", "run_meta", map[string]any{
			"run_id":     runID,
			"node":       entry.Name,
			"error":      err.Error(),
			"elapsed_ms": result.Elapsed.Milliseconds(),
		})
		return result, err
	}

	r.log.InfoObj("run completed", "run_meta", map[string]any{
		"run_id":     runID,
		"node":       entry.Name,
		"outputs":    len(result.Outputs),
		"elapsed_ms": result.Elapsed.Milliseconds(),
	})
	return result, nil
}
