// Package wave carries the typed contract between workflow nodes and the host.
package wave

import (
	"context"
	"strings"
)

// SchemaVersion is the host contract revision this package targets.
const SchemaVersion = 1

// Type enumerates the value types the host exchanges with nodes.
type Type string

const (
	TypeString  Type = "STRING"
	TypeNumber  Type = "NUMBER"
	TypeBoolean Type = "BOOLEAN"
	TypeJSON    Type = "JSON"
)

// Input declares one named input a node accepts from the host.
type Input struct {
	Name        string `json:"name" yaml:"name"`
	Type        Type   `json:"type" yaml:"type"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Example     any    `json:"example,omitempty" yaml:"example,omitempty"`
	Default     any    `json:"default,omitempty" yaml:"default,omitempty"`
	Mandatory   bool   `json:"mandatory" yaml:"mandatory"`
}

// Output declares one named output a node reports back to the host.
type Output struct {
	Name        string `json:"name" yaml:"name"`
	Type        Type   `json:"type" yaml:"type"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Example     any    `json:"example,omitempty" yaml:"example,omitempty"`
}

// Spec is the full typed surface a node exposes to the host loader.
type Spec struct {
	SchemaVersion int      `json:"schema_version" yaml:"schema_version"`
	Inputs        []Input  `json:"inputs" yaml:"inputs"`
	Outputs       []Output `json:"outputs" yaml:"outputs"`
}

// InputByName returns the declared input with the given name.
func (s Spec) InputByName(name string) (Input, bool) {
	name = strings.TrimSpace(name)
	for _, in := range s.Inputs {
		if in.Name == name {
			return in, true
		}
	}
	return Input{}, false
}

// OutputByName returns the declared output with the given name.
func (s Spec) OutputByName(name string) (Output, bool) {
	name = strings.TrimSpace(name)
	for _, out := range s.Outputs {
		if out.Name == name {
			return out, true
		}
	}
	return Output{}, false
}

// Node is a single executable unit of work offered to the workflow host.
type Node interface {
	Spec() Spec
	Execute(ctx context.Context, w *Wave) error
}

// Wave is the per-execution context the host hands to a node: the resolved
// input values on one side, the output sink on the other.
type Wave struct {
	Inputs  *Inputs
	Outputs *Outputs
}

// New builds an execution context for the given spec and host-supplied values.
func New(spec Spec, values map[string]any) *Wave {
	return &Wave{
		Inputs:  NewInputs(spec, values),
		Outputs: NewOutputs(),
	}
}
