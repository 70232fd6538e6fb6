package catalog

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/wavekit/wave-nodes-http/pkg/wave"
)

// Manifest is the serializable catalog listing handed to the host loader.
type Manifest struct {
	SchemaVersion int            `json:"schema_version" yaml:"schema_version"`
	Nodes         []NodeManifest `json:"nodes" yaml:"nodes"`
}

// NodeManifest carries one node's registration data plus its declared ports.
type NodeManifest struct {
	Name        string        `json:"name" yaml:"name"`
	Description string        `json:"description,omitempty" yaml:"description,omitempty"`
	Icon        string        `json:"icon,omitempty" yaml:"icon,omitempty"`
	Version     string        `json:"version" yaml:"version"`
	Inputs      []wave.Input  `json:"inputs" yaml:"inputs"`
	Outputs     []wave.Output `json:"outputs" yaml:"outputs"`
}

// Manifest renders the catalog with each node's spec expanded.
func (c *Catalog) Manifest() Manifest {
	entries := c.Entries()
	nodes := make([]NodeManifest, 0, len(entries))
	for _, e := range entries {
		spec := e.New().Spec()
		nodes = append(nodes, NodeManifest{
			Name:        e.Name,
			Description: e.Description,
			Icon:        e.Icon,
			Version:     e.Version,
			Inputs:      spec.Inputs,
			Outputs:     spec.Outputs,
		})
	}
	return Manifest{SchemaVersion: wave.SchemaVersion, Nodes: nodes}
}

// YAML encodes the manifest as YAML.
func (m Manifest) YAML() ([]byte, error) {
	out, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode manifest yaml: %w", err)
	}
	return out, nil
}

// JSON encodes the manifest as indented JSON.
func (m Manifest) JSON() ([]byte, error) {
	out, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode manifest json: %w", err)
	}
	return out, nil
}
