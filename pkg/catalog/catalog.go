// Package catalog registers workflow nodes for discovery by the host loader.
package catalog

import (
	"fmt"
	"strings"
	"sync"

	"github.com/wavekit/wave-nodes-http/pkg/wave"
)

// Entry describes one node offered to the host loader.
type Entry struct {
	Name        string
	Description string
	Icon        string
	Version     string
	New         func() wave.Node
}

// Catalog maps node names to their entries.
type Catalog struct {
	mu      sync.RWMutex
	entries []Entry
	idx     map[string]Entry
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{idx: make(map[string]Entry)}
}

// Register adds an entry to the catalog. Names are matched case-insensitively
// and duplicates are rejected.
func (c *Catalog) Register(e Entry) error {
	e.Name = strings.TrimSpace(e.Name)
	e.Version = strings.TrimSpace(e.Version)

	if e.Name == "" {
		return fmt.Errorf("catalog entry has no name")
	}
	if e.Version == "" {
		return fmt.Errorf("catalog entry %q has no version", e.Name)
	}
	if e.New == nil {
		return fmt.Errorf("catalog entry %q has no node factory", e.Name)
	}

	key := strings.ToLower(e.Name)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.idx[key]; exists {
		return fmt.Errorf("duplicate catalog entry %q", e.Name)
	}
	c.entries = append(c.entries, e)
	c.idx[key] = e
	return nil
}

// MustRegister adds an entry and panics on failure. Intended for hardwired
// registration tables where a failure is a programming error.
func (c *Catalog) MustRegister(e Entry) {
	if err := c.Register(e); err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
}

// Lookup returns the entry registered under the given name.
func (c *Catalog) Lookup(name string) (Entry, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Entry{}, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.idx[strings.ToLower(name)]
	return e, ok
}

// Entries returns a copy of all registered entries in registration order.
func (c *Catalog) Entries() []Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(c.entries) == 0 {
		return nil
	}
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Size returns the number of registered entries.
func (c *Catalog) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
