package wave

import (
	"strings"
	"sync"
)

// Outputs collects the values a node reports back to the host during one
// execution.
type Outputs struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewOutputs returns an empty output sink.
func NewOutputs() *Outputs {
	return &Outputs{values: make(map[string]any)}
}

// Set records the value for the named output, replacing any previous value.
func (out *Outputs) Set(name string, value any) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}

	out.mu.Lock()
	out.values[name] = value
	out.mu.Unlock()
}

// Value returns the recorded value for the named output.
func (out *Outputs) Value(name string) (any, bool) {
	out.mu.RLock()
	defer out.mu.RUnlock()

	v, ok := out.values[strings.TrimSpace(name)]
	return v, ok
}

// Values returns a copy of all recorded outputs.
func (out *Outputs) Values() map[string]any {
	out.mu.RLock()
	defer out.mu.RUnlock()

	cp := make(map[string]any, len(out.values))
	for k, v := range out.values {
		cp[k] = v
	}
	return cp
}

// Size returns the number of recorded outputs.
func (out *Outputs) Size() int {
	out.mu.RLock()
	defer out.mu.RUnlock()
	return len(out.values)
}
