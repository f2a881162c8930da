// Package registry collects the lane block backends compiled into the
// binary and picks one for the running CPU.
package registry

import (
	"cmp"
	"slices"
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// OpEntry is one backend for the lane block operations.
type OpEntry struct {
	Name      string
	SIMDLevel cpu.SIMDLevel
	Priority  int

	// Advance adds src to dst element-wise.
	Advance func(dst, src []float64)
}

// OpRegistry keeps entries ordered by descending priority.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
}

// Global receives the backends registered from init functions.
var Global = &OpRegistry{}

// Register adds entry.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	slices.SortStableFunc(r.entries, func(a, b OpEntry) int {
		return cmp.Compare(b.Priority, a.Priority)
	})
}

// Lookup returns the highest-priority entry that features can run, or nil.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if cpu.Supports(features, r.entries[i].SIMDLevel) {
			entry := r.entries[i]
			return &entry
		}
	}

	return nil
}
