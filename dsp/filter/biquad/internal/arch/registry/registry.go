// Package registry holds the block kernels that run one biquad section over
// a buffer, keyed by the SIMD level they need.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// Coefficients are biquad transfer coefficients (a0 normalized to 1).
type Coefficients struct {
	B0, B1, B2 float64
	A1, A2     float64
}

// State is the register file of one section. Each realization form uses
// the leading registers it needs.
type State [4]float64

// BlockFn processes buf in place with one section, updating st.
type BlockFn func(c Coefficients, st *State, buf []float64)

// Kernels groups the block functions of one backend, one per realization
// form. A nil field means the backend has no specialized version and a
// lower-priority entry is used instead.
type Kernels struct {
	DirectFormI            BlockFn
	DirectFormII           BlockFn
	TransposedDirectFormII BlockFn
}

// OpEntry is one registered kernel backend.
type OpEntry struct {
	Name      string
	SIMDLevel cpu.SIMDLevel
	Priority  int
	Kernels   Kernels
}

// Selection is the resolved kernel set with the backend name per form.
type Selection struct {
	Kernels Kernels
	Names   [3]string
}

// OpRegistry stores available implementations.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the default biquad kernel registry.
var Global = &OpRegistry{}

// Register adds an implementation entry.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority backend supported by features.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// Resolve picks, for every form, the highest-priority supported backend
// that provides a kernel for it. ok is false when some form has none.
func (r *OpRegistry) Resolve(features cpu.Features) (sel Selection, ok bool) {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if !cpu.Supports(features, entry.SIMDLevel) {
			continue
		}

		if sel.Kernels.DirectFormI == nil && entry.Kernels.DirectFormI != nil {
			sel.Kernels.DirectFormI = entry.Kernels.DirectFormI
			sel.Names[0] = entry.Name
		}

		if sel.Kernels.DirectFormII == nil && entry.Kernels.DirectFormII != nil {
			sel.Kernels.DirectFormII = entry.Kernels.DirectFormII
			sel.Names[1] = entry.Name
		}

		if sel.Kernels.TransposedDirectFormII == nil && entry.Kernels.TransposedDirectFormII != nil {
			sel.Kernels.TransposedDirectFormII = entry.Kernels.TransposedDirectFormII
			sel.Names[2] = entry.Name
		}
	}

	ok = sel.Kernels.DirectFormI != nil &&
		sel.Kernels.DirectFormII != nil &&
		sel.Kernels.TransposedDirectFormII != nil

	return sel, ok
}

func (r *OpRegistry) ensureSorted() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
}

func (r *OpRegistry) sortByPriority() {
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of entries for tests/debugging.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all entries. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
