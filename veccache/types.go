// SPDX-License-Identifier: MIT
// Package veccache: holder type, constructor and methods.
//
// CachedVector mirrors the root CachedMatrix holder in one dimension. The
// copy-at-boundary rule is local to this package: a []float64 is a shared
// reference in caller hands, so New, SetVector and Vector all copy, keeping
// the cached statistic coherent with the held data.

package veccache

// StatFunc is the statistic capability Mean delegates to.
//
// Contract: reduce xs to a single float64 or fail. The slice handed to a
// StatFunc is a private copy; mutating it cannot affect the holder.
// Implementations needing extra parameters capture them in a closure.
type StatFunc func(xs []float64) (float64, error)

// CachedVector pairs a vector with an optional cached statistic.
//
// The holder assumes exclusive, non-concurrent ownership by a single caller;
// no locking discipline is provided. Content is never validated: an empty
// vector is accepted and only fails later, inside the statistic capability.
type CachedVector struct {
	xs   []float64 // current vector epoch (private copy)
	stat float64   // cached statistic value; meaningful only when ok
	ok   bool      // presence flag for stat
	opts Options   // resolved holder-level options (defaults + New options)
}

// New constructs a CachedVector holding a copy of xs with no cached
// statistic. Options supplied here become the holder-level baseline; Mean
// may override them per call.
// Complexity: O(n) for the copy.
func New(xs []float64, opts ...Option) *CachedVector {
	return &CachedVector{
		xs:   append([]float64(nil), xs...),
		opts: gatherOptions(defaultOptions(), opts...),
	}
}

// SetVector replaces the held vector with a copy of xs and unconditionally
// clears the cached statistic, starting a new vector epoch. The clear
// happens even when xs is element-for-element identical to the current
// vector. No return value, no validation.
// Complexity: O(n) for the copy.
func (c *CachedVector) SetVector(xs []float64) {
	c.xs = append([]float64(nil), xs...)
	c.stat, c.ok = 0, false // same-operation clear; no stale-statistic window
}

// Vector returns a copy of the held vector. The holder's own slice never
// escapes, so no caller can mutate the current epoch from outside.
// Complexity: O(n).
func (c *CachedVector) Vector() []float64 {
	return append([]float64(nil), c.xs...)
}

// SetStat stores v as the cached statistic, overwriting any previous value.
// Consistency with the held vector is NOT checked: the trusted caller is the
// Mean orchestrator. The only way to clear the slot is SetVector.
// Complexity: O(1).
func (c *CachedVector) SetStat(v float64) {
	c.stat, c.ok = v, true
}

// Stat returns the cached statistic and true when present, or (0, false)
// when absent. Reads are idempotent.
// Complexity: O(1).
func (c *CachedVector) Stat() (float64, bool) {
	if !c.ok {
		return 0, false
	}

	return c.stat, true
}
