// SPDX-License-Identifier: MIT
// Package matcache: holder type and constructor.
//
// This file declares InvertFunc, the CachedMatrix holder, and the New
// constructor. The holder pairs one matrix with at most one cached inverse;
// mutation goes through the methods in methods.go, orchestration through
// Solve in solve.go.

package matcache

import (
	"github.com/katalvlaran/matcache/matrix"
)

// InvertFunc is the inversion capability Solve delegates to.
//
// Contract: given a square matrix, return a freshly allocated matrix of the
// same dimensions representing its inverse, or an error (singular input,
// shape violation). Implementations needing extra parameters (tolerances,
// solver knobs) capture them in a closure over this signature.
type InvertFunc func(m matrix.Matrix) (matrix.Matrix, error)

// CachedMatrix pairs a matrix value with an optional cached inverse.
//
// The holder assumes exclusive, non-concurrent ownership by a single caller;
// no locking discipline is provided. The matrix itself is never validated
// here: nil, rectangular or singular inputs are accepted and surface later
// from the inversion capability.
//
// State per matrix epoch: "inverse absent" after New/SetMatrix, "inverse
// present" after the first successful Solve (or an explicit SetInverse).
type CachedMatrix struct {
	mat  matrix.Matrix // current matrix epoch
	inv  matrix.Matrix // cached inverse; nil means absent
	opts Options       // resolved holder-level options (defaults + New options)
}

// New constructs a CachedMatrix holding m with no cached inverse.
//
// m is stored as given: no shape check, no invertibility check, no copy
// (exclusive ownership is the documented model). Options supplied here
// become the holder-level baseline; Solve may override them per call.
// Complexity: O(1).
func New(m matrix.Matrix, opts ...Option) *CachedMatrix {
	return &CachedMatrix{
		mat:  m,
		opts: gatherOptions(defaultOptions(), opts...),
	}
}
