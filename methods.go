// SPDX-License-Identifier: MIT
// Package matcache: CachedMatrix method implementations
//
// This file provides the four holder operations on the CachedMatrix type
// defined in types.go. All of them are O(1) field reads/writes; none of them
// validates its argument. The single invariant lives in SetMatrix: replacing
// the matrix and clearing the cached inverse happen in the same operation, so
// no state ever pairs a matrix with a stale inverse.

package matcache

import "github.com/katalvlaran/matcache/matrix"

// SetMatrix replaces the stored matrix with m and unconditionally clears the
// cached inverse, starting a new matrix epoch.
//
// The clear happens even when m is the same value or pointer as the current
// matrix: the holder does not inspect matrix content, so any SetMatrix call
// forces recomputation on the next Solve. m is not validated.
// Complexity: O(1).
func (c *CachedMatrix) SetMatrix(m matrix.Matrix) {
	c.mat = m
	c.inv = nil // same-operation clear; no stale-inverse window
}

// Matrix returns the currently stored matrix unchanged (same reference,
// never a copy). No side effects.
// Complexity: O(1).
func (c *CachedMatrix) Matrix() matrix.Matrix {
	return c.mat
}

// SetInverse stores inv as the cached inverse, overwriting any previous
// value. Passing nil clears the slot (nil is the absent marker).
//
// Consistency with the current matrix is NOT checked: the trusted caller is
// the Solve orchestrator, which only stores what the inversion capability
// just produced.
// Complexity: O(1).
func (c *CachedMatrix) SetInverse(inv matrix.Matrix) {
	c.inv = inv
}

// Inverse returns the cached inverse and true when present, or (nil, false)
// when absent. Reads are idempotent: no mutation, repeated calls return the
// same value until SetInverse or SetMatrix intervenes.
// Complexity: O(1).
func (c *CachedMatrix) Inverse() (matrix.Matrix, bool) {
	if c.inv == nil {
		return nil, false
	}

	return c.inv, true
}
