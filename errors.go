// SPDX-License-Identifier: MIT
// Package matcache: sentinel error set.
// This file defines ONLY package-level sentinel errors. Solve returns
// ErrNilHolder itself; every other failure surfaces unchanged from the
// injected inversion capability, so callers match capability errors (such as
// matrix.ErrSingular) directly via errors.Is.

package matcache

import "errors"

// ErrNilHolder indicates that Solve received a nil *CachedMatrix.
// It is the only error this package produces on its own.
var ErrNilHolder = errors.New("matcache: nil holder")
