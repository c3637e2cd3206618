// SPDX-License-Identifier: MIT
// Package matcache: Solve orchestration
//
// This file provides the caching accessor around the holder defined in
// types.go. Solve owns the read-check-compute-store sequence; the holder
// stays a passive pair of slots.

package matcache

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/matcache/matrix"
)

// Debug event messages emitted by Solve.
const (
	msgCacheHit   = "inverse cache hit"
	msgCacheMiss  = "inverse cache miss; computing"
	msgCacheStore = "inverse cached"
)

// Solve returns the inverse of the matrix held by c, computing it at most
// once per matrix epoch.
//
// Implementation:
//   - Stage 1: reject a nil holder with ErrNilHolder.
//   - Stage 2: resolve effective options for this call (defaults → holder
//     options → per-call options, last-writer-wins; the holder keeps its own
//     baseline untouched).
//   - Stage 3: read the cached inverse. Present → return it immediately; the
//     inversion capability is NOT called.
//   - Stage 4: absent → invert(c.Matrix()). A failure propagates to the
//     caller unchanged (no wrapping, no retry, no fallback) and nothing is
//     cached, so a later call attempts inversion again.
//   - Stage 5: store the result via SetInverse and return it.
//
// Behavior highlights:
//   - At most one capability invocation per matrix epoch, across any number
//     of Solve calls, until SetMatrix starts a new epoch.
//   - Side effects: fills the holder's inverse slot on the first successful
//     call of an epoch; none on subsequent calls.
//   - Hit/miss/store events go to the configured logger at Debug level.
//
// Inputs:
//   - c: the holder; must be non-nil. Its matrix is handed to the capability
//     as stored, so shape and invertibility problems surface here.
//   - opts: optional per-call overrides (WithInvert, WithLogger).
//
// Returns:
//   - matrix.Matrix: the cached or freshly computed inverse.
//   - error: ErrNilHolder, or whatever the inversion capability returned.
//
// Errors:
//   - ErrNilHolder — c is nil.
//   - Capability errors (e.g. matrix.ErrSingular, matrix.ErrDimensionMismatch
//     from DefaultInvert) — returned as produced; match with errors.Is.
//
// Determinism:
//   - For a fixed holder state and capability, results are stable; the cached
//     value is returned by reference on every hit.
//
// Complexity:
//   - Hit: O(1) plus logging. Miss: the capability's cost (O(n³) for
//     DefaultInvert) plus O(1) bookkeeping.
//
// AI-Hints:
//   - Inject a counting InvertFunc via WithInvert to verify the at-most-once
//     contract in tests.
//   - A per-call WithInvert override applies to that call only; fix a
//     capability for the holder's lifetime by passing it to New instead.
func Solve(c *CachedMatrix, opts ...Option) (matrix.Matrix, error) {
	// Reject the only input this layer validates itself.
	if c == nil {
		return nil, ErrNilHolder
	}

	// Resolve options for this call on top of the holder baseline.
	o := gatherOptions(c.opts, opts...)

	// Cached path: return without touching the capability.
	if inv, ok := c.Inverse(); ok {
		logMatrixEvent(o.logger, msgCacheHit, c.Matrix())

		return inv, nil
	}

	// Miss: delegate to the capability. Errors pass through unchanged and
	// leave the slot empty.
	logMatrixEvent(o.logger, msgCacheMiss, c.Matrix())
	inv, err := o.invert(c.Matrix())
	if err != nil {
		return nil, err
	}

	// Store for the remainder of this matrix epoch.
	c.SetInverse(inv)
	logMatrixEvent(o.logger, msgCacheStore, c.Matrix())

	return inv, nil
}

// logMatrixEvent emits msg at Debug level with the dims and content
// fingerprint of m. The Check gate skips field construction entirely when
// the sink does not enable Debug, so the default no-op logger costs nothing
// beyond the gate itself.
func logMatrixEvent(l *zap.Logger, msg string, m matrix.Matrix) {
	ce := l.Check(zap.DebugLevel, msg)
	if ce == nil {
		return
	}
	ce.Write(matrixFields(m)...)
}

// matrixFields builds the structured payload for a matrix event. A nil
// matrix yields a single no-op field; a fingerprint failure drops only the
// fingerprint field.
func matrixFields(m matrix.Matrix) []zap.Field {
	if m == nil {
		return []zap.Field{zap.Skip()}
	}
	fields := []zap.Field{
		zap.Int("rows", m.Rows()),
		zap.Int("cols", m.Cols()),
	}
	if fp, err := matrix.Fingerprint(m); err == nil {
		fields = append(fields, zap.Uint64("fingerprint", fp))
	}

	return fields
}
