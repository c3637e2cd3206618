// SPDX-License-Identifier: MIT

// Package matcache: functional configuration for the caching orchestrator.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - DefaultInvert (the default inversion capability),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves a base layer plus setters.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Two resolution layers: New fixes the holder baseline (defaults + New
//     options), Solve resolves per call on top of that baseline. A per-call
//     override applies to that call only and never mutates the holder.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matcache

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/matcache/matrix"
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNilInvert = "matcache: WithInvert: fn must be non-nil"
	panicNilLogger = "matcache: WithLogger: logger must be non-nil"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is intentionally unexported to prevent external mutation; public entry
// points accept `...Option` and internally resolve them via gatherOptions.
type Options struct {
	invert InvertFunc  // inversion capability; DefaultInvert
	logger *zap.Logger // structured logging sink; zap.NewNop()
}

// DefaultInvert is the default inversion capability: it delegates to
// matrix.Inverse with that package's documented defaults. Supply a different
// InvertFunc via WithInvert to change the algorithm, capture tolerances, or
// count invocations in tests.
func DefaultInvert(m matrix.Matrix) (matrix.Matrix, error) {
	return matrix.Inverse(m)
}

// ---------- Constructors (WithX) ----------

// WithInvert injects the inversion capability used on a cache miss.
// Implementation:
//   - Stage 1: validate fn is non-nil.
//   - Stage 2: return a setter that writes fn into Options.
//
// Behavior highlights:
//   - At New, fixes the holder's capability; at Solve, overrides it for that
//     single call.
//
// Inputs:
//   - fn: non-nil InvertFunc.
//
// Errors:
//   - Panics with a stable message when fn is nil.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Extra parameters of the underlying routine belong in fn's closure.
func WithInvert(fn InvertFunc) Option {
	if fn == nil {
		panic(panicNilInvert)
	}

	// Assign validated capability
	return func(o *Options) { o.invert = fn }
}

// WithLogger injects the zap logger receiving cache hit/miss/store events at
// Debug level.
// Implementation:
//   - Stage 1: validate l is non-nil.
//   - Stage 2: return a setter that writes l into Options.
//
// Behavior highlights:
//   - The default sink is zap.NewNop(), so unconfigured holders stay silent.
//   - Expensive log fields (content fingerprints) are computed only when the
//     sink enables the Debug level.
//
// Errors:
//   - Panics with a stable message when l is nil.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	// Assign validated sink
	return func(o *Options) { o.logger = l }
}

// --------------------------- Option Resolution ---------------------------

// defaultOptions returns the documented package defaults (single source of
// truth): DefaultInvert as the capability, a no-op logger as the sink.
func defaultOptions() Options {
	return Options{
		invert: DefaultInvert,
		logger: zap.NewNop(),
	}
}

// gatherOptions applies user-provided Option setters on top of a base layer.
// Implementation:
//   - Stage 1: copy base (New passes defaultOptions(); Solve passes the
//     holder's resolved baseline).
//   - Stage 2: apply setters in order (last-writer-wins).
//
// Behavior highlights:
//   - Resolution order is therefore defaults → holder options → per-call
//     options, with later layers winning.
//   - base is copied by value, so a per-call resolution never writes back
//     into the holder.
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(user).
func gatherOptions(base Options, user ...Option) Options {
	o := base
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
