// SPDX-License-Identifier: MIT
// Package veccache: functional configuration for the caching orchestrator.
// Same two-layer resolution as the root package: New fixes the holder
// baseline, Mean resolves per call on top of it, last-writer-wins.

package veccache

import "go.uber.org/zap"

// Internal panic messages (no magic strings).
const (
	panicNilStat   = "veccache: WithStatFunc: fn must be non-nil"
	panicNilLogger = "veccache: WithLogger: logger must be non-nil"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Unexported fields; public entry points accept `...Option`.
type Options struct {
	stat   StatFunc    // statistic capability; ArithmeticMean
	logger *zap.Logger // structured logging sink; zap.NewNop()
}

// WithStatFunc injects the statistic computed on a cache miss.
// Panics with a stable message when fn is nil (programmer error).
func WithStatFunc(fn StatFunc) Option {
	if fn == nil {
		panic(panicNilStat)
	}

	return func(o *Options) { o.stat = fn }
}

// WithLogger injects the zap logger receiving cache hit/miss/store events at
// Debug level. Panics with a stable message when l is nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// defaultOptions returns the documented package defaults: ArithmeticMean as
// the capability, a no-op logger as the sink.
func defaultOptions() Options {
	return Options{
		stat:   ArithmeticMean,
		logger: zap.NewNop(),
	}
}

// gatherOptions applies setters on top of a base layer (defaults for New,
// the holder baseline for Mean). base is copied by value, so per-call
// resolution never writes back into the holder.
func gatherOptions(base Options, user ...Option) Options {
	o := base
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
