// SPDX-License-Identifier: MIT
// Package veccache: Mean orchestration
//
// Mean owns the read-check-compute-store sequence around the CachedVector
// holder, exactly like the root package's Solve around CachedMatrix.

package veccache

import (
	"encoding/binary"
	"errors"
	"math"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"
)

// Debug event messages emitted by Mean.
const (
	msgStatHit   = "mean cache hit"
	msgStatMiss  = "mean cache miss; computing"
	msgStatStore = "mean cached"
)

var (
	// ErrNilHolder indicates that Mean received a nil *CachedVector.
	ErrNilHolder = errors.New("veccache: nil holder")

	// ErrEmptyVector is returned by ArithmeticMean when the input has no
	// elements (the mean of nothing is undefined).
	ErrEmptyVector = errors.New("veccache: empty vector")
)

// ArithmeticMean is the default statistic capability: Σxs / len(xs).
//
// Inputs: any float64 slice; values are not screened for NaN/Inf (they
// propagate through the sum as IEEE arithmetic dictates).
// Errors: ErrEmptyVector on empty input.
// Complexity: O(n).
func ArithmeticMean(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptyVector
	}

	var sum float64
	for _, v := range xs {
		sum += v
	}

	return sum / float64(len(xs)), nil
}

// Mean returns the statistic of the vector held by c, computing it at most
// once per vector epoch.
//
// Implementation:
//   - Stage 1: reject a nil holder with ErrNilHolder.
//   - Stage 2: resolve effective options (defaults → holder → per-call).
//   - Stage 3: cached value present → return it; the capability is NOT called.
//   - Stage 4: absent → apply the capability to a COPY of the held vector.
//     A failure propagates unchanged and caches nothing, so a later call
//     computes again.
//   - Stage 5: store via SetStat and return.
//
// Errors:
//   - ErrNilHolder — c is nil.
//   - Capability errors (e.g. ErrEmptyVector from ArithmeticMean) — returned
//     as produced; match with errors.Is.
//
// Complexity:
//   - Hit: O(1) plus logging. Miss: O(n) copy plus the capability's cost.
func Mean(c *CachedVector, opts ...Option) (float64, error) {
	// Reject the only input this layer validates itself.
	if c == nil {
		return 0, ErrNilHolder
	}

	// Resolve options for this call on top of the holder baseline.
	o := gatherOptions(c.opts, opts...)

	// Cached path: return without touching the capability.
	if v, ok := c.Stat(); ok {
		logVectorEvent(o.logger, msgStatHit, c.xs)

		return v, nil
	}

	// Miss: the capability gets its own copy, so it cannot mutate the epoch
	// it is measuring. Errors pass through unchanged and leave the slot empty.
	logVectorEvent(o.logger, msgStatMiss, c.xs)
	v, err := o.stat(c.Vector())
	if err != nil {
		return 0, err
	}

	// Store for the remainder of this vector epoch.
	c.SetStat(v)
	logVectorEvent(o.logger, msgStatStore, c.xs)

	return v, nil
}

// logVectorEvent emits msg at Debug level with the length and content
// fingerprint of xs. The Check gate skips field construction when the sink
// does not enable Debug.
func logVectorEvent(l *zap.Logger, msg string, xs []float64) {
	ce := l.Check(zap.DebugLevel, msg)
	if ce == nil {
		return
	}
	ce.Write(
		zap.Int("len", len(xs)),
		zap.Uint64("fingerprint", fingerprint(xs)),
	)
}

// fingerprint digests the length and element bit patterns (xxhash,
// little-endian, index order) so log lines identify a vector epoch by
// content. Equal length and content yield an equal fingerprint.
func fingerprint(xs []float64) uint64 {
	d := xxhash.New()

	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(len(xs)))
	_, _ = d.Write(buf[:]) // Write on xxhash never fails

	var bits uint64 // element bit pattern
	for _, v := range xs {
		bits = math.Float64bits(v)
		binary.LittleEndian.PutUint64(buf[:], bits)
		_, _ = d.Write(buf[:])
	}

	return d.Sum64()
}
