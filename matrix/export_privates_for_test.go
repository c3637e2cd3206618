// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for Options Snapshot
//
// Purpose:
//   - Expose the internal options snapshot and stable panic messages to
//     matrix_test ONLY, without widening the prod API.
//
// Build Policy:
//   - The _test.go suffix keeps this file out of production builds; being in
//     package matrix, it can still reach private symbols.
//
// Provided Surface:
//   - OptionsSnapshot + GatherOptionsSnapshot_TestOnly: stable, read-only view
//     of internal Options for black-box tests.
//   - Panic message constants re-exported under *_TestOnly names.
//
// Behavior & Determinism:
//   - Pure struct copies; no side effects.
//
// Risks & Maintenance:
//   - Keep OptionsSnapshot in sync with internal Options fields. If Options
//     changes, update snapshotOf(...) accordingly (tests will catch drift).
//
// AI-Hints:
//   - Prefer keeping ALL test-only bridges co-located here to avoid clutter across files.

// Panic message exports to avoid "magic strings" in tests.
const PanicEpsilonInvalid_TestOnly = panicEpsilonInvalid

// OptionsSnapshot is a stable, test-facing copy of internal Options fields.
// Purpose:
//   - Allow matrix_test to assert defaults and "last writer wins" semantics
//     without accessing unexported fields directly.
//
// Determinism:
//   - Pure struct copy; no side effects.
type OptionsSnapshot struct {
	Eps            float64
	ValidateNaNInf bool
}

// GatherOptionsSnapshot_TestOnly returns a snapshot after internal resolution.
// Implementation:
//   - Stage 1: o := gatherOptions(opts...) // internal constructor
//   - Stage 2: snapshotOf(o)
//
// Notes:
//   - Keep this wrapper in sync if the internal resolution pipeline changes.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return snapshotOf(o)
}

// snapshotOf copies internal fields to a public struct. Keep in sync with Options layout.
// Behavior highlights:
//   - No allocations besides the snapshot value itself.
func snapshotOf(o Options) OptionsSnapshot {
	return OptionsSnapshot{
		Eps:            o.eps,
		ValidateNaNInf: o.validateNaNInf,
	}
}
