// SPDX-License-Identifier: MIT

package matcache

// Test-Bridge (White-Box) for Panic Messages
//
// Purpose:
//   - Expose the stable panic messages to matcache_test ONLY, without
//     widening the prod API.
//
// Build Policy:
//   - The _test.go suffix keeps this file out of production builds; being in
//     package matcache, it can still reach private symbols.
//
// AI-Hints:
//   - Prefer keeping ALL test-only bridges co-located here to avoid clutter across files.

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicNilInvert_TestOnly = panicNilInvert
	PanicNilLogger_TestOnly = panicNilLogger
)
