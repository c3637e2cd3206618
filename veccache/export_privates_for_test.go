// SPDX-License-Identifier: MIT

package veccache

// Test-Bridge (White-Box) for Panic Messages
//
// Purpose:
//   - Expose the stable panic messages to veccache_test ONLY, without
//     widening the prod API.
//
// Build Policy:
//   - The _test.go suffix keeps this file out of production builds; being in
//     package veccache, it can still reach private symbols.

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicNilStat_TestOnly   = panicNilStat
	PanicNilLogger_TestOnly = panicNilLogger
)
