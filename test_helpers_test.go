// Package matcache_test provides shared fixtures and assertion helpers for
// the holder and Solve suites. Helpers accept testing.TB so the benchmarks
// can reuse them.
package matcache_test

import (
	"testing"

	"github.com/katalvlaran/matcache"
	"github.com/katalvlaran/matcache/matrix"
)

// mustDenseFromRows builds a Dense from row literals or aborts the test.
func mustDenseFromRows(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		tb.Fatalf("NewDenseFromRows: %v", err)
	}
	return m
}

// invertible3x3 is the specimen matrix for the caching scenarios. Its pivots
// (1, -27, -5) keep the non-pivoting factorization clear of the singularity
// guard.
func invertible3x3(tb testing.TB) *matrix.Dense {
	return mustDenseFromRows(tb, [][]float64{
		{1, 8, 9},
		{4, 5, 9},
		{2, 3, 0},
	})
}

// diagonal3x3 is a second invertible specimen for epoch-reset scenarios; its
// inverse is diag(0.5, 0.25, 0.2).
func diagonal3x3(tb testing.TB) *matrix.Dense {
	return mustDenseFromRows(tb, [][]float64{
		{2, 0, 0},
		{0, 4, 0},
		{0, 0, 5},
	})
}

// countingInvert wraps DefaultInvert with an invocation counter so tests can
// observe exactly how many times Solve reached the capability.
func countingInvert(calls *int) matcache.InvertFunc {
	return func(m matrix.Matrix) (matrix.Matrix, error) {
		*calls++
		return matcache.DefaultInvert(m)
	}
}

// mustClose asserts a ≈ b under the default tolerance.
func mustClose(tb testing.TB, a, b matrix.Matrix) {
	tb.Helper()
	ok, err := matrix.AllClose(a, b)
	if err != nil {
		tb.Fatalf("AllClose: %v", err)
	}
	if !ok {
		tb.Fatalf("matrices differ:\n%v\n%v", a, b)
	}
}

// expectPanicMessage runs fn and fails unless it panics with exactly want.
func expectPanicMessage(t *testing.T, want string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic %q, got nil", want)
		}
		msg, ok := r.(string)
		if !ok || msg != want {
			t.Fatalf("panic = %v; want %q", r, want)
		}
	}()
	fn()
}
