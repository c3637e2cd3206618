// Package matcache_test exercises the option constructors, the documented
// defaults and the two-layer resolution (holder baseline, per-call override).
package matcache_test

import (
	"testing"

	"github.com/katalvlaran/matcache"
	"github.com/katalvlaran/matcache/matrix"
)

// TestDefaultInvert_Delegates confirms the default capability is a plain
// adapter over matrix.Inverse: same result on success, same sentinel on
// failure.
func TestDefaultInvert_Delegates(t *testing.T) {
	m := invertible3x3(t)

	got, err := matcache.DefaultInvert(m)
	if err != nil {
		t.Fatalf("DefaultInvert: %v", err)
	}
	want, err := matrix.Inverse(m)
	if err != nil {
		t.Fatalf("Inverse: %v", err)
	}
	mustClose(t, got, want)

	singular := mustDenseFromRows(t, [][]float64{{1, 2}, {2, 4}})
	if _, err = matcache.DefaultInvert(singular); err == nil {
		t.Fatal("DefaultInvert(singular): nil error; want ErrSingular")
	}
}

// TestOptions_HolderBaselinePersists confirms options given to New outlive
// matrix epochs: the injected capability serves every miss until replaced.
func TestOptions_HolderBaselinePersists(t *testing.T) {
	calls := 0
	holder := matcache.New(invertible3x3(t), matcache.WithInvert(countingInvert(&calls)))

	if _, err := matcache.Solve(holder); err != nil {
		t.Fatalf("Solve #1: %v", err)
	}
	holder.SetMatrix(diagonal3x3(t))
	if _, err := matcache.Solve(holder); err != nil {
		t.Fatalf("Solve #2: %v", err)
	}

	if calls != 2 {
		t.Fatalf("capability calls = %d; want 2 (one per epoch)", calls)
	}
}

// TestPanics_WithInvert_Message pins the stable panic text for a nil
// capability.
func TestPanics_WithInvert_Message(t *testing.T) {
	expectPanicMessage(t, matcache.PanicNilInvert_TestOnly, func() {
		_ = matcache.WithInvert(nil)
	})
}

// TestPanics_WithLogger_Message pins the stable panic text for a nil logger.
func TestPanics_WithLogger_Message(t *testing.T) {
	expectPanicMessage(t, matcache.PanicNilLogger_TestOnly, func() {
		_ = matcache.WithLogger(nil)
	})
}
