// Package veccache memoizes a scalar statistic of a numeric vector: wrap the
// vector in a holder, request the statistic through a caching accessor, and
// repeated requests on an unchanged vector reuse the stored value.
//
// 🚀 What is veccache?
//
//	The one-dimensional sibling of the root matcache package.  The same
//	holder pattern applies:
//	  • CachedVector pairs one vector with at most one cached statistic
//	  • Mean computes on the first request, then serves the cached value
//	  • SetVector starts a new epoch and clears the statistic
//	  • the statistic itself is injectable (default: arithmetic mean)
//
// ✨ Key differences from the matrix holder:
//   - vectors are copied at every boundary (New, SetVector, Vector), so no
//     outside reference can silently invalidate the cached statistic
//   - the cached value is a plain float64 with an explicit presence flag
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/matcache/veccache"
//
//	holder := veccache.New([]float64{1, 2, 3, 4})
//
//	avg, err := veccache.Mean(holder) // computes 2.5
//	avg, err = veccache.Mean(holder)  // cache hit, no computation
//	holder.SetVector([]float64{5, 5}) // new epoch, statistic cleared
//
// Performance:
//
//   - Miss: O(n) for the default statistic
//   - Hit:  O(1)
//
// See examples in example_test.go.
package veccache
