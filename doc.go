// Package matcache memoizes matrix inversion: wrap a matrix in a small
// stateful holder, ask for its inverse through a caching accessor, and
// repeated requests on an unchanged matrix reuse the stored result instead
// of recomputing it.
//
// 🚀 What is matcache?
//
//	A compact caching layer over dense linear algebra that brings together:
//		• CachedMatrix: one matrix paired with at most one cached inverse
//		• Solve: the caching accessor — compute once, then reuse until reset
//		• Injectable inversion: swap the algorithm (or count calls) per holder or per call
//		• Structured logging: zap Debug events for every hit, miss and store
//
// ✨ Why choose matcache?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Honest contracts – at most one inversion per matrix epoch, documented and tested
//   - Single-owner model – no locks, no globals; the holder belongs to its caller
//   - Extensible – inject any InvertFunc; the default delegates to matrix.Inverse
//
// Under the hood, everything is organized under two subpackages:
//
//	matrix/   — Dense storage, Mul/LU/Inverse/AllClose kernels, fingerprinting
//	veccache/ — the same holder pattern for vector statistics (cached mean)
//
// Quick example:
//
//	m, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
//	holder := matcache.New(m)
//	inv, err := matcache.Solve(holder) // computes 2×2 inverse
//	inv, err = matcache.Solve(holder)  // cache hit, no computation
//	holder.SetMatrix(m2)               // new epoch, cache cleared
//
// Replacing the matrix through SetMatrix clears the cached inverse in the
// same operation, so a stale inverse can never be observed.
//
//	go get github.com/katalvlaran/matcache
package matcache
