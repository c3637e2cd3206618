// Package matrix offers dense float64 matrices and the linear-algebra
// kernels used by the caching layers above it.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 implementation of the Matrix interface
//     with O(1) element access and O(rows·cols) memory.
//   - Constructors (NewDense, NewDenseFromRows, NewZeros, NewIdentity)
//     that validate shape up front so kernels may assume sane inputs.
//   - Linear-algebra kernels: Mul, LU (Doolittle, no pivoting),
//     Inverse (LU + per-column substitution) and AllClose.
//   - Fingerprint, a fast structural digest for logging and cache keys.
//
// Dense storage is best for small or dense problems where O(rows·cols)
// memory is acceptable; the inverse kernel targets well-conditioned
// square systems and reports ErrSingular otherwise.
//
// See the examples in this package and the root package for usage patterns.
package matrix
