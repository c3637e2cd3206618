// SPDX-License-Identifier: MIT
// Package matrix: structural fingerprinting for logging and cache keys.
//
// Purpose:
//   - Provide a cheap, deterministic digest of a matrix (shape + contents)
//     so callers can tag log lines and cache entries without dumping data.
//
// Notes:
//   - The digest is NOT cryptographic; use it for identity hints, never for
//     integrity or security decisions.

package matrix

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// opFingerprint tags errors raised while hashing a matrix.
const opFingerprint = "Fingerprint"

// Fingerprint returns a 64-bit xxHash digest over the matrix shape and its
// values in row-major order.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m); seed the digest with rows and cols.
//   - Stage 2: stream math.Float64bits of every element in fixed i→j order.
//     Dense fast-path walks the flat buffer; fallback reads via At.
//
// Behavior highlights:
//   - Deterministic: equal shape and equal bit patterns yield equal digests.
//   - Distinguishes 2×3 from 3×2 even when the flat values coincide, because
//     the dimensions are hashed ahead of the data.
//   - -0 and +0 hash differently (distinct bit patterns); NaNs hash by their
//     exact payload. Callers wanting value-level equality should compare via
//     AllClose instead.
//
// Inputs:
//   - m: non-nil matrix.
//
// Returns:
//   - uint64: digest of shape and contents.
//   - error : validation/read failures wrapped with opFingerprint.
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil).
//   - Propagated At errors from misbehaving Matrix implementations.
//
// Determinism:
//   - Fixed field order (rows, cols, data) and fixed little-endian encoding.
//
// Complexity:
//   - Time O(r*c), Space O(1).
//
// AI-Hints:
//   - Cache the digest alongside derived results; recompute only after mutation.
func Fingerprint(m Matrix) (uint64, error) {
	// Guard nil before touching the digest.
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opFingerprint, err)
	}

	var (
		d   = xxhash.New() // streaming digest; Write never fails
		buf [8]byte        // scratch for one little-endian word
	)
	// Seed with the shape so transposed layouts of the same data differ.
	binary.LittleEndian.PutUint64(buf[:], uint64(m.Rows()))
	_, _ = d.Write(buf[:])
	binary.LittleEndian.PutUint64(buf[:], uint64(m.Cols()))
	_, _ = d.Write(buf[:])

	// Dense fast-path: hash the flat buffer directly.
	if dm, ok := m.(*Dense); ok {
		for _, v := range dm.data {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
			_, _ = d.Write(buf[:])
		}

		return d.Sum64(), nil
	}

	// Generic fallback via At (fixed i→j order).
	var (
		i, j int // loop iterators
		v    float64
		err  error
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, err = m.At(i, j)
			if err != nil {
				return 0, matrixErrorf(opFingerprint, err)
			}
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
			_, _ = d.Write(buf[:])
		}
	}

	return d.Sum64(), nil
}
