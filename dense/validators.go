// SPDX-License-Identifier: MIT
// Package dense: centralized validation helpers.
//
// Purpose:
//   - Provide a single, canonical source of truth for common checks.
//   - Keep kernels/facades minimal by delegating nil/shape/finite checks here.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap
//     uniformly with opErrorf.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.

package dense

import (
	"fmt"
	"math"
)

// opErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil; wrapping a nil cause produces a non-nil error.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// checkFinite rejects NaN and ±Inf values under the finite-only policy.
// Returns ErrNaNInf on violation; O(1).
func checkFinite(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrNaNInf
	}

	return nil
}

// checkSameShape ensures two shapes agree on rank and every dimension.
// Returns ErrShapeMismatch on violation; O(rank). Assumes non-nil operands.
func checkSameShape(a, b Shape) error {
	if !a.Equal(b) {
		return ErrShapeMismatch
	}

	return nil
}
