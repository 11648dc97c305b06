// SPDX-License-Identifier: MIT
// Package dense: whole-matrix comparisons.
//
// Purpose:
//   - Reduced comparison operators: each reduces over every corresponding
//     element pair to ONE bool (policy: true iff the relation holds for all
//     pairs). Equal is exact per-element equality reduced the same way; the
//     "not equal" form is simply its negation at the call site.
//   - AllClose: |a-b| ≤ atol + rtol*|b| tolerance reduction for tests and
//     numeric code.
//
// Determinism & Performance:
//   - Single flat pass with early exit on the first violating pair.
//   - O(n) time, O(1) space, no allocations.

package dense

import "math"

// allPairs reports whether rel holds for every corresponding element pair.
// Assumes len(a) == len(b); early-exits on the first violation.
func allPairs(a, b []float64, rel func(x, y float64) bool) bool {
	for idx := range a {
		if !rel(a[idx], b[idx]) {
			return false
		}
	}

	return true
}

// NaN note: all relations below follow IEEE-754, so any NaN pair makes the
// relation false (including Equal — NaN != NaN).

// Equal reports whether every element of m exactly equals the matching
// element of b. ErrShapeMismatch when shapes differ, ErrNilMatrix on nil b.
func (m *Matrix2D) Equal(b *Matrix2D) (bool, error) {
	if b == nil {
		return false, opErrorf("Equal", ErrNilMatrix)
	}
	if err := checkSameShape(m.shape, b.shape); err != nil {
		return false, opErrorf("Equal", err)
	}

	return allPairs(m.data, b.data, func(x, y float64) bool { return x == y }), nil
}

// Less reports whether every element of m is strictly less than the
// matching element of b (whole-matrix reduction).
func (m *Matrix2D) Less(b *Matrix2D) (bool, error) {
	if b == nil {
		return false, opErrorf("Less", ErrNilMatrix)
	}
	if err := checkSameShape(m.shape, b.shape); err != nil {
		return false, opErrorf("Less", err)
	}

	return allPairs(m.data, b.data, func(x, y float64) bool { return x < y }), nil
}

// LessEq reports whether every element of m is ≤ the matching element of b.
func (m *Matrix2D) LessEq(b *Matrix2D) (bool, error) {
	if b == nil {
		return false, opErrorf("LessEq", ErrNilMatrix)
	}
	if err := checkSameShape(m.shape, b.shape); err != nil {
		return false, opErrorf("LessEq", err)
	}

	return allPairs(m.data, b.data, func(x, y float64) bool { return x <= y }), nil
}

// Greater reports whether every element of m is strictly greater than the
// matching element of b.
func (m *Matrix2D) Greater(b *Matrix2D) (bool, error) {
	if b == nil {
		return false, opErrorf("Greater", ErrNilMatrix)
	}
	if err := checkSameShape(m.shape, b.shape); err != nil {
		return false, opErrorf("Greater", err)
	}

	return allPairs(m.data, b.data, func(x, y float64) bool { return x > y }), nil
}

// GreaterEq reports whether every element of m is ≥ the matching element of b.
func (m *Matrix2D) GreaterEq(b *Matrix2D) (bool, error) {
	if b == nil {
		return false, opErrorf("GreaterEq", ErrNilMatrix)
	}
	if err := checkSameShape(m.shape, b.shape); err != nil {
		return false, opErrorf("GreaterEq", err)
	}

	return allPairs(m.data, b.data, func(x, y float64) bool { return x >= y }), nil
}

// AllClose checks elementwise |m-b| ≤ atol + rtol*|b| for identical shapes.
// Negative tolerances are normalized to their absolute value; NaN/Inf
// tolerances fail with ErrNaNInf. Returns (true, nil) iff every pair
// satisfies the relation.
func (m *Matrix2D) AllClose(b *Matrix2D, rtol, atol float64) (bool, error) {
	if b == nil {
		return false, opErrorf("AllClose", ErrNilMatrix)
	}
	if err := checkSameShape(m.shape, b.shape); err != nil {
		return false, opErrorf("AllClose", err)
	}
	rtol, atol, err := normalizeTolerances(rtol, atol)
	if err != nil {
		return false, opErrorf("AllClose", err)
	}

	return allPairs(m.data, b.data, func(x, y float64) bool {
		return math.Abs(x-y) <= atol+rtol*math.Abs(y)
	}), nil
}

// Equal reports whether every element of m exactly equals the matching
// element of b (3D form).
func (m *Matrix3D) Equal(b *Matrix3D) (bool, error) {
	if b == nil {
		return false, opErrorf("Equal", ErrNilMatrix)
	}
	if err := checkSameShape(m.shape, b.shape); err != nil {
		return false, opErrorf("Equal", err)
	}

	return allPairs(m.data, b.data, func(x, y float64) bool { return x == y }), nil
}

// Less reports whether every element of m is strictly less than the
// matching element of b (3D form).
func (m *Matrix3D) Less(b *Matrix3D) (bool, error) {
	if b == nil {
		return false, opErrorf("Less", ErrNilMatrix)
	}
	if err := checkSameShape(m.shape, b.shape); err != nil {
		return false, opErrorf("Less", err)
	}

	return allPairs(m.data, b.data, func(x, y float64) bool { return x < y }), nil
}

// LessEq reports whether every element of m is ≤ the matching element of b
// (3D form).
func (m *Matrix3D) LessEq(b *Matrix3D) (bool, error) {
	if b == nil {
		return false, opErrorf("LessEq", ErrNilMatrix)
	}
	if err := checkSameShape(m.shape, b.shape); err != nil {
		return false, opErrorf("LessEq", err)
	}

	return allPairs(m.data, b.data, func(x, y float64) bool { return x <= y }), nil
}

// Greater reports whether every element of m is strictly greater than the
// matching element of b (3D form).
func (m *Matrix3D) Greater(b *Matrix3D) (bool, error) {
	if b == nil {
		return false, opErrorf("Greater", ErrNilMatrix)
	}
	if err := checkSameShape(m.shape, b.shape); err != nil {
		return false, opErrorf("Greater", err)
	}

	return allPairs(m.data, b.data, func(x, y float64) bool { return x > y }), nil
}

// GreaterEq reports whether every element of m is ≥ the matching element of
// b (3D form).
func (m *Matrix3D) GreaterEq(b *Matrix3D) (bool, error) {
	if b == nil {
		return false, opErrorf("GreaterEq", ErrNilMatrix)
	}
	if err := checkSameShape(m.shape, b.shape); err != nil {
		return false, opErrorf("GreaterEq", err)
	}

	return allPairs(m.data, b.data, func(x, y float64) bool { return x >= y }), nil
}

// AllClose checks elementwise |m-b| ≤ atol + rtol*|b| (3D form).
func (m *Matrix3D) AllClose(b *Matrix3D, rtol, atol float64) (bool, error) {
	if b == nil {
		return false, opErrorf("AllClose", ErrNilMatrix)
	}
	if err := checkSameShape(m.shape, b.shape); err != nil {
		return false, opErrorf("AllClose", err)
	}
	rtol, atol, err := normalizeTolerances(rtol, atol)
	if err != nil {
		return false, opErrorf("AllClose", err)
	}

	return allPairs(m.data, b.data, func(x, y float64) bool {
		return math.Abs(x-y) <= atol+rtol*math.Abs(y)
	}), nil
}

// normalizeTolerances abs-es negative tolerances and rejects NaN/Inf ones.
func normalizeTolerances(rtol, atol float64) (float64, float64, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return 0, 0, ErrNaNInf
	}

	return math.Abs(rtol), math.Abs(atol), nil
}
