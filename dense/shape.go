// SPDX-License-Identifier: MIT
// Package dense: shape descriptor and offset calculator.
//
// Purpose:
//   - Provide the single source of truth for index→offset mapping.
//   - Every access path (At/Set/views) routes through Shape.Offset; the
//     bounds check is mandatory and never elided.
//
// Determinism & Performance:
//   - All methods are pure and allocate nothing except Strides/clone.
//   - Offset is O(rank); rank is 2 or 3 here, so effectively O(1).

package dense

// Shape is the ordered tuple of per-axis sizes of a matrix, outermost first.
// A Shape is fixed at construction and never mutated afterwards.
type Shape []int

// newShape validates and builds a shape from the given dimensions.
// Returns ErrInvalidDimensions when any dimension is < 1.
// Complexity: O(rank).
func newShape(dims ...int) (Shape, error) {
	// Reject any non-positive axis before allocating.
	for _, d := range dims {
		if d < 1 {
			return nil, ErrInvalidDimensions
		}
	}
	// Copy into an owned slice so callers cannot alias our backing array.
	s := make(Shape, len(dims))
	copy(s, dims)

	return s, nil
}

// Rank returns the number of axes (2 for Matrix2D, 3 for Matrix3D).
// Complexity: O(1).
func (s Shape) Rank() int { return len(s) }

// Size returns the total element count, the product of all dimensions.
// Complexity: O(rank).
func (s Shape) Size() int {
	n := 1
	for _, d := range s {
		n *= d // accumulate the product axis by axis
	}

	return n
}

// Strides returns the per-axis stride in elements for row-major layout:
// the last axis has stride 1, each outer axis the product of inner sizes.
// Complexity: O(rank) time and space.
func (s Shape) Strides() []int {
	str := make([]int, len(s))
	acc := 1 // innermost stride
	for ax := len(s) - 1; ax >= 0; ax-- {
		str[ax] = acc
		acc *= s[ax] // widen by this axis for the next outer one
	}

	return str
}

// Equal reports whether two shapes have identical rank and dimensions.
// Complexity: O(rank).
func (s Shape) Equal(t Shape) bool {
	if len(s) != len(t) {
		return false
	}
	for ax, d := range s {
		if t[ax] != d {
			return false
		}
	}

	return true
}

// Offset maps an index tuple to its linear row-major storage offset.
// Stage 1 (Validate): every index must satisfy 0 ≤ idx[ax] < s[ax];
// a wrong tuple length or any violation returns ErrOutOfRange.
// Stage 2 (Execute): fold offset = (…(i·d1 + j)·d2 + k…).
// Complexity: O(rank).
func (s Shape) Offset(idx ...int) (int, error) {
	// A tuple of the wrong arity can never address an element.
	if len(idx) != len(s) {
		return 0, ErrOutOfRange
	}
	off := 0
	for ax, i := range idx {
		// Mandatory bounds check on every axis, never skipped.
		if i < 0 || i >= s[ax] {
			return 0, ErrOutOfRange
		}
		off = off*s[ax] + i
	}

	return off, nil
}

// clone returns an independent copy of the shape.
func (s Shape) clone() Shape {
	t := make(Shape, len(s))
	copy(t, s)

	return t
}
