// SPDX-License-Identifier: MIT
// Package dense: zero-copy buffer exposure.
//
// Purpose:
//   - RawView is the structural window external consumers read and write
//     through: per-axis sizes, per-axis strides (row-major, innermost 1)
//     and the Data slice aliasing the owner's storage. There is exactly one
//     backing store — writes through a view are immediately visible via
//     At/Set and vice versa.
//
// Lifetime:
//   - Data is a slice header over the owning matrix's backing array, so the
//     Go runtime keeps that array alive for as long as any view exists.
//     A view is therefore a lifetime-extending shared reference, never an
//     independent copy, and can never dangle.

package dense

// ElemSize is the size in bytes of one stored element (float64).
const ElemSize = 8

// RawView is a non-owning structural descriptor of a matrix's storage.
// Dims and Strides are independent copies; Data aliases the backing store.
type RawView struct {
	Dims    []int     // per-axis sizes, outermost first
	Strides []int     // per-axis strides in elements, innermost == 1
	Data    []float64 // the backing store itself, length == product(Dims)
}

// RawView exposes m's storage for direct access.
// Complexity: O(1) — no element is copied.
func (m *Matrix2D) RawView() RawView {
	return RawView{Dims: m.shape.clone(), Strides: m.shape.Strides(), Data: m.data}
}

// RawView exposes m's storage for direct access (3D form).
func (m *Matrix3D) RawView() RawView {
	return RawView{Dims: m.shape.clone(), Strides: m.shape.Strides(), Data: m.data}
}

// Rank returns the number of axes of the viewed matrix.
func (v RawView) Rank() int { return len(v.Dims) }

// At reads the element addressed by the index tuple through the view.
// Bounds are checked on every axis; ErrOutOfRange on violation.
// Complexity: O(rank).
func (v RawView) At(idx ...int) (float64, error) {
	off, err := Shape(v.Dims).Offset(idx...)
	if err != nil {
		return 0, opErrorf("View.At", err)
	}

	return v.Data[off], nil
}

// Set writes val at the index tuple through the view; the write is
// immediately visible to the owning matrix. ErrOutOfRange on violation.
// Complexity: O(rank).
func (v RawView) Set(val float64, idx ...int) error {
	off, err := Shape(v.Dims).Offset(idx...)
	if err != nil {
		return opErrorf("View.Set", err)
	}
	v.Data[off] = val

	return nil
}
