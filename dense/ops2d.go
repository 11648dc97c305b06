// SPDX-License-Identifier: MIT
// Package dense: 2D operator engine.
//
// Purpose:
//   - Elementwise Add/Sub, scalar Mul/Div, MatMul and unary Abs for Matrix2D.
//   - Strict fail-fast validation; every operator allocates a fresh result
//     and never mutates or aliases its operands.
//
// Determinism & Performance:
//   - Fixed loop orders (flat 0..n-1 for elementwise, i→j→k for MatMul).
//   - All kernels run on the flat row-major backing slices directly.

package dense

import "math"

// Operation name constants for unified error wrapping.
const (
	opAdd    = "Add"
	opSub    = "Sub"
	opMatMul = "MatMul"
)

// addSub2D computes out = a + sign*b for sign ∈ {+1, -1}.
// Internal kernel shared by Add and Sub; validates shape equality once,
// then runs a single flat loop. Complexity: O(rows*cols).
func addSub2D(a, b *Matrix2D, sign float64, tag string) (*Matrix2D, error) {
	if b == nil {
		return nil, opErrorf(tag, ErrNilMatrix)
	}
	if err := checkSameShape(a.shape, b.shape); err != nil {
		return nil, opErrorf(tag, err)
	}

	out := newMatrix2DLike(a)
	for idx := range a.data { // deterministic 0..n-1
		out.data[idx] = a.data[idx] + sign*b.data[idx]
	}

	return out, nil
}

// Add computes the elementwise sum c[i,j] = m[i,j] + b[i,j].
// Operands must have identical shape; ErrShapeMismatch otherwise.
// Complexity: O(rows*cols).
func (m *Matrix2D) Add(b *Matrix2D) (*Matrix2D, error) {
	return addSub2D(m, b, +1, opAdd)
}

// Sub computes the elementwise difference c[i,j] = m[i,j] - b[i,j].
// Operands must have identical shape; ErrShapeMismatch otherwise.
// Complexity: O(rows*cols).
func (m *Matrix2D) Sub(b *Matrix2D) (*Matrix2D, error) {
	return addSub2D(m, b, -1, opSub)
}

// MulScalar computes c[i,j] = m[i,j] * s and returns a fresh matrix.
// Scalar multiplication is commutative, so this also covers s * m.
// Complexity: O(rows*cols).
func (m *Matrix2D) MulScalar(s float64) *Matrix2D {
	out := newMatrix2DLike(m)
	for idx := range m.data {
		out.data[idx] = m.data[idx] * s
	}

	return out
}

// DivScalar computes c[i,j] = m[i,j] / s and returns a fresh matrix.
// Division by zero follows IEEE-754: the result holds ±Inf (or NaN for
// 0/0) and no error is reported. This is the documented policy; callers
// needing strict finiteness can construct results WithFiniteOnly and
// re-ingest.
// Complexity: O(rows*cols).
func (m *Matrix2D) DivScalar(s float64) *Matrix2D {
	out := newMatrix2DLike(m)
	for idx := range m.data {
		out.data[idx] = m.data[idx] / s
	}

	return out
}

// Abs computes c[i,j] = |m[i,j]| and returns a fresh matrix of the same
// shape. Complexity: O(rows*cols).
func (m *Matrix2D) Abs() *Matrix2D {
	out := newMatrix2DLike(m)
	for idx := range m.data {
		out.data[idx] = math.Abs(m.data[idx])
	}

	return out
}

// MatMul computes the standard matrix product c = m·b with
// c[i,j] = Σ_k m[i,k]*b[k,j]. The result is Rows(m)×Cols(b).
// Requires Cols(m) == Rows(b); ErrShapeMismatch otherwise. The product is
// defined for 2D matrices only — Matrix3D intentionally has no MatMul.
// Complexity: O(rows_m * cols_m * cols_b).
func (m *Matrix2D) MatMul(b *Matrix2D) (*Matrix2D, error) {
	if b == nil {
		return nil, opErrorf(opMatMul, ErrNilMatrix)
	}
	// Inner dimensions must agree for the product to exist.
	if m.Cols() != b.Rows() {
		return nil, opErrorf(opMatMul, ErrShapeMismatch)
	}

	rows, inner, cols := m.Rows(), m.Cols(), b.Cols()
	out, err := NewMatrix2D(rows, cols)
	if err != nil {
		return nil, opErrorf(opMatMul, err)
	}
	out.opts = m.opts

	// Classic i→k→j order: walks both operands row-major in the inner loop.
	for i := 0; i < rows; i++ {
		for k := 0; k < inner; k++ {
			aik := m.data[i*inner+k] // reused across the whole output row
			for j := 0; j < cols; j++ {
				out.data[i*cols+j] += aik * b.data[k*cols+j]
			}
		}
	}

	return out, nil
}
