// SPDX-License-Identifier: MIT
// Package dense: 3D operator engine.
//
// Same kernel structure as ops2d.go, over the rows×cols×planes flat buffer.
// There is deliberately no MatMul here: no batched-product semantics are
// defined for rank-3 containers in this library.

package dense

import "math"

// addSub3D computes out = a + sign*b for sign ∈ {+1, -1}.
// Complexity: O(rows*cols*planes).
func addSub3D(a, b *Matrix3D, sign float64, tag string) (*Matrix3D, error) {
	if b == nil {
		return nil, opErrorf(tag, ErrNilMatrix)
	}
	if err := checkSameShape(a.shape, b.shape); err != nil {
		return nil, opErrorf(tag, err)
	}

	out := newMatrix3DLike(a)
	for idx := range a.data { // deterministic 0..n-1
		out.data[idx] = a.data[idx] + sign*b.data[idx]
	}

	return out, nil
}

// Add computes the elementwise sum c[i,j,k] = m[i,j,k] + b[i,j,k].
// Operands must have identical shape; ErrShapeMismatch otherwise.
func (m *Matrix3D) Add(b *Matrix3D) (*Matrix3D, error) {
	return addSub3D(m, b, +1, opAdd)
}

// Sub computes the elementwise difference c[i,j,k] = m[i,j,k] - b[i,j,k].
// Operands must have identical shape; ErrShapeMismatch otherwise.
func (m *Matrix3D) Sub(b *Matrix3D) (*Matrix3D, error) {
	return addSub3D(m, b, -1, opSub)
}

// MulScalar computes c[i,j,k] = m[i,j,k] * s; commutative, so it also
// covers s * m. Complexity: O(rows*cols*planes).
func (m *Matrix3D) MulScalar(s float64) *Matrix3D {
	out := newMatrix3DLike(m)
	for idx := range m.data {
		out.data[idx] = m.data[idx] * s
	}

	return out
}

// DivScalar computes c[i,j,k] = m[i,j,k] / s under IEEE-754 semantics:
// division by zero yields ±Inf/NaN and never fails (same policy as the 2D
// engine). Complexity: O(rows*cols*planes).
func (m *Matrix3D) DivScalar(s float64) *Matrix3D {
	out := newMatrix3DLike(m)
	for idx := range m.data {
		out.data[idx] = m.data[idx] / s
	}

	return out
}

// Abs computes c[i,j,k] = |m[i,j,k]| over the same shape.
func (m *Matrix3D) Abs() *Matrix3D {
	out := newMatrix3DLike(m)
	for idx := range m.data {
		out.data[idx] = math.Abs(m.data[idx])
	}

	return out
}
