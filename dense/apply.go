// SPDX-License-Identifier: MIT
// Package dense: the apply engine — generic per-element transforms.
//
// Purpose:
//   - Apply: run a callback once per element in row-major order and collect
//     results into a fresh matrix; the receiver and the optional second
//     operand are never mutated.
//   - ApplyInPlace: same traversal, writing results back into the
//     receiver's own storage.
//
// Contract:
//   - The callback receives (value, otherValue, indices...). When no second
//     operand is supplied, otherValue is the neutral 0 for every call.
//   - The index arguments are informational; callbacks must not rely on any
//     iteration-order side effects beyond determinism within one call.
//   - Validation happens before the first write, so a failed call never
//     leaves a partially-mutated matrix.

package dense

// ApplyFunc2D maps one Matrix2D element to its replacement.
// v is the current value, other the matching value of the second operand
// (0 when absent), i and j the element's row and column.
type ApplyFunc2D func(v, other float64, i, j int) float64

// ApplyFunc3D maps one Matrix3D element to its replacement; k is the plane.
type ApplyFunc3D func(v, other float64, i, j, k int) float64

// Apply returns a fresh matrix with out[i,j] = fn(m[i,j], other[i,j], i, j).
// other may be nil, in which case fn receives 0 as its second argument.
// A non-nil other must match m's shape; ErrShapeMismatch otherwise.
// Complexity: O(rows*cols).
func (m *Matrix2D) Apply(fn ApplyFunc2D, other *Matrix2D) (*Matrix2D, error) {
	if other != nil {
		if err := checkSameShape(m.shape, other.shape); err != nil {
			return nil, opErrorf("Apply", err)
		}
	}

	out := newMatrix2DLike(m)
	m.applyInto(out.data, fn, other)

	return out, nil
}

// ApplyInPlace rewrites every element of m as fn(m[i,j], other[i,j], i, j).
// Same contract as Apply, but the receiver's own storage is mutated and no
// new matrix is produced. Complexity: O(rows*cols).
func (m *Matrix2D) ApplyInPlace(fn ApplyFunc2D, other *Matrix2D) error {
	if other != nil {
		if err := checkSameShape(m.shape, other.shape); err != nil {
			return opErrorf("ApplyInPlace", err)
		}
	}
	m.applyInto(m.data, fn, other)

	return nil
}

// applyInto runs the row-major transform loop, writing into dst.
// dst is either a fresh buffer (Apply) or m.data itself (ApplyInPlace);
// the write at one offset happens after the read at the same offset, so
// in-place traversal is safe. Assumes shapes were validated.
func (m *Matrix2D) applyInto(dst []float64, fn ApplyFunc2D, other *Matrix2D) {
	cols := m.Cols()
	var ov float64 // neutral second argument when other is absent
	for idx, v := range m.data {
		if other != nil {
			ov = other.data[idx]
		}
		dst[idx] = fn(v, ov, idx/cols, idx%cols)
	}
}

// Apply returns a fresh matrix with
// out[i,j,k] = fn(m[i,j,k], other[i,j,k], i, j, k); other may be nil (the
// callback then receives 0). ErrShapeMismatch on a differently-shaped other.
// Complexity: O(rows*cols*planes).
func (m *Matrix3D) Apply(fn ApplyFunc3D, other *Matrix3D) (*Matrix3D, error) {
	if other != nil {
		if err := checkSameShape(m.shape, other.shape); err != nil {
			return nil, opErrorf("Apply", err)
		}
	}

	out := newMatrix3DLike(m)
	m.applyInto(out.data, fn, other)

	return out, nil
}

// ApplyInPlace rewrites every element of m via fn; no new matrix is
// produced. Same contract as the 3D Apply.
func (m *Matrix3D) ApplyInPlace(fn ApplyFunc3D, other *Matrix3D) error {
	if other != nil {
		if err := checkSameShape(m.shape, other.shape); err != nil {
			return opErrorf("ApplyInPlace", err)
		}
	}
	m.applyInto(m.data, fn, other)

	return nil
}

// applyInto runs the row-major transform loop for the 3D facade.
func (m *Matrix3D) applyInto(dst []float64, fn ApplyFunc3D, other *Matrix3D) {
	cols, planes := m.Cols(), m.Planes()
	var ov float64
	for idx, v := range m.data {
		if other != nil {
			ov = other.data[idx]
		}
		cell := idx / planes // linear (row, col) cell index
		dst[idx] = fn(v, ov, cell/cols, cell%cols, idx%planes)
	}
}
