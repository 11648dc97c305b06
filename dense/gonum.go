// SPDX-License-Identifier: MIT
// Package dense: zero-copy bridges to gonum.
//
// Purpose:
//   - Hand a Matrix2D to gonum-based numeric code (and take one back)
//     without duplicating storage: both sides then read and write the same
//     backing slice.
//   - Export a rank-2 RawView as a blas64.General for BLAS-style consumers.
//
// Aliasing contract:
//   - Gonum() and a contiguous FromGonum() share ONE backing store with the
//     source; mutations on either side are visible on the other. The shared
//     slice also keeps the storage alive for both holders.

package dense

import (
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

// Gonum returns a *mat.Dense sharing m's backing storage — no copy is made.
// Writes through the returned matrix are visible via m.At and vice versa.
// Complexity: O(1).
func (m *Matrix2D) Gonum() *mat.Dense {
	return mat.NewDense(m.Rows(), m.Cols(), m.data)
}

// FromGonum adopts a gonum dense matrix. When d's raw stride equals its
// column count the backing slice is shared zero-copy; a sliced (wider
// stride) source is compacted row-by-row into fresh storage instead, since
// this library's storage contract requires one contiguous block.
// Returns ErrNilMatrix on nil input.
func FromGonum(d *mat.Dense, opt ...Option) (*Matrix2D, error) {
	if d == nil {
		return nil, opErrorf("FromGonum", ErrNilMatrix)
	}
	raw := d.RawMatrix()
	shape, err := newShape(raw.Rows, raw.Cols)
	if err != nil {
		return nil, opErrorf("FromGonum", err)
	}

	m := &Matrix2D{shape: shape, opts: gatherOptions(opt...)}
	if raw.Stride == raw.Cols {
		// Contiguous: alias the exact element window.
		m.data = raw.Data[: raw.Rows*raw.Cols : raw.Rows*raw.Cols]
		return m, nil
	}

	// Non-contiguous view (e.g. a Slice): compact into owned storage.
	m.data = make([]float64, raw.Rows*raw.Cols)
	for i := 0; i < raw.Rows; i++ {
		copy(m.data[i*raw.Cols:(i+1)*raw.Cols], raw.Data[i*raw.Stride:i*raw.Stride+raw.Cols])
	}

	return m, nil
}

// General exports a rank-2 view as a blas64.General over the same storage.
// Rank-3 views have no BLAS General form and fail with ErrUnsupported.
// Complexity: O(1).
func (v RawView) General() (blas64.General, error) {
	if v.Rank() != 2 {
		return blas64.General{}, opErrorf("View.General", ErrUnsupported)
	}

	return blas64.General{
		Rows:   v.Dims[0],
		Cols:   v.Dims[1],
		Stride: v.Strides[0],
		Data:   v.Data,
	}, nil
}
