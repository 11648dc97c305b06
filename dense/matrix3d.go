// Package dense: Matrix3D facade — a rows×cols×planes container.
// Same storage model as Matrix2D: one flat row-major []float64, the plane
// axis varying fastest, shape fixed at construction.
package dense

// Matrix3D is a fixed-shape rows×cols×planes matrix of float64 values.
// The zero value is not usable; construct via NewMatrix3D or
// NewMatrix3DFromSlices.
type Matrix3D struct {
	shape Shape     // (rows, cols, planes), immutable
	data  []float64 // flat backing storage, length == rows*cols*planes
	opts  options   // numeric ingestion policy
}

// NewMatrix3D creates a rows×cols×planes matrix with every element zero.
// Returns ErrInvalidDimensions when any dimension is < 1.
// Complexity: O(rows*cols*planes) time and memory.
func NewMatrix3D(rows, cols, planes int, opt ...Option) (*Matrix3D, error) {
	shape, err := newShape(rows, cols, planes)
	if err != nil {
		return nil, opErrorf("NewMatrix3D", err)
	}

	return &Matrix3D{
		shape: shape,
		data:  make([]float64, shape.Size()),
		opts:  gatherOptions(opt...),
	}, nil
}

// NewMatrix3DFromSlices builds a matrix from a non-ragged [][][]float64.
// The first row fixes cols and planes; any ragged level fails with
// ErrShapeMismatch, empty levels with ErrInvalidDimensions. Values are
// copied. Complexity: O(rows*cols*planes).
func NewMatrix3DFromSlices(rows [][][]float64, opt ...Option) (*Matrix3D, error) {
	if len(rows) == 0 || len(rows[0]) == 0 || len(rows[0][0]) == 0 {
		return nil, opErrorf("NewMatrix3DFromSlices", ErrInvalidDimensions)
	}
	m, err := NewMatrix3D(len(rows), len(rows[0]), len(rows[0][0]), opt...)
	if err != nil {
		return nil, opErrorf("NewMatrix3DFromSlices", err)
	}

	cols, planes := m.Cols(), m.Planes()
	for i, row := range rows {
		if len(row) != cols {
			return nil, opErrorf("NewMatrix3DFromSlices", ErrShapeMismatch)
		}
		for j, cell := range row {
			if len(cell) != planes {
				return nil, opErrorf("NewMatrix3DFromSlices", ErrShapeMismatch)
			}
			for k, v := range cell {
				if m.opts.finiteOnly {
					if err = checkFinite(v); err != nil {
						return nil, opErrorf("NewMatrix3DFromSlices", err)
					}
				}
				m.data[(i*cols+j)*planes+k] = v
			}
		}
	}

	return m, nil
}

// newMatrix3DLike allocates a zeroed matrix with m's shape and policy.
func newMatrix3DLike(m *Matrix3D) *Matrix3D {
	return &Matrix3D{
		shape: m.shape.clone(),
		data:  make([]float64, len(m.data)),
		opts:  m.opts,
	}
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Matrix3D) Rows() int { return m.shape[0] }

// Cols returns the number of columns. Complexity: O(1).
func (m *Matrix3D) Cols() int { return m.shape[1] }

// Planes returns the number of planes (the fastest-varying axis).
// Complexity: O(1).
func (m *Matrix3D) Planes() int { return m.shape[2] }

// Len returns the total element count (rows*cols*planes). Complexity: O(1).
func (m *Matrix3D) Len() int { return len(m.data) }

// Shape returns an independent copy of the matrix shape.
func (m *Matrix3D) Shape() Shape { return m.shape.clone() }

// At retrieves the element at (i, j, k).
// Returns ErrOutOfRange when any index is negative or ≥ its dimension.
// Complexity: O(1).
func (m *Matrix3D) At(i, j, k int) (float64, error) {
	off, err := m.shape.Offset(i, j, k)
	if err != nil {
		return 0, opErrorf("At", err)
	}

	return m.data[off], nil
}

// Set assigns value v at (i, j, k).
// Returns ErrOutOfRange on invalid indices, ErrNaNInf under WithFiniteOnly.
// Complexity: O(1).
func (m *Matrix3D) Set(i, j, k int, v float64) error {
	off, err := m.shape.Offset(i, j, k)
	if err != nil {
		return opErrorf("Set", err)
	}
	if m.opts.finiteOnly {
		if err = checkFinite(v); err != nil {
			return opErrorf("Set", err)
		}
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy with independent storage and the same policy.
// Complexity: O(rows*cols*planes).
func (m *Matrix3D) Clone() *Matrix3D {
	out := newMatrix3DLike(m)
	copy(out.data, m.data)

	return out
}

// Fill assigns v to every element.
// Returns ErrNaNInf under the finite-only policy; nil otherwise.
func (m *Matrix3D) Fill(v float64) error {
	if m.opts.finiteOnly {
		if err := checkFinite(v); err != nil {
			return opErrorf("Fill", err)
		}
	}
	for idx := range m.data {
		m.data[idx] = v
	}

	return nil
}
