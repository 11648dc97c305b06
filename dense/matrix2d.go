// Package dense: Matrix2D facade — a rows×cols container over flat storage.
// Dense storage is a single row-major []float64 owned exclusively by the
// matrix; the shape is fixed at construction and never resized.
package dense

// Matrix2D is a fixed-shape rows×cols matrix of float64 values.
// The zero value is not usable; construct via NewMatrix2D or
// NewMatrix2DFromRows.
type Matrix2D struct {
	shape Shape     // (rows, cols), immutable
	data  []float64 // flat backing storage, length == rows*cols
	opts  options   // numeric ingestion policy
}

// NewMatrix2D creates a rows×cols matrix with every element zero.
// Stage 1 (Validate): both dimensions must be ≥ 1, else ErrInvalidDimensions.
// Stage 2 (Prepare): allocate the flat backing slice (zeroed by the runtime).
// Complexity: O(rows*cols) time and memory.
func NewMatrix2D(rows, cols int, opt ...Option) (*Matrix2D, error) {
	shape, err := newShape(rows, cols)
	if err != nil {
		return nil, opErrorf("NewMatrix2D", err)
	}

	return &Matrix2D{
		shape: shape,
		data:  make([]float64, shape.Size()),
		opts:  gatherOptions(opt...),
	}, nil
}

// NewMatrix2DFromRows builds a matrix from a non-ragged [][]float64.
// Row zero fixes the column count; a ragged row fails with ErrShapeMismatch,
// an empty outer or inner slice with ErrInvalidDimensions. Values are copied;
// the input remains independent of the matrix.
// Complexity: O(rows*cols).
func NewMatrix2DFromRows(rows [][]float64, opt ...Option) (*Matrix2D, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, opErrorf("NewMatrix2DFromRows", ErrInvalidDimensions)
	}
	m, err := NewMatrix2D(len(rows), len(rows[0]), opt...)
	if err != nil {
		return nil, opErrorf("NewMatrix2DFromRows", err)
	}

	cols := m.Cols()
	for i, row := range rows {
		// Every row must match the width fixed by row zero.
		if len(row) != cols {
			return nil, opErrorf("NewMatrix2DFromRows", ErrShapeMismatch)
		}
		for j, v := range row {
			// Ingestion honors the finite-only policy.
			if m.opts.finiteOnly {
				if err = checkFinite(v); err != nil {
					return nil, opErrorf("NewMatrix2DFromRows", err)
				}
			}
			m.data[i*cols+j] = v
		}
	}

	return m, nil
}

// newMatrix2DLike allocates a zeroed matrix with m's shape and policy.
// Internal helper for operators and Apply; assumes m is valid.
func newMatrix2DLike(m *Matrix2D) *Matrix2D {
	return &Matrix2D{
		shape: m.shape.clone(),
		data:  make([]float64, len(m.data)),
		opts:  m.opts,
	}
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Matrix2D) Rows() int { return m.shape[0] }

// Cols returns the number of columns. Complexity: O(1).
func (m *Matrix2D) Cols() int { return m.shape[1] }

// Len returns the total element count (rows*cols). Complexity: O(1).
func (m *Matrix2D) Len() int { return len(m.data) }

// Shape returns an independent copy of the matrix shape.
func (m *Matrix2D) Shape() Shape { return m.shape.clone() }

// At retrieves the element at (i, j).
// Returns ErrOutOfRange when i or j is negative or ≥ its dimension.
// Complexity: O(1).
func (m *Matrix2D) At(i, j int) (float64, error) {
	off, err := m.shape.Offset(i, j)
	if err != nil {
		return 0, opErrorf("At", err)
	}

	return m.data[off], nil
}

// Set assigns value v at (i, j).
// Returns ErrOutOfRange on invalid indices, ErrNaNInf when the matrix was
// built WithFiniteOnly and v is NaN or ±Inf.
// Complexity: O(1).
func (m *Matrix2D) Set(i, j int, v float64) error {
	off, err := m.shape.Offset(i, j)
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
// Complexity: O(rows*cols).
func (m *Matrix2D) Clone() *Matrix2D {
	out := newMatrix2DLike(m)
	copy(out.data, m.data)

	return out
}

// Fill assigns v to every element.
// Returns ErrNaNInf under the finite-only policy; nil otherwise.
// Complexity: O(rows*cols).
func (m *Matrix2D) Fill(v float64) error {
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
