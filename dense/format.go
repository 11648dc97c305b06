// Package dense: textual forms for both facades.
//
// String is the human-readable form: nested brackets with fixed two-decimal
// values. GoString is the diagnostic form: a constructor-like summary with
// the dimensions and the full value listing in %g notation.
package dense

import (
	"fmt"
	"strings"
)

// writeRow2D appends one bracketed row "[a, b, ...]" to sb using format.
func writeRow2D(sb *strings.Builder, row []float64, format string) {
	sb.WriteByte('[')
	for j, v := range row {
		if j > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(sb, format, v)
	}
	sb.WriteByte(']')
}

// render2D builds the nested bracket listing of a rows×cols flat buffer.
func render2D(data []float64, rows, cols int, format string) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < rows; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		writeRow2D(&sb, data[i*cols:(i+1)*cols], format)
	}
	sb.WriteByte(']')

	return sb.String()
}

// render3D builds the nested bracket listing of a rows×cols×planes buffer.
func render3D(data []float64, rows, cols, planes int, format string) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < rows; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('[')
		for j := 0; j < cols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			base := (i*cols + j) * planes
			writeRow2D(&sb, data[base:base+planes], format)
		}
		sb.WriteByte(']')
	}
	sb.WriteByte(']')

	return sb.String()
}

// String implements fmt.Stringer: nested brackets, two fixed decimals.
// A 2×2 matrix of 1..4 renders as "[[1.00, 2.00], [3.00, 4.00]]".
// Complexity: O(rows*cols).
func (m *Matrix2D) String() string {
	return render2D(m.data, m.Rows(), m.Cols(), "%.2f")
}

// GoString implements fmt.GoStringer: a constructor-like diagnostic with
// the dimensions and the full value listing, e.g.
// "dense.Matrix2D(2, 2, [[1, 2], [3, 4]])".
func (m *Matrix2D) GoString() string {
	return fmt.Sprintf("dense.Matrix2D(%d, %d, %s)",
		m.Rows(), m.Cols(), render2D(m.data, m.Rows(), m.Cols(), "%g"))
}

// String implements fmt.Stringer for the 3D facade: three nesting levels,
// two fixed decimals. Complexity: O(rows*cols*planes).
func (m *Matrix3D) String() string {
	return render3D(m.data, m.Rows(), m.Cols(), m.Planes(), "%.2f")
}

// GoString implements fmt.GoStringer for the 3D facade, e.g.
// "dense.Matrix3D(1, 1, 2, [[[0, 0]]])".
func (m *Matrix3D) GoString() string {
	return fmt.Sprintf("dense.Matrix3D(%d, %d, %d, %s)",
		m.Rows(), m.Cols(), m.Planes(), render3D(m.data, m.Rows(), m.Cols(), m.Planes(), "%g"))
}
