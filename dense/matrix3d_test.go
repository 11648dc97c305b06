// Package dense_test contains unit tests for the Matrix3D facade.
package dense_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lvalko/densemat/dense"
)

// TestNewMatrix3DInvalidDimensions ensures non-positive dimensions are rejected.
func TestNewMatrix3DInvalidDimensions(t *testing.T) {
	_, err := dense.NewMatrix3D(0, 2, 2) // zero rows
	require.ErrorIs(t, err, dense.ErrInvalidDimensions)
	_, err = dense.NewMatrix3D(2, -1, 2) // negative cols
	require.ErrorIs(t, err, dense.ErrInvalidDimensions)
	_, err = dense.NewMatrix3D(2, 2, 0) // zero planes
	require.ErrorIs(t, err, dense.ErrInvalidDimensions)
}

// TestMatrix3DSetGetSingleElement mirrors the canonical scenario: one write
// into a 2x3x4 matrix lands at exactly one offset, everything else stays 0.
func TestMatrix3DSetGetSingleElement(t *testing.T) {
	m, err := dense.NewMatrix3D(2, 3, 4)
	require.NoError(t, err)

	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, 4, m.Planes())
	require.Equal(t, 24, m.Len())

	require.NoError(t, m.Set(1, 2, 3, 2.5)) // write the last element
	require.Equal(t, 2.5, mustAt3D(t, m, 1, 2, 3))

	// Every other element remains zero.
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 4; k++ {
				if i == 1 && j == 2 && k == 3 {
					continue
				}
				require.Zero(t, mustAt3D(t, m, i, j, k), "at (%d,%d,%d)", i, j, k)
			}
		}
	}
}

// TestMatrix3DOutOfRange ensures every axis is bounds-checked independently.
func TestMatrix3DOutOfRange(t *testing.T) {
	m, err := dense.NewMatrix3D(2, 3, 4)
	require.NoError(t, err)

	_, err = m.At(2, 0, 0) // row == Rows()
	require.ErrorIs(t, err, dense.ErrOutOfRange)
	_, err = m.At(0, 3, 0) // col == Cols()
	require.ErrorIs(t, err, dense.ErrOutOfRange)
	_, err = m.At(0, 0, 4) // plane == Planes()
	require.ErrorIs(t, err, dense.ErrOutOfRange)
	err = m.Set(0, 0, -1, 1.0) // negative plane
	require.ErrorIs(t, err, dense.ErrOutOfRange)
}

// TestNewMatrix3DFromSlices covers nested ingestion and ragged failures.
func TestNewMatrix3DFromSlices(t *testing.T) {
	m := must3D(t, [][][]float64{
		{{1, 2}, {3, 4}},
		{{5, 6}, {7, 8}},
	})
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 2, m.Cols())
	require.Equal(t, 2, m.Planes())
	require.Equal(t, 7.0, mustAt3D(t, m, 1, 1, 0))

	_, err := dense.NewMatrix3DFromSlices([][][]float64{{{1}, {2, 3}}}) // ragged cell
	require.ErrorIs(t, err, dense.ErrShapeMismatch)

	_, err = dense.NewMatrix3DFromSlices(nil) // empty outer level
	require.ErrorIs(t, err, dense.ErrInvalidDimensions)
}

// TestMatrix3DCloneIndependence ensures Clone does not share storage.
func TestMatrix3DCloneIndependence(t *testing.T) {
	m, err := dense.NewMatrix3D(1, 2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 1, 5.0))

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 1, 1, 6.0))

	require.Equal(t, 5.0, mustAt3D(t, m, 0, 1, 1))     // original untouched
	require.Equal(t, 6.0, mustAt3D(t, clone, 0, 1, 1)) // clone mutated
}
