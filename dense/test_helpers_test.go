// SPDX-License-Identifier: MIT
// Package dense_test: shared construction and assertion helpers.

package dense_test

import (
	"testing"

	"github.com/lvalko/densemat/dense"
)

// must2D builds a Matrix2D from rows, failing the test on any error.
func must2D(t *testing.T, rows [][]float64) *dense.Matrix2D {
	t.Helper()
	m, err := dense.NewMatrix2DFromRows(rows)
	if err != nil {
		t.Fatalf("NewMatrix2DFromRows: %v", err)
	}
	return m
}

// must3D builds a Matrix3D from nested slices, failing the test on error.
func must3D(t *testing.T, rows [][][]float64) *dense.Matrix3D {
	t.Helper()
	m, err := dense.NewMatrix3DFromSlices(rows)
	if err != nil {
		t.Fatalf("NewMatrix3DFromSlices: %v", err)
	}
	return m
}

// mustAt2D reads (i,j), failing the test on error.
func mustAt2D(t *testing.T, m *dense.Matrix2D, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}
	return v
}

// mustAt3D reads (i,j,k), failing the test on error.
func mustAt3D(t *testing.T, m *dense.Matrix3D, i, j, k int) float64 {
	t.Helper()
	v, err := m.At(i, j, k)
	if err != nil {
		t.Fatalf("At(%d,%d,%d): %v", i, j, k, err)
	}
	return v
}

// assertEquals2D checks every element of got against want, row-major.
func assertEquals2D(t *testing.T, got *dense.Matrix2D, want [][]float64) {
	t.Helper()
	if got.Rows() != len(want) || got.Cols() != len(want[0]) {
		t.Fatalf("shape: got %dx%d, want %dx%d", got.Rows(), got.Cols(), len(want), len(want[0]))
	}
	for i := range want {
		for j := range want[i] {
			if v := mustAt2D(t, got, i, j); v != want[i][j] {
				t.Fatalf("[%d,%d]: got %v, want %v", i, j, v, want[i][j])
			}
		}
	}
}
