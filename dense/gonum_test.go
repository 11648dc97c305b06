// SPDX-License-Identifier: MIT

package dense_test

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/lvalko/densemat/dense"
)

func TestGonum_SharesStorage(t *testing.T) {
	t.Parallel()

	m := must2D(t, [][]float64{{1, 2}, {3, 4}})
	g := m.Gonum()

	if r, c := g.Dims(); r != 2 || c != 2 {
		t.Fatalf("Dims: got %dx%d, want 2x2", r, c)
	}

	// gonum-side write is visible through the facade.
	g.Set(0, 1, 20.0)
	if v := mustAt2D(t, m, 0, 1); v != 20.0 {
		t.Fatalf("gonum write invisible: got %v, want 20", v)
	}

	// Facade-side write is visible through gonum.
	if err := m.Set(1, 0, 30.0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if v := g.At(1, 0); v != 30.0 {
		t.Fatalf("Set invisible via gonum: got %v, want 30", v)
	}
}

func TestFromGonum_ContiguousAliases(t *testing.T) {
	t.Parallel()

	g := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	m, err := dense.FromGonum(g)
	if err != nil {
		t.Fatalf("FromGonum: %v", err)
	}

	// One backing store: a gonum write shows up in the adopted matrix.
	g.Set(1, 1, 40.0)
	if v := mustAt2D(t, m, 1, 1); v != 40.0 {
		t.Fatalf("adopted matrix not aliased: got %v, want 40", v)
	}
}

func TestFromGonum_StridedCopies(t *testing.T) {
	t.Parallel()

	g := mat.NewDense(3, 3, []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})
	sub := g.Slice(0, 2, 0, 2).(*mat.Dense) // stride 3 > cols 2

	m, err := dense.FromGonum(sub)
	if err != nil {
		t.Fatalf("FromGonum: %v", err)
	}
	assertEquals2D(t, m, [][]float64{{1, 2}, {4, 5}})

	// A strided source is compacted, so it must NOT alias.
	sub.Set(0, 0, 100.0)
	if v := mustAt2D(t, m, 0, 0); v != 1.0 {
		t.Fatalf("strided adoption aliased: got %v, want 1", v)
	}
}

func TestFromGonum_Nil(t *testing.T) {
	t.Parallel()

	if _, err := dense.FromGonum(nil); !errors.Is(err, dense.ErrNilMatrix) {
		t.Fatalf("want ErrNilMatrix, got %v", err)
	}
}

func TestViewGeneral(t *testing.T) {
	t.Parallel()

	m := must2D(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	gen, err := m.RawView().General()
	if err != nil {
		t.Fatalf("General: %v", err)
	}
	if gen.Rows != 2 || gen.Cols != 3 || gen.Stride != 3 {
		t.Fatalf("General header: got %+v", gen)
	}

	// BLAS-side write lands in the same backing store.
	gen.Data[gen.Stride*1+2] = 60.0
	if v := mustAt2D(t, m, 1, 2); v != 60.0 {
		t.Fatalf("General write invisible: got %v, want 60", v)
	}

	// Rank-3 views have no BLAS General form.
	cube, err := dense.NewMatrix3D(1, 1, 1)
	if err != nil {
		t.Fatalf("NewMatrix3D: %v", err)
	}
	if _, err = cube.RawView().General(); !errors.Is(err, dense.ErrUnsupported) {
		t.Fatalf("rank-3 General: want ErrUnsupported, got %v", err)
	}
}
