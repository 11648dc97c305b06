// SPDX-License-Identifier: MIT

package dense_test

import (
	"errors"
	"testing"

	"github.com/lvalko/densemat/dense"
)

func TestShapeSizeAndRank(t *testing.T) {
	t.Parallel()

	s := dense.Shape{2, 3, 4}
	if s.Rank() != 3 {
		t.Fatalf("Rank: got %d, want 3", s.Rank())
	}
	if s.Size() != 24 {
		t.Fatalf("Size: got %d, want 24", s.Size())
	}
}

func TestShapeStrides_RowMajor(t *testing.T) {
	t.Parallel()

	// 2D: row stride == cols, innermost stride == 1.
	got := dense.Shape{2, 3}.Strides()
	want := []int{3, 1}
	for ax := range want {
		if got[ax] != want[ax] {
			t.Fatalf("2D strides: got %v, want %v", got, want)
		}
	}

	// 3D: each outer stride is the product of inner dimensions.
	got = dense.Shape{2, 3, 4}.Strides()
	want = []int{12, 4, 1}
	for ax := range want {
		if got[ax] != want[ax] {
			t.Fatalf("3D strides: got %v, want %v", got, want)
		}
	}
}

func TestShapeOffset_RowMajorOrder(t *testing.T) {
	t.Parallel()

	// 2D: offset = i*cols + j.
	s := dense.Shape{2, 3}
	off, err := s.Offset(1, 2)
	if err != nil {
		t.Fatalf("Offset(1,2): %v", err)
	}
	if off != 5 {
		t.Fatalf("Offset(1,2): got %d, want 5", off)
	}

	// 3D: offset = (i*cols + j)*planes + k.
	s = dense.Shape{2, 3, 4}
	off, err = s.Offset(1, 2, 3)
	if err != nil {
		t.Fatalf("Offset(1,2,3): %v", err)
	}
	if off != 23 {
		t.Fatalf("Offset(1,2,3): got %d, want 23", off)
	}
}

func TestShapeOffset_Bounds(t *testing.T) {
	t.Parallel()

	s := dense.Shape{2, 3}
	if _, err := s.Offset(2, 0); !errors.Is(err, dense.ErrOutOfRange) {
		t.Fatalf("row overflow: want ErrOutOfRange, got %v", err)
	}
	if _, err := s.Offset(0, -1); !errors.Is(err, dense.ErrOutOfRange) {
		t.Fatalf("negative col: want ErrOutOfRange, got %v", err)
	}
	if _, err := s.Offset(0); !errors.Is(err, dense.ErrOutOfRange) {
		t.Fatalf("wrong arity: want ErrOutOfRange, got %v", err)
	}
}

func TestShapeEqual(t *testing.T) {
	t.Parallel()

	if !(dense.Shape{2, 3}).Equal(dense.Shape{2, 3}) {
		t.Fatal("identical shapes must compare equal")
	}
	if (dense.Shape{2, 3}).Equal(dense.Shape{3, 2}) {
		t.Fatal("transposed shapes must not compare equal")
	}
	if (dense.Shape{2, 3}).Equal(dense.Shape{2, 3, 1}) {
		t.Fatal("different ranks must not compare equal")
	}
}
