// Package heatmap renders a dense.Matrix2D as a heat map via gonum/plot.
//
// The Grid adapter implements plotter.GridXYZ directly over the matrix's
// raw view, so the plotting pipeline reads the matrix's own storage —
// no copy is made and later Set calls are visible to subsequent renders.
package heatmap

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/lvalko/densemat/dense"
)

// DefaultColors is the palette resolution used by New when rendering.
const DefaultColors = 12

// Grid adapts a Matrix2D to plotter.GridXYZ through its zero-copy view.
// Rows map to the Y axis, columns to the X axis, both in index units.
type Grid struct {
	view dense.RawView
}

// NewGrid wraps m for plotting. Returns dense.ErrNilMatrix on nil input.
func NewGrid(m *dense.Matrix2D) (*Grid, error) {
	if m == nil {
		return nil, dense.ErrNilMatrix
	}

	return &Grid{view: m.RawView()}, nil
}

// Dims returns the grid extent as (columns, rows), per plotter.GridXYZ.
func (g *Grid) Dims() (int, int) { return g.view.Dims[1], g.view.Dims[0] }

// Z returns the matrix value at column c, row r, read straight from the
// shared backing store.
func (g *Grid) Z(c, r int) float64 { return g.view.Data[r*g.view.Strides[0]+c] }

// X returns the coordinate of column c (index units).
func (g *Grid) X(c int) float64 { return float64(c) }

// Y returns the coordinate of row r (index units).
func (g *Grid) Y(r int) float64 { return float64(r) }

// New builds a plot containing a heat map of m.
func New(m *dense.Matrix2D) (*plot.Plot, error) {
	grid, err := NewGrid(m)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Add(plotter.NewHeatMap(grid, palette.Heat(DefaultColors, 1)))

	return p, nil
}

// Save renders m as a heat map image of the given size into path.
// The format is inferred from the file extension (png, pdf, svg, ...).
func Save(m *dense.Matrix2D, width, height vg.Length, path string) error {
	p, err := New(m)
	if err != nil {
		return err
	}

	return p.Save(width, height, path)
}
