// Package densemat is a small library of fixed-shape dense numeric
// containers — 2D and 3D float64 matrices over one contiguous row-major
// block — with elementwise arithmetic, whole-matrix comparisons, a
// callback-based transform facility, and zero-copy views for external
// numeric frameworks.
//
// 🚀 What is densemat?
//
//	A deterministic, single-threaded container library that brings together:
//		• Matrix2D / Matrix3D: bounds-checked At/Set over flat storage
//		• Operators: Add, Sub, MatMul (2D), scalar Mul/Div, Abs
//		• Comparisons: whole-matrix Equal/Less/… plus tolerance AllClose
//		• Transforms: Apply / ApplyInPlace with an optional second operand
//		• Raw views: shape + strides + aliased data, readable and writable
//		• Interop: zero-copy bridges to gonum/mat and blas64
//
// ✨ Why choose densemat?
//
//   - Minimal API, clear naming, explicit errors (no panics on user input)
//   - Exactly one backing store per matrix — views alias, never copy
//   - Pure Go kernels – no cgo, deterministic loop orders
//
// Under the hood, everything is organized under two subpackages:
//
//	dense/   — storage, facades, operator & apply engines, raw views, interop
//	heatmap/ — gonum/plot heat-map rendering of a Matrix2D through its view
//
// Shapes are fixed at construction and never resized; there is no
// broadcasting beyond scalar operands and no linear-algebra solver layer.
//
//	go get github.com/lvalko/densemat/dense
package densemat
