// Package dense provides fixed-shape dense float64 containers backed by one
// contiguous row-major block.
//
// The dense package provides:
//
//   - Matrix2D and Matrix3D with bounds-checked At/Set over flat storage,
//     immutable shapes and zero-initialized elements.
//   - Elementwise Add/Sub, scalar Mul/Div, 2D MatMul, unary Abs — every
//     operator allocates a fresh result and never aliases its operands.
//   - Whole-matrix comparisons (Equal, Less, …) reduced to a single bool,
//     plus AllClose for tolerance-based checks.
//   - Apply / ApplyInPlace: a per-element callback transform with an
//     optional second operand of identical shape.
//   - RawView: a zero-copy window (dims + strides + aliased data) onto the
//     owning matrix's storage, and bridges to gonum/mat and blas64.
//
// All operations are synchronous and single-threaded; concurrent mutation
// of one matrix must be serialized by the caller.
//
// See the examples in this package for usage patterns.
package dense
