// SPDX-License-Identifier: MIT
// Package dense: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the dense
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions;
// panics are reserved for programmer errors (invalid Option parameters).

package dense

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "dense: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("Op: %w", ErrX)
// at the operation boundary — callers will still use errors.Is to match.

var (
	// ErrInvalidDimensions is returned when a constructor receives a
	// non-positive dimension (rows, cols or planes < 1).
	ErrInvalidDimensions = errors.New("dense: dimensions must be > 0")

	// ErrOutOfRange indicates that an index is outside the declared bounds
	// on some axis. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("dense: index out of range")

	// ErrShapeMismatch indicates incompatible shapes between operands:
	// elementwise ops and comparisons with differing dimensions, Apply with
	// a differently-shaped second operand, or MatMul where a.Cols != b.Rows.
	ErrShapeMismatch = errors.New("dense: shape mismatch")

	// ErrUnsupported marks an operation that is undefined for the given
	// rank, e.g. exporting a rank-3 view as a BLAS General matrix.
	ErrUnsupported = errors.New("dense: operation not supported")

	// ErrNaNInf signals a NaN or ±Inf value was rejected where finite values
	// are required by the numeric policy (Set/ingestion under WithFiniteOnly).
	ErrNaNInf = errors.New("dense: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil matrix operand was used.
	ErrNilMatrix = errors.New("dense: nil matrix")
)
