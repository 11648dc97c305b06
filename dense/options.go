// SPDX-License-Identifier: MIT

// Package dense: functional configuration for the numeric ingestion policy.
// This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic only on nonsensical parameters — programmer
//     error; user-triggered failures always return sentinels).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Numeric policy is explicit and narrow:
//   - finiteOnly controls whether Set() and the FromRows/FromSlices
//     ingestion constructors reject NaN/±Inf with ErrNaNInf.
//   - Arithmetic NEVER applies the policy to its results: scalar division
//     follows IEEE-754, so DivScalar by zero yields ±Inf/NaN and does not
//     fail. Derived matrices inherit the receiver's policy for later Sets.
package dense

// DefaultFiniteOnly is the default ingestion policy: permissive — NaN and
// ±Inf values may be stored, matching IEEE-754 arithmetic downstream.
const DefaultFiniteOnly = false

// options carries the resolved per-matrix configuration.
// Fields are unexported; public APIs consume ...Option.
type options struct {
	finiteOnly bool // reject NaN/±Inf on Set and ingestion when true
}

// Option mutates the per-matrix configuration at construction time.
type Option func(*options)

// WithFiniteOnly makes Set and the ingestion constructors reject NaN and
// ±Inf values with ErrNaNInf. The policy sticks to the matrix for its whole
// lifetime and is inherited by matrices derived from it (Clone, operators,
// Apply).
func WithFiniteOnly() Option {
	return func(o *options) { o.finiteOnly = true }
}

// gatherOptions resolves defaults and applies the given options in order.
func gatherOptions(opts ...Option) options {
	o := options{finiteOnly: DefaultFiniteOnly}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
