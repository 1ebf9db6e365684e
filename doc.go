// Package obskit models observables as quantities with errors.
//
// # Overview
//
// A Quantity is a scalar estimate (usually the mean of an observable) with
// an associated Gaussian error, plus an identity that records which
// independent measurements contributed to it. Arithmetic between Quantities
// propagates the error and uses the identity to decide between the two
// propagation regimes:
//
//   - Independent operands: errors combine in quadrature, √(e1²+e2²)
//   - Same-identity operands (a+a, a*a, a/a, ...): the correlated formula
//
// This distinction is what makes a/a come out as exactly 1 with zero error,
// while a/b for an independent b of the same value and error does not.
//
// # Quick Start
//
//	a := obskit.New(2.0, 1.0)  // one measurement
//	a2 := obskit.New(2.0, 1.0) // an independent second measurement
//	b := obskit.New(-1, 0.5)
//
//	fmt.Println(a.Add(a))   // 4 (2)        correlated: |e+e|
//	fmt.Println(a.Add(a2))  // 4 (1.41421)  independent: quadrature
//	fmt.Println(a.Div(b))   // -2 (1.41421)
//	fmt.Println(obskit.Mean(a, a.Copy(), a.Copy())) // 2 (0.57735)
//
// Plain numbers may appear as the right operand of any operator; they carry
// zero error and an empty identity:
//
//	a.Div(3)                // 0.666667 (0.333333)
//	obskit.New(1, 0).Div(a) // wrap the left operand yourself
//
// # Identity
//
// Identity is a frozen set of opaque tokens (QID). A Quantity constructed
// with a nonzero error receives a freshly minted, session-unique token; a
// zero-error Quantity has the empty identity. Arithmetic between independent
// Quantities unions the identity sets ("identity is history"); arithmetic in
// the same-identity branch keeps exactly the shared set. Copy returns an
// independent re-measurement (fresh identity); DeepCopy returns a correlated
// clone (same identity).
//
// # Known limitations (preserved on purpose)
//
// Covariance between distinct quantities is not tracked: every Quantity
// carries only its self-covariance record, and all cross terms are assumed
// zero except in the exact same-identity case. The same-identity error
// formulas for Mul and Pow are approximations of limited general validity;
// they are kept as-is because downstream results depend on them. Comparison
// is value-only: Cmp ignores error bars entirely even though a confidence
// level is stored for future use.
//
// # Numeric failure modes
//
// Quantity arithmetic is plain IEEE-754 float64 underneath. Division by a
// zero-valued operand yields ±Inf (or NaN for 0/0), and the Pow error terms
// involve ln(value), so a non-positive base yields NaN error. Nothing is
// caught internally; Inf/NaN propagate to the caller. A non-numeric operand
// (anything that is neither a Go real-number kind nor a Quantity) panics
// with ErrNonNumeric; the non-panicking coercion boundary is From.
package obskit
