// Package rational implements exact univariate rational-function arithmetic
// over ℚ, the symbolic-algebra capability the solving and inversion stages
// are written against.
//
// What & Why
//
//   - Poly is a dense polynomial in the Laplace variable s with big.Rat
//     coefficients in ascending order. All operations are exact: no floats,
//     no rounding, no truncation.
//
//   - Func is a quotient of two Polys kept in canonical form: numerator and
//     denominator reduced by their polynomial GCD, denominator monic. Two
//     equal rational functions therefore have identical representations,
//     which makes equality, zero tests and String output deterministic.
//
//   - The rest of the pipeline depends only on this API (field arithmetic,
//     equality, complex evaluation, printing), not on the representation:
//     equation assembly and Gauss–Jordan elimination in package solver run
//     over Func values, and package laplace consumes Num/Den coefficient
//     views for pole extraction.
//
// Values entering from the outside world are converted with Decimal, which
// reads a float64 at its shortest decimal form (0.1 → 1/10 exactly), so
// user-facing component values behave like the decimals the user typed
// rather than their binary approximations.
//
// Poly and Func values are immutable: every operation returns freshly
// allocated coefficients and never aliases operand storage.
package rational
