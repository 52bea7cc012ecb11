// Package laplace gives the transform-domain pipeline its physical
// semantics: branch V–I relations in s, inverse transformation of solved
// rational functions into causal time-domain expressions, the forward
// transform for round-trip checks, and numeric sampling for plotting.
//
// What & Why
//
//   - BranchRelation maps a component kind and value to the coefficients of
//     its branch equation a·V + b·I = rhs over exact rational functions:
//     R: V = I·R, L: V = I·sL, C: V = I/(sC), step sources pin one variable
//     to value/s and leave the other free. Zero initial conditions
//     throughout.
//
//   - Invert decomposes a strictly proper rational function into partial
//     fractions and emits a sum of causal terms amp·t^k·e^{σt}·cos(ωt+φ),
//     covering a pole at the origin (step term), simple real poles
//     (exponentials), complex-conjugate pairs (damped sinusoids) and
//     repeated poles (polynomial-times-exponential). The multiplicity of
//     the origin pole is read exactly off the rational coefficients; the
//     remaining poles come from the eigenvalues of the monic denominator's
//     companion matrix (gonum/mat), and partial-fraction coefficients from
//     Taylor-shifted power-series division. Improper inputs (the transform
//     of an impulse, outside the causal term set) fail with ErrImproper.
//
//   - Samples evaluates a time function over an even grid on [0, horizon];
//     a non-finite value invalidates only its own sample (ErrEvaluation is
//     reported, remaining samples are returned).
//
// Every expression is implicitly multiplied by the unit step: sources
// switch on at t = 0 and all results hold for t ≥ 0.
package laplace
