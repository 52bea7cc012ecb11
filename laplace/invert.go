// Package laplace: inverse transformation of rational functions via
// partial-fraction decomposition.
package laplace

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/lapnet/lapnet/rational"
)

// Sentinel errors for inversion and sampling.
var (
	// ErrImproper is returned when deg(num) ≥ deg(den): the input is not
	// the transform of a causal function in our term set (it carries an
	// impulse or worse).
	ErrImproper = errors.New("laplace: improper rational function")

	// ErrNoPoles is returned when pole extraction fails to converge. It
	// indicates a numeric breakdown, not a property of the circuit.
	ErrNoPoles = errors.New("laplace: pole extraction failed")

	// ErrEvaluation marks samples whose numeric evaluation produced a
	// non-finite value. Per-sample and non-fatal: remaining samples are
	// still returned.
	ErrEvaluation = errors.New("laplace: sample evaluation failed")
)

// poleTol is the clustering tolerance for numerically extracted roots:
// roots closer than this (relative to the root magnitude scale) count as
// one pole of higher multiplicity, and imaginary parts below it count as
// real.
const poleTol = 1e-7

// pole is a distinct denominator root with its multiplicity.
type pole struct {
	at complex128
	mu int
}

// Invert maps a strictly proper rational function of s to its causal
// time-domain expression.
//
// Steps:
//  1. Reject improper inputs (deg num ≥ deg den) with ErrImproper.
//  2. Read the multiplicity of the pole at the origin exactly off the
//     low-order zero coefficients of the denominator.
//  3. Find the remaining poles as eigenvalues of the companion matrix of
//     the deflated monic denominator, clustering near-equal roots into
//     multiplicities.
//  4. For each distinct pole p of multiplicity m, recover the coefficients
//     c_j of c_j/(s−p)^j, j = 1..m, by Taylor-shifting numerator and
//     deflated denominator to powers of (s−p) and dividing the power
//     series.
//  5. Emit c_j/(s−p)^j ⇒ c_j·t^{j−1}·e^{pt}/(j−1)!; conjugate pole pairs
//     merge into a single damped-cosine term with amplitude 2|c_j| and
//     phase arg(c_j).
//
// The result's terms are sorted by decay rate (slowest first), then t-power,
// then frequency, so identical inputs produce identical output.
func Invert(f rational.Func) (TimeFunc, error) {
	if f.IsZero() {
		return TimeFunc{}, nil
	}
	num, den := f.Num(), f.Den()
	if num.Degree() >= den.Degree() {
		return TimeFunc{}, fmt.Errorf("%w: deg %d over deg %d (%s)",
			ErrImproper, num.Degree(), den.Degree(), f)
	}

	// 2. Exact origin multiplicity: count low-order zero coefficients.
	origin := 0
	for origin < len(den) && den[origin].Sign() == 0 {
		origin++
	}

	// 3. Deflate the origin factor and extract the remaining poles
	//    numerically. The canonical form guarantees den (hence rest) is
	//    monic, which the companion matrix relies on.
	rest := make([]float64, 0, len(den)-origin)
	for _, c := range den[origin:] {
		v, _ := c.Float64()
		rest = append(rest, v)
	}
	roots, err := polyRoots(rest)
	if err != nil {
		return TimeFunc{}, err
	}

	poles := clusterPoles(roots)
	if origin > 0 {
		poles = append([]pole{{at: 0, mu: origin}}, poles...)
	}

	// 4.–5. Partial fractions per distinct pole, then term emission.
	numC := toComplex(num.Float64s())
	denC := toComplex(den.Float64s())

	var terms []Term
	for _, p := range poles {
		if imag(p.at) < -poleTol*(1+cmplx.Abs(p.at)) {
			continue // conjugate of an already-emitted pair
		}
		coeffs := fractionCoeffs(numC, denC, p)
		terms = append(terms, emit(p, coeffs)...)
	}

	terms = prune(terms)
	sort.SliceStable(terms, func(i, j int) bool {
		if terms[i].Decay != terms[j].Decay {
			return terms[i].Decay > terms[j].Decay
		}
		if terms[i].Power != terms[j].Power {
			return terms[i].Power < terms[j].Power
		}

		return terms[i].Freq < terms[j].Freq
	})

	return TimeFunc{Terms: terms}, nil
}

// polyRoots returns the roots of a monic real polynomial given by ascending
// coefficients, as eigenvalues of its companion matrix.
func polyRoots(coeffs []float64) ([]complex128, error) {
	d := len(coeffs) - 1
	if d <= 0 {
		return nil, nil
	}

	comp := mat.NewDense(d, d, nil)
	for i := 0; i < d; i++ {
		if i > 0 {
			comp.Set(i, i-1, 1)
		}
		comp.Set(i, d-1, -coeffs[i]) // leading coefficient is 1
	}

	var eig mat.Eigen
	if !eig.Factorize(comp, mat.EigenNone) {
		return nil, fmt.Errorf("%w: companion matrix of degree %d", ErrNoPoles, d)
	}

	return eig.Values(nil), nil
}

// clusterPoles groups near-equal roots into poles with multiplicity and
// snaps tiny imaginary parts to zero. Sorting first makes the grouping
// deterministic.
func clusterPoles(roots []complex128) []pole {
	sort.Slice(roots, func(i, j int) bool {
		if real(roots[i]) != real(roots[j]) {
			return real(roots[i]) < real(roots[j])
		}

		return imag(roots[i]) < imag(roots[j])
	})

	var poles []pole
	for _, r := range roots {
		tol := poleTol * (1 + cmplx.Abs(r))
		if math.Abs(imag(r)) <= tol {
			r = complex(real(r), 0)
		}
		if n := len(poles); n > 0 && cmplx.Abs(poles[n-1].at-r) <= tol {
			poles[n-1].mu++

			continue
		}
		poles = append(poles, pole{at: r, mu: 1})
	}

	return poles
}

// fractionCoeffs returns c_1..c_mu for the partial fraction block of p:
// f(s) = … + Σ_j c_j/(s−p.at)^j. Let Q(s) = D(s)/(s−p)^mu; then
// g(s) = N(s)/Q(s) is analytic at p and c_{mu−k} is the k-th Taylor
// coefficient of g there. Both N and Q are Taylor-shifted to powers of
// (s−p) by repeated synthetic division, then divided as power series.
func fractionCoeffs(num, den []complex128, p pole) []complex128 {
	q := den
	for i := 0; i < p.mu; i++ {
		q = deflate(q, p.at)
	}

	nT := taylor(num, p.at, p.mu-1)
	qT := taylor(q, p.at, p.mu-1)

	// Power-series division g = nT/qT mod u^mu. qT[0] = Q(p) is nonzero:
	// p is not a root of the deflated denominator.
	g := make([]complex128, p.mu)
	for k := 0; k < p.mu; k++ {
		acc := nT[k]
		for j := 1; j <= k; j++ {
			acc -= qT[j] * g[k-j]
		}
		g[k] = acc / qT[0]
	}

	// c_j with j = mu−k.
	coeffs := make([]complex128, p.mu)
	for k, v := range g {
		coeffs[p.mu-k-1] = v
	}

	return coeffs
}

// deflate divides a polynomial (ascending coefficients) by (s − r),
// discarding the remainder, via synthetic division.
func deflate(coeffs []complex128, r complex128) []complex128 {
	d := len(coeffs) - 1
	out := make([]complex128, d)
	acc := coeffs[d]
	for i := d - 1; i >= 0; i-- {
		out[i] = acc
		acc = coeffs[i] + r*acc
	}

	return out
}

// taylor returns the first order+1 Taylor coefficients of the polynomial
// around x, i.e. p(x+u) = Σ_k out[k]·u^k + O(u^{order+1}). Each synthetic
// division by (s−x) peels off one coefficient as its remainder.
func taylor(coeffs []complex128, x complex128, order int) []complex128 {
	out := make([]complex128, order+1)
	cur := coeffs
	for k := 0; k <= order; k++ {
		if len(cur) == 0 {
			break
		}
		// Horner evaluation doubles as remainder of division by (s−x).
		acc := cur[len(cur)-1]
		for i := len(cur) - 2; i >= 0; i-- {
			acc = cur[i] + x*acc
		}
		out[k] = acc
		cur = deflateOrEmpty(cur, x)
	}

	return out
}

func deflateOrEmpty(coeffs []complex128, r complex128) []complex128 {
	if len(coeffs) <= 1 {
		return nil
	}

	return deflate(coeffs, r)
}

// emit converts one pole's partial-fraction coefficients into time terms:
// c_j/(s−p)^j ⇒ c_j·t^{j−1}·e^{pt}/(j−1)!. Real poles produce plain
// exponentials; a conjugate pair collapses into 2|c|·e^{σt}·cos(ωt+arg c).
func emit(p pole, coeffs []complex128) []Term {
	sigma, omega := real(p.at), imag(p.at)
	realPole := omega == 0

	terms := make([]Term, 0, len(coeffs))
	for j, c := range coeffs {
		power := j // c stored at index j covers 1/(s−p)^{j+1}
		inv := 1 / factorial(power)
		if realPole {
			terms = append(terms, Term{
				Amp:   real(c) * inv,
				Power: power,
				Decay: sigma,
			})

			continue
		}
		terms = append(terms, Term{
			Amp:   2 * cmplx.Abs(c) * inv,
			Power: power,
			Decay: sigma,
			Freq:  omega,
			Phase: cmplx.Phase(c),
		})
	}

	return terms
}

// prune drops terms whose amplitude is negligible next to the largest one,
// numeric zeros left behind by residue extraction.
func prune(terms []Term) []Term {
	var scale float64
	for _, t := range terms {
		scale = math.Max(scale, math.Abs(t.Amp))
	}
	if scale == 0 {
		return nil
	}

	out := terms[:0]
	for _, t := range terms {
		if math.Abs(t.Amp) > 1e-9*scale {
			out = append(out, t)
		}
	}

	return out
}

func toComplex(v []float64) []complex128 {
	out := make([]complex128, len(v))
	for i, x := range v {
		out[i] = complex(x, 0)
	}

	return out
}

func factorial(n int) float64 {
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}

	return f
}
