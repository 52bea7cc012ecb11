package rational

import (
	"math/big"
	"strings"
)

// Func is a rational function num/den in canonical form: num and den share
// no common polynomial factor and den is monic. The zero function is 0/1.
// Func values are immutable; all methods return new values.
type Func struct {
	num Poly
	den Poly
}

// NewFunc builds the canonical rational function num/den.
// A zero denominator yields ErrDivisionByZero.
func NewFunc(num, den Poly) (Func, error) {
	if den.IsZero() {
		return Func{}, ErrDivisionByZero
	}

	return canonical(num.Clone(), den.Clone()), nil
}

// canonical reduces num/den by their GCD and normalizes den to monic form.
// den must be nonzero. Takes ownership of its arguments.
func canonical(num, den Poly) Func {
	if num.IsZero() {
		return Func{num: Poly{}, den: PolyInt(1)}
	}
	if g := GCD(num, den); g.Degree() > 0 {
		num, _, _ = num.Div(g)
		den, _, _ = den.Div(g)
	}
	// Monic denominator: divide both sides by den's leading coefficient.
	inv := new(big.Rat).Inv(den[len(den)-1])

	return Func{num: num.Scale(inv), den: den.Scale(inv)}
}

// FromPoly wraps a polynomial as a rational function over 1.
func FromPoly(p Poly) Func {
	if p.IsZero() {
		return Func{num: Poly{}, den: PolyInt(1)}
	}

	return Func{num: p.Clone(), den: PolyInt(1)}
}

// Const returns the constant rational function r.
func Const(r *big.Rat) Func { return FromPoly(NewPoly(r)) }

// ConstInt returns the constant rational function n.
func ConstInt(n int64) Func { return FromPoly(PolyInt(n)) }

// S returns the transform variable s as a rational function.
func S() Func { return FromPoly(PolyInt(0, 1)) }

// Num returns a copy of the numerator polynomial.
func (f Func) Num() Poly { return f.num.Clone() }

// Den returns a copy of the denominator polynomial. The zero value of Func
// (from a struct literal rather than a constructor) normalizes to 0/1 here.
func (f Func) Den() Poly {
	if f.den.IsZero() {
		return PolyInt(1)
	}

	return f.den.Clone()
}

// IsZero reports whether f is identically zero.
func (f Func) IsZero() bool { return f.num.IsZero() }

// Equal reports whether f and g denote the same rational function. Thanks
// to the canonical form this is plain coefficient comparison.
func (f Func) Equal(g Func) bool {
	return f.num.Equal(g.num) && f.Den().Equal(g.Den())
}

// Add returns f + g.
func (f Func) Add(g Func) Func {
	num := f.num.Mul(g.Den()).Add(g.num.Mul(f.Den()))

	return canonical(num, f.Den().Mul(g.Den()))
}

// Sub returns f − g.
func (f Func) Sub(g Func) Func { return f.Add(g.Neg()) }

// Neg returns −f.
func (f Func) Neg() Func {
	return Func{num: f.num.Neg(), den: f.Den()}
}

// Mul returns f · g.
func (f Func) Mul(g Func) Func {
	return canonical(f.num.Mul(g.num), f.Den().Mul(g.Den()))
}

// Div returns f / g; dividing by the zero function yields
// ErrDivisionByZero.
func (f Func) Div(g Func) (Func, error) {
	if g.IsZero() {
		return Func{}, ErrDivisionByZero
	}

	return canonical(f.num.Mul(g.Den()), f.Den().Mul(g.num)), nil
}

// Eval evaluates f at a complex point using float64 coefficient images.
// Evaluation exactly at a pole follows IEEE semantics (Inf or NaN); callers
// decide how to treat non-finite results.
func (f Func) Eval(z complex128) complex128 {
	return f.num.Eval(z) / f.Den().Eval(z)
}

// String renders the canonical form, e.g. "2/(s + 2)", "(5*s + 10)/s" or
// "3/2" for constants. Multi-term sides are parenthesized; single-term
// sides are not.
func (f Func) String() string {
	num := f.num.String()
	den := f.Den().String()
	if den == "1" {
		return num
	}
	if strings.ContainsAny(num, "+-") && !isBareNegative(num) || strings.Contains(num, " ") {
		num = "(" + num + ")"
	}
	if strings.Contains(den, " ") || strings.Contains(den, "*") {
		den = "(" + den + ")"
	}

	return num + "/" + den
}

// isBareNegative reports whether the rendered polynomial is a single
// negated term like "-2" or "-s", which needs no parentheses as numerator.
func isBareNegative(s string) bool {
	return strings.HasPrefix(s, "-") && !strings.Contains(s, " ")
}
