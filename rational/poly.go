// Package rational: dense exact polynomials in one variable.
package rational

import (
	"errors"
	"math/big"
	"strconv"
	"strings"
)

// ErrDivisionByZero is returned by Div on a zero divisor.
var ErrDivisionByZero = errors.New("rational: division by zero")

// Poly is a polynomial in s with exact rational coefficients, stored in
// ascending order: Poly{c0, c1, c2} is c0 + c1·s + c2·s².
//
// Invariant: no trailing zero coefficients; the zero polynomial has length
// zero. Constructors and operations maintain the invariant and always copy,
// so a Poly never shares big.Rat storage with its operands.
type Poly []*big.Rat

// NewPoly builds a polynomial from ascending coefficients. Nil entries count
// as zero. The input values are copied.
func NewPoly(coeffs ...*big.Rat) Poly {
	p := make(Poly, len(coeffs))
	for i, c := range coeffs {
		if c == nil {
			p[i] = new(big.Rat)
		} else {
			p[i] = new(big.Rat).Set(c)
		}
	}

	return p.trim()
}

// PolyInt builds a polynomial from ascending integer coefficients.
func PolyInt(coeffs ...int64) Poly {
	p := make(Poly, len(coeffs))
	for i, c := range coeffs {
		p[i] = new(big.Rat).SetInt64(c)
	}

	return p.trim()
}

// Decimal converts a float64 to an exact rational using its shortest
// decimal representation, so Decimal(0.1) is exactly 1/10 rather than the
// binary float nearest 0.1. Component values cross into the algebra through
// this single point.
func Decimal(v float64) *big.Rat {
	r, ok := new(big.Rat).SetString(strconv.FormatFloat(v, 'f', -1, 64))
	if !ok {
		// FormatFloat emits no parseable form only for NaN/Inf, which
		// validation rejects long before values reach the algebra.
		return new(big.Rat)
	}

	return r
}

// trim drops trailing zero coefficients in place and returns p.
func (p Poly) trim() Poly {
	n := len(p)
	for n > 0 && p[n-1].Sign() == 0 {
		n--
	}

	return p[:n]
}

// Degree returns the polynomial degree, −1 for the zero polynomial.
func (p Poly) Degree() int { return len(p) - 1 }

// IsZero reports whether p is the zero polynomial.
func (p Poly) IsZero() bool { return len(p) == 0 }

// Coeff returns a copy of the coefficient of s^i (zero beyond the degree).
func (p Poly) Coeff(i int) *big.Rat {
	if i < 0 || i >= len(p) {
		return new(big.Rat)
	}

	return new(big.Rat).Set(p[i])
}

// Clone returns a deep copy of p.
func (p Poly) Clone() Poly {
	out := make(Poly, len(p))
	for i, c := range p {
		out[i] = new(big.Rat).Set(c)
	}

	return out
}

// Add returns p + q.
func (p Poly) Add(q Poly) Poly {
	out := make(Poly, max(len(p), len(q)))
	for i := range out {
		out[i] = new(big.Rat)
		if i < len(p) {
			out[i].Add(out[i], p[i])
		}
		if i < len(q) {
			out[i].Add(out[i], q[i])
		}
	}

	return out.trim()
}

// Sub returns p − q.
func (p Poly) Sub(q Poly) Poly { return p.Add(q.Neg()) }

// Neg returns −p.
func (p Poly) Neg() Poly {
	out := make(Poly, len(p))
	for i, c := range p {
		out[i] = new(big.Rat).Neg(c)
	}

	return out
}

// Scale returns r·p.
func (p Poly) Scale(r *big.Rat) Poly {
	if r.Sign() == 0 {
		return Poly{}
	}
	out := make(Poly, len(p))
	for i, c := range p {
		out[i] = new(big.Rat).Mul(c, r)
	}

	return out.trim()
}

// Mul returns p · q.
func (p Poly) Mul(q Poly) Poly {
	if p.IsZero() || q.IsZero() {
		return Poly{}
	}
	out := make(Poly, len(p)+len(q)-1)
	for i := range out {
		out[i] = new(big.Rat)
	}
	tmp := new(big.Rat)
	for i, a := range p {
		for j, b := range q {
			out[i+j].Add(out[i+j], tmp.Mul(a, b))
		}
	}

	return out.trim()
}

// ShiftUp returns p · s^k.
func (p Poly) ShiftUp(k int) Poly {
	if p.IsZero() {
		return Poly{}
	}
	out := make(Poly, len(p)+k)
	for i := 0; i < k; i++ {
		out[i] = new(big.Rat)
	}
	for i, c := range p {
		out[k+i] = new(big.Rat).Set(c)
	}

	return out
}

// Div returns the Euclidean quotient and remainder of p by q, with
// deg(rem) < deg(q). Dividing by the zero polynomial yields
// ErrDivisionByZero.
func (p Poly) Div(q Poly) (quo, rem Poly, err error) {
	if q.IsZero() {
		return nil, nil, ErrDivisionByZero
	}
	rem = p.Clone()
	if p.Degree() < q.Degree() {
		return Poly{}, rem, nil
	}

	quo = make(Poly, p.Degree()-q.Degree()+1)
	for i := range quo {
		quo[i] = new(big.Rat)
	}
	lead := q[len(q)-1]
	tmp := new(big.Rat)
	for rem.Degree() >= q.Degree() {
		shift := rem.Degree() - q.Degree()
		factor := new(big.Rat).Quo(rem[len(rem)-1], lead)
		quo[shift].Set(factor)
		// rem -= factor · s^shift · q
		for i, c := range q {
			rem[shift+i].Sub(rem[shift+i], tmp.Mul(factor, c))
		}
		rem = rem.trim()
	}

	return quo.trim(), rem, nil
}

// LeadCoeff returns a copy of the leading coefficient (zero for the zero
// polynomial).
func (p Poly) LeadCoeff() *big.Rat {
	if p.IsZero() {
		return new(big.Rat)
	}

	return new(big.Rat).Set(p[len(p)-1])
}

// Monic returns p scaled so its leading coefficient is one. The zero
// polynomial is returned unchanged.
func (p Poly) Monic() Poly {
	if p.IsZero() {
		return Poly{}
	}

	return p.Scale(new(big.Rat).Inv(p[len(p)-1]))
}

// GCD returns the monic greatest common divisor of p and q via the
// Euclidean algorithm. Each remainder is made monic to keep coefficient
// growth in check. GCD with the zero polynomial is the other operand,
// monic; GCD of two zero polynomials is zero.
func GCD(p, q Poly) Poly {
	a, b := p.Clone(), q.Clone()
	for !b.IsZero() {
		_, r, _ := a.Div(b) // b is nonzero here, Div cannot fail
		a, b = b, r.Monic()
	}

	return a.Monic()
}

// Derivative returns dp/ds.
func (p Poly) Derivative() Poly {
	if len(p) <= 1 {
		return Poly{}
	}
	out := make(Poly, len(p)-1)
	for i := 1; i < len(p); i++ {
		out[i-1] = new(big.Rat).Mul(p[i], new(big.Rat).SetInt64(int64(i)))
	}

	return out.trim()
}

// Equal reports exact coefficient-wise equality.
func (p Poly) Equal(q Poly) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i].Cmp(q[i]) != 0 {
			return false
		}
	}

	return true
}

// Float64s returns the coefficients converted to float64, ascending. The
// conversion is the only lossy step in the pipeline and happens just before
// numeric pole extraction.
func (p Poly) Float64s() []float64 {
	out := make([]float64, len(p))
	for i, c := range p {
		out[i], _ = c.Float64()
	}

	return out
}

// Eval evaluates p at a complex point via Horner's scheme, using float64
// images of the coefficients.
func (p Poly) Eval(z complex128) complex128 {
	var acc complex128
	for i := len(p) - 1; i >= 0; i-- {
		f, _ := p[i].Float64()
		acc = acc*z + complex(f, 0)
	}

	return acc
}

// String renders p in descending order with "s" as the variable, e.g.
// "5*s^2 + 3*s - 1/10". The zero polynomial prints as "0". Output is
// deterministic and used verbatim in the external result contract.
func (p Poly) String() string {
	if p.IsZero() {
		return "0"
	}

	var sb strings.Builder
	for i := len(p) - 1; i >= 0; i-- {
		c := p[i]
		if c.Sign() == 0 {
			continue
		}

		// Sign separator.
		if sb.Len() == 0 {
			if c.Sign() < 0 {
				sb.WriteByte('-')
			}
		} else if c.Sign() < 0 {
			sb.WriteString(" - ")
		} else {
			sb.WriteString(" + ")
		}

		abs := new(big.Rat).Abs(c)
		one := abs.Cmp(big.NewRat(1, 1)) == 0
		switch {
		case i == 0:
			sb.WriteString(abs.RatString())
		case one && i == 1:
			sb.WriteString("s")
		case one:
			sb.WriteString("s^" + strconv.Itoa(i))
		case i == 1:
			sb.WriteString(abs.RatString() + "*s")
		default:
			sb.WriteString(abs.RatString() + "*s^" + strconv.Itoa(i))
		}
	}

	return sb.String()
}
