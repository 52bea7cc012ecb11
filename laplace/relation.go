// Package laplace: branch V–I relations in the transform domain.
package laplace

import (
	"fmt"
	"math/big"

	"github.com/lapnet/lapnet/circuit"
	"github.com/lapnet/lapnet/rational"
)

// Relation is one branch equation V·VCoeff + I·ICoeff = RHS over rational
// functions of s. Exactly one of the coefficient layouts below occurs:
//
//	R:  V − R·I      = 0
//	L:  V − sL·I     = 0
//	C:  V − I/(sC)   = 0
//	V:  V            = value/s   (current free)
//	I:       I       = value/s   (voltage free)
//
// Sources are ideal steps of the given magnitude switching on at t = 0,
// hence the value/s right-hand side. Initial conditions are zero: no
// initial-current term for L, no initial-voltage term for C.
type Relation struct {
	VCoeff rational.Func
	ICoeff rational.Func
	RHS    rational.Func
}

// BranchRelation maps a component kind and value to its transform-domain
// relation. Kinds outside {R,L,C,V,I} fail with circuit.ErrUnsupportedKind.
// The value crosses into exact arithmetic via rational.Decimal.
func BranchRelation(kind circuit.Kind, value float64) (Relation, error) {
	val := rational.Decimal(value)
	one := rational.ConstInt(1)

	switch kind {
	case circuit.Resistor:
		return Relation{
			VCoeff: one,
			ICoeff: rational.Const(val).Neg(),
			RHS:    rational.ConstInt(0),
		}, nil

	case circuit.Inductor:
		return Relation{
			VCoeff: one,
			ICoeff: rational.S().Mul(rational.Const(val)).Neg(),
			RHS:    rational.ConstInt(0),
		}, nil

	case circuit.Capacitor:
		// 1/(sC) as an exact rational function.
		admittance, err := rational.NewFunc(
			rational.PolyInt(1),
			rational.NewPoly(new(big.Rat), val),
		)
		if err != nil {
			return Relation{}, fmt.Errorf("laplace: capacitor impedance: %w", err)
		}

		return Relation{
			VCoeff: one,
			ICoeff: admittance.Neg(),
			RHS:    rational.ConstInt(0),
		}, nil

	case circuit.VoltageSource:
		return Relation{
			VCoeff: one,
			ICoeff: rational.ConstInt(0),
			RHS:    stepSource(val),
		}, nil

	case circuit.CurrentSource:
		return Relation{
			VCoeff: rational.ConstInt(0),
			ICoeff: one,
			RHS:    stepSource(val),
		}, nil

	default:
		_, err := circuit.ParseKind(string(kind))

		return Relation{}, err
	}
}

// stepSource returns value/s, the transform of a step of the given
// magnitude.
func stepSource(val *big.Rat) rational.Func {
	f, _ := rational.NewFunc(rational.NewPoly(val), rational.PolyInt(0, 1)) // den s is nonzero

	return f
}
