package laplace

import "math/cmplx"

// Forward returns the Laplace image of f as an evaluator over the complex
// plane. Used to close the inversion round trip: Forward(Invert(F)) agrees
// with F wherever both are defined, up to pole-extraction noise.
//
// Per term amp·t^k·e^{σt}·cos(ωt+φ), with p = σ+jω and c = (amp/2)·e^{jφ}:
//
//	ℒ{…} = c·k!/(s−p)^{k+1} + c̄·k!/(s−p̄)^{k+1}
//
// which for a real term (ω = φ = 0) collapses to amp·k!/(s−σ)^{k+1}.
func Forward(f TimeFunc) func(s complex128) complex128 {
	terms := append([]Term(nil), f.Terms...)

	return func(s complex128) complex128 {
		var acc complex128
		for _, tm := range terms {
			k := factorial(tm.Power)
			if tm.Freq == 0 && tm.Phase == 0 {
				d := cpow(s-complex(tm.Decay, 0), tm.Power+1)
				acc += complex(tm.Amp*k, 0) / d

				continue
			}
			p := complex(tm.Decay, tm.Freq)
			c := complex(tm.Amp/2, 0) * cmplx.Exp(complex(0, tm.Phase))
			acc += c * complex(k, 0) / cpow(s-p, tm.Power+1)
			acc += cmplx.Conj(c) * complex(k, 0) / cpow(s-cmplx.Conj(p), tm.Power+1)
		}

		return acc
	}
}

// cpow raises z to a small non-negative integer power.
func cpow(z complex128, n int) complex128 {
	out := complex(1, 0)
	for i := 0; i < n; i++ {
		out *= z
	}

	return out
}
