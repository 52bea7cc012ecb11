package laplace

import (
	"math"
	"strconv"
	"strings"
)

// Term is one causal summand amp·t^power·e^{decay·t}·cos(freq·t + phase),
// valid for t ≥ 0 (implicit unit step). A pure exponential or constant has
// Freq and Phase zero; then the cosine factor is identically one.
type Term struct {
	Amp   float64 // amplitude, factorials from repeated poles folded in
	Power int     // power of t (≥ 0), from pole multiplicity
	Decay float64 // σ, the real part of the originating pole
	Freq  float64 // ω, the imaginary part of the pole pair; 0 for real poles
	Phase float64 // φ in radians
}

// Eval evaluates the term at time t.
func (tm Term) Eval(t float64) float64 {
	v := tm.Amp
	if tm.Power > 0 {
		v *= math.Pow(t, float64(tm.Power))
	}
	if tm.Decay != 0 {
		v *= math.Exp(tm.Decay * t)
	}
	if tm.Freq != 0 || tm.Phase != 0 {
		v *= math.Cos(tm.Freq*t + tm.Phase)
	}

	return v
}

// TimeFunc is a causal time-domain expression: a sum of Terms. The zero
// value is the zero function.
type TimeFunc struct {
	Terms []Term
}

// Eval evaluates the sum at time t.
func (f TimeFunc) Eval(t float64) float64 {
	var v float64
	for _, tm := range f.Terms {
		v += tm.Eval(t)
	}

	return v
}

// IsZero reports whether the function has no terms.
func (f TimeFunc) IsZero() bool { return len(f.Terms) == 0 }

// String renders the expression for the external result contract, e.g.
// "10 - 10*exp(-2*t)" or "2*exp(-1*t)*cos(2*t - 0.7854)". Amplitudes and
// pole parts are printed to six significant digits; the underlying float64
// values stay untouched for sampling.
func (f TimeFunc) String() string {
	if f.IsZero() {
		return "0"
	}

	var sb strings.Builder
	for i, tm := range f.Terms {
		amp := tm.Amp
		if i == 0 {
			if amp < 0 {
				sb.WriteByte('-')
				amp = -amp
			}
		} else if amp < 0 {
			sb.WriteString(" - ")
			amp = -amp
		} else {
			sb.WriteString(" + ")
		}
		sb.WriteString(formatTerm(amp, tm))
	}

	return sb.String()
}

// formatTerm renders one term with a non-negative amplitude.
func formatTerm(amp float64, tm Term) string {
	var parts []string

	tPart := ""
	switch {
	case tm.Power == 1:
		tPart = "t"
	case tm.Power > 1:
		tPart = "t^" + strconv.Itoa(tm.Power)
	}

	// Leading amplitude, omitted when 1 and something follows.
	hasTail := tPart != "" || tm.Decay != 0 || tm.Freq != 0 || tm.Phase != 0
	if !hasTail || sig(amp) != "1" {
		parts = append(parts, sig(amp))
	}
	if tPart != "" {
		parts = append(parts, tPart)
	}
	if tm.Decay != 0 {
		parts = append(parts, "exp("+sig(tm.Decay)+"*t)")
	}
	if tm.Freq != 0 || tm.Phase != 0 {
		arg := sig(tm.Freq) + "*t"
		switch {
		case tm.Phase > 0:
			arg += " + " + sig(tm.Phase)
		case tm.Phase < 0:
			arg += " - " + sig(-tm.Phase)
		}
		parts = append(parts, "cos("+arg+")")
	}

	return strings.Join(parts, "*")
}

// sig formats a float to six significant digits, trimming exponent noise
// from nearly-integral values produced by numeric pole extraction.
func sig(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
