package laplace

import (
	"errors"
	"fmt"
	"math"
)

// ErrSampleOption is returned for invalid sampling parameters.
var ErrSampleOption = errors.New("laplace: invalid sampling option")

// Default sampling grid: 200 points across the first ten seconds.
const (
	DefaultSampleCount = 200
	DefaultHorizon     = 10.0
)

// Sample is one (t, value) point of a sampled time function.
type Sample struct {
	T float64
	V float64
}

// SampleOption configures Samples.
type SampleOption func(*SampleOptions)

// SampleOptions holds the sampling grid parameters. Use
// DefaultSampleOptions for the standard [0,10]s / 200-point grid.
type SampleOptions struct {
	// Count is the number of evenly spaced samples, endpoints included.
	// Must be at least 2.
	Count int

	// Horizon is the end of the sampled interval [0, Horizon] in seconds.
	// Must be positive.
	Horizon float64
}

// WithSampleCount overrides the number of samples.
func WithSampleCount(n int) SampleOption {
	return func(o *SampleOptions) { o.Count = n }
}

// WithHorizon overrides the end of the sampled interval.
func WithHorizon(seconds float64) SampleOption {
	return func(o *SampleOptions) { o.Horizon = seconds }
}

// DefaultSampleOptions returns the standard grid parameters.
func DefaultSampleOptions() SampleOptions {
	return SampleOptions{Count: DefaultSampleCount, Horizon: DefaultHorizon}
}

// Samples evaluates f over Count evenly spaced points on [0, Horizon].
//
// A sample that evaluates to a non-finite value is dropped rather than
// aborting the run: the returned slice holds every successful sample and
// the error (wrapping ErrEvaluation, nil when all samples succeeded)
// reports how many were lost. Invalid options fail with ErrSampleOption
// and no samples.
func Samples(f TimeFunc, opts ...SampleOption) ([]Sample, error) {
	o := DefaultSampleOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Count < 2 {
		return nil, fmt.Errorf("%w: count %d, need at least 2", ErrSampleOption, o.Count)
	}
	if !(o.Horizon > 0) {
		return nil, fmt.Errorf("%w: horizon %v, need > 0", ErrSampleOption, o.Horizon)
	}

	out := make([]Sample, 0, o.Count)
	dropped := 0
	step := o.Horizon / float64(o.Count-1)
	for i := 0; i < o.Count; i++ {
		t := float64(i) * step
		v := f.Eval(t)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			dropped++

			continue
		}
		out = append(out, Sample{T: t, V: v})
	}

	if dropped > 0 {
		return out, fmt.Errorf("%w: %d of %d samples non-finite", ErrEvaluation, dropped, o.Count)
	}

	return out, nil
}
