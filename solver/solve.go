package solver

import (
	"errors"
	"fmt"

	"github.com/lapnet/lapnet/circuit"
	"github.com/lapnet/lapnet/kirchhoff"
	"github.com/lapnet/lapnet/laplace"
	"github.com/lapnet/lapnet/rational"
	"github.com/lapnet/lapnet/spantree"
)

// Solve runs the complete analysis pipeline on a validated network:
// spanning tree, Kirchhoff matrices, system assembly, exact elimination,
// inverse transformation and sampling.
//
// All stages up to and including inversion are fatal on error (the
// computation is deterministic, so a retry cannot succeed); per-sample
// evaluation failures only degrade the affected label, recorded in
// Solution.SampleFailures.
func Solve(net *circuit.Network, opts ...Option) (*Solution, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	tree, err := spantree.Select(net)
	if err != nil {
		return nil, err
	}
	q, err := kirchhoff.CutSets(net, tree)
	if err != nil {
		return nil, err
	}
	b, err := kirchhoff.TieSets(net, tree)
	if err != nil {
		return nil, err
	}

	sys, err := assemble(net, q, b, o)
	if err != nil {
		return nil, err
	}
	labels := append([]string(nil), sys.labels...)
	values, err := sys.solve()
	if err != nil {
		return nil, err
	}

	sol := &Solution{
		Labels:         labels,
		Transform:      make(map[string]rational.Func, len(labels)),
		Time:           make(map[string]laplace.TimeFunc, len(labels)),
		Samples:        make(map[string][]laplace.Sample, len(labels)),
		SampleFailures: make(map[string]error),
		Tree:           tree,
	}
	for i, label := range labels {
		sol.Transform[label] = values[i]

		tf, err := laplace.Invert(values[i])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", label, err)
		}
		sol.Time[label] = tf

		samples, err := laplace.Samples(tf,
			laplace.WithSampleCount(o.SampleCount),
			laplace.WithHorizon(o.Horizon),
		)
		if err != nil {
			if !errors.Is(err, laplace.ErrEvaluation) {
				return nil, fmt.Errorf("%s: %w", label, err)
			}
			sol.SampleFailures[label] = err // degraded, not fatal
		}
		sol.Samples[label] = samples
	}

	return sol, nil
}
