// Package solver declares the solution types, options and error taxonomy
// mapping of the analysis pipeline.
package solver

import (
	"errors"

	"github.com/lapnet/lapnet/circuit"
	"github.com/lapnet/lapnet/kirchhoff"
	"github.com/lapnet/lapnet/laplace"
	"github.com/lapnet/lapnet/rational"
	"github.com/lapnet/lapnet/spantree"
)

// Sentinel errors of the solving stage.
var (
	// ErrNilNetwork is returned when Solve receives a nil network.
	ErrNilNetwork = errors.New("solver: network is nil")

	// ErrSingular is returned when the assembled system is not uniquely
	// solvable, typically a voltage-source loop or current-source
	// cut-set that the tree-selection priority could not avoid.
	ErrSingular = errors.New("solver: singular system")
)

// Option configures Solve.
type Option func(*Options)

// Options holds pipeline parameters. The label prefixes are part of the
// external interface contract and travel here explicitly rather than as
// package globals.
type Options struct {
	// SampleCount and Horizon configure time-domain sampling; see
	// laplace.SampleOptions.
	SampleCount int
	Horizon     float64

	// VoltagePrefix and CurrentPrefix form result labels
	// "<prefix><branchID>".
	VoltagePrefix string
	CurrentPrefix string
}

// WithSampleCount overrides the number of time-domain samples per label.
func WithSampleCount(n int) Option {
	return func(o *Options) { o.SampleCount = n }
}

// WithHorizon overrides the sampled interval [0, seconds].
func WithHorizon(seconds float64) Option {
	return func(o *Options) { o.Horizon = seconds }
}

// WithLabelPrefixes overrides the "V_"/"I_" label convention.
func WithLabelPrefixes(voltage, current string) Option {
	return func(o *Options) {
		o.VoltagePrefix = voltage
		o.CurrentPrefix = current
	}
}

// DefaultOptions returns the standard pipeline parameters: the default
// sampling grid and the V_/I_ label convention.
func DefaultOptions() Options {
	return Options{
		SampleCount:   laplace.DefaultSampleCount,
		Horizon:       laplace.DefaultHorizon,
		VoltagePrefix: "V_",
		CurrentPrefix: "I_",
	}
}

// Solution is the complete analysis result. Labels lists every result key
// in deterministic order: first all branch voltages, then all branch
// currents, each in branch declaration order.
type Solution struct {
	// Labels in unknown-vector order: V_* block, then I_* block.
	Labels []string

	// Transform maps a label to its closed-form rational function of s.
	Transform map[string]rational.Func

	// Time maps a label to its causal time-domain expression.
	Time map[string]laplace.TimeFunc

	// Samples maps a label to its evaluated (t, value) grid.
	Samples map[string][]laplace.Sample

	// SampleFailures records labels whose sampling was degraded by
	// non-finite values (laplace.ErrEvaluation). Present labels still
	// carry whatever samples succeeded.
	SampleFailures map[string]error

	// Tree is the twig/link partition used for the solve, exposed for
	// diagnostics and testing.
	Tree *spantree.Tree
}

// Equations renders the transform-domain solution as strings, keyed by
// label, per the external result contract.
func (s *Solution) Equations() map[string]string {
	out := make(map[string]string, len(s.Labels))
	for _, l := range s.Labels {
		out[l] = s.Transform[l].String()
	}

	return out
}

// TimeDomain renders the time-domain solution as strings, keyed by label.
func (s *Solution) TimeDomain() map[string]string {
	out := make(map[string]string, len(s.Labels))
	for _, l := range s.Labels {
		out[l] = s.Time[l].String()
	}

	return out
}

// Classify maps a pipeline error onto its external taxonomy kind. Unknown
// errors classify as "InternalError".
func Classify(err error) string {
	switch {
	case errors.Is(err, circuit.ErrUnsupportedKind):
		return "UnsupportedComponentError"
	case errors.Is(err, circuit.ErrMissingReference),
		errors.Is(err, circuit.ErrNoNodes),
		errors.Is(err, circuit.ErrDuplicateNode),
		errors.Is(err, circuit.ErrEmptyNodeID),
		errors.Is(err, circuit.ErrDuplicateBranch),
		errors.Is(err, circuit.ErrEmptyBranchID),
		errors.Is(err, circuit.ErrUnknownEndpoint),
		errors.Is(err, circuit.ErrSelfLoop),
		errors.Is(err, circuit.ErrNonPositiveValue):
		return "ValidationError"
	case errors.Is(err, spantree.ErrDisconnected):
		return "ConnectivityError"
	case errors.Is(err, ErrSingular), errors.Is(err, kirchhoff.ErrTreeMismatch):
		return "SingularSystemError"
	case errors.Is(err, laplace.ErrImproper):
		return "InversionError"
	case errors.Is(err, laplace.ErrEvaluation):
		return "EvaluationError"
	default:
		return "InternalError"
	}
}
