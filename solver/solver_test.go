package solver_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lapnet/lapnet/circuit"
	"github.com/lapnet/lapnet/kirchhoff"
	"github.com/lapnet/lapnet/laplace"
	"github.com/lapnet/lapnet/rational"
	"github.com/lapnet/lapnet/solver"
	"github.com/lapnet/lapnet/spantree"
)

func mustNet(t *testing.T, nodes []string, branches []circuit.Branch) *circuit.Network {
	t.Helper()
	net, err := circuit.New(nodes, branches)
	require.NoError(t, err)

	return net
}

func seriesRC(t *testing.T) *circuit.Network {
	return mustNet(t, []string{"0", "1", "2"}, []circuit.Branch{
		{ID: "V1", From: "1", To: "0", Kind: circuit.VoltageSource, Value: 10},
		{ID: "R1", From: "1", To: "2", Kind: circuit.Resistor, Value: 5},
		{ID: "C1", From: "2", To: "0", Kind: circuit.Capacitor, Value: 0.1},
	})
}

// ratio is a test shorthand for an exact rational function num/den.
func ratio(t *testing.T, num, den rational.Poly) rational.Func {
	t.Helper()
	f, err := rational.NewFunc(num, den)
	require.NoError(t, err)

	return f
}

func TestSolve_SeriesRC(t *testing.T) {
	sol, err := solver.Solve(seriesRC(t))
	require.NoError(t, err)

	// Label order: voltage block then current block, declaration order.
	assert.Equal(t, []string{"V_V1", "V_R1", "V_C1", "I_V1", "I_R1", "I_C1"}, sol.Labels)

	// Exact transform-domain solution: Z(s) = 5 + 10/s, I = (10/s)/Z.
	assert.True(t, sol.Transform["I_R1"].Equal(ratio(t, rational.PolyInt(2), rational.PolyInt(2, 1))),
		"I_R1 = %s", sol.Transform["I_R1"])
	assert.True(t, sol.Transform["V_C1"].Equal(ratio(t, rational.PolyInt(20), rational.PolyInt(0, 2, 1))),
		"V_C1 = %s", sol.Transform["V_C1"])
	assert.True(t, sol.Transform["V_V1"].Equal(ratio(t, rational.PolyInt(10), rational.PolyInt(0, 1))))
	assert.True(t, sol.Transform["V_R1"].Equal(ratio(t, rational.PolyInt(10), rational.PolyInt(2, 1))))
	assert.True(t, sol.Transform["I_V1"].Equal(ratio(t, rational.PolyInt(-2), rational.PolyInt(2, 1))))

	eqs := sol.Equations()
	assert.Equal(t, "2/(s + 2)", eqs["I_R1"])
	assert.Equal(t, "20/(s^2 + 2*s)", eqs["V_C1"])

	td := sol.TimeDomain()
	assert.Equal(t, "2*exp(-2*t)", td["I_R1"])
	assert.Equal(t, "10 - 10*exp(-2*t)", td["V_C1"])

	// Final-value check: the capacitor converges to the source voltage.
	assert.InDelta(t, 10, sol.Time["V_C1"].Eval(40), 1e-9)

	// Sampling ran for every label on the default grid.
	assert.Empty(t, sol.SampleFailures)
	for _, label := range sol.Labels {
		assert.Len(t, sol.Samples[label], laplace.DefaultSampleCount, label)
	}
}

// TestSolve_KirchhoffResiduals substitutes the symbolic solution back into
// Q·I = 0 and B·V = 0 and requires exact zero residuals.
func TestSolve_KirchhoffResiduals(t *testing.T) {
	nets := []*circuit.Network{
		seriesRC(t),
		// Two-loop RLC with both source types.
		mustNet(t, []string{"0", "1", "2"}, []circuit.Branch{
			{ID: "V1", From: "1", To: "0", Kind: circuit.VoltageSource, Value: 10},
			{ID: "R1", From: "1", To: "2", Kind: circuit.Resistor, Value: 2},
			{ID: "L1", From: "2", To: "0", Kind: circuit.Inductor, Value: 1},
			{ID: "C1", From: "2", To: "0", Kind: circuit.Capacitor, Value: 0.5},
			{ID: "I1", From: "0", To: "2", Kind: circuit.CurrentSource, Value: 1},
		}),
	}

	for _, net := range nets {
		sol, err := solver.Solve(net)
		require.NoError(t, err)
		tree := sol.Tree
		q, err := kirchhoff.CutSets(net, tree)
		require.NoError(t, err)
		b, err := kirchhoff.TieSets(net, tree)
		require.NoError(t, err)

		for r := 0; r < q.Rows(); r++ {
			residual := rational.ConstInt(0)
			for j := 0; j < net.NumBranches(); j++ {
				if v := q.At(r, j); v != 0 {
					term := sol.Transform["I_"+net.Branch(j).ID].Mul(rational.ConstInt(int64(v)))
					residual = residual.Add(term)
				}
			}
			assert.True(t, residual.IsZero(), "KCL row %d residual %s", r, residual)
		}
		for r := 0; r < b.Rows(); r++ {
			residual := rational.ConstInt(0)
			for j := 0; j < net.NumBranches(); j++ {
				if v := b.At(r, j); v != 0 {
					term := sol.Transform["V_"+net.Branch(j).ID].Mul(rational.ConstInt(int64(v)))
					residual = residual.Add(term)
				}
			}
			assert.True(t, residual.IsZero(), "KVL row %d residual %s", r, residual)
		}
	}
}

func TestSolve_SeriesRL(t *testing.T) {
	// V=10, R=5, L=2: i(t) = 2·(1 − e^{−2.5t}).
	net := mustNet(t, []string{"0", "1", "2"}, []circuit.Branch{
		{ID: "V1", From: "1", To: "0", Kind: circuit.VoltageSource, Value: 10},
		{ID: "R1", From: "1", To: "2", Kind: circuit.Resistor, Value: 5},
		{ID: "L1", From: "2", To: "0", Kind: circuit.Inductor, Value: 2},
	})
	sol, err := solver.Solve(net)
	require.NoError(t, err)

	i := sol.Time["I_R1"]
	for _, x := range []float64{0, 0.1, 0.5, 1, 3} {
		assert.InDelta(t, 2*(1-math.Exp(-2.5*x)), i.Eval(x), 1e-9, "t=%v", x)
	}
}

func TestSolve_SeriesRLC_Oscillatory(t *testing.T) {
	// V=1, R=2, L=1, C=0.5: I(s) = 1/(s²+2s+2) ⇒ i(t) = e^{−t}·sin t.
	net := mustNet(t, []string{"0", "1", "2", "3"}, []circuit.Branch{
		{ID: "V1", From: "1", To: "0", Kind: circuit.VoltageSource, Value: 1},
		{ID: "R1", From: "1", To: "2", Kind: circuit.Resistor, Value: 2},
		{ID: "L1", From: "2", To: "3", Kind: circuit.Inductor, Value: 1},
		{ID: "C1", From: "3", To: "0", Kind: circuit.Capacitor, Value: 0.5},
	})
	sol, err := solver.Solve(net)
	require.NoError(t, err)

	assert.True(t, sol.Transform["I_R1"].Equal(ratio(t, rational.PolyInt(1), rational.PolyInt(2, 2, 1))),
		"I_R1 = %s", sol.Transform["I_R1"])
	i := sol.Time["I_R1"]
	for _, x := range []float64{0, 0.5, 1, 2, 5} {
		assert.InDelta(t, math.Exp(-x)*math.Sin(x), i.Eval(x), 1e-9, "t=%v", x)
	}
}

func TestSolve_CurrentSourceDual(t *testing.T) {
	// A 2 A step into a 5 Ω resistor: v(t) = 10 from t = 0.
	net := mustNet(t, []string{"0", "1"}, []circuit.Branch{
		{ID: "I1", From: "0", To: "1", Kind: circuit.CurrentSource, Value: 2},
		{ID: "R1", From: "1", To: "0", Kind: circuit.Resistor, Value: 5},
	})
	sol, err := solver.Solve(net)
	require.NoError(t, err)

	assert.Equal(t, "2/s", sol.Equations()["I_R1"])
	assert.Equal(t, "10/s", sol.Equations()["V_R1"])
	assert.Equal(t, "10", sol.TimeDomain()["V_R1"])
	// The source sees the resistor voltage with opposite polarity.
	assert.Equal(t, "-10/s", sol.Equations()["V_I1"])
}

func TestSolve_VoltageSourceLoopIsSingular(t *testing.T) {
	// Two ideal voltage sources in parallel: rank-deficient by
	// construction, surfaced as ErrSingular, never silently recovered.
	net := mustNet(t, []string{"0", "1"}, []circuit.Branch{
		{ID: "V1", From: "1", To: "0", Kind: circuit.VoltageSource, Value: 10},
		{ID: "V2", From: "1", To: "0", Kind: circuit.VoltageSource, Value: 5},
	})
	sol, err := solver.Solve(net)
	assert.Nil(t, sol)
	assert.ErrorIs(t, err, solver.ErrSingular)
}

func TestSolve_CurrentSourceCutIsSingular(t *testing.T) {
	// Two current sources in series leave their shared node's voltages
	// undetermined.
	net := mustNet(t, []string{"0", "1", "2"}, []circuit.Branch{
		{ID: "I1", From: "0", To: "1", Kind: circuit.CurrentSource, Value: 1},
		{ID: "I2", From: "1", To: "2", Kind: circuit.CurrentSource, Value: 2},
		{ID: "R1", From: "2", To: "0", Kind: circuit.Resistor, Value: 5},
	})
	sol, err := solver.Solve(net)
	assert.Nil(t, sol)
	assert.ErrorIs(t, err, solver.ErrSingular)
}

func TestSolve_Disconnected(t *testing.T) {
	net := mustNet(t, []string{"0", "1", "2"}, []circuit.Branch{
		{ID: "V1", From: "1", To: "0", Kind: circuit.VoltageSource, Value: 1},
	})
	sol, err := solver.Solve(net)
	assert.Nil(t, sol)
	assert.ErrorIs(t, err, spantree.ErrDisconnected)
}

func TestSolve_Deterministic(t *testing.T) {
	first, err := solver.Solve(seriesRC(t))
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := solver.Solve(seriesRC(t))
		require.NoError(t, err)
		assert.Equal(t, first.Labels, again.Labels)
		assert.Equal(t, first.Equations(), again.Equations())
		assert.Equal(t, first.TimeDomain(), again.TimeDomain())
		assert.Equal(t, first.Tree.Twigs, again.Tree.Twigs)
	}
}

func TestSolve_Options(t *testing.T) {
	sol, err := solver.Solve(seriesRC(t),
		solver.WithSampleCount(50),
		solver.WithHorizon(2),
		solver.WithLabelPrefixes("U.", "J."),
	)
	require.NoError(t, err)
	assert.Contains(t, sol.Transform, "U.C1")
	assert.Contains(t, sol.Transform, "J.R1")
	require.Len(t, sol.Samples["J.R1"], 50)
	assert.InDelta(t, 2.0, sol.Samples["J.R1"][49].T, 1e-12)
}

func TestSolve_NilNetwork(t *testing.T) {
	sol, err := solver.Solve(nil)
	assert.Nil(t, sol)
	assert.ErrorIs(t, err, solver.ErrNilNetwork)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{circuit.ErrSelfLoop, "ValidationError"},
		{circuit.ErrNonPositiveValue, "ValidationError"},
		{circuit.ErrMissingReference, "ValidationError"},
		{circuit.ErrUnsupportedKind, "UnsupportedComponentError"},
		{spantree.ErrDisconnected, "ConnectivityError"},
		{solver.ErrSingular, "SingularSystemError"},
		{laplace.ErrImproper, "InversionError"},
		{laplace.ErrEvaluation, "EvaluationError"},
		{assert.AnError, "InternalError"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, solver.Classify(tc.err))
	}
}
