package render_test

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lapnet/lapnet/circuit"
	"github.com/lapnet/lapnet/render"
	"github.com/lapnet/lapnet/solver"
)

func solve(t *testing.T) *solver.Solution {
	t.Helper()
	net, err := circuit.New([]string{"0", "1", "2"}, []circuit.Branch{
		{ID: "V1", From: "1", To: "0", Kind: circuit.VoltageSource, Value: 10},
		{ID: "R1", From: "1", To: "2", Kind: circuit.Resistor, Value: 5},
		{ID: "C1", From: "2", To: "0", Kind: circuit.Capacitor, Value: 0.1},
	})
	require.NoError(t, err)
	sol, err := solver.Solve(net, solver.WithSampleCount(16))
	require.NoError(t, err)

	return sol
}

func TestPlots(t *testing.T) {
	sol := solve(t)
	plots, err := render.Plots(sol)
	require.NoError(t, err)
	require.Len(t, plots, len(sol.Labels))

	for i, p := range plots {
		assert.Equal(t, sol.Labels[i], p.Name)
		raw, err := base64.StdEncoding.DecodeString(p.Image)
		require.NoError(t, err, p.Name)
		// PNG signature.
		require.Greater(t, len(raw), 8, p.Name)
		assert.Equal(t, []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, raw[:8], p.Name)
	}
}

func TestPlots_SkipsUnsampledLabels(t *testing.T) {
	sol := solve(t)
	delete(sol.Samples, "V_C1")

	plots, err := render.Plots(sol)
	require.NoError(t, err)
	assert.Len(t, plots, len(sol.Labels)-1)
	for _, p := range plots {
		assert.NotEqual(t, "V_C1", p.Name)
	}
}
