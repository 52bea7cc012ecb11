// Package lapnet analyzes the step response of linear RLC circuits with
// exact symbolic algebra, built on the graph-theoretic loop/cut-set method
// rather than nodal analysis.
//
// 🚀 What is lapnet?
//
//	A transient circuit solver that takes a netlist and returns closed-form
//	answers:
//		• Graph model: nodes & branches with validation (circuit/)
//		• Spanning tree: source-aware twig/link partition (spantree/)
//		• Kirchhoff matrices: fundamental cut sets & tie sets (kirchhoff/)
//		• Exact algebra: rational functions over ℚ(s) (rational/)
//		• Laplace domain: branch relations, inversion, sampling (laplace/)
//		• Orchestration: assemble, eliminate, invert, sample (solver/)
//		• Charts: base64 PNG waveforms (render/)
//
// ✨ Why choose lapnet?
//
//   - Exact where it matters – Gaussian elimination over big.Rat, so
//     Kirchhoff's laws hold identically, not to a tolerance
//   - Closed-form output – "10 - 10*exp(-2*t)", not just sample arrays
//   - Deterministic – same netlist, same tree, same strings, every run
//   - Small surface – one Solve call, functional options, sentinel errors
//
// Quick ASCII example, a 10 V step charging a capacitor:
//
//	    1───R1───2
//	    │        │
//	    V1       C1
//	    │        │
//	    0────────0
//
//	net, _ := circuit.New(
//		[]string{"0", "1", "2"},
//		[]circuit.Branch{
//			{ID: "V1", From: "1", To: "0", Kind: circuit.VoltageSource, Value: 10},
//			{ID: "R1", From: "1", To: "2", Kind: circuit.Resistor, Value: 5},
//			{ID: "C1", From: "2", To: "0", Kind: circuit.Capacitor, Value: 0.1},
//		},
//	)
//	sol, _ := solver.Solve(net)
//	fmt.Println(sol.TimeDomain()["V_C1"]) // 10 - 10*exp(-2*t)
//
// The cmd/lapnet command wraps the same pipeline in a JSON stdin/stdout
// contract, including rendered plots.
package lapnet
