// Command lapnet reads a circuit description as JSON on stdin, runs the
// transient analysis and writes the result as JSON on stdout.
//
// Input shape:
//
//	{
//	  "nodes": ["0", "1", "2"],
//	  "branches": [
//	    {"id": "V1", "from": "1", "to": "0", "type": "V", "value": 10},
//	    {"id": "R1", "from": "1", "to": "2", "type": "R", "value": 5},
//	    {"id": "C1", "from": "2", "to": "0", "type": "C", "value": 0.1}
//	  ]
//	}
//
// On success the output carries the s-domain solutions, time-domain
// expressions and (unless -plots=false) base64 PNG charts. On failure a
// {"status":"error"} document goes to stdout and the process exits 1.
// An empty stdin runs a built-in series RC demo circuit.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lapnet/lapnet/circuit"
	"github.com/lapnet/lapnet/render"
	"github.com/lapnet/lapnet/solver"
)

type branchInput struct {
	ID    string  `json:"id"`
	From  string  `json:"from"`
	To    string  `json:"to"`
	Type  string  `json:"type"`
	Value float64 `json:"value"`
}

type circuitInput struct {
	Nodes    []string      `json:"nodes"`
	Branches []branchInput `json:"branches"`
}

type successOutput struct {
	Status     string            `json:"status"`
	Equations  map[string]string `json:"equations"`
	TimeDomain map[string]string `json:"time_domain"`
	Plots      []render.Plot     `json:"plots,omitempty"`
}

type errorOutput struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// demo is the circuit analyzed when stdin is empty: a 10 V step charging
// a 0.1 F capacitor through 5 Ω.
const demo = `{
  "nodes": ["0", "1", "2"],
  "branches": [
    {"id": "V1", "from": "1", "to": "0", "type": "V", "value": 10},
    {"id": "R1", "from": "1", "to": "2", "type": "R", "value": 5},
    {"id": "C1", "from": "2", "to": "0", "type": "C", "value": 0.1}
  ]
}`

func main() {
	plots := flag.Bool("plots", true, "render base64 PNG charts into the result")
	samples := flag.Int("samples", 0, "points per sampled waveform (0 = default)")
	horizon := flag.Float64("horizon", 0, "sampled interval end in seconds (0 = default)")
	flag.Parse()

	if err := run(os.Stdin, os.Stdout, *plots, *samples, *horizon); err != nil {
		fmt.Fprintln(os.Stderr, "lapnet:", err)
		os.Exit(1)
	}
}

func run(in io.Reader, out io.Writer, plots bool, samples int, horizon float64) error {
	enc := json.NewEncoder(out)

	raw, err := io.ReadAll(in)
	if err != nil {
		return fail(enc, fmt.Errorf("read stdin: %w", err))
	}
	if strings.TrimSpace(string(raw)) == "" {
		raw = []byte(demo)
	}

	var input circuitInput
	if err := json.Unmarshal(raw, &input); err != nil {
		return fail(enc, fmt.Errorf("decode input: %w", err))
	}

	result, err := analyze(input, plots, samples, horizon)
	if err != nil {
		return fail(enc, err)
	}

	return enc.Encode(result)
}

func analyze(input circuitInput, plots bool, samples int, horizon float64) (*successOutput, error) {
	branches := make([]circuit.Branch, len(input.Branches))
	for i, b := range input.Branches {
		kind, err := circuit.ParseKind(b.Type)
		if err != nil {
			return nil, fmt.Errorf("branch %s: %w", b.ID, err)
		}
		branches[i] = circuit.Branch{
			ID:    b.ID,
			From:  b.From,
			To:    b.To,
			Kind:  kind,
			Value: b.Value,
		}
	}

	net, err := circuit.New(input.Nodes, branches)
	if err != nil {
		return nil, err
	}

	var opts []solver.Option
	if samples > 0 {
		opts = append(opts, solver.WithSampleCount(samples))
	}
	if horizon > 0 {
		opts = append(opts, solver.WithHorizon(horizon))
	}
	sol, err := solver.Solve(net, opts...)
	if err != nil {
		return nil, err
	}

	result := &successOutput{
		Status:     "success",
		Equations:  sol.Equations(),
		TimeDomain: sol.TimeDomain(),
	}
	if plots {
		result.Plots, err = render.Plots(sol)
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

// fail writes the error document to stdout and propagates the cause so
// main can exit nonzero with the detail on stderr.
func fail(enc *json.Encoder, cause error) error {
	doc := errorOutput{
		Status:  "error",
		Message: fmt.Sprintf("%s: %v", solver.Classify(cause), cause),
	}
	if err := enc.Encode(doc); err != nil {
		return errors.Join(cause, err)
	}

	return cause
}
