package render

import (
	"bytes"
	"encoding/base64"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/lapnet/lapnet/laplace"
	"github.com/lapnet/lapnet/solver"
)

// Canvas dimensions of every rendered chart.
const (
	Width  = 8 * vg.Inch
	Height = 5 * vg.Inch
)

// Plot is one rendered waveform: a human-readable name and a base64-encoded
// PNG image.
type Plot struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

// Plots renders one chart per solved variable, in label order. Variables
// with no samples (sampling failed for them) are skipped.
func Plots(sol *solver.Solution) ([]Plot, error) {
	out := make([]Plot, 0, len(sol.Labels))
	for _, label := range sol.Labels {
		samples := sol.Samples[label]
		if len(samples) == 0 {
			continue
		}
		img, err := renderPNG(label, samples)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", label, err)
		}
		out = append(out, Plot{
			Name:  label,
			Image: base64.StdEncoding.EncodeToString(img),
		})
	}

	return out, nil
}

func renderPNG(label string, samples []laplace.Sample) ([]byte, error) {
	pts := make(plotter.XYs, len(samples))
	for i, s := range samples {
		pts[i].X = s.T
		pts[i].Y = s.V
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = label + " vs Time"
	p.X.Label.Text = "Time (s)"
	p.Y.Label.Text = label
	p.Add(plotter.NewGrid(), line)

	w, err := p.WriterTo(Width, Height, "png")
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
