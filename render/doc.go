// Package render turns sampled solver waveforms into base64-encoded PNG
// plots, one per solved variable.
//
// What: Plots walks a Solution's sample series in label order and renders
// each as a single-line chart titled "<label> vs Time" on a fixed 8×5 inch
// canvas. Each result pairs the variable label with its PNG image encoded
// as a base64 string, ready for embedding in a JSON result.
//
// Why: the solver's output contract carries plots inline rather than as
// files, so callers on the other side of a pipe can display them without
// touching the filesystem.
//
// Labels whose sampling failed (no usable points) are skipped rather than
// rendered empty; the solver records the failure reason separately.
package render
