// Package nli defines parameter records, options, and sentinel errors for
// the GN-model integral engine.
package nli

import "errors"

// Sentinel errors for NLI computation.
var (
	// ErrNoChannels indicates a comb with fewer than two channels; the
	// engine derives its frequency limits from consecutive channel spacing.
	ErrNoChannels = errors.New("nli: comb must contain at least two channels")
	// ErrGridBounds indicates an accuracy configuration violating
	// 1 ≤ MinGridPoints ≤ MaxGridPoints.
	ErrGridBounds = errors.New("nli: grid bounds must satisfy 1 ≤ MinGridPoints ≤ MaxGridPoints")
)

// Fiber describes a single fiber span whose nominal loss is already
// compensated.
type Fiber struct {
	Beta2      float64 // dispersion coefficient, ps/THz/km
	SpanLength float64 // span length, km
	LossDB     float64 // loss coefficient, dB/km
	Gamma      float64 // nonlinear coefficient, 1/W/km
}

// Params tunes integration accuracy and selects the evaluation frequencies.
//
// Fields:
//   - MinFWMEfficiencyDB — dynamic range of FWM efficiency, in dB, kept
//     inside the densely sampled region. Larger values widen the dense
//     band and cost more points.
//   - MaxGridPoints — maximum integration points per frequency slot
//     (n_grid); sets the minimum step and dominates accuracy.
//   - MinGridPoints — minimum integration points per frequency slot
//     (n_grid_min); bounds the coarse step far from phase matching.
//   - EvalFreqs — frequencies at which the NLI PSD is requested, THz,
//     baseband (comb center at 0). Output order matches this order.
type Params struct {
	MinFWMEfficiencyDB float64
	MaxGridPoints      int
	MinGridPoints      int
	EvalFreqs          []float64
}

// DefaultParams returns the reference accuracy configuration: 30 dB FWM
// dynamic range, 500-point slot ceiling, 4-point slot floor, and no
// evaluation frequencies (set EvalFreqs before calling Compute).
func DefaultParams() Params {
	return Params{
		MinFWMEfficiencyDB: 30,
		MaxGridPoints:      500,
		MinGridPoints:      4,
	}
}

// Options configures execution strategy only; the numerical result is
// bit-identical for every worker count.
type Options struct {
	// Workers is the number of concurrent evaluation-frequency workers.
	// Values ≤ 1 run serially.
	Workers int
}

// DefaultOptions returns serial execution.
func DefaultOptions() Options { return Options{Workers: 1} }
