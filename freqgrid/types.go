// Package freqgrid defines options and sentinel errors for adaptive
// integration-grid construction.
package freqgrid

import "errors"

// Sentinel errors for grid construction.
var (
	// ErrBadStep indicates a non-positive DenseStep or MaxStep.
	ErrBadStep = errors.New("freqgrid: DenseStep and MaxStep must be positive")
	// ErrBadWindow indicates a dense window with DenseLow ≥ DenseUp.
	ErrBadWindow = errors.New("freqgrid: dense window must satisfy DenseLow < DenseUp")
	// ErrZeroEdge indicates a dense window edge sitting exactly on 0, which
	// would give the geometric expansion a zero-width base.
	ErrZeroEdge = errors.New("freqgrid: dense window edges must be nudged off exact zero")
	// ErrBadBandwidth indicates Bandwidth too small for MaxStep: the
	// geometric step ratio needs Bandwidth/2 > MaxStep.
	ErrBadBandwidth = errors.New("freqgrid: Bandwidth/2 must exceed MaxStep")
	// ErrBadMaxFreq indicates a non-positive integration half-range.
	ErrBadMaxFreq = errors.New("freqgrid: MaxFreq must be positive")
)

// Options describes one grid request.
//
// The produced grid covers roughly [-MaxFreq, MaxFreq]: a uniform dense band
// [DenseLow, DenseUp) stepped by DenseStep, flanked by two geometrically
// expanding regions whose steps grow from the dense step toward MaxStep.
//
// Fields:
//   - Bandwidth — total occupied optical bandwidth Bopt, THz. Sets the
//     geometric step ratio k = (Bopt/2)/(Bopt/2 − MaxStep).
//   - MaxFreq   — integration half-range fmax, THz. The log regions expand
//     until they reach it (the last point may overshoot by under one ratio
//     factor; point counts are always rounded up).
//   - MaxStep   — coarse step-size ceiling far from the dense band, THz.
//   - DenseLow, DenseUp — dense sub-band edges, THz. Must be nonzero
//     (nudge a zero edge one step away before calling; see nli).
//   - DenseStep — uniform step inside the dense band, THz.
type Options struct {
	Bandwidth float64
	MaxFreq   float64
	MaxStep   float64
	DenseLow  float64
	DenseUp   float64
	DenseStep float64
}

// validate rejects option combinations that would make the geometric
// expansion degenerate.
func (o Options) validate() error {
	switch {
	case o.DenseStep <= 0 || o.MaxStep <= 0:
		return ErrBadStep
	case o.DenseLow >= o.DenseUp:
		return ErrBadWindow
	case o.DenseLow == 0 || o.DenseUp == 0:
		return ErrZeroEdge
	case o.Bandwidth/2 <= o.MaxStep:
		return ErrBadBandwidth
	case o.MaxFreq <= 0:
		return ErrBadMaxFreq
	}

	return nil
}
