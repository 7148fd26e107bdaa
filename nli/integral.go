package nli

import (
	"math"
	"sort"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"

	"github.com/optcomlab/gnmodel/freqgrid"
	"github.com/optcomlab/gnmodel/fwm"
	"github.com/optcomlab/gnmodel/spectrum"
)

// pi4 is π⁴, the phase-matching prefactor of the dense-region half-width.
const pi4 = math.Pi * math.Pi * math.Pi * math.Pi

// Compute evaluates the incoherent GN-model NLI PSD, in W/THz, at every
// frequency in params.EvalFreqs, in that order.
//
// For each evaluation frequency f the engine builds an adaptive outer grid
// f1, and per outer sample an adaptive inner grid f2 restricted to the upper
// triangle f2 ≥ f1 (the domain is symmetric; a factor of 2 restores the
// lower half). Each node weighs the comb PSD triple product
// G(f1)·G(f2)·G(f1+f2-f) by the FWM efficiency over (f1-f)·(f2-f), and both
// dimensions are integrated with the trapezoidal rule. The outer integral is
// scaled by 16/27·γ².
//
// Compute is a pure function of its inputs: no state survives the call and
// identical inputs give bit-identical results, regardless of opts.Workers.
// Degenerate windows are clamped or nudged, never raised; pathological
// inputs (non-ascending channel centers, extreme parameters) surface as
// non-finite output values rather than errors.
//
// Errors: spectrum.ErrChannelMismatch, ErrNoChannels, ErrGridBounds — all
// detected before any computation begins.
func Compute(fiber Fiber, comb spectrum.Comb, params Params, opts *Options) ([]float64, error) {
	if err := comb.Validate(); err != nil {
		return nil, err
	}
	if comb.Channels() < 2 {
		return nil, ErrNoChannels
	}
	if params.MinGridPoints < 1 || params.MinGridPoints > params.MaxGridPoints {
		return nil, ErrGridBounds
	}

	eng := newEngine(fiber, comb, params)
	out := make([]float64, len(params.EvalFreqs))

	workers := 1
	if opts != nil && opts.Workers > workers {
		workers = opts.Workers
	}
	if workers > len(out) {
		workers = len(out)
	}
	if workers <= 1 {
		for i, f := range params.EvalFreqs {
			out[i] = eng.evalAt(f)
		}

		return out, nil
	}

	// Evaluation frequencies are independent: workers stride over the index
	// space, read only shared immutable state and write disjoint slots, so
	// no locking is needed.
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(start int) {
			defer wg.Done()
			for i := start; i < len(out); i += workers {
				out[i] = eng.evalAt(params.EvalFreqs[i])
			}
		}(w)
	}
	wg.Wait()

	return out, nil
}

// engine carries the quantities derived once per Compute call. It is
// read-only after newEngine and therefore safe to share across workers.
type engine struct {
	fiber     Fiber
	comb      spectrum.Comb
	alpha     float64 // loss in linear units, 1/km
	fmax      float64 // integration half-range, THz
	bandwidth float64 // occupied optical bandwidth Bopt, THz
	minStep   float64 // dense integration step floor, THz
	maxStep   float64 // coarse integration step ceiling, THz
	phaseHalf float64 // sqrt(α²/(4π⁴β2²)·(minFWMInv−1)), THz²-offset scale
	denseHalf float64 // dense-region half-width around f, THz
}

func newEngine(fiber Fiber, comb spectrum.Comb, p Params) *engine {
	n := comb.Channels()
	fc, rs := comb.CenterFreq, comb.SymbolRate

	alpha := fiber.LossDB / 20 / math.Log10(math.E)
	minFWMInv := math.Pow(10, p.MinFWMEfficiencyDB/10)

	// Frequency limit: occupied band minus the outer channels' half guard.
	fmax := (fc[n-1] - rs[n-1]/2) - (fc[0] - rs[0]/2)

	// Channel spacing: the widest consecutive center-frequency gap.
	diffs := make([]float64, n-1)
	for i := range diffs {
		diffs[i] = fc[i+1] - fc[i]
	}
	f2eval := floats.Max(diffs)

	phaseHalf := math.Sqrt(alpha * alpha / (4 * pi4 * fiber.Beta2 * fiber.Beta2) * (minFWMInv - 1))

	return &engine{
		fiber:     fiber,
		comb:      comb,
		alpha:     alpha,
		fmax:      fmax,
		bandwidth: f2eval * float64(n),
		minStep:   f2eval / float64(p.MaxGridPoints),
		maxStep:   f2eval / float64(p.MinGridPoints),
		phaseHalf: phaseHalf,
		denseHalf: math.Abs(phaseHalf / f2eval),
	}
}

// evalAt computes the NLI PSD at a single evaluation frequency.
func (e *engine) evalAt(f float64) float64 {
	// Dense window around f, clamped to the integration range and nudged
	// off exact-zero edges.
	low, up := f-e.denseHalf, f+e.denseHalf
	if low < -e.fmax {
		low = -e.fmax
	}
	if low == 0 {
		low = -e.minStep
	}
	if up == 0 {
		up = e.minStep
	}
	if up > e.fmax {
		up = e.fmax
	}
	if low > up {
		// The window escaped the integration range entirely: nothing the
		// comb transmits can phase-match to f.
		return 0
	}

	f1, ok := e.buildGrid(f, low, up)
	if !ok {
		return math.NaN()
	}
	if len(f1) < 2 {
		return 0
	}

	g1 := make([]float64, len(f1))
	for i, x1 := range f1 {
		g1[i] = e.comb.At(x1)
	}

	// Inner integral per outer sample.
	gpart := make([]float64, len(f1))
	for i, x1 := range f1 {
		v, ok := e.inner(f, x1, g1[i])
		if !ok {
			return math.NaN()
		}
		gpart[i] = v
	}

	return 16.0 / 27 * e.fiber.Gamma * e.fiber.Gamma * integrate.Trapezoidal(f1, gpart)
}

// inner evaluates 2·∫ρ·G df2 over the adaptive inner grid for one outer
// sample x1. A collapsed grid contributes zero. The bool is false only when
// grid geometry degenerated beyond repair (non-finite sentinel upstream).
func (e *engine) inner(f, x1, g1 float64) (float64, bool) {
	var low, up float64
	if x1 == f {
		// Degenerate phase matching: no offset restricts the window.
		low, up = -e.fmax, e.fmax
	} else {
		fl := e.phaseHalf/(x1-f) + f
		low, up = math.Min(fl, -fl), math.Max(fl, -fl)
		if low == 0 {
			low = -e.minStep
		}
		if up == 0 {
			up = e.minStep
		}
		if low < -e.fmax {
			low = -e.fmax
		}
		if up > e.fmax {
			up = e.fmax
		}
	}

	f2, ok := e.buildGrid(f, low, up)
	if !ok {
		return 0, false
	}

	// Keep the upper triangle of the symmetric (f1, f2) domain; the factor
	// of 2 below accounts for the mirrored half.
	f2 = f2[sort.SearchFloat64s(f2, x1):]
	if len(f2) < 2 {
		return 0, true
	}

	g := make([]float64, len(f2))
	var hasSignal bool
	for k, x2 := range f2 {
		v := e.comb.At(x2) * e.comb.At(x1+x2-f) * g1
		g[k] = v
		if v != 0 {
			hasSignal = true
		}
	}
	if !hasSignal {
		return 0, true
	}

	prods := make([]float64, len(f2))
	for k, x2 := range f2 {
		prods[k] = (x1 - f) * (x2 - f)
	}
	rho := fwm.Efficiency(e.alpha, e.fiber.SpanLength, e.fiber.Beta2, prods)
	floats.Mul(rho, g)

	return 2 * integrate.Trapezoidal(f2, rho), true
}

// buildGrid derives the dense step from the window width and the step floor,
// then delegates to freqgrid. A zero-width window (possible when the FWM
// threshold collapses the dense region onto a clamped edge) is widened by
// one minimum step per side rather than rejected.
func (e *engine) buildGrid(f, low, up float64) ([]float64, bool) {
	width := math.Abs(up - low)
	if width == 0 {
		low -= e.minStep
		up += e.minStep
		width = up - low
	}
	n := math.Ceil(width / e.minStep)
	df := width / n

	grid, err := freqgrid.Build(f, freqgrid.Options{
		Bandwidth: e.bandwidth,
		MaxFreq:   e.fmax,
		MaxStep:   e.maxStep,
		DenseLow:  low,
		DenseUp:   up,
		DenseStep: df,
	})
	if err != nil {
		return nil, false
	}

	return grid, true
}
