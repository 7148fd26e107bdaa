package freqgrid

import "math"

// Build returns the non-uniform integration grid for one evaluation
// frequency: the dense band [DenseLow, DenseUp) sampled uniformly at
// DenseStep, sided by two log-spaced regions reaching out to ±MaxFreq.
//
// The geometric expansion is anchored on the side of the dense band farther
// from zero, so the branch taken depends on the sign of center: for a
// negative center the short region sits below the band and the shifted long
// region above it; for a non-negative center the roles swap. The short
// region terminates exactly on the dense band's near edge, so the band's
// first sample is dropped; the opposite seam is left as-is and may carry a
// duplicate point.
//
// The result is non-decreasing. Point counts are always rounded up, so the
// realized steps never exceed the requested ones.
func Build(center float64, opt Options) ([]float64, error) {
	if err := opt.validate(); err != nil {
		return nil, err
	}

	dense := arange(opt.DenseLow, opt.DenseUp, opt.DenseStep)
	if len(dense) > 0 {
		// The short log region ends exactly on DenseLow.
		dense = dense[1:]
	}

	half := opt.Bandwidth / 2
	k := half / (half - opt.MaxStep)
	absLow := math.Abs(opt.DenseLow)
	absUp := math.Abs(opt.DenseUp)

	if center < 0 {
		// Short region below the band, geometric from -|DenseLow| outward.
		nShort := logCount(opt.MaxFreq/absLow, k)
		short := make([]float64, 0, nShort)
		for e := nShort - 1; e >= 0; e-- {
			short = append(short, -absLow*math.Pow(k, float64(e)))
		}

		// Long region above the band, shifted so it starts on DenseUp.
		shift := absUp - opt.DenseUp
		kLong := (half + (absUp - opt.DenseLow)) / (half - opt.MaxStep + shift)
		nLong := logCount((opt.MaxFreq+shift)/absUp, kLong)
		long := make([]float64, 0, nLong)
		for e := 0; e < nLong; e++ {
			long = append(long, absUp*math.Pow(kLong, float64(e))-shift)
		}

		return clampSorted(concat(short, dense, long)), nil
	}

	// Short region above the band, geometric from DenseUp outward.
	nShort := logCount(opt.MaxFreq/absUp, k)
	short := make([]float64, 0, nShort)
	for e := 0; e < nShort; e++ {
		short = append(short, opt.DenseUp*math.Pow(k, float64(e)))
	}

	// Long region below the band, shifted so it ends on DenseLow.
	shift := absLow + opt.DenseLow
	kLong := (half + shift) / (half - opt.MaxStep + shift)
	nLong := logCount((opt.MaxFreq+shift)/absLow, kLong)
	long := make([]float64, 0, nLong)
	for e := nLong - 1; e >= 0; e-- {
		long = append(long, -absLow*math.Pow(kLong, float64(e))+shift)
	}

	return clampSorted(concat(long, dense, short)), nil
}

// clampSorted removes the few-ulp backward step the half-open dense band can
// leave at its upper seam (the arange overshoot artifact): any sample below
// its predecessor is raised to it. The zero-width interval left behind
// contributes nothing to a trapezoidal sum.
func clampSorted(grid []float64) []float64 {
	for i := 1; i < len(grid); i++ {
		if grid[i] < grid[i-1] {
			grid[i] = grid[i-1]
		}
	}

	return grid
}

// arange mirrors numpy's half-open arange: start, start+step, … strictly
// below stop. The point count is ceil((stop-start)/step).
func arange(start, stop, step float64) []float64 {
	n := math.Ceil((stop - start) / step)
	if !(n > 0) { // also rejects NaN
		return nil
	}

	out := make([]float64, int(n))
	for i := range out {
		out[i] = start + float64(i)*step
	}

	return out
}

// logCount mirrors numpy's ceil(log(ratio)/log(k) + 1) geometric point
// count. Non-positive and NaN counts collapse to an empty region.
func logCount(ratio, k float64) int {
	n := math.Ceil(math.Log(ratio)/math.Log(k) + 1)
	if !(n > 0) {
		return 0
	}

	return int(n)
}

// concat joins the three grid regions into one freshly allocated slice.
func concat(a, b, c []float64) []float64 {
	out := make([]float64, 0, len(a)+len(b)+len(c))
	out = append(out, a...)
	out = append(out, b...)
	out = append(out, c...)

	return out
}
