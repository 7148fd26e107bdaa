package spectrum

import "math"

// PSD evaluates the superposed power spectral density of the comb, in W/THz,
// at each query frequency in f. The result has one entry per query point.
//
// Per channel, with ts = 1/rs:
//
//	passband = (1 - rollOff) / (2·ts)
//	stopband = (1 + rollOff) / (2·ts)
//	g        = power / rs
//
// A query offset ff = |f - center| contributes g inside the flat passband
// (ff ≤ passband). A channel with rollOff = 0 is a rectangle: nothing beyond
// the passband. Otherwise the raised-cosine skirt
// g·½·(1 + cos(π·ts/rollOff·(ff - passband))) applies out to the stopband.
//
// PSD is pure and NaN-free for finite inputs. The only error is
// ErrChannelMismatch from Validate.
func PSD(f []float64, comb Comb) ([]float64, error) {
	if err := comb.Validate(); err != nil {
		return nil, err
	}

	psd := make([]float64, len(f))
	for i, fi := range f {
		psd[i] = comb.At(fi)
	}

	return psd, nil
}

// At returns the comb PSD at a single frequency, in W/THz.
//
// At assumes the comb is well-formed and indexes all four parameter slices
// by channel; call Validate once before using it in hot loops.
func (c Comb) At(f float64) float64 {
	var psd float64
	for ch := range c.CenterFreq {
		rs := c.SymbolRate[ch]
		ts := 1 / rs
		rollOff := c.RollOff[ch]
		passband := (1 - rollOff) / (2 * ts)
		g := c.Power[ch] / rs

		ff := math.Abs(f - c.CenterFreq[ch])
		tf := ff - passband
		switch {
		case tf <= 0:
			// Flat passband, rectangular and raised-cosine channels alike.
			psd += g
		case rollOff == 0:
			// Rectangular pulse: no skirt.
		case ff <= (1+rollOff)/(2*ts):
			// Raised-cosine transition band down to the stopband edge.
			psd += g * 0.5 * (1 + math.Cos(math.Pi*ts/rollOff*tf))
		}
	}

	return psd
}
