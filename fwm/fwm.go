package fwm

import (
	"math"
	"math/cmplx"
)

// fourPiSq is the 4π² phase-matching prefactor of the GN model.
const fourPiSq = 4 * math.Pi * math.Pi

// Efficiency evaluates the four-wave-mixing efficiency magnitude squared
//
//	ρ(x) = |(1 − exp(−2αL + j·4π²·β2·L·x)) / (2α − j·4π²·β2·x)|²
//
// elementwise over the offset products x = (f1−f)·(f2−f).
//
// Arguments: alpha is the fiber loss coefficient in linear units (1/km),
// spanLength L in km, beta2 the dispersion coefficient in ps/THz/km, and
// offsetProducts in THz².
//
// The expression has a removable singularity where both α and x vanish;
// there Efficiency returns the loss-free, phase-matched limit L². For α > 0
// the value at x = 0 is |1 − exp(−2αL)|²/(2α)², strictly below L².
//
// Efficiency is pure and never errors; non-finite inputs propagate into the
// result as non-finite values.
func Efficiency(alpha, spanLength, beta2 float64, offsetProducts []float64) []float64 {
	rho := make([]float64, len(offsetProducts))
	for i, x := range offsetProducts {
		phase := fourPiSq * beta2 * x
		den := complex(2*alpha, -phase)
		if den == 0 {
			// Loss-free, phase-matched limit of the removable singularity.
			rho[i] = spanLength * spanLength
			continue
		}
		num := 1 - cmplx.Exp(complex(-2*alpha*spanLength, phase*spanLength))
		m := cmplx.Abs(num / den)
		rho[i] = m * m
	}

	return rho
}
