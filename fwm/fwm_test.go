package fwm_test

import (
	"math"
	"testing"

	"github.com/optcomlab/gnmodel/fwm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Reference span: 100 km, 0.2 dB/km converted to linear 1/km, β2 of SMF.
const (
	spanLength = 100.0
	beta2      = 21.27
)

func alphaLin() float64 { return 0.2 / 20 / math.Log10(math.E) }

// TestEfficiency_NonNegativeAndBounded sweeps offset products over many
// decades and checks 0 ≤ ρ ≤ L² throughout.
func TestEfficiency_NonNegativeAndBounded(t *testing.T) {
	x := []float64{-1, -1e-3, -1e-6, -1e-9, 0, 1e-9, 1e-6, 1e-3, 1}
	rho := fwm.Efficiency(alphaLin(), spanLength, beta2, x)

	require.Len(t, rho, len(x))
	for i, r := range rho {
		assert.GreaterOrEqual(t, r, 0.0, "ρ must be non-negative at x=%v", x[i])
		assert.LessOrEqual(t, r, spanLength*spanLength, "ρ must not exceed L² at x=%v", x[i])
	}
}

// TestEfficiency_ZeroOffsetWithLoss checks the analytic value at x=0 with
// α>0: |1-exp(-2αL)|² / (2α)², strictly below L².
func TestEfficiency_ZeroOffsetWithLoss(t *testing.T) {
	a := alphaLin()
	rho := fwm.Efficiency(a, spanLength, beta2, []float64{0})

	e := 1 - math.Exp(-2*a*spanLength)
	want := e * e / (4 * a * a)
	assert.InEpsilon(t, want, rho[0], 1e-12, "x=0 with loss must match the closed form")
	assert.Less(t, rho[0], spanLength*spanLength, "lossy phase-matched ρ must stay below L²")
}

// TestEfficiency_SingularLimit checks the removable singularity α=0, x=0:
// the limiting value is exactly L².
func TestEfficiency_SingularLimit(t *testing.T) {
	rho := fwm.Efficiency(0, spanLength, beta2, []float64{0})
	assert.Equal(t, spanLength*spanLength, rho[0], "loss-free phase-matched limit must be L²")
}

// TestEfficiency_LossFreeOffResonance checks α=0 with x≠0: the denominator
// is purely imaginary and ρ = |1-exp(jφ)|²/(4π²β2x)² stays finite.
func TestEfficiency_LossFreeOffResonance(t *testing.T) {
	rho := fwm.Efficiency(0, spanLength, beta2, []float64{1e-4, -1e-4})
	for _, r := range rho {
		assert.False(t, math.IsNaN(r) || math.IsInf(r, 0), "loss-free off-resonance ρ must be finite")
		assert.GreaterOrEqual(t, r, 0.0)
	}
}

// TestEfficiency_DecaysWithDephasing checks that ρ shrinks by orders of
// magnitude as the offset product grows into the dispersion-dominated
// region.
func TestEfficiency_DecaysWithDephasing(t *testing.T) {
	a := alphaLin()
	rho := fwm.Efficiency(a, spanLength, beta2, []float64{0, 1e-2})
	assert.Greater(t, rho[0], 1e3*rho[1], "strong dephasing must suppress the efficiency")
}

// TestEfficiency_EvenInProductSign checks ρ(x) = ρ(-x): conjugating the
// phase does not change the magnitude.
func TestEfficiency_EvenInProductSign(t *testing.T) {
	a := alphaLin()
	for _, x := range []float64{1e-6, 1e-4, 1e-2} {
		rho := fwm.Efficiency(a, spanLength, beta2, []float64{x, -x})
		assert.InEpsilon(t, rho[0], rho[1], 1e-12, "ρ must be even in the offset product")
	}
}
