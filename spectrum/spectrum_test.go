package spectrum_test

import (
	"math"
	"testing"

	"github.com/optcomlab/gnmodel/spectrum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// singleChannel returns a one-channel comb centered at center with the given
// roll-off, 32 GBd and 1 mW launch power.
func singleChannel(center, rollOff float64) spectrum.Comb {
	return spectrum.Comb{
		CenterFreq: []float64{center},
		SymbolRate: []float64{0.032},
		RollOff:    []float64{rollOff},
		Power:      []float64{0.001},
	}
}

// TestPSD_ChannelMismatch verifies that unequal parameter slice lengths are
// rejected before any computation.
func TestPSD_ChannelMismatch(t *testing.T) {
	comb := spectrum.Comb{
		CenterFreq: []float64{0, 0.05},
		SymbolRate: []float64{0.032},
		RollOff:    []float64{0, 0},
		Power:      []float64{0.001, 0.001},
	}

	_, err := spectrum.PSD([]float64{0}, comb)
	assert.ErrorIs(t, err, spectrum.ErrChannelMismatch, "mismatched slices must error")
}

// TestPSD_EmptyComb verifies that a comb with zero channels yields an
// all-zero PSD rather than an error.
func TestPSD_EmptyComb(t *testing.T) {
	psd, err := spectrum.PSD([]float64{-1, 0, 1}, spectrum.Comb{})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, psd, "empty comb must be spectrally silent")
}

// TestPSD_RectangularBox verifies the rollOff=0 contract: exactly power/rs
// inside |f-center| ≤ rs/2 (boundary included) and exactly zero outside.
func TestPSD_RectangularBox(t *testing.T) {
	comb := singleChannel(0, 0)
	g := 0.001 / 0.032
	half := 0.032 / 2

	f := []float64{-2 * half, -half, -half / 2, 0, half / 2, half, 2 * half}
	psd, err := spectrum.PSD(f, comb)
	require.NoError(t, err)

	want := []float64{0, g, g, g, g, g, 0}
	assert.Equal(t, want, psd, "rectangular channel must be an exact box")
}

// TestPSD_RaisedCosineContinuity checks that the PSD is continuous across
// the passband and stopband boundaries for rollOff > 0.
func TestPSD_RaisedCosineContinuity(t *testing.T) {
	const (
		rs      = 0.032
		rollOff = 0.05
		eps     = 1e-9
	)
	comb := singleChannel(0, rollOff)
	g := 0.001 / rs
	passband := (1 - rollOff) * rs / 2
	stopband := (1 + rollOff) * rs / 2

	psd, err := spectrum.PSD([]float64{
		passband - eps, passband + eps,
		stopband - eps, stopband + eps,
	}, comb)
	require.NoError(t, err)

	assert.InDelta(t, g, psd[0], 1e-6, "just inside passband must be ≈ g")
	assert.InDelta(t, g, psd[1], 1e-6, "skirt must join the passband at height g")
	assert.InDelta(t, 0, psd[2], 1e-6, "skirt must decay to 0 at the stopband")
	assert.Zero(t, psd[3], "beyond the stopband must be exactly 0")
}

// TestPSD_Symmetry checks symmetry of a raised-cosine channel about its
// center frequency.
func TestPSD_Symmetry(t *testing.T) {
	const center = 193.4
	comb := singleChannel(center, 0.1)

	for _, d := range []float64{0, 0.004, 0.0152, 0.016, 0.0168} {
		lo := comb.At(center - d)
		hi := comb.At(center + d)
		assert.InDelta(t, lo, hi, 1e-9, "PSD must be symmetric about the channel center")
	}
}

// TestPSD_Superposition verifies that overlapping channels sum pointwise.
func TestPSD_Superposition(t *testing.T) {
	// Two identical channels on the same center: PSD must double.
	comb := spectrum.Comb{
		CenterFreq: []float64{0, 0},
		SymbolRate: []float64{0.032, 0.032},
		RollOff:    []float64{0.05, 0.05},
		Power:      []float64{0.001, 0.001},
	}
	single := singleChannel(0, 0.05)

	for _, f := range []float64{0, 0.01, 0.0155, 0.02} {
		assert.Equal(t, 2*single.At(f), comb.At(f), "two coincident channels must double the PSD")
	}
}

// TestPSD_MatchesAt verifies PSD is the vectorized form of At.
func TestPSD_MatchesAt(t *testing.T) {
	comb := spectrum.Comb{
		CenterFreq: []float64{-0.05, 0, 0.05},
		SymbolRate: []float64{0.032, 0.032, 0.032},
		RollOff:    []float64{0, 0.05, 0.1},
		Power:      []float64{0.001, 0.002, 0.001},
	}

	f := []float64{-0.08, -0.05, -0.02, 0, 0.013, 0.05, 0.08}
	psd, err := spectrum.PSD(f, comb)
	require.NoError(t, err)
	for i, fi := range f {
		assert.Equal(t, comb.At(fi), psd[i], "PSD and At must agree pointwise")
	}
}

// TestPSD_FiniteEverywhere probes a wide frequency range for NaN/Inf leaks.
func TestPSD_FiniteEverywhere(t *testing.T) {
	comb := singleChannel(0, 0.05)
	for f := -1.0; f <= 1.0; f += 0.001 {
		v := comb.At(f)
		require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "PSD must stay finite at f=%v", f)
		require.GreaterOrEqual(t, v, 0.0, "PSD must stay non-negative at f=%v", f)
	}
}
