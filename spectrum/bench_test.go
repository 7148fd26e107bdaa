package spectrum_test

import (
	"testing"

	"github.com/optcomlab/gnmodel/spectrum"
)

// benchmarkPSD evaluates an nch-channel comb over npts query frequencies.
func benchmarkPSD(b *testing.B, nch, npts int) {
	comb := spectrum.Comb{
		CenterFreq: make([]float64, nch),
		SymbolRate: make([]float64, nch),
		RollOff:    make([]float64, nch),
		Power:      make([]float64, nch),
	}
	for i := 0; i < nch; i++ {
		comb.CenterFreq[i] = (float64(i) - float64(nch)/2) * 0.05
		comb.SymbolRate[i] = 0.032
		comb.RollOff[i] = 0.05
		comb.Power[i] = 0.001
	}

	span := comb.CenterFreq[nch-1] - comb.CenterFreq[0]
	f := make([]float64, npts)
	for i := range f {
		f[i] = comb.CenterFreq[0] + span*float64(i)/float64(npts-1)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := spectrum.PSD(f, comb); err != nil {
			b.Fatalf("PSD failed: %v", err)
		}
	}
}

func BenchmarkPSD_9x1000(b *testing.B)  { benchmarkPSD(b, 9, 1000) }
func BenchmarkPSD_95x1000(b *testing.B) { benchmarkPSD(b, 95, 1000) }
