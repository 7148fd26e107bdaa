// Package gnmodel implements the incoherent Gaussian-Noise (GN) reference
// model of nonlinear fiber propagation: the power spectral density of the
// nonlinear interference (NLI) accumulated by a wavelength-division
// multiplexed (WDM) comb over one compensated fiber span.
//
// 🚀 What is gnmodel?
//
//	A numerical library that evaluates the GN-model double integral by
//	smart brute force: an adaptive frequency grid concentrates samples
//	where four-wave-mixing (FWM) phase matching keeps the integrand peaky,
//	and coarsens geometrically where dispersion has washed it out.
//
// ✨ What's inside?
//
//   - spectrum/ — raised-cosine WDM comb PSD evaluated at arbitrary frequencies
//   - fwm/      — FWM phase-matching efficiency |ρ|² for a loss/dispersion pair
//   - freqgrid/ — adaptive dense + log-spaced integration grid construction
//   - nli/      — the nested trapezoidal double integral producing NLI PSD
//   - cmd/gnli  — a scenario driver (YAML in, NLI table and comb CSV out)
//
// ⚙️ Quick start:
//
//	comb := spectrum.Comb{
//	  CenterFreq: []float64{-0.05, 0, 0.05},       // THz
//	  SymbolRate: []float64{0.032, 0.032, 0.032},  // TBaud
//	  RollOff:    []float64{0.05, 0.05, 0.05},
//	  Power:      []float64{0.001, 0.001, 0.001},  // W
//	}
//	fiber := nli.Fiber{Beta2: 21.27, SpanLength: 100, LossDB: 0.2, Gamma: 1.27}
//	params := nli.DefaultParams()
//	params.EvalFreqs = []float64{0}
//	psd, err := nli.Compute(fiber, comb, params, nil)
//
// Units follow the optical-communications convention throughout: THz, TBaud,
// ps/THz/km, km, dB/km, 1/W/km, W and W/THz. Every entry point is a pure
// function of its inputs; there is no process-wide state.
//
// The model is the incoherent GN formula (phased-array factor = 1) for a
// single span with nominal loss already compensated. Coherent variants and
// multi-span accumulation are out of scope.
package gnmodel
