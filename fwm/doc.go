// Package fwm evaluates the four-wave-mixing (FWM) phase-matching efficiency
// of a dispersive, lossy fiber span.
//
// What:
//
//   - Efficiency maps an array of pump/probe frequency-offset products
//     (f1−f)·(f2−f) to |ρ|², the magnitude-squared mixing efficiency that
//     weights every node of the GN-model integrand.
//
// Why:
//
//   - Dispersion (β2) de-phases distant frequency triplets while loss (α)
//     caps the interaction length; their ratio decides how far from the
//     evaluation frequency the integrand still matters, which is exactly
//     what the adaptive grid in freqgrid exploits.
//
// Complexity:
//
//   - O(len(offsetProducts)) time, one complex exponential per element.
//
// Edge behavior:
//
//   - The removable singularity at α = 0, x = 0 returns the loss-free,
//     phase-matched limit L². There are no error returns; non-finite inputs
//     propagate.
package fwm
