// Package nli computes the power spectral density of nonlinear interference
// (NLI) for a WDM comb over one fiber span, using the incoherent
// Gaussian-Noise reference formula (phased-array factor = 1).
//
// What:
//
//   - Compute evaluates the GN double integral by smart brute force: for
//     each requested frequency it builds an adaptive outer grid f1, per
//     outer sample an adaptive inner grid f2, weighs the comb PSD triple
//     product by the FWM phase-matching efficiency, and integrates both
//     dimensions with the trapezoidal rule.
//
// Why adaptive:
//
//   - The integrand peaks where |(f1-f)(f2-f)| is small enough for FWM to
//     stay phase matched, and decays quadratically beyond. The loss/
//     dispersion ratio gives a closed-form half-width for that region
//     (Params.MinFWMEfficiencyDB sets the dynamic range to keep), so the
//     dense sampling follows the physics instead of the whole band.
//
// Accuracy/cost:
//
//   - Params.MaxGridPoints and Params.MinGridPoints bound the integration
//     step per frequency slot; refining MaxGridPoints converges the result.
//     Cost is roughly O(|EvalFreqs| × |f1| × |f2|) comb/efficiency
//     evaluations.
//
// Concurrency:
//
//   - Options.Workers parallelizes across evaluation frequencies. Workers
//     share only immutable state and write disjoint output slots; any
//     worker count yields bit-identical results.
//
// Errors:
//
//   - spectrum.ErrChannelMismatch: channel parameter slices differ in length.
//   - ErrNoChannels: fewer than two channels.
//   - ErrGridBounds: grid-point bounds violate 1 ≤ min ≤ max.
//
// Degenerate geometry is clamped or nudged deterministically rather than
// raised; extreme parameter combinations surface as non-finite output
// values, never as panics.
package nli
