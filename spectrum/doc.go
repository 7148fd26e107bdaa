// Package spectrum evaluates the power spectral density of a multi-channel
// raised-cosine WDM comb at arbitrary frequency points.
//
// What:
//
//   - Comb bundles the four per-channel parameter slices (center frequency,
//     symbol rate, roll-off, power) that define a transmitted comb.
//   - PSD superposes every channel's raised-cosine spectrum over a query
//     frequency slice; At does the same for one point inside hot loops.
//
// Why:
//
//   - The GN-model integrand samples the transmit spectrum at three coupled
//     frequencies (f1, f2, f1+f2-f) per integration node; this package is
//     that sampling primitive.
//   - It is also useful standalone for plotting or inspecting a comb.
//
// Complexity:
//
//   - PSD: O(len(f) × N) time, O(len(f)) memory, N = channel count.
//
// Errors:
//
//   - ErrChannelMismatch: the four parameter slices differ in length.
//
// The evaluation is pure: no state survives a call, and finite inputs never
// produce NaN.
package spectrum
