// Package freqgrid builds the non-uniform frequency grids that make the
// GN-model double integral affordable.
//
// What:
//
//   - Build produces a strictly increasing frequency array covering
//     approximately [-MaxFreq, MaxFreq]: a uniformly sampled dense band
//     around the region where four-wave mixing is efficiently phase
//     matched, flanked by two log-spaced regions whose steps grow
//     geometrically up to a coarse ceiling.
//
// Why:
//
//   - The GN integrand is sharply peaked near phase matching and decays
//     like 1/x² away from it. Uniform sampling at the accuracy the peak
//     needs would waste thousands of points on the tails; geometric
//     coarsening keeps the trapezoidal error balanced at a fraction of the
//     cost.
//
// Anchoring:
//
//   - The log expansion is anchored on the side of the dense band farther
//     from zero (branching on the sign of the evaluation frequency), which
//     guarantees monotone coverage out to ±MaxFreq on the wide side. The
//     near-side region is shifted so it lands exactly on the dense edge.
//
// Seams:
//
//   - The dense band is half-open ([DenseLow, DenseUp), numpy-arange
//     style) and its first sample is dropped because the adjacent log
//     region terminates on it. Callers must tolerate an occasional
//     duplicate point at the other seam; nothing is deduplicated.
//
// Errors:
//
//   - ErrBadStep: DenseStep or MaxStep not positive.
//   - ErrBadWindow: DenseLow ≥ DenseUp.
//   - ErrZeroEdge: a dense edge sits exactly on 0 (nudge it first).
//   - ErrBadBandwidth: Bandwidth/2 does not exceed MaxStep.
//   - ErrBadMaxFreq: MaxFreq not positive.
package freqgrid
