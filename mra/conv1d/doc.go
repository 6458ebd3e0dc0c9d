// Package conv1d implements the one-dimensional multiresolution
// convolution operator engine of the multiwavelet framework: given a
// translation-invariant kernel K on the line, it computes and caches
// the action of K on multiwavelet basis blocks at every scale and
// translation, in the nonstandard form the surrounding multiresolution
// analysis applies in O(N).
//
// # Operators
//
// Three kernel families are provided:
//
//   - NewGaussian: coeff*exp(-expnt*x^2) with closed-form per-box
//     quadrature and exponent-driven screening
//   - NewGeneric: an arbitrary kernel functor integrated by adaptive
//     Gauss-Legendre quadrature, with automatic support detection
//   - NewPeriodicGaussian: a finite image sum of Gaussian translates
//     producing a periodised operator
//
// Custom kernels plug in through the Kernel interface via New.
//
// # Caching
//
// GetRnlp, Rnlij and Nonstandard are pure functions of their
// (level, translation) key; the only side effect is cache population.
// Returned slices, matrices and blocks are shared cached values and
// must be treated as read-only; take a copy before modifying.
// Lookups are guarded by reader-writer locks, so an operator may be
// shared across goroutines; duplicate concurrent computation of a key
// is harmless because results are deterministic.
package conv1d
