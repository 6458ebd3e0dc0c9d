// Package basis generates the fixed multiwavelet quantities the
// convolution engine is built on: Legendre scaling functions on [0,1],
// the orthogonal two-scale filter relating a dyadic box to its two
// children, and the autocorrelation projector that turns kernel
// projections over double-order polynomials into matrix elements
// between scaling-function boxes.
//
// All matrices produced here are exact up to round-off: the integrands
// are polynomials and the Gauss-Legendre orders are chosen above the
// exactness threshold. Outputs are immutable after construction and
// safe to share across goroutines.
package basis
