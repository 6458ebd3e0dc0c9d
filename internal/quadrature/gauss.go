// Package quadrature provides the numerical integration rules used by
// the multiwavelet basis generators and the generic convolution kernel:
// fixed Gauss-Legendre rules and a recursive adaptive scheme for
// vector-valued integrands.
package quadrature

import (
	"errors"

	"gonum.org/v1/gonum/integrate/quad"
)

// Errors returned by quadrature routines.
var (
	ErrInvalidOrder  = errors.New("quadrature: number of points must be positive")
	ErrNotConverged  = errors.New("quadrature: adaptive refinement did not converge")
	ErrEmptyIntegral = errors.New("quadrature: integrand returned empty vector")
)

// GaussLegendre returns the n-point Gauss-Legendre nodes and weights on
// [a, b]. The rule integrates polynomials up to degree 2n-1 exactly.
func GaussLegendre(n int, a, b float64) (x, w []float64, err error) {
	if n < 1 {
		return nil, nil, ErrInvalidOrder
	}
	x = make([]float64, n)
	w = make([]float64, n)
	(quad.Legendre{}).FixedLocations(x, w, a, b)
	return x, w, nil
}
