package basis

import (
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-mra/internal/quadrature"
)

// Autocorrelation returns the (k*k) x 4k projector c that maps the
// concatenated double-order projections [p(n,l-1) | p(n,l)] onto the
// k x k correlation block r(n,l), row (i*k+j) holding the coefficients
// of r[i][j].
//
// With Gamma_ij(z) = int phi_i(x) phi_j(x-z) dx (the cross-correlation
// of two scaling functions, a piecewise polynomial supported on
// [-1,1]), the block is r[i][j] = int K(2^-n (z+l)) Gamma_ij(z) dz.
// Expanding Gamma over the 2k double-order scaling functions on each
// unit piece gives
//
//	c[i*k+j][2k+p] = int_0^1 Phi_p(z) Gamma_ij(z) dz
//	c[i*k+j][p]    = (-1)^p * c[j*k+i][2k+p]
//
// where the second line follows from Gamma_ij(-z) = Gamma_ji(z) and
// the reflection parity of Phi_p. All integrands are polynomials; the
// quadrature order is chosen for exactness.
func Autocorrelation(k int) (*mat.Dense, error) {
	if k < 1 || 2*k > MaxOrder {
		return nil, ErrInvalidOrder
	}
	twok := 2 * k

	// Degree 4k-2 in z after the inner t-integral; 2k+2 points are
	// exact with margin on both axes.
	x, w, err := quadrature.GaussLegendre(twok+2, 0, 1)
	if err != nil {
		return nil, err
	}

	cplus := make([]float64, k*k*twok) // [(i*k+j)*twok + p]
	phiI := make([]float64, k)
	phiJ := make([]float64, k)
	phiP := make([]float64, twok)
	gamma := make([]float64, k*k)

	for iz := range x {
		z := x[iz]

		// Gamma_ij(z) = (1-z) int_0^1 phi_i(z+(1-z)t) phi_j((1-z)t) dt
		// after mapping the overlap [z,1] onto the unit interval.
		for i := range gamma {
			gamma[i] = 0
		}
		for it := range x {
			t := x[it]
			ScalingFunctions(z+(1-z)*t, k, phiI)
			ScalingFunctions((1-z)*t, k, phiJ)
			wt := w[it]
			for i := 0; i < k; i++ {
				f := wt * phiI[i]
				row := gamma[i*k : i*k+k]
				for j := 0; j < k; j++ {
					row[j] += f * phiJ[j]
				}
			}
		}

		ScalingFunctions(z, twok, phiP)
		wz := w[iz] * (1 - z)
		for ij := range gamma {
			g := wz * gamma[ij]
			dst := cplus[ij*twok : ij*twok+twok]
			for p := 0; p < twok; p++ {
				dst[p] += g * phiP[p]
			}
		}
	}

	c := mat.NewDense(k*k, 4*k, nil)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			row := i*k + j
			mirror := j*k + i
			for p := 0; p < twok; p++ {
				cp := cplus[mirror*twok+p]
				if p&1 == 1 {
					cp = -cp
				}
				c.Set(row, p, cp)
				c.Set(row, twok+p, cplus[row*twok+p])
			}
		}
	}
	return c, nil
}
