package basis

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-mra/internal/quadrature"
)

// TwoScaleHG returns the 2k x 2k orthogonal two-scale filter for the
// order-k multiwavelet basis, laid out in row blocks
//
//	[ h0 h1 ]   rows 0..k-1:  scaling filters
//	[ g0 g1 ]   rows k..2k-1: wavelet filters
//
// so that a coarse scaling function expands over its two children as
// phi_p(x) = sqrt(2) * (sum_q h0[p][q] phi_q(2x) + h1[p][q] phi_q(2x-1)).
//
// The scaling rows are computed by exact Gauss-Legendre quadrature of
// h0[p][q] = (1/sqrt2) int phi_p(u/2) phi_q(u) du (and the shifted
// analogue for h1, which equals (-1)^(p+q) h0[p][q] by reflection).
// The wavelet rows are a deterministic orthonormal completion of the
// scaling row space.
func TwoScaleHG(k int) (*mat.Dense, error) {
	if k < 1 || k > MaxOrder {
		return nil, ErrInvalidOrder
	}
	twok := 2 * k

	// Integrands are polynomials of degree <= 2k-2; k+1 points are
	// exact with margin.
	x, w, err := quadrature.GaussLegendre(k+1, 0, 1)
	if err != nil {
		return nil, err
	}

	hg := mat.NewDense(twok, twok, nil)
	invSqrt2 := 1 / math.Sqrt2
	phiL := make([]float64, k) // phi(u/2)
	phiR := make([]float64, k) // phi((u+1)/2)
	phiQ := make([]float64, k) // phi(u)
	for i := range x {
		u := x[i]
		ScalingFunctions(u/2, k, phiL)
		ScalingFunctions((u+1)/2, k, phiR)
		ScalingFunctions(u, k, phiQ)
		for p := 0; p < k; p++ {
			wl := invSqrt2 * w[i] * phiL[p]
			wr := invSqrt2 * w[i] * phiR[p]
			for q := 0; q < k; q++ {
				hg.Set(p, q, hg.At(p, q)+wl*phiQ[q])
				hg.Set(p, k+q, hg.At(p, k+q)+wr*phiQ[q])
			}
		}
	}

	completeWavelets(hg, k)
	return hg, nil
}

// completeWavelets fills rows k..2k-1 of hg with an orthonormal basis
// of the complement of the scaling rows, via modified Gram-Schmidt over
// the canonical basis vectors, projecting each candidate out twice so
// the rows stay orthogonal to round-off. Candidates whose residual
// collapses are skipped; the scaling rows span exactly k dimensions, so
// k candidates always survive.
func completeWavelets(hg *mat.Dense, k int) {
	twok := 2 * k
	const dropTol = 1e-10

	row := k
	v := make([]float64, twok)
	for c := 0; c < twok && row < twok; c++ {
		for i := range v {
			v[i] = 0
		}
		v[c] = 1
		for pass := 0; pass < 2; pass++ {
			for r := 0; r < row; r++ {
				var dot float64
				for j := 0; j < twok; j++ {
					dot += v[j] * hg.At(r, j)
				}
				for j := 0; j < twok; j++ {
					v[j] -= dot * hg.At(r, j)
				}
			}
		}
		var norm float64
		for _, e := range v {
			norm += e * e
		}
		norm = math.Sqrt(norm)
		if norm < dropTol {
			continue
		}
		for j := 0; j < twok; j++ {
			hg.Set(row, j, v[j]/norm)
		}
		row++
	}
}
