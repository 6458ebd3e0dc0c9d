package conv1d

import (
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/mat"
)

// EmptyBlockFrobeniusThreshold is the Frobenius norm below which a
// block is treated as identically zero: no SVD factors are built and
// the BlockApprox is the empty sentinel.
const EmptyBlockFrobeniusThreshold = 1e-20

// BlockApprox is the cached, SVD-factored nonstandard-form block of a
// convolution operator for one (level, translation) key.
//
// R is the full 2k x 2k block and T its top-left k x k quadrant (the
// pure scaling-scaling coupling). For each of R and T a thin SVD is
// retained for low-rank application: RU/TU hold the left factors and
// RVT/TVT the right factors with the singular values already folded in
// (RVT = diag(sigma) * V^T).
//
// Rs and Ts are NOT ordinary singular values. Each is the
// relative-remaining-mass profile of the spectrum: after suffix
// summation sigma[i] <- sum_{j>=i} sigma[j] and division by the total,
// Rs[0] == 1 and Rs decays monotonically in [0,1]. A consumer picks
// its application rank as the smallest r with Rs[r] below a relative
// tolerance, in O(r) and without re-summing.
//
// Rnorm and Tnorm are the pre-normalization totals (the summed
// spectra); Rnormf, Tnormf are Frobenius norms, and NSnormf is the
// Frobenius norm of R with the top-left k x k quadrant zeroed (the
// wavelet-coupled remainder).
//
// The zero value is the empty-block sentinel: if Rnormf == 0, every
// matrix field is nil and all five scalars are zero.
type BlockApprox struct {
	R, T    *mat.Dense
	RU, RVT *mat.Dense
	TU, TVT *mat.Dense
	Rs, Ts  []float64
	Rnorm   float64
	Tnorm   float64
	Rnormf  float64
	Tnormf  float64
	NSnormf float64
}

// newBlockApprox factors the full block R and its scaling quadrant T.
// Building the approximations is expensive, so blocks below the empty
// threshold short-circuit to the sentinel.
func newBlockApprox(R, T *mat.Dense) *BlockApprox {
	b := &BlockApprox{}
	rnormf := mat.Norm(R, 2)
	if rnormf <= EmptyBlockFrobeniusThreshold {
		return b
	}

	b.R, b.T = R, T
	b.Rnormf = rnormf
	b.Tnormf = mat.Norm(T, 2)
	b.TU, b.Ts, b.TVT, b.Tnorm = makeApprox(T)
	b.RU, b.Rs, b.RVT, b.Rnorm = makeApprox(R)

	k, _ := T.Dims()
	ns := mat.DenseCopyOf(R)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			ns.Set(i, j, 0)
		}
	}
	b.NSnormf = mat.Norm(ns, 2)
	return b
}

// makeApprox computes the thin SVD of m, folds the singular values into
// the right factor, and turns the spectrum into the normalized
// remaining-mass profile documented on BlockApprox.
func makeApprox(m *mat.Dense) (u *mat.Dense, s []float64, vt *mat.Dense, norm float64) {
	var svd mat.SVD
	if !svd.Factorize(m, mat.SVDThin) {
		panic("conv1d: SVD failed to converge")
	}
	var left, right mat.Dense
	svd.UTo(&left)
	svd.VTo(&right)
	s = svd.Values(nil)

	vtd := mat.DenseCopyOf(right.T())
	rows, cols := vtd.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			vtd.Set(i, j, vtd.At(i, j)*s[i])
		}
	}

	for i := len(s) - 2; i >= 0; i-- {
		s[i] += s[i+1]
	}
	norm = s[0]
	if norm > 0 {
		vecmath.ScaleBlockInPlace(s, 1/norm)
	}
	return &left, s, vtd, norm
}
