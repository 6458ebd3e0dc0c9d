// Package matops provides small dense-matrix primitives used by the
// multiresolution operator engine: transposition, patch copies, and
// column truncation on row-major buffers.
//
// All functions require the source and destination buffers to be
// disjoint so the inner row loops can be vectorized by the compiler.
package matops

// FastTranspose writes the transpose of the n x m row-major matrix a
// into the m x n row-major matrix b, so b[j*n+i] = a[i*m+j].
//
// Rows are processed four at a time; n is typically k or 2k (the
// wavelet order) and small, so the blocking targets cache lines rather
// than tiles. Degenerate dimensions fall back to a straight copy.
func FastTranspose(n, m int, a, b []float64) {
	if n == 1 || m == 1 {
		copy(b[:n*m], a[:n*m])
		return
	}

	n4 := (n >> 2) << 2
	for i := 0; i < n4; i += 4 {
		a0 := a[i*m:]
		a1 := a0[m:]
		a2 := a1[m:]
		a3 := a2[m:]
		for j := 0; j < m; j++ {
			bi := b[j*n+i:]
			bi[0] = a0[j]
			bi[1] = a1[j]
			bi[2] = a2[j]
			bi[3] = a3[j]
		}
	}

	for i := n4; i < n; i++ {
		for j := 0; j < m; j++ {
			b[j*n+i] = a[i*m+j]
		}
	}
}

// Copy2DPatch copies an nrow x ncol patch from src into dst, where the
// two buffers have distinct leading dimensions ldout and ldin.
func Copy2DPatch(dst []float64, ldout int, src []float64, ldin, nrow, ncol int) {
	for i := 0; i < nrow; i++ {
		copy(dst[i*ldout:i*ldout+ncol], src[i*ldin:i*ldin+ncol])
	}
}

// Shrink keeps the leading r columns of the n x m row-major matrix a,
// writing them densely into b (n x r). Returns b.
func Shrink(n, m, r int, a, b []float64) []float64 {
	for i := 0; i < n; i++ {
		copy(b[i*r:i*r+r], a[i*m:i*m+r])
	}
	return b
}
