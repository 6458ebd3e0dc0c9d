package conv1d

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-mra/internal/matops"
	"github.com/cwbudde/algo-mra/internal/quadrature"
	"github.com/cwbudde/algo-mra/mra/basis"
)

// Errors returned by operator constructors.
var (
	ErrInvalidOrder     = errors.New("conv1d: wavelet order out of range")
	ErrInvalidQuadOrder = errors.New("conv1d: quadrature order must be positive")
	ErrInvalidExponent  = errors.New("conv1d: exponent must be positive")
	ErrNilKernel        = errors.New("conv1d: nil kernel")
	ErrInvalidRange     = errors.New("conv1d: image sum range must be non-negative")
)

// Kernel is the capability set a concrete convolution kernel provides
// to the operator base: direct projection onto the double-order
// polynomials, a pruning predicate, and the level at which direct
// quadrature takes over from two-scale refinement.
type Kernel interface {
	// Rnlp computes v[p] = int K(2^-n (z+l)) phi~_p(z) dz, p=0..2k-1,
	// including the 2^(-n/2) amplitude of the level-n box.
	Rnlp(n Level, l Translation) []float64

	// IsSmall reports whether the (n, l) coupling is negligible and may
	// be replaced by the zero projection or the empty block.
	IsSmall(n Level, l Translation) bool

	// NaturalLevel is the finest level reached by recursion; at and
	// below it the kernel integrates directly.
	NaturalLevel() Level
}

// Convolution is a 1D multiresolution convolution operator: the common
// machinery shared by all kernels (two-scale filters, the
// autocorrelation projector, quadrature nodes, and the three
// projection caches). It is immutable after construction apart from
// cache population, so a single operator may serve many goroutines.
type Convolution struct {
	kernel Kernel
	k      int
	npt    int
	sign   float64

	quadX, quadW []float64
	c            *mat.Dense // (k*k) x 4k autocorrelation projector
	hgT          *mat.Dense // transposed two-scale filter, order k
	hgT2k        *mat.Dense // transposed two-scale filter, order 2k

	rnlpCache  cache[[]float64]
	rnlijCache cache[mat.Dense]
	nsCache    cache[BlockApprox]
}

// New builds an order-k operator around an arbitrary kernel, with an
// npt-point Gauss-Legendre rule available to the kernel's quadrature.
// Most callers want NewGaussian, NewGeneric or NewPeriodicGaussian.
func New(k, npt int, sign float64, kernel Kernel) (*Convolution, error) {
	if k < 1 || 2*k > basis.MaxOrder {
		return nil, ErrInvalidOrder
	}
	if npt < 1 {
		return nil, ErrInvalidQuadOrder
	}
	if kernel == nil {
		return nil, ErrNilKernel
	}

	c, err := basis.Autocorrelation(k)
	if err != nil {
		return nil, err
	}
	quadX, quadW, err := quadrature.GaussLegendre(npt, 0, 1)
	if err != nil {
		return nil, err
	}
	hg, err := basis.TwoScaleHG(k)
	if err != nil {
		return nil, err
	}
	hg2k, err := basis.TwoScaleHG(2 * k)
	if err != nil {
		return nil, err
	}

	return &Convolution{
		kernel: kernel,
		k:      k,
		npt:    npt,
		sign:   sign,
		quadX:  quadX,
		quadW:  quadW,
		c:      c,
		hgT:    mat.DenseCopyOf(hg.T()),
		hgT2k:  mat.DenseCopyOf(hg2k.T()),
	}, nil
}

// Order returns the wavelet order k.
func (c *Convolution) Order() int { return c.k }

// Sign is the scalar sign carried for the enclosing analysis; a
// negative real coefficient is folded into it by NewGaussian.
func (c *Convolution) Sign() float64 { return c.sign }

// NaturalLevel reports the kernel's direct-quadrature level.
func (c *Convolution) NaturalLevel() Level { return c.kernel.NaturalLevel() }

// IsSmall reports the kernel's pruning predicate for (n, l).
func (c *Convolution) IsSmall(n Level, l Translation) bool {
	return c.kernel.IsSmall(n, l)
}

// GetRnlp returns the cached length-2k projection p(n, l) of the
// kernel onto the double-order scaling functions. Small blocks are the
// zero vector; above the natural level the projection is refined from
// level n+1 through the order-2k two-scale filter; at and below it the
// kernel integrates directly. The returned slice is shared and must
// not be modified.
func (c *Convolution) GetRnlp(n Level, l Translation) []float64 {
	if v := c.rnlpCache.get(n, l); v != nil {
		return *v
	}

	twok := 2 * c.k
	var r []float64
	switch {
	case c.kernel.IsSmall(n, l):
		r = make([]float64, twok)
	case n < c.kernel.NaturalLevel():
		fine := make([]float64, 2*twok)
		copy(fine[:twok], c.GetRnlp(n+1, 2*l))
		copy(fine[twok:], c.GetRnlp(n+1, 2*l+1))
		r = c.liftVector(fine)
	default:
		r = c.kernel.Rnlp(n, l)
	}

	return *c.rnlpCache.set(n, l, &r)
}

// Rnlij returns the cached k x k correlation block
//
//	r[i][j] = int K(x-y) phi[l][i](x) phi[0][j](y) dx dy
//
// over level-n scaling-function boxes separated by l, assembled from
// the double-order projections at translations l-1 and l through the
// autocorrelation projector. The returned matrix is shared and must
// not be modified.
func (c *Convolution) Rnlij(n Level, l Translation) *mat.Dense {
	if v := c.rnlijCache.get(n, l); v != nil {
		return v
	}

	twok := 2 * c.k
	v := make([]float64, 2*twok)
	copy(v[:twok], c.GetRnlp(n, l-1))
	copy(v[twok:], c.GetRnlp(n, l))
	vecmath.ScaleBlockInPlace(v, math.Pow(0.5, 0.5*float64(n)))

	rv := mat.NewVecDense(c.k*c.k, nil)
	rv.MulVec(c.c, mat.NewVecDense(len(v), v))
	r := mat.NewDense(c.k, c.k, rv.RawVector().Data)

	// No symmetrization at l == 0: whether enforcing r[i][j] == r[j][i]
	// helps, and what it should mean for complex kernels, is unresolved.

	return c.rnlijCache.set(n, l, r)
}

// Nonstandard returns the cached nonstandard-form block for (n, l):
// the 2k x 2k two-scale lift of the level-(n+1) correlation blocks,
// SVD-factored for low-rank application. Small blocks install the
// empty sentinel. The returned block is shared and must not be
// modified.
func (c *Convolution) Nonstandard(n Level, l Translation) *BlockApprox {
	if v := c.nsCache.get(n, l); v != nil {
		return v
	}
	if c.kernel.IsSmall(n, l) {
		return c.nsCache.set(n, l, &BlockApprox{})
	}

	k := c.k
	twok := 2 * k
	r0 := c.Rnlij(n+1, 2*l)
	rp := c.Rnlij(n+1, 2*l+1)
	rm := c.Rnlij(n+1, 2*l-1)

	// Quadrant layout: r0 on the diagonal, r+ below, r- to the right.
	data := make([]float64, twok*twok)
	matops.Copy2DPatch(data, twok, rawData(r0), k, k, k)
	matops.Copy2DPatch(data[twok*k+k:], twok, rawData(r0), k, k, k)
	matops.Copy2DPatch(data[twok*k:], twok, rawData(rp), k, k, k)
	matops.Copy2DPatch(data[k:], twok, rawData(rm), k, k, k)

	lifted := transform(mat.NewDense(twok, twok, data), c.hgT)

	// Transpose into the column orientation consumers expect, then
	// split off the scaling-scaling quadrant.
	rt := make([]float64, twok*twok)
	matops.FastTranspose(twok, twok, rawData(lifted), rt)
	R := mat.NewDense(twok, twok, rt)

	tdata := make([]float64, k*k)
	matops.Copy2DPatch(tdata, k, rt, twok, k, k)
	T := mat.NewDense(k, k, tdata)

	return c.nsCache.set(n, l, newBlockApprox(R, T))
}

// liftVector applies the transposed order-2k two-scale filter to the
// concatenated child projections and keeps the coarse scaling half.
func (c *Convolution) liftVector(fine []float64) []float64 {
	n := len(fine)
	y := mat.NewVecDense(n, nil)
	y.MulVec(c.hgT2k.T(), mat.NewVecDense(n, fine))
	out := make([]float64, n/2)
	copy(out, y.RawVector().Data[:n/2])
	return out
}

// transform returns F^T * M * F, the two-sided multiwavelet lift for a
// transposed filter F.
func transform(m, f *mat.Dense) *mat.Dense {
	var tmp, out mat.Dense
	tmp.Mul(m, f)
	out.Mul(f.T(), &tmp)
	return &out
}

func rawData(m *mat.Dense) []float64 {
	return m.RawMatrix().Data
}

// frobenius is the Euclidean norm of a projection vector.
func frobenius(v []float64) float64 {
	return math.Sqrt(vecmath.DotProduct(v, v))
}
