package conv1d

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-mra/internal/quadrature"
	"github.com/cwbudde/algo-mra/mra/basis"
)

// defaultNaturalLevel is the projection level for kernels that do not
// derive a natural level from their own shape.
const defaultNaturalLevel Level = 13

// genericKernel wraps an arbitrary real-valued kernel functor
// evaluated in simulation coordinates, integrated by brute-force
// adaptive quadrature.
type genericKernel struct {
	f    func(float64) float64
	k    int
	natl Level
	maxl int64 // translation beyond which the operator is zero at the natural level

	npt          int
	quadX, quadW []float64
}

// NewGeneric builds the operator for an arbitrary kernel f evaluated
// in simulation coordinates. Construction probes outward at the
// natural level, tracking +l and -l in parallel, until three
// consecutive translations are numerically zero on both sides; that
// fixes the operator's support for pruning and warms the projection
// cache along the way.
func NewGeneric(k int, f func(float64) float64) (*Convolution, error) {
	if f == nil {
		return nil, ErrNilKernel
	}
	g := &genericKernel{
		f:    f,
		k:    k,
		natl: defaultNaturalLevel,
		maxl: math.MaxInt64 - 1,
	}
	c, err := New(k, 20, 1.0, g)
	if err != nil {
		return nil, err
	}
	g.npt = c.npt
	g.quadX, g.quadW = c.quadX, c.quadW

	nzero := 0
	for lx := Translation(0); lx < 1<<uint(g.natl); lx++ {
		rp := c.GetRnlp(g.natl, lx)
		rm := c.GetRnlp(g.natl, -lx)
		if frobenius(rp) < 1e-12 && frobenius(rm) < 1e-12 {
			nzero++
			if nzero == 3 {
				g.maxl = int64(lx) - 2
				break
			}
		} else {
			nzero = 0
		}
	}
	return c, nil
}

func (g *genericKernel) NaturalLevel() Level { return g.natl }

// Rnlp integrates f(2^-n x) * sqrt(2^-n) * phi~(x-l) over [l, l+1] by
// adaptive Gauss-Legendre quadrature to absolute tolerance 1e-12.
func (g *genericKernel) Rnlp(n Level, lx Translation) []float64 {
	twok := 2 * g.k
	fac := math.Pow(0.5, float64(n))
	amp := math.Sqrt(fac)
	integrand := func(x float64) []float64 {
		phix := make([]float64, twok)
		basis.ScalingFunctions(x-float64(lx), twok, phix)
		vecmath.ScaleBlockInPlace(phix, g.f(fac*x)*amp)
		return phix
	}

	v, err := quadrature.AdaptiveVector(float64(lx), float64(lx)+1, integrand, 1e-12, g.quadX, g.quadW)
	if err != nil {
		panic(fmt.Sprintf("conv1d: adaptive quadrature failed at n=%d l=%d: %v", n, lx, err))
	}
	return v
}

// IsSmall rescales the translation to the natural level and compares
// against the probed support. Couplings up to l = 7 are always kept:
// assembly works two levels below, so nearest neighbors 0,1 fan out to
// 0..7.
func (g *genericKernel) IsSmall(n Level, lx Translation) bool {
	if lx < 0 {
		lx = 1 - lx
	}
	if lx <= 7 {
		return false
	}

	shift := g.natl - n
	if shift >= 0 {
		lx <<= uint(shift)
	} else {
		lx >>= uint(-shift)
	}
	return int64(lx) >= g.maxl
}
