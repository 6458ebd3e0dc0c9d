package conv1d

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// periodicKernel sums a Gaussian operator over lattice images:
//
//	r_periodic(n, l) = sum_{R=-maxR..maxR} r(n, R*2^n + l)
//
// The inner aperiodic operator owns its own caches, so image
// projections are shared between translations that alias to the same
// absolute box.
type periodicKernel struct {
	k    int
	maxR int
	g    *Convolution
}

// NewPeriodicGaussian builds the periodised Gaussian operator with
// image sum range [-maxR, maxR].
func NewPeriodicGaussian(k, maxR int, coeff, expnt float64) (*Convolution, error) {
	if maxR < 0 {
		return nil, ErrInvalidRange
	}
	g, err := NewGaussian(k, coeff, expnt)
	if err != nil {
		return nil, err
	}
	p := &periodicKernel{k: k, maxR: maxR, g: g}
	return New(k, k, g.Sign(), p)
}

func (p *periodicKernel) NaturalLevel() Level { return p.g.NaturalLevel() }

func (p *periodicKernel) Rnlp(n Level, lx Translation) []float64 {
	twon := lattice(n)
	r := make([]float64, 2*p.k)
	for R := -p.maxR; R <= p.maxR; R++ {
		vecmath.AddBlockInPlace(r, p.g.GetRnlp(n, Translation(R)*twon+lx))
	}
	return r
}

func (p *periodicKernel) IsSmall(n Level, lx Translation) bool {
	twon := lattice(n)
	for R := -p.maxR; R <= p.maxR; R++ {
		if !p.g.IsSmall(n, Translation(R)*twon+lx) {
			return false
		}
	}
	return true
}

// lattice returns the level-n image stride 2^n. Translations are
// 64-bit; beyond level 61 the stride arithmetic would overflow.
func lattice(n Level) Translation {
	if n < 0 || n >= 62 {
		panic(fmt.Sprintf("conv1d: level %d out of range for periodic image sum", n))
	}
	return Translation(1) << uint(n)
}
