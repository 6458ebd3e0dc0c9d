package conv1d

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-mra/mra/basis"
)

// gaussianKernel is the closed-form kernel coeff*exp(-expnt*x^2) in
// simulation coordinates on [0,1].
type gaussianKernel struct {
	k     int
	coeff float64
	expnt float64
	natl  Level

	npt          int
	quadX, quadW []float64
}

// NewGaussian builds the operator for the kernel coeff*exp(-expnt*x^2)
// with coeff and expnt given in simulation coordinates. A negative
// coefficient is folded into the operator's Sign. The quadrature order
// k+11 integrates the degree 2k+20 product of the kernel's polynomial
// representation and the double-order basis exactly enough for
// coefficients accurate to about 1e-20.
func NewGaussian(k int, coeff, expnt float64) (*Convolution, error) {
	if expnt <= 0 {
		return nil, ErrInvalidExponent
	}
	sign := 1.0
	if coeff < 0 {
		coeff, sign = -coeff, -1.0
	}
	g := &gaussianKernel{
		k:     k,
		coeff: coeff,
		expnt: expnt,
		natl:  Level(math.Floor(0.5*math.Log2(expnt))) + 1,
	}
	c, err := New(k, k+11, sign, g)
	if err != nil {
		return nil, err
	}
	g.npt = c.npt
	g.quadX, g.quadW = c.quadX, c.quadW
	return c, nil
}

// GaussianFunctor returns f(x) = coeff*exp(-expnt*x*x), the functor
// form of the Gaussian kernel for use with NewGeneric.
func GaussianFunctor(coeff, expnt float64) func(float64) float64 {
	return func(x float64) float64 {
		return coeff * math.Exp(-expnt*x*x)
	}
}

func (g *gaussianKernel) NaturalLevel() Level { return g.natl }

// Rnlp computes v[p] = int_0^1 K(2^-n (z+l)) phi~_p(z) dz by high-order
// Gauss-Legendre over subintervals of the unit box.
//
// Negative translations are reflected to positive ones up front and
// undone at the end through phi~_p(1-z) = (-1)^p phi~_p(z), so the
// significant subintervals are always on the left and the box loop can
// stop at the first screened-out box.
//
// The box size is estimated from the exponent: a Gaussian with
// rescaled exponent beta falls to ~5e-22 of its peak at 7/sqrt(beta),
// so boxes of width 1/sqrt(beta) need at most seven passes, and the
// absolute screen below folds the (possibly large) coefficient in.
func (g *gaussianKernel) Rnlp(n Level, lx Translation) []float64 {
	twok := 2 * g.k
	v := make([]float64, twok)

	lkeep := lx
	if lx < 0 {
		lx = -lx - 1
	}

	// Rescale coefficient and exponent onto level n so the integration
	// range is [l, l+1].
	scaledcoeff := g.coeff * math.Pow(math.Sqrt(0.5), float64(n))
	beta := g.expnt * math.Pow(0.25, float64(n))

	h := 1 / math.Sqrt(beta)
	nbox := int(1 / h)
	if nbox < 1 {
		nbox = 1
	}
	h = 1 / float64(nbox)

	// Boxes with beta*xlo^2 beyond argmax contribute under 1e-22 and
	// are dropped along with everything to their right.
	argmax := math.Abs(math.Log(1e-22 / math.Abs(scaledcoeff*h)))

	phix := make([]float64, twok)
	scaled := make([]float64, twok)
	for box := 0; box < nbox; box++ {
		xlo := float64(box)*h + float64(lx)
		if beta*xlo*xlo > argmax {
			break
		}
		for i := 0; i < g.npt; i++ {
			xx := xlo + h*g.quadX[i]
			ee := scaledcoeff * math.Exp(-beta*xx*xx) * g.quadW[i] * h
			basis.ScalingFunctions(xx-float64(lx), twok, phix)
			vecmath.ScaleBlock(scaled, phix, ee)
			vecmath.AddBlockInPlace(v, scaled)
		}
	}

	if lkeep < 0 {
		for p := 1; p < twok; p += 2 {
			v[p] = -v[p]
		}
	}
	return v
}

// IsSmall prunes blocks whose nearest edge is beyond the 5e-22 decay
// radius of the rescaled Gaussian (beta*ll^2 > 49; 69 would be 1e-30).
func (g *gaussianKernel) IsSmall(n Level, lx Translation) bool {
	beta := g.expnt * math.Pow(0.25, float64(n))
	var ll Translation
	switch {
	case lx > 0:
		ll = lx - 1
	case lx < 0:
		ll = -1 - lx
	}
	return beta*float64(ll)*float64(ll) > 49
}
