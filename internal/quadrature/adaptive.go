package quadrature

import "math"

// maxDepth bounds the bisection recursion; 1e-12 tolerances on smooth
// kernels converge within a handful of levels, so hitting the bound
// signals a non-integrable or discontinuous integrand.
const maxDepth = 20

// VectorFunc is a vector-valued integrand. Each call must return a
// slice of the same, nonzero length.
type VectorFunc func(x float64) []float64

// AdaptiveVector integrates f over [a, b] to absolute tolerance tol by
// recursive bisection, seeded with the Gauss-Legendre rule (x, w) given
// on [0, 1]. An interval is accepted when the Frobenius norm of the
// difference between its one-panel and two-panel estimates is within
// the tolerance; on refinement each half inherits half the tolerance.
func AdaptiveVector(a, b float64, f VectorFunc, tol float64, x, w []float64) ([]float64, error) {
	return adaptive(a, b, f, tol, x, w, 0)
}

func adaptive(a, b float64, f VectorFunc, tol float64, x, w []float64, depth int) ([]float64, error) {
	whole, err := fixedPanel(a, b, f, x, w)
	if err != nil {
		return nil, err
	}
	mid := 0.5 * (a + b)
	left, err := fixedPanel(a, mid, f, x, w)
	if err != nil {
		return nil, err
	}
	right, err := fixedPanel(mid, b, f, x, w)
	if err != nil {
		return nil, err
	}

	var diff float64
	for i := range whole {
		d := left[i] + right[i] - whole[i]
		diff += d * d
	}
	if math.Sqrt(diff) <= tol {
		for i := range left {
			left[i] += right[i]
		}
		return left, nil
	}
	if depth >= maxDepth {
		return nil, ErrNotConverged
	}

	left, err = adaptive(a, mid, f, 0.5*tol, x, w, depth+1)
	if err != nil {
		return nil, err
	}
	right, err = adaptive(mid, b, f, 0.5*tol, x, w, depth+1)
	if err != nil {
		return nil, err
	}
	for i := range left {
		left[i] += right[i]
	}
	return left, nil
}

// fixedPanel applies the seeded rule to a single interval.
func fixedPanel(a, b float64, f VectorFunc, x, w []float64) ([]float64, error) {
	scale := b - a
	var sum []float64
	for i := range x {
		v := f(a + scale*x[i])
		if len(v) == 0 {
			return nil, ErrEmptyIntegral
		}
		if sum == nil {
			sum = make([]float64, len(v))
		}
		ws := w[i] * scale
		for p := range sum {
			sum[p] += ws * v[p]
		}
	}
	return sum, nil
}
