package basis

import (
	"errors"
	"math"
)

// MaxOrder is the largest supported scaling-function count. The engine
// asks for order 2k with k up to 30, plus headroom.
const MaxOrder = 64

// Errors returned by the basis generators.
var (
	ErrInvalidOrder = errors.New("basis: order out of range")
)

// ScalingFunctions evaluates the first n Legendre scaling functions at
// x in [0,1], writing phi_p(x) = sqrt(2p+1) * P_p(2x-1) into out[0:n].
//
//	phi_p(1-x) = (-1)^p phi_p(x)
//
// The functions are orthonormal on [0,1]. out must have length >= n.
func ScalingFunctions(x float64, n int, out []float64) {
	if n <= 0 {
		return
	}
	y := 2*x - 1
	p0, p1 := 1.0, y
	out[0] = 1
	if n == 1 {
		return
	}
	out[1] = math.Sqrt(3) * y
	for j := 2; j < n; j++ {
		p0, p1 = p1, (float64(2*j-1)*y*p1-float64(j-1)*p0)/float64(j)
		out[j] = math.Sqrt(float64(2*j+1)) * p1
	}
}
