package basis

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAutocorrelationShape(t *testing.T) {
	for _, k := range []int{2, 3, 7} {
		c, err := Autocorrelation(k)
		require.NoError(t, err)
		r, cols := c.Dims()
		require.Equal(t, k*k, r)
		require.Equal(t, 4*k, cols)
	}
}

// For the constant kernel K == 1 the double-order projections reduce
// to the unit vector e_0 on every box, so the correlation block is
// int phi_i * int phi_j = delta_i0 * delta_j0. The projector must
// therefore satisfy c[i*k+j][0] + c[i*k+j][2k] = delta_i0 * delta_j0.
func TestAutocorrelationConstantKernel(t *testing.T) {
	for _, k := range []int{2, 3, 5} {
		c, err := Autocorrelation(k)
		require.NoError(t, err)

		twok := 2 * k
		for i := 0; i < k; i++ {
			for j := 0; j < k; j++ {
				got := c.At(i*k+j, 0) + c.At(i*k+j, twok)
				want := 0.0
				if i == 0 && j == 0 {
					want = 1
				}
				require.InDelta(t, want, got, 1e-12, "k=%d (%d,%d)", k, i, j)
			}
		}
	}
}

func TestAutocorrelationInvalidOrder(t *testing.T) {
	_, err := Autocorrelation(0)
	require.ErrorIs(t, err, ErrInvalidOrder)
	_, err = Autocorrelation(MaxOrder/2 + 1)
	require.ErrorIs(t, err, ErrInvalidOrder)
}
