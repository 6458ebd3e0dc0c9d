package conv1d

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-mra/internal/testutil"
)

func TestNewGaussianNaturalLevel(t *testing.T) {
	cases := []struct {
		name  string
		expnt float64
		want  Level
	}{
		{"unit exponent", 1, 1},
		{"sixteen", 16, 3},
		{"sharp", 1024, 6},
		{"broad", 0.5, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			op, err := NewGaussian(5, 1.0, tc.expnt)
			if err != nil {
				t.Fatalf("NewGaussian: %v", err)
			}
			if got := op.NaturalLevel(); got != tc.want {
				t.Fatalf("natural level = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestNewGaussianValidation(t *testing.T) {
	if _, err := NewGaussian(3, 1.0, 0); err != ErrInvalidExponent {
		t.Fatalf("zero exponent: got %v, want %v", err, ErrInvalidExponent)
	}
	if _, err := NewGaussian(3, 1.0, -2); err != ErrInvalidExponent {
		t.Fatalf("negative exponent: got %v, want %v", err, ErrInvalidExponent)
	}
}

func TestNewGaussianSignMunging(t *testing.T) {
	op, err := NewGaussian(3, -2.0, 1.0)
	if err != nil {
		t.Fatalf("NewGaussian: %v", err)
	}
	if op.Sign() != -1 {
		t.Fatalf("sign = %v, want -1", op.Sign())
	}

	pos, err := NewGaussian(3, 2.0, 1.0)
	if err != nil {
		t.Fatalf("NewGaussian: %v", err)
	}
	if pos.Sign() != 1 {
		t.Fatalf("sign = %v, want 1", pos.Sign())
	}
	// The folded-out coefficient leaves the magnitude untouched.
	testutil.RequireSliceNearlyEqual(t, op.GetRnlp(1, 0), pos.GetRnlp(1, 0), 0)
}

func TestGaussianNonstandardUnitBlock(t *testing.T) {
	op, err := NewGaussian(3, 1.0, 1.0)
	if err != nil {
		t.Fatalf("NewGaussian: %v", err)
	}

	b := op.Nonstandard(0, 0)
	if b.Rnormf <= 0 {
		t.Fatalf("Rnormf = %v, want > 0", b.Rnormf)
	}
	r, c := b.R.Dims()
	if r != 6 || c != 6 {
		t.Fatalf("R is %dx%d, want 6x6", r, c)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if b.T.At(i, j) != b.R.At(i, j) {
				t.Fatalf("(%d,%d): T=%v R=%v", i, j, b.T.At(i, j), b.R.At(i, j))
			}
		}
	}
}

func TestGaussianNonstandardFarBlockEmpty(t *testing.T) {
	op, err := NewGaussian(3, 1.0, 1.0)
	if err != nil {
		t.Fatalf("NewGaussian: %v", err)
	}
	if !op.IsSmall(0, 50) {
		t.Fatal("expected (0,50) to be screened out")
	}

	b := op.Nonstandard(0, 50)
	if b.R != nil || b.T != nil || b.RU != nil || b.RVT != nil || b.TU != nil || b.TVT != nil {
		t.Fatal("empty block carries tensors")
	}
	for name, v := range map[string]float64{
		"Rnorm": b.Rnorm, "Tnorm": b.Tnorm,
		"Rnormf": b.Rnormf, "Tnormf": b.Tnormf, "NSnormf": b.NSnormf,
	} {
		if v != 0 {
			t.Fatalf("%s = %v, want 0", name, v)
		}
	}
}

// phi~_p(1-z) = (-1)^p phi~_p(z) turns the projection at -l-1 into the
// odd-sign-flipped projection at l.
func TestGaussianReflectionSymmetry(t *testing.T) {
	op, err := NewGaussian(4, 1.0, 4.0)
	if err != nil {
		t.Fatalf("NewGaussian: %v", err)
	}
	g := op.kernel

	for _, l := range []Translation{0, 1, 3} {
		plus := g.Rnlp(1, l)
		minus := g.Rnlp(1, -l-1)
		for p := range plus {
			want := plus[p]
			if p&1 == 1 {
				want = -want
			}
			if minus[p] != want {
				t.Fatalf("l=%d p=%d: got %v, want %v", l, p, minus[p], want)
			}
		}
	}
}

func TestGaussianScreening(t *testing.T) {
	op, err := NewGaussian(3, 1.0, 1.0)
	if err != nil {
		t.Fatalf("NewGaussian: %v", err)
	}
	g := op.kernel

	for _, tc := range []struct {
		n Level
		l Translation
	}{{0, 9}, {0, -12}, {1, 20}} {
		if !g.IsSmall(tc.n, tc.l) {
			t.Fatalf("(%d,%d) should be small", tc.n, tc.l)
		}
		v := g.Rnlp(tc.n, tc.l)
		for p, e := range v {
			if math.Abs(e) >= 1e-20 {
				t.Fatalf("(%d,%d)[%d] = %v, want < 1e-20", tc.n, tc.l, p, e)
			}
		}
	}

	// Inside the screen (level 0 keeps |l| <= 8) the block must survive.
	if g.IsSmall(0, 5) {
		t.Fatal("(0,5) should not be small")
	}
}

func TestGaussianSigmaProfile(t *testing.T) {
	op, err := NewGaussian(4, 1.0, 1.0)
	if err != nil {
		t.Fatalf("NewGaussian: %v", err)
	}

	b := op.Nonstandard(0, 0)
	for _, s := range [][]float64{b.Rs, b.Ts} {
		if len(s) == 0 {
			t.Fatal("empty sigma profile on a non-empty block")
		}
		if math.Abs(s[0]-1) > 1e-12 {
			t.Fatalf("s[0] = %v, want 1", s[0])
		}
		for i := 1; i < len(s); i++ {
			if s[i] > s[i-1]+1e-15 {
				t.Fatalf("profile increases at %d: %v -> %v", i, s[i-1], s[i])
			}
			if s[i] < 0 || s[i] > 1 {
				t.Fatalf("s[%d] = %v outside [0,1]", i, s[i])
			}
		}
	}
}
