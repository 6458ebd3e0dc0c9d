package conv1d

import (
	"testing"

	"github.com/cwbudde/algo-mra/internal/testutil"
)

// The brute-force adaptive path must reproduce the closed-form
// Gaussian projection at the generic kernel's projection level.
func TestGenericAgreesWithGaussian(t *testing.T) {
	if testing.Short() {
		t.Skip("generic support probe is slow")
	}

	const k = 3
	gen, err := NewGeneric(k, GaussianFunctor(1.0, 1.0))
	if err != nil {
		t.Fatalf("NewGeneric: %v", err)
	}
	gauss, err := NewGaussian(k, 1.0, 1.0)
	if err != nil {
		t.Fatalf("NewGaussian: %v", err)
	}

	natl := gen.NaturalLevel()
	if natl != 13 {
		t.Fatalf("natural level = %d, want 13", natl)
	}
	for _, l := range []Translation{0, 1, -1, 5} {
		got := gen.GetRnlp(natl, l)
		want := gauss.kernel.Rnlp(natl, l)
		testutil.RequireFinite(t, got)
		testutil.RequireSliceNearlyEqual(t, got, want, 1e-10)
	}
}

func TestGenericNearestNeighborNeverSmall(t *testing.T) {
	g := &genericKernel{k: 3, natl: defaultNaturalLevel, maxl: 10}
	// Negative translations fold via 1-l, so -6..7 fold onto 0..7.
	for l := Translation(-6); l <= 7; l++ {
		if g.IsSmall(0, l) {
			t.Fatalf("l=%d must never be pruned", l)
		}
	}
}

func TestGenericIsSmallRescaling(t *testing.T) {
	g := &genericKernel{k: 3, natl: 4, maxl: 64}

	// At the natural level the probed support applies directly.
	if g.IsSmall(4, 63) {
		t.Fatal("(4,63) inside support")
	}
	if !g.IsSmall(4, 64) {
		t.Fatal("(4,64) outside support")
	}
	// Coarser levels scale the translation up...
	if !g.IsSmall(2, 16) {
		t.Fatal("(2,16) maps to 64 at the natural level")
	}
	// ...finer levels scale it down.
	if g.IsSmall(6, 255) {
		t.Fatal("(6,255) maps to 63 at the natural level")
	}
	if !g.IsSmall(6, 256) {
		t.Fatal("(6,256) maps to 64 at the natural level")
	}
}

func TestNewGenericNilFunctor(t *testing.T) {
	if _, err := NewGeneric(3, nil); err != ErrNilKernel {
		t.Fatalf("got %v, want %v", err, ErrNilKernel)
	}
}
