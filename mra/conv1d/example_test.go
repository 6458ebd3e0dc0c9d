package conv1d_test

import (
	"fmt"

	"github.com/cwbudde/algo-mra/mra/conv1d"
)

func ExampleNewGaussian() {
	op, err := conv1d.NewGaussian(3, 1.0, 1.0)
	if err != nil {
		panic(err)
	}

	b := op.Nonstandard(0, 0)
	rows, cols := b.R.Dims()
	fmt.Printf("block %dx%d\n", rows, cols)
	fmt.Printf("remaining mass at rank 0: %.2f\n", b.Rs[0])
	fmt.Printf("far block empty: %v\n", op.Nonstandard(0, 50).Rnormf == 0)
	// Output:
	// block 6x6
	// remaining mass at rank 0: 1.00
	// far block empty: true
}

func ExampleConvolution_GetRnlp() {
	op, err := conv1d.NewGaussian(2, 1.0, 16.0)
	if err != nil {
		panic(err)
	}

	p := op.GetRnlp(op.NaturalLevel(), 0)
	fmt.Printf("projection length %d at level %d\n", len(p), op.NaturalLevel())
	// Output:
	// projection length 4 at level 3
}
