package wavefront_test

import (
	"fmt"
	"os"

	"github.com/octu0/wavefront"
	"gonum.org/v1/gonum/mat"
)

func Example() {
	m, err := wavefront.FromRows([][]int{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
	if err != nil {
		panic(err)
	}
	seq, err := wavefront.FullSweep(m)
	if err != nil {
		panic(err)
	}
	if err := wavefront.WriteDiagonals(os.Stdout, seq); err != nil {
		panic(err)
	}

	// Output:
	// Slice 0: 3
	// Slice 1: 2 6
	// Slice 2: 1 5 9
	// Slice 3: 4 8
	// Slice 4: 7
}

func ExampleUpperTriangularSweep() {
	m, err := wavefront.Sequential(4, 4, 0)
	if err != nil {
		panic(err)
	}
	seq, err := wavefront.UpperTriangularSweep(m, true)
	if err != nil {
		panic(err)
	}
	for d := range seq {
		fmt.Println(d.Index, d.Start, d.Values)
	}

	// Output:
	// 0 {0 3} [3]
	// 1 {0 2} [2 7]
	// 2 {0 1} [1 6 11]
}

func ExampleFlatten() {
	dense := mat.NewDense(3, 2, []float64{
		1, 2,
		3, 4,
		5, 6,
	})
	flat, err := wavefront.Flatten[float64](dense)
	if err != nil {
		panic(err)
	}
	fmt.Println(flat)

	orig, err := wavefront.Unflatten(flat, 3, 2)
	if err != nil {
		panic(err)
	}
	fmt.Println(orig.Rows())

	// Output:
	// [2 1 4 3 6 5]
	// [[1 2] [3 4] [5 6]]
}
