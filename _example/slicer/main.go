package main

import (
	"fmt"
	"os"

	"github.com/octu0/wavefront"
	"github.com/pkg/errors"
)

const (
	rows    = 3
	columns = 5
)

func run() error {
	m, err := wavefront.Sequential(rows, columns, 0)
	if err != nil {
		return errors.WithStack(err)
	}
	if err := wavefront.WriteMatrix(os.Stdout, m); err != nil {
		return errors.WithStack(err)
	}

	full, err := wavefront.FullSweep(m)
	if err != nil {
		return errors.WithStack(err)
	}
	if err := wavefront.WriteDiagonals(os.Stdout, full, wavefront.WithCount()); err != nil {
		return errors.WithStack(err)
	}

	for _, exclude := range []bool{false, true} {
		upper, err := wavefront.UpperTriangularSweep(m, exclude)
		if errors.Is(err, wavefront.ErrNotSquare) {
			fmt.Printf("%dx%d is not square, no triangular sweep\n", rows, columns)
			return nil
		}
		if err != nil {
			return errors.WithStack(err)
		}
		fmt.Printf("upper triangular, exclude primary=%v\n", exclude)
		if err := wavefront.WriteDiagonals(os.Stdout, upper); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		panic(fmt.Sprintf("%+v", err))
	}
}
