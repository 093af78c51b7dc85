package wavefront

import (
	"github.com/pkg/errors"
)

// Flatten returns the values of g in full-sweep order.
func Flatten[T any](g Grid[T]) ([]T, error) {
	rows, cols := g.Dims()
	if err := checkArea(rows, cols); err != nil {
		return nil, errors.WithStack(err)
	}
	spans, err := Spans(rows, cols, MaxSlices(rows, cols))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	result := make([]T, 0, rows*cols)
	for s := range spans {
		for j := 0; j < s.Count; j += 1 {
			c := s.Cell(j)
			result = append(result, g.At(c.Row, c.Col))
		}
	}
	return result, nil
}

// Unflatten is the inverse of Flatten.
func Unflatten[T any](data []T, rows, cols int) (*Matrix[T], error) {
	result, err := NewMatrix[T](rows, cols)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if len(data) != rows*cols {
		return nil, errors.Wrapf(ErrSizeMismatch, "len=%d want %dx%d", len(data), rows, cols)
	}

	spans, err := Spans(rows, cols, MaxSlices(rows, cols))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	i := 0
	for s := range spans {
		for j := 0; j < s.Count; j += 1 {
			c := s.Cell(j)
			result.data[c.Row*cols+c.Col] = data[i]
			i += 1
		}
	}
	return result, nil
}
