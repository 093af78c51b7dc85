package wavefront

import (
	"math"

	"github.com/pkg/errors"
)

var (
	_ Grid[int] = (*Matrix[int])(nil)
)

// Matrix is a dense row-major buffer.
type Matrix[T any] struct {
	rows, cols int
	data       []T
}

// checkArea rejects dimensions whose cell count is zero or does not fit in int.
func checkArea(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return errors.Wrapf(ErrEmptyGrid, "rows=%d cols=%d", rows, cols)
	}
	if math.MaxInt/cols < rows {
		return errors.Wrapf(ErrTooLarge, "rows=%d cols=%d", rows, cols)
	}
	return nil
}

func NewMatrix[T any](rows, cols int) (*Matrix[T], error) {
	if err := checkArea(rows, cols); err != nil {
		return nil, errors.WithStack(err)
	}
	return &Matrix[T]{
		rows: rows,
		cols: cols,
		data: make([]T, rows*cols),
	}, nil
}

func FromRows[T any](rows [][]T) (*Matrix[T], error) {
	if len(rows) == 0 {
		return nil, errors.Wrapf(ErrEmptyGrid, "rows=0")
	}
	m, err := NewMatrix[T](len(rows), len(rows[0]))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	for i, r := range rows {
		if len(r) != m.cols {
			return nil, errors.Wrapf(ErrRaggedRows, "row %d has %d columns, want %d", i, len(r), m.cols)
		}
		copy(m.data[i*m.cols:(i+1)*m.cols], r)
	}
	return m, nil
}

// Sequential fills value(row, col) = start + row*cols + col.
func Sequential[T Number](rows, cols int, start T) (*Matrix[T], error) {
	m, err := NewMatrix[T](rows, cols)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	for i := range m.data {
		m.data[i] = start + T(i)
	}
	return m, nil
}

func (m *Matrix[T]) Dims() (int, int) {
	return m.rows, m.cols
}

func (m *Matrix[T]) inBounds(row, col int) bool {
	return 0 <= row && row < m.rows && 0 <= col && col < m.cols
}

// At panics with ErrOutOfRange, like gonum's mat.Dense.
func (m *Matrix[T]) At(row, col int) T {
	if m.inBounds(row, col) != true {
		panic(ErrOutOfRange)
	}
	return m.data[row*m.cols+col]
}

func (m *Matrix[T]) Get(row, col int) (T, error) {
	if m.inBounds(row, col) != true {
		var zero T
		return zero, errors.Wrapf(ErrOutOfRange, "(%d, %d) in %dx%d", row, col, m.rows, m.cols)
	}
	return m.data[row*m.cols+col], nil
}

func (m *Matrix[T]) Set(row, col int, v T) error {
	if m.inBounds(row, col) != true {
		return errors.Wrapf(ErrOutOfRange, "(%d, %d) in %dx%d", row, col, m.rows, m.cols)
	}
	m.data[row*m.cols+col] = v
	return nil
}

func (m *Matrix[T]) Rows() [][]T {
	out := make([][]T, m.rows)
	for i := 0; i < m.rows; i += 1 {
		out[i] = make([]T, m.cols)
		copy(out[i], m.data[i*m.cols:(i+1)*m.cols])
	}
	return out
}
