package wavefront

import (
	"iter"

	"github.com/pkg/errors"
)

type Cell struct {
	Row, Col int
}

// Span locates one anti-diagonal: it begins at Start and runs Count cells
// down and to the right.
type Span struct {
	Index int
	Start Cell
	Count int
}

func (s Span) Cell(j int) Cell {
	return Cell{Row: s.Start.Row + j, Col: s.Start.Col + j}
}

func (s Span) Cells() []Cell {
	cells := make([]Cell, s.Count)
	for j := 0; j < s.Count; j += 1 {
		cells[j] = s.Cell(j)
	}
	return cells
}

// MaxSlices is the number of anti-diagonals of a rows x cols grid.
func MaxSlices(rows, cols int) int {
	return rows + cols - 1
}

func checkDims(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return errors.Wrapf(ErrEmptyGrid, "rows=%d cols=%d", rows, cols)
	}
	return nil
}

func checkLimit(rows, cols, limit int) error {
	if limit < 0 || MaxSlices(rows, cols) < limit {
		return errors.Wrapf(ErrInvalidLimit, "limit=%d not in [0, %d]", limit, MaxSlices(rows, cols))
	}
	return nil
}

// span assumes dims and slice are valid.
func span(rows, cols, slice int) Span {
	startCol := max(0, cols-1-slice)
	startRow := max(0, slice-cols+1)
	count := min(slice, cols-1-startCol, rows-1-startRow) + 1
	return Span{
		Index: slice,
		Start: Cell{Row: startRow, Col: startCol},
		Count: count,
	}
}

func SpanOf(rows, cols, slice int) (Span, error) {
	if err := checkDims(rows, cols); err != nil {
		return Span{}, errors.WithStack(err)
	}
	if slice < 0 || MaxSlices(rows, cols) <= slice {
		return Span{}, errors.Wrapf(ErrSliceOutOfRange, "slice=%d not in [0, %d]", slice, MaxSlices(rows, cols)-1)
	}
	return span(rows, cols, slice), nil
}

// Spans validates the arguments up front and then yields the first limit
// spans, starting at the top-right corner.
func Spans(rows, cols, limit int) (iter.Seq[Span], error) {
	if err := checkDims(rows, cols); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := checkLimit(rows, cols, limit); err != nil {
		return nil, errors.WithStack(err)
	}
	return func(yield func(Span) bool) {
		for slice := 0; slice < limit; slice += 1 {
			if yield(span(rows, cols, slice)) != true {
				return
			}
		}
	}, nil
}
