package wavefront

import (
	"iter"

	"github.com/pkg/errors"
)

type Mode uint8

const (
	ModeFull Mode = iota
	ModeUpper
	ModeUpperStrict
)

func (m Mode) String() string {
	switch m {
	case ModeFull:
		return "full"
	case ModeUpper:
		return "upper"
	case ModeUpperStrict:
		return "upper-strict"
	}
	return "unknown"
}

func ParseMode(s string) (Mode, error) {
	switch s {
	case "full":
		return ModeFull, nil
	case "upper":
		return ModeUpper, nil
	case "upper-strict":
		return ModeUpperStrict, nil
	}
	return ModeFull, errors.Wrapf(ErrUnknownMode, "%q", s)
}

// Limit returns how many diagonals mode emits for a rows x cols grid.
// The upper modes require a square grid.
func Limit(rows, cols int, mode Mode) (int, error) {
	if err := checkDims(rows, cols); err != nil {
		return 0, errors.WithStack(err)
	}
	switch mode {
	case ModeFull:
		return MaxSlices(rows, cols), nil
	case ModeUpper, ModeUpperStrict:
		if rows != cols {
			return 0, errors.Wrapf(ErrNotSquare, "%dx%d", rows, cols)
		}
		if mode == ModeUpperStrict {
			return (rows+cols)/2 - 1, nil
		}
		return (rows + cols) / 2, nil
	}
	return 0, errors.Wrapf(ErrUnknownMode, "mode=%d", mode)
}

type Diagonal[T any] struct {
	Span
	Values []T
}

// Traverse yields the first limit diagonals of g, top-right first.
// Each diagonal lists its values top to bottom. The returned sequence holds no
// state and can be ranged over again.
func Traverse[T any](g Grid[T], limit int) (iter.Seq[Diagonal[T]], error) {
	rows, cols := g.Dims()
	spans, err := Spans(rows, cols, limit)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return func(yield func(Diagonal[T]) bool) {
		for s := range spans {
			values := make([]T, s.Count)
			for j := 0; j < s.Count; j += 1 {
				c := s.Cell(j)
				values[j] = g.At(c.Row, c.Col)
			}
			if yield(Diagonal[T]{Span: s, Values: values}) != true {
				return
			}
		}
	}, nil
}

func Sweep[T any](g Grid[T], mode Mode) (iter.Seq[Diagonal[T]], error) {
	rows, cols := g.Dims()
	limit, err := Limit(rows, cols, mode)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return Traverse(g, limit)
}

// FullSweep visits every cell exactly once.
func FullSweep[T any](g Grid[T]) (iter.Seq[Diagonal[T]], error) {
	return Sweep(g, ModeFull)
}

// UpperTriangularSweep stops at the primary diagonal, or just before it
// when excludePrimary is set. g must be square.
func UpperTriangularSweep[T any](g Grid[T], excludePrimary bool) (iter.Seq[Diagonal[T]], error) {
	if excludePrimary {
		return Sweep(g, ModeUpperStrict)
	}
	return Sweep(g, ModeUpper)
}

func Collect[T any](seq iter.Seq[Diagonal[T]]) []Diagonal[T] {
	out := make([]Diagonal[T], 0)
	for d := range seq {
		out = append(out, d)
	}
	return out
}
