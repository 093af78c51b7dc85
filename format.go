package wavefront

import (
	"fmt"
	"io"
	"iter"

	"github.com/pkg/errors"
)

type formatOption struct {
	count bool
	label func(...any) string
}

type FormatOption func(*formatOption)

// WithCount appends "[count = k]" after each slice label.
func WithCount() FormatOption {
	return func(o *formatOption) {
		o.count = true
	}
}

func WithLabel(fn func(...any) string) FormatOption {
	return func(o *formatOption) {
		o.label = fn
	}
}

// WriteDiagonals writes one "Slice <index>: v1 v2 ... vk" line per diagonal.
func WriteDiagonals[T any](w io.Writer, seq iter.Seq[Diagonal[T]], funcs ...FormatOption) error {
	opt := &formatOption{
		label: fmt.Sprint,
	}
	for _, fn := range funcs {
		fn(opt)
	}

	for d := range seq {
		line := opt.label(fmt.Sprintf("Slice %d:", d.Index))
		if opt.count {
			line += fmt.Sprintf(" [count = %d]", d.Count)
		}
		for _, v := range d.Values {
			line += fmt.Sprintf(" %v", v)
		}
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return errors.Wrapf(err, "write slice %d", d.Index)
		}
	}
	return nil
}

// WriteMatrix writes g row by row under a "Matrix:" header.
func WriteMatrix[T any](w io.Writer, g Grid[T]) error {
	if _, err := io.WriteString(w, "Matrix:\n"); err != nil {
		return errors.WithStack(err)
	}
	rows, cols := g.Dims()
	for i := 0; i < rows; i += 1 {
		line := fmt.Sprintf("Row %d: ", i)
		for j := 0; j < cols; j += 1 {
			line += fmt.Sprintf("%v\t ", g.At(i, j))
		}
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return errors.Wrapf(err, "write row %d", i)
		}
	}
	return nil
}
