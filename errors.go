package wavefront

import (
	"github.com/pkg/errors"
)

var (
	ErrEmptyGrid       = errors.New("wavefront: grid has zero rows or columns")
	ErrInvalidLimit    = errors.New("wavefront: limit out of range")
	ErrNotSquare       = errors.New("wavefront: grid is not square")
	ErrSliceOutOfRange = errors.New("wavefront: slice index out of range")
	ErrOutOfRange      = errors.New("wavefront: index out of range")
	ErrRaggedRows      = errors.New("wavefront: rows have different lengths")
	ErrSizeMismatch    = errors.New("wavefront: data size does not match dimensions")
	ErrUnknownMode     = errors.New("wavefront: unknown sweep mode")
	ErrTooLarge        = errors.New("wavefront: rows*cols overflows int")
)
