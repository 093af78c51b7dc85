package wavefront

// Grid is a read-only rectangular accessor.
// *mat.Dense from gonum satisfies Grid[float64].
type Grid[T any] interface {
	Dims() (rows, cols int)
	At(row, col int) T
}

type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}
