package vector

import "errors"

var (
	// ErrDimensionMismatch indicates parallel sequences of unequal length.
	ErrDimensionMismatch = errors.New("vector: sequences must have the same length")
	// ErrInvalidArgument indicates an argument outside its documented range.
	ErrInvalidArgument = errors.New("vector: invalid argument")
	// ErrNoData indicates a source contained no usable values.
	ErrNoData = errors.New("vector: no valid data found")
)
