package simulate

import "errors"

var (
	// ErrNegativeCount indicates a negative number of requested draws.
	ErrNegativeCount = errors.New("simulate: n must be non-negative")
	// ErrNegativeScale indicates a negative standard deviation.
	ErrNegativeScale = errors.New("simulate: standard deviation must be non-negative")
	// ErrDimensionMismatch indicates mixture parameter sequences of unequal length.
	ErrDimensionMismatch = errors.New("simulate: weights, means, and sds must have the same length")
	// ErrInvalidWeights indicates negative weights or a zero total weight.
	ErrInvalidWeights = errors.New("simulate: weights must be non-negative with a positive total")
)
