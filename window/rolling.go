// Package window provides rolling-window statistics and missing-value imputation.
package window

import (
	"github.com/dereckmezquita/simts/vector"
)

// RollingMean calculates the trailing mean of x over a fixed window. The
// result has the same length as x: position i holds the mean of
// x[i-window+1 .. i], and the first window-1 positions are missing because
// no full window exists yet.
//
// The mean is maintained incrementally: one addition and one subtraction
// per step, so the whole pass is O(n) regardless of window size.
//
// Missing input entries are not handled specially: a NaN enters the
// running sum and subtracting it later cannot recover the total
// (NaN - NaN is NaN), so every position from the first window containing
// a missing entry onward is missing. Impute first (LOCF or
// MeanCarryForward) when the input has gaps.
//
// Returns ErrInvalidWindow unless 1 <= window <= len(x).
func RollingMean(x vector.Vector, window int) (vector.Vector, error) {
	if window < 1 || window > len(x) {
		return nil, ErrInvalidWindow
	}

	out := make(vector.Vector, len(x))
	for i := 0; i < window-1; i++ {
		out[i] = vector.NA()
	}

	sum := 0.0
	for i := 0; i < window; i++ {
		sum += x[i]
	}
	out[window-1] = sum / float64(window)

	for i := window; i < len(x); i++ {
		sum = sum - x[i-window] + x[i]
		out[i] = sum / float64(window)
	}

	return out, nil
}

// Roller is a fixed-capacity streaming accumulator for the same trailing
// mean RollingMean computes in batch. Push values as they arrive and read
// Mean at any point; until the window fills, Mean averages over the values
// seen so far.
type Roller struct {
	values []float64
	index  int
	count  int
	sum    float64
}

// NewRoller creates a streaming roller with the given window capacity.
// Returns ErrInvalidWindow for a non-positive size.
func NewRoller(size int) (*Roller, error) {
	if size < 1 {
		return nil, ErrInvalidWindow
	}
	return &Roller{values: make([]float64, size)}, nil
}

// Push adds a value, evicting the oldest once the window is full.
func (r *Roller) Push(value float64) {
	if r.count < len(r.values) {
		r.values[r.index] = value
		r.sum += value
		r.count++
	} else {
		old := r.values[r.index]
		r.values[r.index] = value
		r.sum = r.sum - old + value
	}
	r.index = (r.index + 1) % len(r.values)
}

// Count returns the number of values currently in the window.
func (r *Roller) Count() int {
	return r.count
}

// Full reports whether the window has reached capacity.
func (r *Roller) Full() bool {
	return r.count == len(r.values)
}

// Mean returns the mean of the values currently in the window, or the
// missing sentinel when nothing has been pushed.
func (r *Roller) Mean() float64 {
	if r.count == 0 {
		return vector.NA()
	}
	return r.sum / float64(r.count)
}
