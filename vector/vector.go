// Package vector provides the numeric sequence type used throughout simts.
package vector

import (
	"math"
	"sort"
)

// Vector is an ordered sequence of float64 values. Missing entries are
// represented by NaN (see NA and IsNA) and propagate through arithmetic
// reductions rather than being treated as zero.
type Vector []float64

// NA returns the missing-value sentinel.
func NA() float64 {
	return math.NaN()
}

// IsNA reports whether x is the missing-value sentinel.
func IsNA(x float64) bool {
	return math.IsNaN(x)
}

// New creates a vector from the given values.
func New(values ...float64) Vector {
	v := make(Vector, len(values))
	copy(v, values)
	return v
}

// FromSlice creates a vector backed by a fresh copy of s.
func FromSlice(s []float64) Vector {
	v := make(Vector, len(s))
	copy(v, s)
	return v
}

// Clone returns an independent copy of the vector. Mutating the copy never
// affects the original.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)
	return out
}

// Len returns the number of entries.
func (v Vector) Len() int {
	return len(v)
}

// HasNA reports whether any entry is missing.
func (v Vector) HasNA() bool {
	for _, x := range v {
		if IsNA(x) {
			return true
		}
	}
	return false
}

// Mean calculates the arithmetic mean. NaN entries propagate into the
// result; the mean of an empty vector is 0.
func (v Vector) Mean() float64 {
	if len(v) == 0 {
		return 0
	}
	return v.Sum() / float64(len(v))
}

// Variance calculates the sample variance (n-1 denominator).
func (v Vector) Variance() float64 {
	if len(v) < 2 {
		return 0
	}
	mean := v.Mean()
	sumSq := 0.0
	for _, x := range v {
		diff := x - mean
		sumSq += diff * diff
	}
	return sumSq / float64(len(v)-1)
}

// Std calculates the sample standard deviation.
func (v Vector) Std() float64 {
	return math.Sqrt(v.Variance())
}

// Min returns the minimum value, or NaN for an empty vector.
func (v Vector) Min() float64 {
	if len(v) == 0 {
		return math.NaN()
	}
	min := v[0]
	for _, x := range v[1:] {
		if x < min {
			min = x
		}
	}
	return min
}

// Max returns the maximum value, or NaN for an empty vector.
func (v Vector) Max() float64 {
	if len(v) == 0 {
		return math.NaN()
	}
	max := v[0]
	for _, x := range v[1:] {
		if x > max {
			max = x
		}
	}
	return max
}

// Median returns the median value, or NaN for an empty vector.
func (v Vector) Median() float64 {
	if len(v) == 0 {
		return math.NaN()
	}
	sorted := make([]float64, len(v))
	copy(sorted, v)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}
