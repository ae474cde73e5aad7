package window

import (
	"github.com/dereckmezquita/simts/vector"
)

// LOCF fills missing entries by carrying the last observation forward:
// each missing entry takes the most recent preceding non-missing value.
// A leading run of missing entries stays missing since no prior
// observation exists. The input is never mutated.
func LOCF(x vector.Vector) vector.Vector {
	out := x.Clone()

	last := vector.NA()
	for i, v := range out {
		if vector.IsNA(v) {
			out[i] = last
		} else {
			last = v
		}
	}
	return out
}

// MeanCarryForward fills each missing entry with the running mean of all
// non-missing values seen strictly before it. With no prior observation
// the entry stays missing (zero observations give a 0/0 division, which is
// NaN). The input is never mutated.
func MeanCarryForward(x vector.Vector) vector.Vector {
	out := x.Clone()

	sum := 0.0
	count := 0
	for i, v := range out {
		if vector.IsNA(v) {
			out[i] = sum / float64(count)
		} else {
			sum += v
			count++
		}
	}
	return out
}
