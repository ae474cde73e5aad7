package vector

// Sum accumulates the entries left to right, starting from zero. No special
// missing-value handling: a NaN entry makes the total NaN.
func (v Vector) Sum() float64 {
	total := 0.0
	for _, x := range v {
		total += x
	}
	return total
}

// WeightedMean computes sum(x[i]*w[i]) / sum(w[i]).
//
// Lengths must match; otherwise ErrDimensionMismatch. If any entry of x or
// w is missing the result is the missing sentinel: missingness propagates,
// it is not skipped.
func WeightedMean(x, w Vector) (float64, error) {
	if len(w) != len(x) {
		return 0, ErrDimensionMismatch
	}

	num := 0.0
	den := 0.0
	for i := range x {
		if IsNA(x[i]) || IsNA(w[i]) {
			return NA(), nil
		}
		num += x[i] * w[i]
		den += w[i]
	}
	return num / den, nil
}
