package vector

// SelectPositive returns the strictly positive entries of x in their
// original order. It counts matches first and allocates the exact output
// size, avoiding append reallocation on large inputs.
func SelectPositive(x Vector) Vector {
	count := 0
	for _, v := range x {
		if v > 0 {
			count++
		}
	}

	out := make(Vector, count)
	i := 0
	for _, v := range x {
		if v > 0 {
			out[i] = v
			i++
		}
	}
	return out
}

// SelectDefined returns the non-missing entries of x in their original
// order, using the same count-then-fill strategy as SelectPositive.
func SelectDefined(x Vector) Vector {
	count := 0
	for _, v := range x {
		if !IsNA(v) {
			count++
		}
	}

	out := make(Vector, count)
	i := 0
	for _, v := range x {
		if !IsNA(v) {
			out[i] = v
			i++
		}
	}
	return out
}

// SelectPositiveNaive is the single-pass, append-growth variant of
// SelectPositive. It exists as a baseline for benchmarking the two-pass
// strategy; both return identical results.
func SelectPositiveNaive(x Vector) Vector {
	var out Vector
	for _, v := range x {
		if v > 0 {
			out = append(out, v)
		}
	}
	return out
}
