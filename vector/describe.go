package vector

import (
	"github.com/montanaflynn/stats"
)

// Summary holds descriptive statistics for the observed (non-missing)
// entries of a vector.
type Summary struct {
	N       int // observed entries
	Missing int // missing entries
	Mean    float64
	Std     float64
	Min     float64
	Median  float64
	Max     float64
}

// Describe computes descriptive statistics over the non-missing entries.
// Returns ErrNoData if every entry is missing or the vector is empty.
func (v Vector) Describe() (*Summary, error) {
	observed := make([]float64, 0, len(v))
	missing := 0
	for _, x := range v {
		if IsNA(x) {
			missing++
			continue
		}
		observed = append(observed, x)
	}
	if len(observed) == 0 {
		return nil, ErrNoData
	}

	data := stats.Float64Data(observed)
	mean, err := stats.Mean(data)
	if err != nil {
		return nil, err
	}
	min, err := stats.Min(data)
	if err != nil {
		return nil, err
	}
	max, err := stats.Max(data)
	if err != nil {
		return nil, err
	}
	median, err := stats.Median(data)
	if err != nil {
		return nil, err
	}

	// A single observation has no sample deviation.
	sd := 0.0
	if len(observed) > 1 {
		sd, err = stats.StandardDeviationSample(data)
		if err != nil {
			return nil, err
		}
	}

	return &Summary{
		N:       len(observed),
		Missing: missing,
		Mean:    mean,
		Std:     sd,
		Min:     min,
		Median:  median,
		Max:     max,
	}, nil
}
