// Package simulate provides stochastic sequence generators.
package simulate

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/dereckmezquita/simts/vector"
)

// Mixture is a finite mixture of Gaussian components. Weights need not sum
// to one; component probability is proportional to weight.
type Mixture struct {
	Weights []float64
	Means   []float64
	SDs     []float64

	total float64
}

// NewMixture validates the component parameters and precomputes the total
// weight. Returns ErrDimensionMismatch when the three sequences differ in
// length, ErrInvalidWeights for a negative weight or a zero total, and
// ErrNegativeScale for a negative standard deviation.
func NewMixture(weights, means, sds []float64) (*Mixture, error) {
	if len(means) != len(weights) || len(sds) != len(weights) {
		return nil, ErrDimensionMismatch
	}

	total := 0.0
	for _, w := range weights {
		if w < 0 {
			return nil, ErrInvalidWeights
		}
		total += w
	}
	if total <= 0 {
		return nil, ErrInvalidWeights
	}

	for _, sd := range sds {
		if sd < 0 {
			return nil, ErrNegativeScale
		}
	}

	return &Mixture{
		Weights: weights,
		Means:   means,
		SDs:     sds,
		total:   total,
	}, nil
}

// Sample draws n values from the mixture: for each draw, a component index
// is chosen with probability proportional to its weight, then one value is
// drawn from that component's normal distribution. A nil src uses the
// global generator; pass a seeded source for reproducible output.
func (m *Mixture) Sample(n int, src rand.Source) (vector.Vector, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}

	uniform := distuv.Uniform{Min: 0, Max: m.total, Src: src}

	out := make(vector.Vector, n)
	for i := range out {
		idx := ChooseComponent(uniform.Rand(), m.Weights)
		normal := distuv.Normal{Mu: m.Means[idx], Sigma: m.SDs[idx], Src: src}
		out[i] = normal.Rand()
	}
	return out, nil
}

// ChooseComponent maps a uniform draw u in [0, sum(weights)) to a component
// index by walking the weights and subtracting each from u until u falls
// below the current weight.
//
// Precondition: u was drawn against the true total of weights and all
// weights are non-negative. A u outside [0, sum(weights)) is a caller
// contract breach; the walk then falls through to the last index rather
// than reading out of bounds.
func ChooseComponent(u float64, weights []float64) int {
	for i, w := range weights {
		if u < w {
			return i
		}
		u -= w
	}
	return len(weights) - 1
}
