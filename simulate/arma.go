package simulate

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/dereckmezquita/simts/vector"
)

// AR simulates an autoregressive process of order len(phi):
//
//	x[i] = e[i] + sum_j phi[j] * x[i-j-1],  e[i] ~ N(constant, noiseSD)
//
// The first len(phi) entries are left at zero: no history exists for the
// recurrence to read, and zero is the process's neutral state. Each later
// index consumes a fresh draw, giving a contemporaneous shock per step.
//
// A nil src uses the global generator. Returns ErrNegativeCount for n < 0
// and ErrNegativeScale for noiseSD < 0.
func AR(n int, constant float64, phi []float64, noiseSD float64, src rand.Source) (vector.Vector, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	if noiseSD < 0 {
		return nil, ErrNegativeScale
	}

	noise := distuv.Normal{Mu: constant, Sigma: noiseSD, Src: src}

	out := make(vector.Vector, n)
	for i := len(phi); i < n; i++ {
		x := noise.Rand()
		for j, p := range phi {
			x += p * out[i-j-1]
		}
		out[i] = x
	}
	return out, nil
}

// MA simulates a moving-average process of order len(theta):
//
//	x[i] = mu + e[i] + sum_j theta[j] * e[i-j-1],  e[i] ~ N(0, noiseSD)
//
// The recurrence reads past noise, not past output, so the whole noise
// sequence is drawn up front. The first len(theta) entries are missing:
// unlike AR there is no neutral output value, the model is simply
// undefined before a full lag window of noise exists.
func MA(n int, mu float64, theta []float64, noiseSD float64, src rand.Source) (vector.Vector, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	if noiseSD < 0 {
		return nil, ErrNegativeScale
	}

	eps := drawNoise(n, noiseSD, src)

	out := make(vector.Vector, n)
	for i := 0; i < len(theta) && i < n; i++ {
		out[i] = vector.NA()
	}
	for i := len(theta); i < n; i++ {
		x := mu + eps[i]
		for j, t := range theta {
			x += t * eps[i-j-1]
		}
		out[i] = x
	}
	return out, nil
}

// ARMA simulates a combined autoregressive moving-average process:
//
//	x[i] = mu + e[i] + sum_j theta[j]*e[i-j-1] + sum_j phi[j]*x[i-j-1]
//
// The noise sequence is drawn once up front. Iteration starts at
// max(len(phi), len(theta)) + 1; earlier entries are left at zero so the
// autoregressive term has a neutral history to read. The extra +1 relative
// to the plain AR and MA start indices is kept deliberately: both lag
// structures then have at least one full step of realized history.
func ARMA(n int, mu float64, phi, theta []float64, noiseSD float64, src rand.Source) (vector.Vector, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	if noiseSD < 0 {
		return nil, ErrNegativeScale
	}

	eps := drawNoise(n, noiseSD, src)

	start := len(phi)
	if len(theta) > start {
		start = len(theta)
	}
	start++

	out := make(vector.Vector, n)
	for i := start; i < n; i++ {
		x := mu + eps[i]
		for j, t := range theta {
			x += t * eps[i-j-1]
		}
		for j, p := range phi {
			x += p * out[i-j-1]
		}
		out[i] = x
	}
	return out, nil
}

// drawNoise pre-generates n independent N(0, sd) draws.
func drawNoise(n int, sd float64, src rand.Source) []float64 {
	noise := distuv.Normal{Mu: 0, Sigma: sd, Src: src}
	eps := make([]float64, n)
	for i := range eps {
		eps[i] = noise.Rand()
	}
	return eps
}
