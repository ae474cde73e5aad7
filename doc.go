// Package simts provides numeric sequence utilities and time series simulation.
//
// simts is a small Go library for working with ordered sequences of
// double-precision values: streaming reductions, rolling-window statistics,
// missing-value imputation, and recurrence-based stochastic simulators
// (AR, MA, ARMA, Gaussian mixtures). Missing values are represented by the
// IEEE NaN sentinel and propagate through reductions rather than being
// silently treated as zero.
//
// # Quick Start
//
// Reduce and filter a vector:
//
//	x := vector.New(1.5, -2, 3, 0.5)
//	total := x.Sum()
//	pos := vector.SelectPositive(x)
//
// Rolling statistics and imputation:
//
//	means, _ := window.RollingMean(x, 3)
//	filled := window.LOCF(x)
//
// Simulate an AR(2) process with a seeded source:
//
//	src := rand.NewSource(42)
//	y, _ := simulate.AR(500, 0, []float64{0.6, -0.2}, 1.0, src)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - vector: numeric sequence type, reducers, filters, CSV I/O
//   - window: rolling-window statistics and missing-value imputation
//   - simulate: mixture sampling and AR/MA/ARMA generators
//   - stats: autocorrelation and whiteness diagnostics for simulated series
//
// # Randomness
//
// Every stochastic function accepts a golang.org/x/exp/rand Source. Supply
// a seeded source for reproducible output; independent sources per call
// site make concurrent use safe. All functions are otherwise pure: inputs
// are never mutated and outputs are freshly allocated.
package simts
