// Package simulate provides stochastic sequence generators: Gaussian
// mixture sampling and AR, MA, and ARMA recurrence simulators.
//
// # Random Sources
//
// Every generator takes a golang.org/x/exp/rand Source. A nil source uses
// the global generator; a seeded source makes output reproducible:
//
//	src := rand.NewSource(42)
//	x, err := simulate.AR(1000, 0, []float64{0.8}, 1.0, src)
//
// Generators carry no state between calls. For concurrent use give each
// call site its own source; the functions themselves share nothing.
//
// # Mixture Sampling
//
// Draw from a mixture of Gaussians:
//
//	m, err := simulate.NewMixture(
//	    []float64{0.6, 0.4},   // weights (need not sum to 1)
//	    []float64{0, 5},       // means
//	    []float64{1, 0.5},     // standard deviations
//	)
//	x, err := m.Sample(1000, src)
//
// # Recurrence Simulators
//
// Simulate autoregressive, moving-average, and combined processes:
//
//	// AR(2): x[i] = e[i] + 0.6*x[i-1] - 0.2*x[i-2]
//	ar, _ := simulate.AR(500, 0, []float64{0.6, -0.2}, 1.0, src)
//
//	// MA(1): x[i] = mu + e[i] + 0.7*e[i-1]
//	ma, _ := simulate.MA(500, 10, []float64{0.7}, 1.0, src)
//
//	// ARMA(1,1)
//	arma, _ := simulate.ARMA(500, 0, []float64{0.5}, []float64{0.3}, 1.0, src)
//
// AR and ARMA leave their warm-up entries at zero (the recurrence needs a
// neutral history); MA leaves them missing. The lag order of each term is
// implied by the coefficient slice's length.
package simulate
