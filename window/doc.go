// Package window provides rolling-window statistics and missing-value imputation.
//
// All functions take a vector, return a freshly allocated vector of the
// same length, and never mutate their input.
//
// # Rolling Mean
//
// Compute a trailing mean over a fixed window:
//
//	means, err := window.RollingMean(x, 3)
//	// [NA, NA, mean(x[0:3]), mean(x[1:4]), ...]
//
// The first window-1 positions are missing. The running total is updated
// incrementally, so cost is O(n) independent of window size. The running
// total cannot recover from a NaN input entry, so series with gaps should
// be imputed before rolling.
//
// For streaming input, Roller maintains the same statistic online:
//
//	r, _ := window.NewRoller(20)
//	for _, v := range feed {
//	    r.Push(v)
//	    fmt.Println(r.Mean())
//	}
//
// # Imputation
//
// Fill missing entries:
//
//	// Last observation carried forward
//	filled := window.LOCF(x)
//
//	// Running mean of prior observations
//	filled = window.MeanCarryForward(x)
//
// Both leave a leading run of missing entries untouched: there is nothing
// to carry forward before the first observation.
package window
