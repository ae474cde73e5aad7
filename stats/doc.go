// Package stats provides autocorrelation and whiteness diagnostics for
// numeric sequences, chiefly for validating simulator output.
//
// # Autocorrelation
//
// Compute the sample ACF:
//
//	acf := stats.ACF(x, 20)
//	// acf[0] == 1; acf[k] is the correlation at lag k
//
// With confidence bounds:
//
//	result := stats.ACFWithConfidence(x, 20)
//	significant := stats.SignificantLags(result.Values, result.ConfBounds)
//
// An AR(1) simulation with coefficient phi should show acf[1] near phi and
// geometric decay at higher lags; pure noise should show nothing beyond
// the bounds.
//
// # Whiteness
//
// Test a series for remaining autocorrelation:
//
//	lb := stats.LjungBox(x, 10, 0)
//	if lb.PValue > 0.05 {
//	    // consistent with white noise
//	}
package stats
