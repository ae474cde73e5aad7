package stats

import (
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/dereckmezquita/simts/vector"
)

// LjungBoxResult represents the result of a Ljung-Box test.
type LjungBoxResult struct {
	Statistic float64
	PValue    float64
	Lags      int
	DOF       int // Degrees of freedom
}

// LjungBox performs the Ljung-Box test for autocorrelation.
// The null hypothesis is that there is no autocorrelation up to lag h;
// a p-value below 0.05 indicates the series is not white noise.
// fitdf is the number of parameters estimated when the series is a
// model's residuals (p + q for an ARMA fit); pass 0 for raw data.
func LjungBox(x vector.Vector, lags, fitdf int) *LjungBoxResult {
	n := len(x)
	if n < 10 || lags < 1 {
		return nil
	}
	if lags >= n {
		lags = n - 1
	}

	acf := ACF(x, lags)
	if acf == nil {
		return nil
	}

	q := 0.0
	for k := 1; k <= lags; k++ {
		q += (acf[k] * acf[k]) / float64(n-k)
	}
	q *= float64(n * (n + 2))

	dof := lags - fitdf
	if dof < 1 {
		dof = 1
	}

	chi := distuv.ChiSquared{K: float64(dof)}
	pValue := 1 - chi.CDF(q)

	return &LjungBoxResult{
		Statistic: q,
		PValue:    pValue,
		Lags:      lags,
		DOF:       dof,
	}
}
