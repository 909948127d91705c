// Package stats provides statistical tests and diagnostics for time series.
//
// These tests supply the supporting evidence around a spurious-regression
// verdict: stationarity tests establish that the inputs are the kind of
// series for which level regressions are unreliable, and residual
// diagnostics characterize the cross-validation errors.
//
// # Stationarity Tests
//
// Test whether a time series is stationary:
//
//	// Augmented Dickey-Fuller test
//	// H0: Series has unit root (non-stationary)
//	adf := stats.ADF(series, 0)
//	fmt.Printf("ADF: stat=%.4f, p=%.4f, stationary=%v\n",
//	    adf.Statistic, adf.PValue, adf.IsStationary)
//
//	// KPSS test
//	// H0: Series is stationary
//	kpss := stats.KPSS(series, "c", 0)
//
// # Differencing Analysis
//
// Determine how many first differences make a series stationary:
//
//	d := stats.NDiffs(series, 2, "kpss")
//
// # Residual Diagnostics
//
// Test cross-validation residuals for autocorrelation:
//
//	lb := stats.LjungBox(residuals, 10, 0)
//	if lb.PValue > 0.05 {
//	    // Residuals are white noise
//	}
//
//	dw := stats.DurbinWatson(residuals.Values)
//
// # Autocorrelation
//
//	acf := stats.ACF(series, 20)
//	acfResult := stats.ACFWithConfidence(series, 20)
//	significant := stats.SignificantLags(acfResult.Values, acfResult.ConfBounds)
package stats
