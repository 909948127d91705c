// Package gospurious detects spurious regressions between non-stationary
// time series using rolling-origin cross-validation.
//
// A regression of one trending or random-walk series on another often looks
// highly significant in-sample while carrying no predictive value. GoSpurious
// flags these cases by comparing the cross-validated one-step (or h-step)
// forecast error of an ordinary least squares regression against a
// drift-naive benchmark that only uses the response's own history. When the
// regression cannot beat the naive drift line out of sample, the apparent
// relationship is classified as spurious.
//
// # Quick Start
//
// Run the detector on two series:
//
//	result, err := crossval.Detect(response, predictor, crossval.DefaultConfig())
//	if result.Spurious {
//	    // regression MSE exceeded naive-drift MSE
//	}
//
// Estimate the detection rate over simulated independent random walks:
//
//	mc, _ := simulate.MonteCarlo(&simulate.MonteCarloConfig{
//	    Trials: 200,
//	    Walk:   simulate.WalkConfig{Length: 60, NoiseSD: 1},
//	})
//	fmt.Printf("spurious in %.0f%% of trials\n", 100*mc.Rate)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - timeseries: Series data structure, alignment, and CSV utilities
//   - regression: OLS and drift-naive one-step forecasters
//   - crossval: Rolling-origin cross-validation and the spurious detector
//   - stats: Stationarity tests and residual diagnostics
//   - simulate: Random-walk generation and Monte-Carlo rate estimation
//   - datasets: Built-in fixture series
//
// # References
//
//   - Granger, C.W.J., & Newbold, P. (1974). Spurious Regressions in Econometrics
//   - Hyndman, R.J., & Athanasopoulos, G. (2021). Forecasting: Principles and Practice
package gospurious
