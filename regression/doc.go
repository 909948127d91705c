// Package regression implements the two competing forecasters whose
// cross-validated errors the detector compares.
//
// # OLS Forecaster
//
// OLS fits y = alpha + beta*x over a training window and forecasts from
// known future predictor values:
//
//	m := regression.NewOLS()
//	if err := m.Fit(yTrain, xTrain); err != nil { ... }
//	forecasts, err := m.Forecast(xFuture)
//
// # Drift Forecaster
//
// Drift extrapolates the line through the first and last training
// observations of the response, ignoring the predictor entirely:
//
//	m := regression.NewDrift()
//	m.Fit(yTrain)
//	forecasts, _ := m.Forecast(3) // steps 1..3 ahead
//
// A drift forecast from a window of length t is
// forecast(t+k) = y[t-1] + k*(y[t-1]-y[0])/(t-1).
package regression
