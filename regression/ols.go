package regression

import (
	"errors"

	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/gospurious/timeseries"
)

// OLS is an ordinary least squares forecaster. It fits y = alpha + beta*x on
// a training window and forecasts future responses from given future
// predictor values. No regularization is applied.
type OLS struct {
	Intercept float64
	Slope     float64
	fitted    bool
}

// NewOLS creates an unfitted OLS forecaster.
func NewOLS() *OLS {
	return &OLS{}
}

// Fit estimates intercept and slope from the training window. It fails when
// fewer than two observations are available or the predictor is constant
// (degenerate design matrix).
func (m *OLS) Fit(y, x *timeseries.Series) error {
	if y.Len() != x.Len() {
		return errors.New("response and predictor windows must have the same length")
	}
	if y.Len() < 2 {
		return errors.New("at least 2 observations required to fit a line")
	}
	if x.Variance() == 0 {
		return errors.New("predictor is constant in the training window")
	}

	alpha, beta := stat.LinearRegression(x.Values, y.Values, nil, false)
	m.Intercept = alpha
	m.Slope = beta
	m.fitted = true
	return nil
}

// Forecast produces point forecasts for the given future predictor values,
// one forecast per value. The forecaster must be fitted first, and at least
// one future predictor value is required.
func (m *OLS) Forecast(xFuture []float64) ([]float64, error) {
	if !m.fitted {
		return nil, errors.New("model must be fitted before forecasting")
	}
	if len(xFuture) == 0 {
		return nil, errors.New("no future predictor values available")
	}

	forecasts := make([]float64, len(xFuture))
	for i, xv := range xFuture {
		forecasts[i] = m.Intercept + m.Slope*xv
	}
	return forecasts, nil
}

// Residuals returns the in-sample residuals for a fitted training window.
func (m *OLS) Residuals(y, x *timeseries.Series) ([]float64, error) {
	if !m.fitted {
		return nil, errors.New("model must be fitted before computing residuals")
	}
	if y.Len() != x.Len() {
		return nil, errors.New("response and predictor windows must have the same length")
	}

	res := make([]float64, y.Len())
	for i := range res {
		res[i] = y.Values[i] - (m.Intercept + m.Slope*x.Values[i])
	}
	return res, nil
}
