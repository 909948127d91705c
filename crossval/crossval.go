package crossval

import (
	"errors"

	"github.com/sartorproj/gospurious/regression"
	"github.com/sartorproj/gospurious/timeseries"
)

// Config holds the cross-validation parameters.
type Config struct {
	Horizon int // forecast horizon h (steps past the training window)
	Initial int // minimum training window size before the first origin
}

// DefaultConfig returns the default parameters: one-step-ahead forecasts
// after an initial window of 20 observations.
func DefaultConfig() *Config {
	return &Config{
		Horizon: 1,
		Initial: 20,
	}
}

func (c *Config) validate() error {
	if c.Horizon < 1 {
		return errors.New("horizon must be at least 1")
	}
	if c.Initial < 1 {
		return errors.New("initial training window must be at least 1")
	}
	return nil
}

// Residual is a signed forecast error (actual - predicted) attached to one
// rolling origin and one model. OK is false when the model could not produce
// a forecast at that origin; Value is meaningless in that case.
type Residual struct {
	Origin int
	Value  float64
	OK     bool
}

// RollingOrigin performs rolling-origin cross-validation of the OLS and
// drift forecasters. Origins run t = initial, initial+1, ..., n-h where n is
// the response length. At each origin both models are fitted on the training
// window [0,t) and evaluated against response[t+h-1]; the two returned
// sequences are indexed identically by origin.
//
// The series are not aligned here: a regression residual is missing at any
// origin where the predictor does not extend through position t+h, or where
// the OLS fit is degenerate. Callers wanting common coverage should align
// first (Detect does).
func RollingOrigin(response, predictor *timeseries.Series, cfg *Config) (reg, naive []Residual, err error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.validate(); err != nil {
		return nil, nil, err
	}
	if response == nil || response.Len() == 0 {
		return nil, nil, errors.New("empty response series")
	}
	if predictor == nil {
		predictor = timeseries.New(nil)
	}

	h := cfg.Horizon
	n := response.Len()

	for t := cfg.Initial; t <= n-h; t++ {
		actual := response.Values[t+h-1]
		yTrain := response.Window(t)

		reg = append(reg, regressionResidual(yTrain, predictor, t, h, actual))
		naive = append(naive, driftResidual(yTrain, t, h, actual))
	}

	return reg, naive, nil
}

func regressionResidual(yTrain, predictor *timeseries.Series, t, h int, actual float64) Residual {
	r := Residual{Origin: t}

	// The fit needs the full training window and h future predictor values.
	if predictor.Len() < t+h {
		return r
	}

	m := regression.NewOLS()
	if err := m.Fit(yTrain, predictor.Window(t)); err != nil {
		return r
	}

	forecasts, err := m.Forecast(predictor.Values[t : t+h])
	if err != nil {
		return r
	}

	r.Value = actual - forecasts[h-1]
	r.OK = true
	return r
}

func driftResidual(yTrain *timeseries.Series, t, h int, actual float64) Residual {
	r := Residual{Origin: t}

	m := regression.NewDrift()
	if err := m.Fit(yTrain); err != nil {
		return r
	}

	forecasts, err := m.Forecast(h)
	if err != nil {
		return r
	}

	r.Value = actual - forecasts[h-1]
	r.OK = true
	return r
}
