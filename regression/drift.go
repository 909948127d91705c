package regression

import (
	"errors"

	"github.com/sartorproj/gospurious/timeseries"
)

// Drift is the naive benchmark forecaster. It extrapolates the straight line
// through the first and last training observations of the response and uses
// no information from the predictor series.
type Drift struct {
	Last   float64 // last training observation
	Slope  float64 // (y[t-1] - y[0]) / (t-1)
	fitted bool
}

// NewDrift creates an unfitted drift forecaster.
func NewDrift() *Drift {
	return &Drift{}
}

// Fit computes the drift from the training window. With a single observation
// the drift is zero (flat extrapolation).
func (m *Drift) Fit(y *timeseries.Series) error {
	t := y.Len()
	if t == 0 {
		return errors.New("empty training window")
	}

	m.Last = y.Values[t-1]
	if t >= 2 {
		m.Slope = (y.Values[t-1] - y.Values[0]) / float64(t-1)
	} else {
		m.Slope = 0
	}
	m.fitted = true
	return nil
}

// Forecast produces point forecasts for steps 1..h past the training window:
// forecast(t+k) = y[t-1] + k*drift.
func (m *Drift) Forecast(h int) ([]float64, error) {
	if !m.fitted {
		return nil, errors.New("model must be fitted before forecasting")
	}
	if h < 1 {
		return nil, errors.New("horizon must be at least 1")
	}

	forecasts := make([]float64, h)
	for k := 1; k <= h; k++ {
		forecasts[k-1] = m.Last + float64(k)*m.Slope
	}
	return forecasts, nil
}
