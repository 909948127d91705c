package crossval

import (
	"errors"

	"github.com/sartorproj/gospurious/timeseries"
)

// ErrInsufficientData is returned when no rolling origin produced a valid
// residual for both models, so the two MSEs cannot be compared.
var ErrInsufficientData = errors.New("insufficient overlapping data for comparison")

// Result is the outcome of a spurious-regression detection run.
type Result struct {
	MSERegression float64 // CV mean squared error of the OLS forecaster
	MSENaive      float64 // CV mean squared error of the drift forecaster
	Spurious      bool    // MSERegression > MSENaive (strict; ties favor the regression)
	Origins       int     // rolling origins surviving symmetric masking

	// Masked per-origin residuals over the surviving origins, in origin
	// order. Both slices have length Origins and cover the identical origin
	// set. Useful for residual diagnostics.
	RegressionResiduals []float64
	NaiveResiduals      []float64

	// Alignment of the two input series, when Detect performed it.
	Alignment *timeseries.Alignment
}

// Compare masks the two residual sequences symmetrically and compares their
// mean squared errors. An origin contributes only when both models produced
// a residual there: a missing regression residual invalidates the naive
// residual at that origin and vice versa, so both MSEs are computed over an
// identical origin set. Returns ErrInsufficientData when no origin survives.
func Compare(reg, naive []Residual) (*Result, error) {
	if len(reg) != len(naive) {
		return nil, errors.New("residual sequences must cover the same origins")
	}

	res := &Result{}
	var sumReg, sumNaive float64

	for i := range reg {
		if !reg[i].OK || !naive[i].OK {
			continue
		}
		sumReg += reg[i].Value * reg[i].Value
		sumNaive += naive[i].Value * naive[i].Value
		res.RegressionResiduals = append(res.RegressionResiduals, reg[i].Value)
		res.NaiveResiduals = append(res.NaiveResiduals, naive[i].Value)
		res.Origins++
	}

	if res.Origins == 0 {
		return nil, ErrInsufficientData
	}

	res.MSERegression = sumReg / float64(res.Origins)
	res.MSENaive = sumNaive / float64(res.Origins)
	res.Spurious = res.MSERegression > res.MSENaive
	return res, nil
}

// Detect runs the full spurious-regression check: align the two series to
// their common prefix, cross-validate the OLS and drift forecasters over
// rolling origins, and compare the masked mean squared errors. A length
// mismatch is recoverable and reported via Result.Alignment.
func Detect(response, predictor *timeseries.Series, cfg *Config) (*Result, error) {
	y, x, alignment, err := timeseries.Align(response, predictor)
	if err != nil {
		return nil, err
	}

	reg, naive, err := RollingOrigin(y, x, cfg)
	if err != nil {
		return nil, err
	}

	res, err := Compare(reg, naive)
	if err != nil {
		return nil, err
	}

	res.Alignment = alignment
	return res, nil
}
