package stats

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/gospurious/timeseries"
)

// ADFResult represents the result of an Augmented Dickey-Fuller test.
type ADFResult struct {
	Statistic    float64
	PValue       float64
	Lags         int
	NObs         int
	CriticalVals map[string]float64 // Critical values at 1%, 5%, 10%
	IsStationary bool
}

// ADF performs the Augmented Dickey-Fuller test for unit root.
// The null hypothesis is that the series has a unit root (is non-stationary).
// If p-value < 0.05, we reject the null and conclude the series is stationary.
func ADF(series *timeseries.Series, maxLag int) *ADFResult {
	n := series.Len()
	if n < 10 {
		return nil
	}

	// Default lag selection: floor of (n-1)^(1/3)
	if maxLag <= 0 {
		maxLag = int(math.Floor(math.Pow(float64(n-1), 1.0/3.0)))
	}
	if maxLag >= n-1 {
		maxLag = n - 2
	}

	diff := series.Diff()

	// Regression: delta_y_t = alpha + beta*y_{t-1} + sum(gamma_i * delta_y_{t-i}) + epsilon
	// Testing beta = 0 (unit root) vs beta < 0 (stationary).

	nObs := n - maxLag - 1
	if nObs < 10 {
		return nil
	}

	k := 2 + maxLag
	x := mat.NewDense(nObs, k, nil)
	y := mat.NewVecDense(nObs, nil)

	for i := 0; i < nObs; i++ {
		t := i + maxLag
		y.SetVec(i, diff.Values[t])

		x.Set(i, 0, 1)                // constant
		x.Set(i, 1, series.Values[t]) // lagged level
		for j := 1; j <= maxLag; j++ {
			x.Set(i, 1+j, diff.Values[t-j]) // lagged differences
		}
	}

	coeffs, se, ok := olsSolve(x, y)
	if !ok {
		return nil
	}

	// Test statistic is the t-stat for the lagged level coefficient.
	tStat := coeffs[1] / se[1]

	// Approximate critical values (with constant, no trend).
	criticalVals := map[string]float64{
		"1%":  -3.43,
		"5%":  -2.86,
		"10%": -2.57,
	}

	pValue := mackinnonPValue(tStat)

	return &ADFResult{
		Statistic:    tStat,
		PValue:       pValue,
		Lags:         maxLag,
		NObs:         nObs,
		CriticalVals: criticalVals,
		IsStationary: pValue < 0.05,
	}
}

// KPSSResult represents the result of a KPSS test.
type KPSSResult struct {
	Statistic    float64
	PValue       float64
	Lags         int
	CriticalVals map[string]float64
	IsStationary bool
}

// KPSS performs the Kwiatkowski-Phillips-Schmidt-Shin test for stationarity.
// The null hypothesis is that the series is stationary.
// regression is "c" for level stationarity or "ct" for trend stationarity.
func KPSS(series *timeseries.Series, regression string, nlags int) *KPSSResult {
	n := series.Len()
	if n < 10 {
		return nil
	}

	if nlags <= 0 {
		nlags = int(math.Ceil(12 * math.Pow(float64(n)/100, 0.25)))
	}

	residuals := make([]float64, n)

	if regression == "ct" {
		// Remove constant and linear trend
		sumT := 0.0
		sumY := 0.0
		sumTY := 0.0
		sumT2 := 0.0
		for i, v := range series.Values {
			t := float64(i)
			sumT += t
			sumY += v
			sumTY += t * v
			sumT2 += t * t
		}
		nf := float64(n)
		b := (nf*sumTY - sumT*sumY) / (nf*sumT2 - sumT*sumT)
		a := (sumY - b*sumT) / nf

		for i, v := range series.Values {
			residuals[i] = v - a - b*float64(i)
		}
	} else {
		mean := series.Mean()
		for i, v := range series.Values {
			residuals[i] = v - mean
		}
	}

	// Partial sums
	cumSum := make([]float64, n)
	cumSum[0] = residuals[0]
	for i := 1; i < n; i++ {
		cumSum[i] = cumSum[i-1] + residuals[i]
	}

	// Long-run variance (Newey-West with Bartlett weights)
	s2 := 0.0
	for _, r := range residuals {
		s2 += r * r
	}
	s2 /= float64(n)

	for l := 1; l <= nlags; l++ {
		cov := 0.0
		for i := l; i < n; i++ {
			cov += residuals[i] * residuals[i-l]
		}
		cov /= float64(n)
		weight := 1.0 - float64(l)/float64(nlags+1)
		s2 += 2 * weight * cov
	}

	if s2 <= 0 {
		s2 = 1e-10
	}

	etaSq := 0.0
	for _, cs := range cumSum {
		etaSq += cs * cs
	}
	kpssStat := etaSq / (float64(n) * float64(n) * s2)

	var criticalVals map[string]float64
	if regression == "ct" {
		criticalVals = map[string]float64{
			"10%": 0.119,
			"5%":  0.146,
			"1%":  0.216,
		}
	} else {
		criticalVals = map[string]float64{
			"10%": 0.347,
			"5%":  0.463,
			"1%":  0.739,
		}
	}

	pValue := kpssPValue(kpssStat, regression)

	// Null is stationarity: stationary unless the null is rejected.
	return &KPSSResult{
		Statistic:    kpssStat,
		PValue:       pValue,
		Lags:         nlags,
		CriticalVals: criticalVals,
		IsStationary: pValue >= 0.05,
	}
}

// olsSolve performs an OLS regression of y on the columns of x via the
// normal equations. Returns coefficients and their standard errors; ok is
// false when the design matrix is singular or there are no residual degrees
// of freedom.
func olsSolve(x *mat.Dense, y *mat.VecDense) (coeffs, stdErrors []float64, ok bool) {
	n, k := x.Dims()
	if n <= k {
		return nil, nil, false
	}

	var xtx mat.Dense
	xtx.Mul(x.T(), x)

	var inv mat.Dense
	if err := inv.Inverse(&xtx); err != nil {
		return nil, nil, false
	}

	var xty mat.VecDense
	xty.MulVec(x.T(), y)

	var beta mat.VecDense
	beta.MulVec(&inv, &xty)

	var fitted mat.VecDense
	fitted.MulVec(x, &beta)

	sse := 0.0
	for i := 0; i < n; i++ {
		r := y.AtVec(i) - fitted.AtVec(i)
		sse += r * r
	}

	s2 := sse / float64(n-k)
	coeffs = make([]float64, k)
	stdErrors = make([]float64, k)
	for j := 0; j < k; j++ {
		coeffs[j] = beta.AtVec(j)
		stdErrors[j] = math.Sqrt(s2 * inv.At(j, j))
	}

	return coeffs, stdErrors, true
}

// mackinnonPValue approximates the p-value for the ADF statistic using the
// MacKinnon (1994) response surface for a constant-only regression.
func mackinnonPValue(stat float64) float64 {
	switch {
	case stat < -3.96:
		return 0.001
	case stat < -3.43:
		return 0.01
	case stat < -2.86:
		return 0.05
	case stat < -2.57:
		return 0.10
	case stat < -1.94:
		return 0.25
	case stat < -1.62:
		return 0.50
	default:
		return math.Min(0.5+(stat+1.62)*0.25, 0.99)
	}
}

// kpssPValue approximates the p-value for the KPSS statistic.
func kpssPValue(stat float64, regression string) float64 {
	if regression == "ct" {
		switch {
		case stat > 0.216:
			return 0.01
		case stat > 0.146:
			return 0.05
		case stat > 0.119:
			return 0.10
		default:
			return 0.10 + (0.119-stat)*2
		}
	}

	switch {
	case stat > 0.739:
		return 0.01
	case stat > 0.463:
		return 0.05
	case stat > 0.347:
		return 0.10
	default:
		return 0.10 + (0.347-stat)*0.5
	}
}
