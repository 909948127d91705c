package crossval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/gospurious/timeseries"
)

// Response oscillating around a line, predictor exactly linear. All values
// hand-checked: with h=1 and initial=4 the detector sees 8 origins and the
// regression beats the drift benchmark.
func sawtoothPair() (*timeseries.Series, *timeseries.Series) {
	ys := make([]float64, 12)
	xs := make([]float64, 12)
	for i := range ys {
		if i%2 == 0 {
			ys[i] = float64(i) + 1
		} else {
			ys[i] = float64(i) - 1
		}
		xs[i] = 2*float64(i) + 1
	}
	return timeseries.New(ys), timeseries.New(xs)
}

func TestDetectDeterministicCase(t *testing.T) {
	y, x := sawtoothPair()

	res, err := Detect(y, x, &Config{Horizon: 1, Initial: 4})
	require.NoError(t, err)

	assert.Equal(t, 8, res.Origins)
	assert.InDelta(t, 1.9436708874, res.MSERegression, 1e-9)
	assert.InDelta(t, 4.8792340640, res.MSENaive, 1e-9)
	assert.False(t, res.Spurious)
	assert.False(t, res.Alignment.Truncated)
}

func TestDetectExactLinearRelationship(t *testing.T) {
	// response is an exact linear function of the predictor: the regression
	// forecasts perfectly and must not be flagged spurious.
	xs := make([]float64, 40)
	ys := make([]float64, 40)
	for i := range xs {
		xs[i] = float64(i%7) + 0.1*float64(i)
		ys[i] = 1.5 + 2*xs[i]
	}

	res, err := Detect(timeseries.New(ys), timeseries.New(xs), DefaultConfig())
	require.NoError(t, err)

	assert.InDelta(t, 0, res.MSERegression, 1e-12)
	assert.Greater(t, res.MSENaive, 0.0)
	assert.False(t, res.Spurious)
}

func TestRollingOriginOriginSet(t *testing.T) {
	y, x := sawtoothPair()

	reg, naive, err := RollingOrigin(y, x, &Config{Horizon: 2, Initial: 5})
	require.NoError(t, err)

	// t = 5..10 inclusive for n=12, h=2
	require.Len(t, reg, 6)
	require.Len(t, naive, 6)
	for i := range reg {
		assert.Equal(t, 5+i, reg[i].Origin)
		assert.Equal(t, 5+i, naive[i].Origin)
		assert.True(t, reg[i].OK)
		assert.True(t, naive[i].OK)
	}
}

func TestSymmetricMaskingOnShortPredictor(t *testing.T) {
	// Predictor stops 4 observations early: the regression cannot forecast
	// at the last 4 origins, and masking must remove those origins from the
	// naive side too.
	ys := make([]float64, 30)
	xs := make([]float64, 26)
	for i := range ys {
		ys[i] = float64(i) * 1.1
	}
	for i := range xs {
		xs[i] = float64(i*i) * 0.1
	}

	reg, naive, err := RollingOrigin(timeseries.New(ys), timeseries.New(xs), &Config{Horizon: 1, Initial: 20})
	require.NoError(t, err)
	require.Len(t, reg, 10)

	missing := 0
	for i := range reg {
		if !reg[i].OK {
			missing++
		}
		assert.True(t, naive[i].OK)
	}
	assert.Equal(t, 4, missing)

	res, err := Compare(reg, naive)
	require.NoError(t, err)

	// Both MSEs computed over the identical surviving origin set.
	assert.Equal(t, 6, res.Origins)
	assert.Len(t, res.RegressionResiduals, 6)
	assert.Len(t, res.NaiveResiduals, 6)
}

func TestCompareMasksBothDirections(t *testing.T) {
	reg := []Residual{
		{Origin: 20, Value: 1, OK: true},
		{Origin: 21, OK: false},
		{Origin: 22, Value: 3, OK: true},
		{Origin: 23, Value: 2, OK: true},
	}
	naive := []Residual{
		{Origin: 20, Value: 2, OK: true},
		{Origin: 21, Value: 1, OK: true},
		{Origin: 22, OK: false},
		{Origin: 23, Value: 1, OK: true},
	}

	res, err := Compare(reg, naive)
	require.NoError(t, err)

	// Only origins 20 and 23 survive in both sequences.
	assert.Equal(t, 2, res.Origins)
	assert.InDelta(t, (1.0+4.0)/2, res.MSERegression, 1e-12)
	assert.InDelta(t, (4.0+1.0)/2, res.MSENaive, 1e-12)
}

func TestCompareLengthMismatch(t *testing.T) {
	_, err := Compare([]Residual{{OK: true}}, nil)
	assert.Error(t, err)
}

func TestCompareTieIsNotSpurious(t *testing.T) {
	reg := []Residual{{Origin: 20, Value: 2, OK: true}}
	naive := []Residual{{Origin: 20, Value: -2, OK: true}}

	res, err := Compare(reg, naive)
	require.NoError(t, err)
	assert.Equal(t, res.MSERegression, res.MSENaive)
	assert.False(t, res.Spurious)
}

func TestDetectInsufficientOrigins(t *testing.T) {
	y := timeseries.New([]float64{1, 2, 3, 4, 5})
	x := timeseries.New([]float64{2, 4, 6, 8, 10})

	_, err := Detect(y, x, DefaultConfig())
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestDetectConstantPredictor(t *testing.T) {
	// A constant predictor makes every OLS fit degenerate; masking then
	// leaves no origin to compare.
	ys := make([]float64, 30)
	xs := make([]float64, 30)
	for i := range ys {
		ys[i] = float64(i)
		xs[i] = 7
	}

	_, err := Detect(timeseries.New(ys), timeseries.New(xs), DefaultConfig())
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestDetectReportsTruncation(t *testing.T) {
	ys := make([]float64, 30)
	xs := make([]float64, 27)
	for i := range ys {
		ys[i] = float64(i) + 0.5*float64(i%3)
	}
	for i := range xs {
		xs[i] = 2*float64(i) + 0.3*float64(i%4)
	}

	res, err := Detect(timeseries.New(ys), timeseries.New(xs), DefaultConfig())
	require.NoError(t, err)

	require.NotNil(t, res.Alignment)
	assert.True(t, res.Alignment.Truncated)
	assert.Equal(t, 27, res.Alignment.Length)
	assert.Equal(t, 3, res.Alignment.DroppedY)
}

func TestConfigValidation(t *testing.T) {
	y, x := sawtoothPair()

	_, _, err := RollingOrigin(y, x, &Config{Horizon: 0, Initial: 5})
	assert.Error(t, err)

	_, _, err = RollingOrigin(y, x, &Config{Horizon: 1, Initial: 0})
	assert.Error(t, err)
}

func TestRollingOriginEmptyResponse(t *testing.T) {
	_, _, err := RollingOrigin(timeseries.New(nil), timeseries.New([]float64{1}), nil)
	assert.Error(t, err)
}
