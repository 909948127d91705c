package simulate

import (
	"errors"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/gospurious/crossval"
	"github.com/sartorproj/gospurious/timeseries"
)

// WalkConfig describes a simulated series: a cumulative sum of gaussian
// noise, optionally with a constant per-step drift and a deterministic
// linear trend added to the levels.
type WalkConfig struct {
	Length  int     // number of observations (default 60)
	NoiseSD float64 // standard deviation of the increments (default 1)
	Drift   float64 // constant added to every increment
	Trend   float64 // deterministic slope added to the levels
}

func (c WalkConfig) withDefaults() WalkConfig {
	if c.Length <= 0 {
		c.Length = 60
	}
	if c.NoiseSD <= 0 {
		c.NoiseSD = 1
	}
	return c
}

// RandomWalk generates one series from the config, deterministically for a
// given seed.
func RandomWalk(cfg WalkConfig, seed uint64) *timeseries.Series {
	cfg = cfg.withDefaults()
	src := rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	return walk(cfg, src)
}

// Pair generates two independent series from the same config, as a
// response/predictor pair sharing no noise.
func Pair(cfg WalkConfig, seed uint64) (response, predictor *timeseries.Series) {
	cfg = cfg.withDefaults()
	src := rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	return walk(cfg, src), walk(cfg, src)
}

func walk(cfg WalkConfig, src rand.Source) *timeseries.Series {
	dist := distuv.Normal{Mu: 0, Sigma: cfg.NoiseSD, Src: src}

	values := make([]float64, cfg.Length)
	sum := 0.0
	for i := range values {
		sum += dist.Rand() + cfg.Drift
		values[i] = sum + cfg.Trend*float64(i)
	}
	return timeseries.New(values)
}

// MonteCarloConfig drives repeated detection runs over independently
// simulated pairs.
type MonteCarloConfig struct {
	Trials int
	Seed   uint64 // base seed; trial i uses Seed+i
	Walk   WalkConfig
	CV     *crossval.Config
}

// MonteCarloResult aggregates detection outcomes over all trials.
type MonteCarloResult struct {
	Trials   int     // trials attempted
	Spurious int     // trials flagged spurious
	Failed   int     // trials with insufficient overlapping data
	Rate     float64 // Spurious / (Trials - Failed)

	MeanMSERegression float64 // across successful trials
	MeanMSENaive      float64
}

// MonteCarlo runs the detector on Trials independent pairs and reports the
// spurious-detection rate.
func MonteCarlo(cfg *MonteCarloConfig) (*MonteCarloResult, error) {
	if cfg == nil || cfg.Trials < 1 {
		return nil, errors.New("at least one trial required")
	}

	res := &MonteCarloResult{Trials: cfg.Trials}
	var sumReg, sumNaive float64

	for trial := 0; trial < cfg.Trials; trial++ {
		y, x := Pair(cfg.Walk, cfg.Seed+uint64(trial))

		det, err := crossval.Detect(y, x, cfg.CV)
		if err != nil {
			res.Failed++
			continue
		}

		if det.Spurious {
			res.Spurious++
		}
		sumReg += det.MSERegression
		sumNaive += det.MSENaive
	}

	ok := res.Trials - res.Failed
	if ok == 0 {
		return nil, errors.New("all trials failed: insufficient data for comparison")
	}

	res.Rate = float64(res.Spurious) / float64(ok)
	res.MeanMSERegression = sumReg / float64(ok)
	res.MeanMSENaive = sumNaive / float64(ok)
	return res, nil
}
