package stats

import "github.com/sartorproj/gospurious/timeseries"

// NDiffs determines the number of first differences required for
// stationarity. Returns a value between 0 and maxD (default 2).
// testType can be "kpss" (default) or "adf".
//
// Differencing both series until stationary and re-running the detector is
// the classic remedy when a level regression is flagged spurious.
func NDiffs(series *timeseries.Series, maxD int, testType string) int {
	if maxD <= 0 {
		maxD = 2
	}
	if testType == "" {
		testType = "kpss"
	}

	current := series
	for d := 0; d < maxD; d++ {
		isStationary := false

		if testType == "adf" {
			if result := ADF(current, 0); result != nil && result.IsStationary {
				isStationary = true
			}
		} else {
			if result := KPSS(current, "c", 0); result != nil && result.IsStationary {
				isStationary = true
			}
		}

		if isStationary {
			return d
		}

		current = current.Diff()
		if current.Len() < 10 {
			return d
		}
	}

	return maxD
}
