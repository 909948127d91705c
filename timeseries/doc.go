// Package timeseries provides time series data structures and utilities.
//
// This package includes the Series type for integer-indexed observations,
// pairwise alignment, and CSV loading.
//
// # Creating a Series
//
// Create a time series from a slice:
//
//	values := []float64{100, 102, 105, 103, 108, 110}
//	series := timeseries.New(values)
//
// # Aligning Two Series
//
// The detector requires a response and a predictor covering the same integer
// positions. Align truncates both to their common prefix and reports whether
// any observations were dropped:
//
//	y, x, info, err := timeseries.Align(response, predictor)
//	if info.Truncated {
//	    // lengths differed; info.DroppedY / info.DroppedX observations lost
//	}
//
// # Loading from CSV
//
// Load time series data from CSV files:
//
//	series, err := timeseries.LoadCSV("data.csv", nil)
//
//	opts := &timeseries.CSVOptions{ValueColumn: "passengers"}
//	series, err := timeseries.LoadCSVFromReader(reader, opts)
//
// # Basic Statistics and Transformations
//
//	mean := series.Mean()
//	std := series.Std()
//	diff := series.Diff()        // First difference
//	subset := series.Slice(0, 20)
package timeseries
