// Package datasets provides the built-in fixture series used in the
// documentation and tests.
package datasets

import (
	_ "embed"
	"strings"

	"github.com/sartorproj/gospurious/timeseries"
)

//go:embed aus_airpassengers.csv
var ausAirPassengersCSV string

//go:embed guinea_rice.csv
var guineaRiceCSV string

// AusAirPassengers returns annual total air passengers carried by Australian
// carriers, 1970-2016, in millions. 47 observations.
func AusAirPassengers() *timeseries.Series {
	return mustLoad(ausAirPassengersCSV, "passengers")
}

// GuineaRice returns annual rice production in Guinea, 1970-2011, in million
// metric tons. 42 observations.
//
// Regressing AusAirPassengers on GuineaRice is the classic spurious
// regression example: both series trend upward, the in-sample fit looks
// excellent, and the relationship has no predictive content.
func GuineaRice() *timeseries.Series {
	return mustLoad(guineaRiceCSV, "production")
}

func mustLoad(csv, column string) *timeseries.Series {
	opts := timeseries.DefaultCSVOptions()
	opts.ValueColumn = column

	s, err := timeseries.LoadCSVFromReader(strings.NewReader(csv), opts)
	if err != nil {
		// The data is embedded at compile time; a parse failure is a bug.
		panic("datasets: " + err.Error())
	}
	return s
}
