// Package timeseries provides the annual observation series consumed by the
// regression fitters.
//
// # Building a series
//
// Parse free-form user input, newest year first:
//
//	series := timeseries.Parse(2024, "5200 5100 4950 4800 4650 4500")
//	// series[0] = {Year: 2019, Volume: 4500, GrowthRate: 0}
//	// series[5] = {Year: 2024, Volume: 5200, GrowthRate: 1.96}
//
// Or from explicit (year, volume) pairs:
//
//	series := timeseries.New([]int{2022, 2023, 2024}, []float64{4800, 5100, 5200})
//
// The resulting series is always sorted oldest first, with year-over-year
// growth percentages computed. The first observation's growth rate is 0 by
// convention, as is any rate whose prior volume is 0.
//
// # Loading from CSV
//
//	series, err := timeseries.LoadCSV("volumes.csv", nil)
//
// Column names and delimiter can be customized via CSVOptions.
package timeseries
