// Package timeseries provides core time series data structures and operations.
//
// A Series pairs observation values with timestamps and a sampling Period.
// The Period describes the regular interval between observations and answers
// frequency queries such as "how many monthly observations occur per year",
// which the regression package uses to size seasonal dummy blocks.
package timeseries
