// Package naive implements the random walk (one-step-lag) forecasting model.
//
// A random walk forecasts every future value as the last observation. The
// fitted series lags the observations by one step, residuals are the
// one-step-ahead errors, and prediction intervals widen with the square root
// of the forecast horizon.
package naive
