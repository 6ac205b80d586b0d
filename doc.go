// Package gotsfit provides regression-based modeling and forecasting for time series.
//
// GoTSFit is a Go package for fitting simple predictive models to time-indexed
// data. It assembles time-series design matrices (external regressors, linear
// trend, seasonal dummy encoding), solves them by ordinary least squares, and
// produces forecasts together with diagnostic residuals. It also includes a
// Newton-form polynomial interpolator built on divided differences.
//
// # Features
//
//   - Time-series linear regression with intercept, trend, and seasonal dummies
//   - Ordinary least-squares solver with standard errors and residual variance
//   - Naive (random walk) model with point and interval forecasts
//   - Newton polynomial interpolation via divided differences
//   - Residual diagnostics (ACF, Ljung-Box, Box-Pierce, Durbin-Watson)
//
// # Quick Start
//
// Fit a time-series regression with a trend and monthly seasonality:
//
//	series := timeseries.NewWithPeriod(values, timeseries.OneMonth())
//	spec := regression.DefaultSpec()
//	spec.Response(series)
//	spec.Seasonal(true)
//	model, _ := regression.Fit(spec)
//	beta := model.Beta()
//
// Interpolate through a set of points:
//
//	poly, _ := interp.New([]float64{2, 4, 7}, []float64{4, 16, 49})
//	y := poly.EvaluateAt(3.0) // 9.0
//
// # Packages
//
// The library is organized into the following packages:
//
//   - regression: Least-squares solver and time-series regression models
//   - interp: Newton-form polynomial interpolation
//   - naive: Random walk (one-step-lag) forecasting model
//   - stats: Residual diagnostics and autocorrelation analysis
//   - timeseries: Time series data structures and utilities
//
// # References
//
//   - Hyndman, R.J., & Athanasopoulos, G. (2021). Forecasting: Principles and Practice
//   - Burden, R.L., & Faires, J.D. (2011). Numerical Analysis
package gotsfit
