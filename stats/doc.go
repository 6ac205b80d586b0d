// Package stats provides autocorrelation diagnostics for model residuals.
//
// The functions operate on raw residual vectors as produced by the regression
// and naive models: the autocorrelation function with confidence bounds, the
// Ljung-Box and Box-Pierce portmanteau tests, and the Durbin-Watson statistic.
package stats
