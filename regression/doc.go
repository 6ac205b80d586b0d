// Package regression provides ordinary least-squares fitting for time series.
//
// Solve is the underlying solver: given a response vector, predictor columns,
// and an intercept flag it returns coefficient estimates, standard errors,
// fitted values, residuals, and the residual variance.
//
// ModelSpec and Fit form the time-series layer on top of the solver. A spec
// accumulates external regressor columns and configuration flags; Fit appends
// a linear trend column and seasonal dummy columns as configured, in a fixed
// order, and delegates to Solve. Coefficient positions in Beta follow the
// column assembly order: intercept, external regressors, trend, seasonal
// dummies.
package regression
