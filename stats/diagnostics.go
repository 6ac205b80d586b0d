package stats

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

var (
	// ErrTooShort indicates too few observations for the requested diagnostic.
	ErrTooShort = errors.New("stats: too few observations for the requested diagnostic")
	// ErrNoVariance indicates a constant input vector.
	ErrNoVariance = errors.New("stats: values have zero variance")
	// ErrLags indicates a non-positive lag count.
	ErrLags = errors.New("stats: lags must be at least 1")
)

// ACF calculates the autocorrelation function of values.
// Returns ACF values for lags 0 to maxLag, or nil if the input is empty or
// has zero variance.
func ACF(values []float64, maxLag int) []float64 {
	n := len(values)
	if maxLag >= n {
		maxLag = n - 1
	}
	if maxLag < 0 {
		return nil
	}

	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(n)

	variance := 0.0
	for _, v := range values {
		diff := v - mean
		variance += diff * diff
	}
	if variance == 0 {
		return nil
	}

	acf := make([]float64, maxLag+1)
	for k := 0; k <= maxLag; k++ {
		sum := 0.0
		for i := k; i < n; i++ {
			sum += (values[i] - mean) * (values[i-k] - mean)
		}
		acf[k] = sum / variance
	}
	return acf
}

// ACFResult represents the result of ACF analysis.
type ACFResult struct {
	Lags      []int
	Values    []float64
	ConfBound float64 // 95% white-noise confidence bound
}

// ACFWithConfidence calculates ACF with white-noise confidence bounds.
func ACFWithConfidence(values []float64, maxLag int) *ACFResult {
	acf := ACF(values, maxLag)
	if acf == nil {
		return nil
	}

	lags := make([]int, len(acf))
	for i := range lags {
		lags[i] = i
	}

	z := distuv.Normal{Mu: 0, Sigma: 1}.Quantile(0.975)
	return &ACFResult{
		Lags:      lags,
		Values:    acf,
		ConfBound: z / math.Sqrt(float64(len(values))),
	}
}

// LjungBoxResult represents the result of a Ljung-Box test.
type LjungBoxResult struct {
	Statistic float64
	PValue    float64
	Lags      int
	DOF       int
}

// LjungBox performs the Ljung-Box test for autocorrelation in residuals.
// The null hypothesis is that there is no autocorrelation up to the given
// lag. fitdf is the number of parameters estimated by the model that
// produced the residuals.
func LjungBox(residuals []float64, lags, fitdf int) (*LjungBoxResult, error) {
	n := len(residuals)
	if n < 10 {
		return nil, ErrTooShort
	}
	if lags < 1 {
		return nil, ErrLags
	}
	if lags >= n {
		lags = n - 1
	}

	acf := ACF(residuals, lags)
	if acf == nil {
		return nil, ErrNoVariance
	}

	q := 0.0
	for k := 1; k <= lags; k++ {
		q += (acf[k] * acf[k]) / float64(n-k)
	}
	q *= float64(n * (n + 2))

	dof := lags - fitdf
	if dof < 1 {
		dof = 1
	}

	chi := distuv.ChiSquared{K: float64(dof)}
	return &LjungBoxResult{
		Statistic: q,
		PValue:    1 - chi.CDF(q),
		Lags:      lags,
		DOF:       dof,
	}, nil
}

// BoxPierceResult represents the result of a Box-Pierce test.
type BoxPierceResult struct {
	Statistic float64
	PValue    float64
	Lags      int
	DOF       int
}

// BoxPierce performs the Box-Pierce test for autocorrelation.
// Similar to Ljung-Box but without the finite-sample lag weighting.
func BoxPierce(residuals []float64, lags, fitdf int) (*BoxPierceResult, error) {
	n := len(residuals)
	if n < 10 {
		return nil, ErrTooShort
	}
	if lags < 1 {
		return nil, ErrLags
	}
	if lags >= n {
		lags = n - 1
	}

	acf := ACF(residuals, lags)
	if acf == nil {
		return nil, ErrNoVariance
	}

	q := 0.0
	for k := 1; k <= lags; k++ {
		q += acf[k] * acf[k]
	}
	q *= float64(n)

	dof := lags - fitdf
	if dof < 1 {
		dof = 1
	}

	chi := distuv.ChiSquared{K: float64(dof)}
	return &BoxPierceResult{
		Statistic: q,
		PValue:    1 - chi.CDF(q),
		Lags:      lags,
		DOF:       dof,
	}, nil
}

// DurbinWatson calculates the Durbin-Watson statistic for first-order
// autocorrelation in residuals. Values near 2 indicate no autocorrelation;
// below 2, positive autocorrelation; above 2, negative.
func DurbinWatson(residuals []float64) (float64, error) {
	n := len(residuals)
	if n < 2 {
		return 0, ErrTooShort
	}

	numerator := 0.0
	for i := 1; i < n; i++ {
		diff := residuals[i] - residuals[i-1]
		numerator += diff * diff
	}

	denominator := 0.0
	for _, r := range residuals {
		denominator += r * r
	}
	if denominator == 0 {
		return 0, ErrNoVariance
	}

	return numerator / denominator, nil
}
