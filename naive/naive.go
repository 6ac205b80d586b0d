package naive

import (
	"errors"
	"math"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/fenwickproj/gotsfit/timeseries"
)

var (
	// ErrTooShort indicates a series with fewer than two observations.
	ErrTooShort = errors.New("naive: at least two observations are required")
	// ErrSteps indicates a non-positive forecast horizon.
	ErrSteps = errors.New("naive: steps must be at least 1")
	// ErrAlpha indicates a significance level outside (0, 1).
	ErrAlpha = errors.New("naive: alpha must be in (0, 1)")
	// ErrSimulate indicates invalid simulation parameters.
	ErrSimulate = errors.New("naive: n must be at least 1 and sigma non-negative")
)

// RandomWalk is a fitted random walk model. Immutable after Fit; accessors
// return copies.
type RandomWalk struct {
	series    *timeseries.Series
	fitted    *timeseries.Series
	residuals *timeseries.Series
	sigma2    float64
}

// Fit fits a random walk model to the observed series. The fitted value at
// each step is the previous observation; the first fitted value is the first
// observation itself, so its residual is zero.
func Fit(series *timeseries.Series) (*RandomWalk, error) {
	if series == nil || series.Len() < 2 {
		return nil, ErrTooShort
	}
	s := series.Copy()
	n := s.Len()

	fitted := make([]float64, n)
	residuals := make([]float64, n)
	fitted[0] = s.Values[0]
	for t := 1; t < n; t++ {
		fitted[t] = s.Values[t-1]
		residuals[t] = s.Values[t] - fitted[t]
	}

	sse := 0.0
	for t := 1; t < n; t++ {
		sse += residuals[t] * residuals[t]
	}

	return &RandomWalk{
		series:    s,
		fitted:    sameShape(s, fitted, "_fitted"),
		residuals: sameShape(s, residuals, "_residuals"),
		sigma2:    sse / float64(n-1),
	}, nil
}

// sameShape wraps values in a series sharing the original's timestamps and period.
func sameShape(s *timeseries.Series, values []float64, suffix string) *timeseries.Series {
	timestamps := make([]time.Time, len(s.Timestamps))
	copy(timestamps, s.Timestamps)
	return &timeseries.Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       s.Name + suffix,
		Period:     s.Period,
	}
}

// Series returns a copy of the observed series.
func (m *RandomWalk) Series() *timeseries.Series {
	return m.series.Copy()
}

// Fitted returns a copy of the fitted series.
func (m *RandomWalk) Fitted() *timeseries.Series {
	return m.fitted.Copy()
}

// Residuals returns a copy of the residual series.
func (m *RandomWalk) Residuals() *timeseries.Series {
	return m.residuals.Copy()
}

// Sigma2 returns the one-step residual variance estimate.
func (m *RandomWalk) Sigma2() float64 {
	return m.sigma2
}

// PointForecast forecasts the given number of steps ahead. Every forecast
// equals the last observation; timestamps continue at the series period.
func (m *RandomWalk) PointForecast(steps int) (*timeseries.Series, error) {
	if steps < 1 {
		return nil, ErrSteps
	}
	n := m.series.Len()
	last := m.series.Values[n-1]

	values := make([]float64, steps)
	timestamps := make([]time.Time, steps)
	start := m.series.Timestamps[n-1]
	for h := range values {
		values[h] = last
		timestamps[h] = start.Add(time.Duration(h+1) * m.series.Period.Duration())
	}

	return &timeseries.Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       m.series.Name + "_forecast",
		Period:     m.series.Period,
	}, nil
}

// Forecast is an interval forecast: point forecasts with lower and upper
// (1-alpha) prediction bounds.
type Forecast struct {
	Mean  *timeseries.Series
	Lower *timeseries.Series
	Upper *timeseries.Series
	Alpha float64
}

// Forecast produces point forecasts with (1-alpha) prediction intervals.
// The forecast standard error at horizon h is sigma*sqrt(h).
func (m *RandomWalk) Forecast(steps int, alpha float64) (*Forecast, error) {
	if alpha <= 0 || alpha >= 1 {
		return nil, ErrAlpha
	}
	mean, err := m.PointForecast(steps)
	if err != nil {
		return nil, err
	}

	z := distuv.Normal{Mu: 0, Sigma: 1}.Quantile(1 - alpha/2)
	sigma := math.Sqrt(m.sigma2)

	lower := mean.Copy()
	upper := mean.Copy()
	lower.Name = m.series.Name + "_lower"
	upper.Name = m.series.Name + "_upper"
	for h := 0; h < steps; h++ {
		margin := z * sigma * math.Sqrt(float64(h+1))
		lower.Values[h] -= margin
		upper.Values[h] += margin
	}

	return &Forecast{
		Mean:  mean,
		Lower: lower,
		Upper: upper,
		Alpha: alpha,
	}, nil
}

// Simulate generates a random walk of length n whose innovations are drawn
// from a Normal distribution with the given mean and standard deviation.
// The seed makes the walk reproducible.
func Simulate(mu, sigma float64, n int, seed uint64) (*timeseries.Series, error) {
	if n < 1 || sigma < 0 {
		return nil, ErrSimulate
	}
	dist := distuv.Normal{Mu: mu, Sigma: sigma, Src: rand.NewSource(seed)}

	values := make([]float64, n)
	level := 0.0
	for i := range values {
		level += dist.Rand()
		values[i] = level
	}
	return timeseries.New(values), nil
}
