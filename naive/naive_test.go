package naive

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fenwickproj/gotsfit/timeseries"
)

func TestFitLagsObservations(t *testing.T) {
	series := timeseries.New([]float64{10, 12, 11, 15, 14})

	m, err := Fit(series)
	require.NoError(t, err)

	fitted := m.Fitted()
	assert.Equal(t, []float64{10, 10, 12, 11, 15}, fitted.Values)

	residuals := m.Residuals()
	assert.Equal(t, []float64{0, 2, -1, 4, -1}, residuals.Values)

	// sigma2 = (4 + 1 + 16 + 1) / 4
	assert.InDelta(t, 5.5, m.Sigma2(), 1e-10)
}

func TestFitValidation(t *testing.T) {
	_, err := Fit(nil)
	require.ErrorIs(t, err, ErrTooShort)

	_, err = Fit(timeseries.New([]float64{1}))
	require.ErrorIs(t, err, ErrTooShort)
}

func TestFitDoesNotAliasInput(t *testing.T) {
	values := []float64{1, 2, 3}
	series := timeseries.New(values)

	m, err := Fit(series)
	require.NoError(t, err)

	values[0] = 99
	assert.Equal(t, 1.0, m.Series().Values[0])
}

func TestPointForecastFlat(t *testing.T) {
	series := timeseries.NewWithPeriod([]float64{3, 5, 8}, timeseries.OneDay())

	m, err := Fit(series)
	require.NoError(t, err)

	forecast, err := m.PointForecast(4)
	require.NoError(t, err)

	assert.Equal(t, []float64{8, 8, 8, 8}, forecast.Values)
	assert.Equal(t, timeseries.OneDay(), forecast.Period)

	gap := forecast.Timestamps[0].Sub(series.Timestamps[2])
	assert.Equal(t, timeseries.OneDay().Duration(), gap,
		"forecast timestamps continue one period after the last observation")

	_, err = m.PointForecast(0)
	require.ErrorIs(t, err, ErrSteps)
}

func TestForecastIntervals(t *testing.T) {
	series := timeseries.New([]float64{10, 12, 11, 15, 14})

	m, err := Fit(series)
	require.NoError(t, err)

	fc, err := m.Forecast(3, 0.05)
	require.NoError(t, err)

	sigma := math.Sqrt(m.Sigma2())
	z := 1.959963984540054 // standard Normal 97.5% quantile

	for h := 0; h < 3; h++ {
		margin := z * sigma * math.Sqrt(float64(h+1))
		assert.InDelta(t, 14.0, fc.Mean.Values[h], 1e-10)
		assert.InDelta(t, 14.0-margin, fc.Lower.Values[h], 1e-9, "lower %d", h)
		assert.InDelta(t, 14.0+margin, fc.Upper.Values[h], 1e-9, "upper %d", h)
	}

	// Intervals widen with the horizon.
	w1 := fc.Upper.Values[0] - fc.Lower.Values[0]
	w3 := fc.Upper.Values[2] - fc.Lower.Values[2]
	assert.Greater(t, w3, w1)
}

func TestForecastAlphaValidation(t *testing.T) {
	m, err := Fit(timeseries.New([]float64{1, 2, 3}))
	require.NoError(t, err)

	for _, alpha := range []float64{0, 1, -0.1, 1.5} {
		_, err := m.Forecast(2, alpha)
		assert.ErrorIs(t, err, ErrAlpha, "alpha %v", alpha)
	}
}

func TestSimulateReproducible(t *testing.T) {
	a, err := Simulate(0, 1, 50, 42)
	require.NoError(t, err)
	b, err := Simulate(0, 1, 50, 42)
	require.NoError(t, err)

	assert.Equal(t, a.Values, b.Values, "same seed must generate the same walk")

	c, err := Simulate(0, 1, 50, 43)
	require.NoError(t, err)
	assert.NotEqual(t, a.Values, c.Values)
}

func TestSimulateDrift(t *testing.T) {
	// With zero sigma the walk is a deterministic drift line.
	s, err := Simulate(2, 0, 5, 1)
	require.NoError(t, err)

	assert.Equal(t, []float64{2, 4, 6, 8, 10}, s.Values)
}

func TestSimulateValidation(t *testing.T) {
	_, err := Simulate(0, 1, 0, 1)
	require.ErrorIs(t, err, ErrSimulate)

	_, err = Simulate(0, -1, 10, 1)
	require.ErrorIs(t, err, ErrSimulate)
}
