package regression

import (
	"fmt"

	"github.com/fenwickproj/gotsfit/timeseries"
)

// ModelSpec describes a time series regression model: external regressor
// columns, the response series, and flags for the intercept, linear time
// trend, and seasonal dummy components. A spec is built up by one goroutine
// and consumed by Fit, which never mutates it.
type ModelSpec struct {
	predictors    [][]float64
	response      *timeseries.Series
	intercept     bool
	timeTrend     bool
	seasonal      bool
	seasonalCycle timeseries.Period
}

// DefaultSpec returns a spec with an intercept and a time trend included,
// no seasonal component, and a seasonal cycle of one year.
func DefaultSpec() *ModelSpec {
	return &ModelSpec{
		intercept:     true,
		timeTrend:     true,
		seasonalCycle: timeseries.OneYear(),
	}
}

// ExternalRegressors appends prediction variable columns to the spec. Columns
// already added are preserved, never overwritten. The first column added
// establishes the row count; later columns must match it. On error no column
// is appended.
func (s *ModelSpec) ExternalRegressors(cols ...[]float64) error {
	rows := 0
	if len(s.predictors) > 0 {
		rows = len(s.predictors[0])
	} else if len(cols) > 0 && cols[0] != nil {
		rows = len(cols[0])
	}

	for i, col := range cols {
		if col == nil {
			return fmt.Errorf("%w: column %d", ErrNilColumn, i)
		}
		if len(col) != rows {
			return fmt.Errorf("%w: column %d has %d rows, want %d",
				ErrColumnLength, i, len(col), rows)
		}
	}
	for _, col := range cols {
		s.predictors = append(s.predictors, append([]float64(nil), col...))
	}
	return nil
}

// Response sets the dependent variable. Required before fitting.
func (s *ModelSpec) Response(series *timeseries.Series) error {
	if series == nil {
		return ErrNilResponse
	}
	s.response = series
	return nil
}

// HasIntercept sets whether the model includes an intercept. Default true.
func (s *ModelSpec) HasIntercept(include bool) {
	s.intercept = include
}

// TimeTrend sets whether the model includes a linear time trend. Default true.
func (s *ModelSpec) TimeTrend(include bool) {
	s.timeTrend = include
}

// Seasonal sets whether the model includes seasonal dummy variables.
// Default false.
func (s *ModelSpec) Seasonal(include bool) {
	s.seasonal = include
}

// SeasonalCycle sets the length of time one seasonal cycle takes to complete.
// Default one year.
func (s *ModelSpec) SeasonalCycle(cycle timeseries.Period) {
	s.seasonalCycle = cycle
}

// Model is a fitted time series regression. It wraps the solver result and
// exposes it through read-only accessors.
type Model struct {
	result *Result
	series *timeseries.Series
}

// Fit builds the design matrix described by the model spec and solves it.
//
// Columns are assembled in a fixed order: external regressors as supplied,
// then the trend column 1..n when included, then the seasonal dummy block
// when included. Coefficient positions in Beta correspond to this order,
// preceded by the intercept when one is included.
func Fit(spec *ModelSpec) (*Model, error) {
	if spec == nil || spec.response == nil {
		return nil, ErrMissingResponse
	}
	n := spec.response.Len()

	cols := make([][]float64, 0, len(spec.predictors)+2)
	for i, col := range spec.predictors {
		if len(col) != n {
			return nil, fmt.Errorf("%w: column %d has %d rows, response has %d",
				ErrDimensionMismatch, i, len(col), n)
		}
		cols = append(cols, append([]float64(nil), col...))
	}

	if spec.timeTrend {
		trend := make([]float64, n)
		for i := range trend {
			trend[i] = float64(i + 1)
		}
		cols = append(cols, trend)
	}

	if spec.seasonal {
		frequency := int(spec.response.Period.FrequencyPer(spec.seasonalCycle))
		if frequency < 1 {
			return nil, fmt.Errorf("%w: frequency %d", ErrSeasonalCycle, frequency)
		}
		cols = append(cols, seasonalRegressors(frequency, n)...)
	}

	result, err := Solve(spec.response.Values, cols, spec.intercept)
	if err != nil {
		return nil, err
	}
	return &Model{result: result, series: spec.response.Copy()}, nil
}

// seasonalRegressors builds the frequency-1 dummy columns encoding position
// within the seasonal cycle, the same expansion R applies to factors in
// linear models. Column i carries 1.0 at every index congruent to i modulo
// the frequency; the zeroth cycle position is the implicit reference level.
// A trailing partial cycle simply has fewer one-entries.
func seasonalRegressors(frequency, n int) [][]float64 {
	cols := make([][]float64, 0, frequency-1)
	for i := 1; i < frequency; i++ {
		col := make([]float64, n)
		for j := i; j < n; j += frequency {
			col[j] = 1.0
		}
		cols = append(cols, col)
	}
	return cols
}

// Series returns a copy of the response series the model was fitted to.
func (m *Model) Series() *timeseries.Series {
	return m.series.Copy()
}

// Predictors returns the predictor columns handed to the solver.
func (m *Model) Predictors() [][]float64 {
	return m.result.Predictors()
}

// DesignMatrix returns the full design matrix including any intercept column.
func (m *Model) DesignMatrix() [][]float64 {
	return m.result.DesignMatrix()
}

// Response returns the response vector.
func (m *Model) Response() []float64 {
	return m.result.Response()
}

// Beta returns the estimated coefficients.
func (m *Model) Beta() []float64 {
	return m.result.Beta()
}

// StandardErrors returns the standard errors of the coefficient estimates.
func (m *Model) StandardErrors() []float64 {
	return m.result.StandardErrors()
}

// Fitted returns the fitted values.
func (m *Model) Fitted() []float64 {
	return m.result.Fitted()
}

// Residuals returns the model residuals.
func (m *Model) Residuals() []float64 {
	return m.result.Residuals()
}

// Sigma2 returns the residual variance estimate.
func (m *Model) Sigma2() float64 {
	return m.result.Sigma2()
}

// HasIntercept reports whether the model includes an intercept.
func (m *Model) HasIntercept() bool {
	return m.result.HasIntercept()
}
