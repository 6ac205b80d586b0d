package regression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveExactLine(t *testing.T) {
	// y = 2x + 1
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{3, 5, 7, 9, 11}

	res, err := Solve(y, [][]float64{x}, true)
	require.NoError(t, err)

	beta := res.Beta()
	require.Len(t, beta, 2)
	assert.InDelta(t, 1.0, beta[0], 1e-9, "intercept")
	assert.InDelta(t, 2.0, beta[1], 1e-9, "slope")

	for i, f := range res.Fitted() {
		assert.InDelta(t, y[i], f, 1e-9, "fitted %d", i)
	}
	for i, r := range res.Residuals() {
		assert.InDelta(t, 0.0, r, 1e-9, "residual %d", i)
	}
	assert.InDelta(t, 0.0, res.Sigma2(), 1e-9)
	assert.True(t, res.HasIntercept())
}

func TestSolveStandardErrors(t *testing.T) {
	// Hand-computed simple regression: slope 0.6, intercept 1, sigma2 1.6.
	x := []float64{1, 2, 3, 4}
	y := []float64{2, 1, 4, 3}

	res, err := Solve(y, [][]float64{x}, true)
	require.NoError(t, err)

	beta := res.Beta()
	assert.InDelta(t, 1.0, beta[0], 1e-9)
	assert.InDelta(t, 0.6, beta[1], 1e-9)
	assert.InDelta(t, 1.6, res.Sigma2(), 1e-9)

	se := res.StandardErrors()
	require.Len(t, se, 2)
	assert.InDelta(t, 1.5491933384829668, se[0], 1e-9) // sqrt(1.6*(1/4 + 6.25/5))
	assert.InDelta(t, 0.5656854249492380, se[1], 1e-9) // sqrt(1.6/5)
}

func TestSolveMultipleColumns(t *testing.T) {
	// y = 1 + 2a + 3b
	a := []float64{1, 2, 3, 4, 5, 6}
	b := []float64{2, 1, 4, 3, 6, 5}
	y := make([]float64, len(a))
	for i := range y {
		y[i] = 1 + 2*a[i] + 3*b[i]
	}

	res, err := Solve(y, [][]float64{a, b}, true)
	require.NoError(t, err)

	beta := res.Beta()
	require.Len(t, beta, 3)
	assert.InDelta(t, 1.0, beta[0], 1e-8)
	assert.InDelta(t, 2.0, beta[1], 1e-8)
	assert.InDelta(t, 3.0, beta[2], 1e-8)
}

func TestSolveNoIntercept(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	y := []float64{2, 4, 6, 8}

	res, err := Solve(y, [][]float64{x}, false)
	require.NoError(t, err)

	beta := res.Beta()
	require.Len(t, beta, 1)
	assert.InDelta(t, 2.0, beta[0], 1e-9)
	assert.False(t, res.HasIntercept())

	design := res.DesignMatrix()
	require.Len(t, design, 1, "no intercept column should be materialized")
	assert.Equal(t, x, design[0])
}

func TestSolveDesignMatrixLayout(t *testing.T) {
	x := []float64{1, 2, 3}
	y := []float64{1, 2, 3}

	res, err := Solve(y, [][]float64{x}, true)
	require.NoError(t, err)

	design := res.DesignMatrix()
	require.Len(t, design, 2)
	assert.Equal(t, []float64{1, 1, 1}, design[0], "intercept column first")
	assert.Equal(t, x, design[1])
}

func TestSolveValidation(t *testing.T) {
	tests := []struct {
		name       string
		response   []float64
		predictors [][]float64
		intercept  bool
		err        error
	}{
		{"empty response", []float64{}, [][]float64{{1}}, true, ErrNoData},
		{"nil column", []float64{1, 2}, [][]float64{nil}, true, ErrNilColumn},
		{"short column", []float64{1, 2, 3}, [][]float64{{1, 2}}, true, ErrDimensionMismatch},
		{"long column", []float64{1, 2}, [][]float64{{1, 2, 3}}, true, ErrDimensionMismatch},
		{"no columns at all", []float64{1, 2}, nil, false, ErrNoData},
		{"more columns than rows", []float64{1, 2}, [][]float64{{1, 2}, {3, 4}}, true, ErrRankDeficient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Solve(tt.response, tt.predictors, tt.intercept)
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestSolveRankDeficient(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{2, 4, 6, 8, 10}

	// Duplicated column makes the design matrix singular.
	_, err := Solve(y, [][]float64{x, x}, true)
	require.ErrorIs(t, err, ErrRankDeficient)
}

func TestResultAccessorsReturnCopies(t *testing.T) {
	x := []float64{1, 2, 3}
	y := []float64{2, 4, 6}

	res, err := Solve(y, [][]float64{x}, true)
	require.NoError(t, err)

	beta := res.Beta()
	beta[0] = 999
	assert.NotEqual(t, 999.0, res.Beta()[0])

	cols := res.Predictors()
	cols[0][0] = 999
	assert.NotEqual(t, 999.0, res.Predictors()[0][0])
}
