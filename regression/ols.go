package regression

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Result holds the output of an ordinary least-squares fit. All fields are
// produced once at solve time; accessors return copies, so a Result is safe
// to share across goroutines for reading.
type Result struct {
	predictors [][]float64
	design     [][]float64
	response   []float64
	beta       []float64
	stdErrs    []float64
	fitted     []float64
	residuals  []float64
	sigma2     float64
	intercept  bool
}

// Solve fits the response on the given predictor columns by ordinary least
// squares. Each element of predictors is one column of data for a single
// variable. When intercept is true a column of ones leads the design matrix,
// so beta[0] is the intercept estimate.
//
// A design matrix without full column rank yields ErrRankDeficient.
func Solve(response []float64, predictors [][]float64, intercept bool) (*Result, error) {
	n := len(response)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty response", ErrNoData)
	}
	for i, col := range predictors {
		if col == nil {
			return nil, fmt.Errorf("%w: column %d", ErrNilColumn, i)
		}
		if len(col) != n {
			return nil, fmt.Errorf("%w: column %d has %d rows, response has %d",
				ErrDimensionMismatch, i, len(col), n)
		}
	}

	cols := len(predictors)
	if intercept {
		cols++
	}
	if cols == 0 {
		return nil, fmt.Errorf("%w: no design columns", ErrNoData)
	}
	if n < cols {
		return nil, fmt.Errorf("%w: %d observations for %d design columns",
			ErrRankDeficient, n, cols)
	}

	x := mat.NewDense(n, cols, nil)
	offset := 0
	if intercept {
		for i := 0; i < n; i++ {
			x.Set(i, 0, 1)
		}
		offset = 1
	}
	for j, col := range predictors {
		x.SetCol(j+offset, col)
	}

	y := mat.NewVecDense(n, append([]float64(nil), response...))

	var qr mat.QR
	qr.Factorize(x)
	beta := mat.NewVecDense(cols, nil)
	if err := qr.SolveVecTo(beta, false, y); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRankDeficient, err)
	}

	var fitted mat.VecDense
	fitted.MulVec(x, beta)

	residuals := make([]float64, n)
	rss := 0.0
	for i := 0; i < n; i++ {
		residuals[i] = response[i] - fitted.AtVec(i)
		rss += residuals[i] * residuals[i]
	}

	// sigma2 uses n-k degrees of freedom; an exactly determined system has
	// zero residual variance and no meaningful standard errors.
	sigma2 := 0.0
	if df := n - cols; df > 0 {
		sigma2 = rss / float64(df)
	}

	var xtx mat.Dense
	xtx.Mul(x.T(), x)
	var inv mat.Dense
	if err := inv.Inverse(&xtx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRankDeficient, err)
	}

	stdErrs := make([]float64, cols)
	for j := 0; j < cols; j++ {
		if n == cols {
			stdErrs[j] = math.NaN()
			continue
		}
		stdErrs[j] = math.Sqrt(sigma2 * inv.At(j, j))
	}

	res := &Result{
		predictors: copyColumns(predictors),
		design:     designColumns(x, n, cols),
		response:   append([]float64(nil), response...),
		beta:       append([]float64(nil), beta.RawVector().Data...),
		stdErrs:    stdErrs,
		fitted:     make([]float64, n),
		residuals:  residuals,
		sigma2:     sigma2,
		intercept:  intercept,
	}
	for i := 0; i < n; i++ {
		res.fitted[i] = fitted.AtVec(i)
	}
	return res, nil
}

func copyColumns(cols [][]float64) [][]float64 {
	out := make([][]float64, len(cols))
	for i, col := range cols {
		out[i] = append([]float64(nil), col...)
	}
	return out
}

func designColumns(x *mat.Dense, n, cols int) [][]float64 {
	out := make([][]float64, cols)
	for j := 0; j < cols; j++ {
		col := make([]float64, n)
		mat.Col(col, j, x)
		out[j] = col
	}
	return out
}

// Predictors returns the predictor columns as supplied to the solver.
func (r *Result) Predictors() [][]float64 {
	return copyColumns(r.predictors)
}

// DesignMatrix returns the full design matrix as column vectors, with the
// intercept column materialized first when one was requested.
func (r *Result) DesignMatrix() [][]float64 {
	return copyColumns(r.design)
}

// Response returns the response vector.
func (r *Result) Response() []float64 {
	return append([]float64(nil), r.response...)
}

// Beta returns the estimated coefficients, one per design-matrix column.
func (r *Result) Beta() []float64 {
	return append([]float64(nil), r.beta...)
}

// StandardErrors returns the standard errors of the coefficient estimates.
func (r *Result) StandardErrors() []float64 {
	return append([]float64(nil), r.stdErrs...)
}

// Fitted returns the fitted values.
func (r *Result) Fitted() []float64 {
	return append([]float64(nil), r.fitted...)
}

// Residuals returns the residuals, response minus fitted.
func (r *Result) Residuals() []float64 {
	return append([]float64(nil), r.residuals...)
}

// Sigma2 returns the residual variance estimate.
func (r *Result) Sigma2() float64 {
	return r.sigma2
}

// HasIntercept reports whether an intercept column was included.
func (r *Result) HasIntercept() bool {
	return r.intercept
}
