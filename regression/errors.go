package regression

import "errors"

var (
	// ErrNoData indicates an empty response or a design matrix with no columns.
	ErrNoData = errors.New("regression: response and design matrix must be non-empty")
	// ErrNilColumn indicates a nil predictor column.
	ErrNilColumn = errors.New("regression: predictor column must be non-nil")
	// ErrDimensionMismatch indicates a predictor column whose length differs from the response.
	ErrDimensionMismatch = errors.New("regression: predictor column length must match response length")
	// ErrColumnLength indicates appended columns that do not match the established row count.
	ErrColumnLength = errors.New("regression: new columns must match the established row count")
	// ErrNilResponse indicates a nil response series passed to a spec.
	ErrNilResponse = errors.New("regression: response series must be non-nil")
	// ErrMissingResponse indicates a fit attempted on a spec without a response.
	ErrMissingResponse = errors.New("regression: model spec has no response series")
	// ErrSeasonalCycle indicates a seasonal cycle shorter than the sampling period.
	ErrSeasonalCycle = errors.New("regression: seasonal cycle must span at least one sampling period")
	// ErrRankDeficient indicates a design matrix that is not of full column rank.
	ErrRankDeficient = errors.New("regression: design matrix is rank deficient")
)
