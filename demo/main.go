// Package main demonstrates time-series regression, naive forecasting, and
// Newton polynomial interpolation on synthetic data.
package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/fenwickproj/gotsfit/interp"
	"github.com/fenwickproj/gotsfit/naive"
	"github.com/fenwickproj/gotsfit/regression"
	"github.com/fenwickproj/gotsfit/stats"
	"github.com/fenwickproj/gotsfit/timeseries"
)

func main() {
	fmt.Println(strings.Repeat("=", 80))
	fmt.Println("GoTSFit Demonstration - Regression / Naive Forecast / Interpolation")
	fmt.Println(strings.Repeat("=", 80))

	runRegression()
	runNaive()
	runInterpolation()

	fmt.Println(strings.Repeat("=", 80))
}

// runRegression fits a trend + seasonal regression to synthetic quarterly data.
func runRegression() {
	fmt.Printf("\n%s\n[1/3] Seasonal trend regression\n%s\n", strings.Repeat("=", 80), strings.Repeat("=", 80))

	// Quarterly series: level 50, trend 0.8 per quarter, seasonal swing, mild noise.
	seasonal := []float64{0, 6.5, -4.0, 2.5}
	n := 40
	values := make([]float64, n)
	for t := 0; t < n; t++ {
		noise := math.Sin(float64(t)*2.7) * 0.5
		values[t] = 50 + 0.8*float64(t+1) + seasonal[t%4] + noise
	}
	series := timeseries.NewWithPeriod(values, timeseries.OneQuarter())

	trainSize := n - 8
	train := series.Slice(0, trainSize)
	test := series.Slice(trainSize, n)
	fmt.Printf("   Loaded %d observations (%.2f to %.2f), train %d, test %d\n",
		n, series.Min(), series.Max(), trainSize, test.Len())

	spec := regression.DefaultSpec()
	spec.Seasonal(true)
	if err := spec.Response(train); err != nil {
		fmt.Printf("   Error: %v\n", err)
		return
	}

	model, err := regression.Fit(spec)
	if err != nil {
		fmt.Printf("   Error fitting: %v\n", err)
		return
	}

	beta := model.Beta()
	se := model.StandardErrors()
	labels := []string{"intercept", "trend", "Q2", "Q3", "Q4"}
	for i, b := range beta {
		fmt.Printf("   %-10s %8.4f  (se %.4f)\n", labels[i], b, se[i])
	}
	fmt.Printf("   sigma2: %.4f\n", model.Sigma2())

	// Forecast the held-out quarters from the fitted coefficients.
	predicted := make([]float64, test.Len())
	for h := 0; h < test.Len(); h++ {
		t := trainSize + h
		pred := beta[0] + beta[1]*float64(t+1)
		if q := t % 4; q > 0 {
			pred += beta[1+q]
		}
		predicted[h] = pred
	}
	rmse, mae := metrics(test.Values, predicted)
	fmt.Printf("   Holdout: RMSE=%.4f MAE=%.4f\n", rmse, mae)

	if lb, err := stats.LjungBox(model.Residuals(), 8, len(beta)); err == nil {
		fmt.Printf("   Ljung-Box: Q=%.4f p=%.4f (dof %d)\n", lb.Statistic, lb.PValue, lb.DOF)
	}
	if dw, err := stats.DurbinWatson(model.Residuals()); err == nil {
		fmt.Printf("   Durbin-Watson: %.4f\n", dw)
	}
}

// runNaive fits a random walk to a simulated series and forecasts with intervals.
func runNaive() {
	fmt.Printf("\n%s\n[2/3] Random walk forecast\n%s\n", strings.Repeat("=", 80), strings.Repeat("=", 80))

	series, err := naive.Simulate(0.2, 1.5, 120, 7)
	if err != nil {
		fmt.Printf("   Error simulating: %v\n", err)
		return
	}

	model, err := naive.Fit(series)
	if err != nil {
		fmt.Printf("   Error fitting: %v\n", err)
		return
	}
	fmt.Printf("   Simulated %d observations, residual sigma2=%.4f\n", series.Len(), model.Sigma2())

	fc, err := model.Forecast(6, 0.05)
	if err != nil {
		fmt.Printf("   Error forecasting: %v\n", err)
		return
	}
	for h := range fc.Mean.Values {
		fmt.Printf("   h=%d: %8.4f  [%8.4f, %8.4f]\n",
			h+1, fc.Mean.Values[h], fc.Lower.Values[h], fc.Upper.Values[h])
	}

	if acf := stats.ACFWithConfidence(model.Residuals().Values, 10); acf != nil {
		fmt.Printf("   Residual ACF(1)=%.4f (bound %.4f)\n", acf.Values[1], acf.ConfBound)
	}
}

// runInterpolation builds a Newton polynomial through y=x^2 samples.
func runInterpolation() {
	fmt.Printf("\n%s\n[3/3] Newton interpolation\n%s\n", strings.Repeat("=", 80), strings.Repeat("=", 80))

	poly, err := interp.New([]float64{2, 4, 7}, []float64{4, 16, 49})
	if err != nil {
		fmt.Printf("   Error: %v\n", err)
		return
	}

	for k := 0; k < poly.Len(); k++ {
		c, _ := poly.Coefficient(k)
		fmt.Printf("   divided difference c[%d] = %.4f\n", k, c)
	}
	fmt.Printf("   p(3.0) = %.4f\n", poly.EvaluateAt(3.0))

	if q, err := poly.ToQuadratic(); err == nil {
		c := q.Coefficients()
		fmt.Printf("   quadratic form: %.4f*x^2 + %.4f*x + %.4f\n", c[0], c[1], c[2])
	}
}

// metrics calculates forecast accuracy metrics.
func metrics(actual, predicted []float64) (rmse, mae float64) {
	n := min(len(actual), len(predicted))
	if n == 0 {
		return
	}
	for i := 0; i < n; i++ {
		d := actual[i] - predicted[i]
		rmse += d * d
		mae += math.Abs(d)
	}
	return math.Sqrt(rmse / float64(n)), mae / float64(n)
}
