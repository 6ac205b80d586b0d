package interp

// QuadraticFunction is a polynomial a*x^2 + b*x + c in monomial form.
type QuadraticFunction struct {
	A float64
	B float64
	C float64
}

// Coefficients returns the coefficients ordered leading to trailing.
func (f QuadraticFunction) Coefficients() []float64 {
	return []float64{f.A, f.B, f.C}
}

// At evaluates the function at x.
func (f QuadraticFunction) At(x float64) float64 {
	return (f.A*x+f.B)*x + f.C
}

// CubicFunction is a polynomial a*x^3 + b*x^2 + c*x + d in monomial form.
type CubicFunction struct {
	A float64
	B float64
	C float64
	D float64
}

// Coefficients returns the coefficients ordered leading to trailing.
func (f CubicFunction) Coefficients() []float64 {
	return []float64{f.A, f.B, f.C, f.D}
}

// At evaluates the function at x.
func (f CubicFunction) At(x float64) float64 {
	return ((f.A*x+f.B)*x+f.C)*x + f.D
}
