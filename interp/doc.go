// Package interp implements Newton-form polynomial interpolation.
//
// A NewtonPolynomial is constructed from n distinct sample points and their
// function values. Construction computes the full divided-difference table;
// the polynomial can then be evaluated at arbitrary points or, when the
// sample count matches the degree exactly, converted to explicit quadratic
// or cubic monomial coefficients.
package interp
