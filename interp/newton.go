package interp

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
)

var (
	// ErrLengthMismatch indicates the point and value sequences differ in length.
	ErrLengthMismatch = errors.New("interp: points and values must have the same length")
	// ErrEmptySample indicates an empty sample set.
	ErrEmptySample = errors.New("interp: at least one sample point is required")
	// ErrDuplicatePoint indicates two sample points coincide.
	ErrDuplicatePoint = errors.New("interp: sample points must be pairwise distinct")
	// ErrCoefficient indicates a coefficient index outside [0, n).
	ErrCoefficient = errors.New("interp: coefficient index out of range")
	// ErrDegree indicates a conversion whose degree does not match the sample count.
	ErrDegree = errors.New("interp: sample count does not match the requested degree")
)

// NewtonPolynomial is the unique polynomial of degree at most n-1 passing
// through n sample points, represented in Newton form by its divided-difference
// coefficients. Immutable once constructed and safe for concurrent reads.
type NewtonPolynomial struct {
	points []float64
	values []float64
	// Triangular divided-difference table stored as a single arena of
	// n(n+1)/2 entries, rows concatenated by order. The order-0 row holds
	// the raw values; entry i of the order-k row is the divided difference
	// over points[i..i+k].
	table []float64
}

// New creates a Newton polynomial through the given sample points and values.
// The sequences must have equal length at least 1 and the points must be
// pairwise distinct.
func New(points, values []float64) (*NewtonPolynomial, error) {
	if len(points) != len(values) {
		return nil, fmt.Errorf("%w: %d points, %d values", ErrLengthMismatch, len(points), len(values))
	}
	if len(points) == 0 {
		return nil, ErrEmptySample
	}
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			if points[i] == points[j] {
				return nil, fmt.Errorf("%w: %v", ErrDuplicatePoint, points[i])
			}
		}
	}

	n := len(points)
	p := &NewtonPolynomial{
		points: append([]float64(nil), points...),
		values: append([]float64(nil), values...),
		table:  make([]float64, n*(n+1)/2),
	}

	copy(p.row(0), p.values)
	for k := 1; k < n; k++ {
		prev := p.row(k - 1)
		row := p.row(k)
		for i := range row {
			row[i] = (prev[i+1] - prev[i]) / (p.points[i+k] - p.points[i])
		}
	}
	return p, nil
}

// row returns the order-k entries of the triangular table.
func (p *NewtonPolynomial) row(k int) []float64 {
	n := len(p.points)
	offset := k*n - k*(k-1)/2
	return p.table[offset : offset+n-k]
}

// Len returns the number of sample points.
func (p *NewtonPolynomial) Len() int {
	return len(p.points)
}

// Degree returns the maximum degree of the interpolating polynomial.
func (p *NewtonPolynomial) Degree() int {
	return len(p.points) - 1
}

// Points returns a copy of the sample points.
func (p *NewtonPolynomial) Points() []float64 {
	return append([]float64(nil), p.points...)
}

// Values returns a copy of the sample values.
func (p *NewtonPolynomial) Values() []float64 {
	return append([]float64(nil), p.values...)
}

// Coefficient returns the k-th Newton coefficient, the divided difference
// over the first k+1 sample points.
func (p *NewtonPolynomial) Coefficient(k int) (float64, error) {
	if k < 0 || k >= len(p.points) {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrCoefficient, k, len(p.points))
	}
	return p.row(k)[0], nil
}

// EvaluateAt evaluates the polynomial at x using nested multiplication over
// the Newton basis.
func (p *NewtonPolynomial) EvaluateAt(x float64) float64 {
	n := len(p.points)
	result := p.row(n - 1)[0]
	for k := n - 2; k >= 0; k-- {
		result = result*(x-p.points[k]) + p.row(k)[0]
	}
	return result
}

// ToQuadratic expands the Newton form into explicit quadratic coefficients.
// Valid only when the polynomial was built from exactly 3 sample points.
func (p *NewtonPolynomial) ToQuadratic() (QuadraticFunction, error) {
	if len(p.points) != 3 {
		return QuadraticFunction{}, fmt.Errorf("%w: quadratic requires 3 samples, have %d",
			ErrDegree, len(p.points))
	}
	c0 := p.row(0)[0]
	c1 := p.row(1)[0]
	c2 := p.row(2)[0]
	x0, x1 := p.points[0], p.points[1]

	return QuadraticFunction{
		A: c2,
		B: c1 - c2*(x0+x1),
		C: c0 - c1*x0 + c2*x0*x1,
	}, nil
}

// ToCubic expands the Newton form into explicit cubic coefficients.
// Valid only when the polynomial was built from exactly 4 sample points.
func (p *NewtonPolynomial) ToCubic() (CubicFunction, error) {
	if len(p.points) != 4 {
		return CubicFunction{}, fmt.Errorf("%w: cubic requires 4 samples, have %d",
			ErrDegree, len(p.points))
	}
	c0 := p.row(0)[0]
	c1 := p.row(1)[0]
	c2 := p.row(2)[0]
	c3 := p.row(3)[0]
	x0, x1, x2 := p.points[0], p.points[1], p.points[2]

	return CubicFunction{
		A: c3,
		B: c2 - c3*(x0+x1+x2),
		C: c1 - c2*(x0+x1) + c3*(x0*x1+x0*x2+x1*x2),
		D: c0 - c1*x0 + c2*x0*x1 - c3*x0*x1*x2,
	}, nil
}

// Equal reports whether two polynomials were built from element-wise equal
// point and value sequences. A nil other is never equal.
func (p *NewtonPolynomial) Equal(other *NewtonPolynomial) bool {
	if other == nil {
		return false
	}
	if len(p.points) != len(other.points) {
		return false
	}
	for i := range p.points {
		if p.points[i] != other.points[i] || p.values[i] != other.values[i] {
			return false
		}
	}
	return true
}

// Hash64 computes the xxHash64 of the defining point and value sequences.
// Polynomials that compare Equal produce identical hashes.
func (p *NewtonPolynomial) Hash64() uint64 {
	d := xxhash.New()
	buf := make([]byte, 8)
	for _, v := range p.points {
		binary.LittleEndian.PutUint64(buf, math.Float64bits(v))
		d.Write(buf)
	}
	for _, v := range p.values {
		binary.LittleEndian.PutUint64(buf, math.Float64bits(v))
		d.Write(buf)
	}
	return d.Sum64()
}
