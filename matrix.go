package picture

import "math"

// Matrix represents a 2x2 linear transformation in row-major order:
//
//	| a  b |
//	| c  d |
//
// Applied to a point (x, y) it gives:
//
//	x' = a*x + b*y
//	y' = c*x + d*y
//
// There is no translation component: all transforms act around the
// picture's center.
type Matrix struct {
	A, B float64
	C, D float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0,
		C: 0, D: 1,
	}
}

// Rotation creates a rotation matrix for an angle in degrees.
//
// The angle is negated before building the usual rotation matrix. Pictures
// store rows top-down while the centered plane has Y pointing up, so the
// negation makes a positive angle appear clockwise once the picture is saved.
func Rotation(degrees float64) Matrix {
	theta := -degrees * math.Pi / 180
	cos := math.Cos(theta)
	sin := math.Sin(theta)
	return Matrix{
		A: cos, B: -sin,
		C: sin, D: cos,
	}
}

// FlipH mirrors the X axis (left becomes right).
func FlipH() Matrix {
	return Matrix{
		A: -1, B: 0,
		C: 0, D: 1,
	}
}

// FlipV mirrors the Y axis (top becomes bottom).
func FlipV() Matrix {
	return Matrix{
		A: 1, B: 0,
		C: 0, D: -1,
	}
}

// MatrixFromRows builds a Matrix from a row-major slice of rows.
// Returns ErrUnsupportedShape unless rows is exactly 2x2.
func MatrixFromRows(rows [][]float64) (Matrix, error) {
	if len(rows) != 2 || len(rows[0]) != 2 || len(rows[1]) != 2 {
		return Matrix{}, ErrUnsupportedShape
	}
	return Matrix{
		A: rows[0][0], B: rows[0][1],
		C: rows[1][0], D: rows[1][1],
	}, nil
}

// Multiply multiplies two matrices (m * other).
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.C,
		B: m.A*other.B + m.B*other.D,
		C: m.C*other.A + m.D*other.C,
		D: m.C*other.B + m.D*other.D,
	}
}

// Apply multiplies the matrix by p taken as a 2x1 column vector.
func (m Matrix) Apply(p Point) Point {
	v := p.Vec()
	return PointFromVec([2]float64{
		m.A*v[0] + m.B*v[1],
		m.C*v[0] + m.D*v[1],
	})
}

// Scale multiplies every element by k.
func (m Matrix) Scale(k float64) Matrix {
	return Matrix{
		A: m.A * k, B: m.B * k,
		C: m.C * k, D: m.D * k,
	}
}

// Det returns the determinant ad - bc.
func (m Matrix) Det() float64 {
	return m.A*m.D - m.B*m.C
}

// Sum returns the sum of all elements.
func (m Matrix) Sum() float64 {
	return m.A + m.B + m.C + m.D
}

// Invert returns the inverse matrix, adj(m) * (1/det).
// Returns ErrSingularMatrix when the determinant is zero or the result
// would not be finite.
func (m Matrix) Invert() (Matrix, error) {
	det := m.Det()
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return Matrix{}, ErrSingularMatrix
	}

	inv := Matrix{
		A: m.D, B: -m.B,
		C: -m.C, D: m.A,
	}.Scale(1 / det)

	if !inv.finite() {
		return Matrix{}, ErrSingularMatrix
	}
	return inv, nil
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 && m.D == 1
}

func (m Matrix) finite() bool {
	for _, v := range [...]float64{m.A, m.B, m.C, m.D} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
