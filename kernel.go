package picture

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Kernel is a convolution kernel: a grid of weights with odd width and
// odd height, so that it always has a center cell.
//
// Kernels are immutable; every operation returns a new Kernel.
type Kernel struct {
	m *mat.Dense
}

// NewKernel creates a rows x cols kernel from row-major values.
//
// Returns ErrEvenKernel if either dimension is not a positive odd number
// and ErrShapeMismatch if len(values) != rows*cols.
func NewKernel(rows, cols int, values []float64) (*Kernel, error) {
	if rows <= 0 || cols <= 0 || rows%2 == 0 || cols%2 == 0 {
		return nil, ErrEvenKernel
	}
	if len(values) != rows*cols {
		return nil, ErrShapeMismatch
	}
	data := make([]float64, len(values))
	copy(data, values)
	return &Kernel{m: mat.NewDense(rows, cols, data)}, nil
}

// BoxKernel returns a size x size kernel of ones.
// Normalise it to get an averaging (mean blur) kernel.
func BoxKernel(size int) (*Kernel, error) {
	if size <= 0 || size%2 == 0 {
		return nil, ErrEvenKernel
	}
	values := make([]float64, size*size)
	for i := range values {
		values[i] = 1
	}
	return NewKernel(size, size, values)
}

// Dims returns the number of rows and columns of the kernel.
func (k *Kernel) Dims() (rows, cols int) {
	return k.m.Dims()
}

// At returns the weight at row r, column c.
func (k *Kernel) At(r, c int) float64 {
	return k.m.At(r, c)
}

// Multiply returns the matrix product k * other.
// The result has k's rows and other's columns.
// Returns ErrShapeMismatch if k's column count differs from other's row count.
//
// Multiplying a column kernel by a row kernel yields the full kernel of a
// separable filter.
func (k *Kernel) Multiply(other *Kernel) (*Kernel, error) {
	_, kc := k.m.Dims()
	or, _ := other.m.Dims()
	if kc != or {
		return nil, ErrShapeMismatch
	}
	var out mat.Dense
	out.Mul(k.m, other.m)
	return &Kernel{m: &out}, nil
}

// Scale multiplies every weight by s.
func (k *Kernel) Scale(s float64) *Kernel {
	var out mat.Dense
	out.Scale(s, k.m)
	return &Kernel{m: &out}
}

// Sum returns the sum of all weights.
func (k *Kernel) Sum() float64 {
	return mat.Sum(k.m)
}

// Normalised scales the kernel so that its weights sum to 1.
// Returns ErrZeroSum if the weights sum to zero.
func (k *Kernel) Normalised() (*Kernel, error) {
	sum := k.Sum()
	if sum == 0 || math.IsNaN(sum) {
		return nil, ErrZeroSum
	}
	return k.Scale(1 / sum), nil
}
