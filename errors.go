package picture

import "errors"

// Sentinel errors for the picture package.
var (
	// ErrShapeMismatch is returned when kernel dimensions are incompatible
	// with a multiplication or with the supplied values.
	ErrShapeMismatch = errors.New("picture: matrix shape mismatch")

	// ErrUnsupportedShape is returned when a transform matrix is built from
	// anything other than 2x2 values.
	ErrUnsupportedShape = errors.New("picture: only 2x2 transform matrices are supported")

	// ErrSingularMatrix is returned when a transform has no inverse.
	ErrSingularMatrix = errors.New("picture: matrix is singular")

	// ErrEvenKernel is returned when a kernel has no center cell.
	ErrEvenKernel = errors.New("picture: kernel dimensions must be odd")

	// ErrZeroSum is returned when normalising a kernel whose weights sum to zero.
	ErrZeroSum = errors.New("picture: kernel weights sum to zero")

	// ErrTooLarge is returned when a transform would produce a picture
	// too large to allocate.
	ErrTooLarge = errors.New("picture: transformed picture too large")

	// ErrNilKernel is returned when convolving with a nil kernel.
	ErrNilKernel = errors.New("picture: nil kernel")
)
