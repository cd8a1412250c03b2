// Package picture transforms raster images with geometric and arithmetic
// operators.
//
// # Overview
//
// A Picture is a grid of integer RGB colors. Operators return new pictures
// and never modify their input, so they chain naturally:
//
//	inv := pic.Inverted()
//	rot, err := inv.Rotated(30)
//	if err != nil {
//	    return err
//	}
//	blurKernel, _ := picture.BoxKernel(3)
//	mean, _ := blurKernel.Normalised()
//	out, err := rot.Convoluted(mean)
//
// # Coordinate System
//
// Pixels are stored by grid index:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Geometric operators work in the centered plane:
//   - Origin at the picture's center
//   - X increases right
//   - Y increases up
//   - Rotation angles in degrees, positive turns clockwise as displayed
//
// Picture.Point and Picture.Grid convert between the two. Grid rounds
// halves up, and reads outside the picture return Black.
//
// # Geometry
//
// Matrix is a 2x2 linear map. Picture.Transformed sizes its result from
// the images of the two top corners and fills it by inverse mapping with
// nearest-pixel sampling. Kernel is a separate odd-sized weight grid used
// only by Picture.Convoluted.
//
// # Rounding
//
// Every float-to-channel conversion adds 0.01 before truncating, so values
// that are integers up to float error do not drop by one.
//
// # Concurrency
//
// Operators are single-threaded by default. SetWorkers lets operators fill
// rows on a pool of goroutines; results are identical either way.
package picture

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
