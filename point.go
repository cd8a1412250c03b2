package picture

import "strconv"

// Point represents a location in the centered plane of a picture.
// The origin is the picture's center, X grows to the right and
// Y grows upward (opposite to the row index).
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Vec returns the point as a 2x1 column vector.
func (p Point) Vec() [2]float64 {
	return [2]float64{p.X, p.Y}
}

// PointFromVec packs a 2x1 column vector back into a point.
func PointFromVec(v [2]float64) Point {
	return Point{X: v[0], Y: v[1]}
}

// String formats the point as (x, y).
func (p Point) String() string {
	return "(" + strconv.FormatFloat(p.X, 'g', -1, 64) + ", " + strconv.FormatFloat(p.Y, 'g', -1, 64) + ")"
}
