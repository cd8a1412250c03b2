package picture

// Pixel pairs a position in the centered plane with its color.
// Pixels are produced while iterating a Picture and are not stored.
type Pixel struct {
	Pos   Point
	Color Color
}
