package picture

import (
	"math"
	"strconv"
)

// Color represents an RGB color with integer channels.
// Channels are nominally in the range [0, 255] but are not clamped:
// arithmetic may leave a channel out of range, and the codec truncates
// to 8 bits when the picture is written.
type Color struct {
	R, G, B int
}

// RGB creates a color from its red, green and blue channels.
func RGB(r, g, b int) Color {
	return Color{R: r, G: g, B: b}
}

// Black is returned for reads outside a picture.
var Black = Color{}

// colorEpsilon lifts float results that should be exact integers but land
// just below them before they are truncated.
const colorEpsilon = 0.01

// Add returns the component-wise sum of two colors.
func (c Color) Add(o Color) Color {
	return Color{
		R: c.R + o.R,
		G: c.G + o.G,
		B: c.B + o.B,
	}
}

// Multiply scales every channel by k, truncating as floor(k*c + 0.01).
func (c Color) Multiply(k float64) Color {
	return Color{
		R: truncate(k * float64(c.R)),
		G: truncate(k * float64(c.G)),
		B: truncate(k * float64(c.B)),
	}
}

// Inverted returns the negative of the color.
func (c Color) Inverted() Color {
	return Color{
		R: 255 - c.R,
		G: 255 - c.G,
		B: 255 - c.B,
	}
}

// Grayscaled returns a gray color whose channels are the integer mean of c.
func (c Color) Grayscaled() Color {
	avg := (c.R + c.G + c.B) / 3
	return Color{R: avg, G: avg, B: avg}
}

// String formats the color as (r,g,b).
func (c Color) String() string {
	return "(" + strconv.Itoa(c.R) + "," + strconv.Itoa(c.G) + "," + strconv.Itoa(c.B) + ")"
}

// truncate applies the epsilon-truncation rule to a channel value.
func truncate(v float64) int {
	return int(math.Floor(v + colorEpsilon))
}
