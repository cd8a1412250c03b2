package picture

import (
	"iter"
	"math"
	"strings"
)

// Picture is a grid of colors addressed two ways: by grid index (x, y)
// with the origin at the top-left corner and y growing downward, and by
// Point in the centered plane with the origin at the picture's center
// and Y growing upward.
//
// The radii relating the two systems are fixed when the picture is
// created. Operators never modify their receiver; each returns a new
// Picture.
type Picture struct {
	width  int
	height int
	pix    []Color // row-major, width*height entries

	// hr and vr are the horizontal and vertical radii: the distance from
	// the center to the middle of the outermost column and row.
	hr float64
	vr float64
}

// maxPixels bounds the area of pictures produced by Transformed.
const maxPixels = 1 << 27

// New creates a black picture with the given dimensions.
// Negative dimensions are treated as zero.
func New(width, height int) *Picture {
	width = max(width, 0)
	height = max(height, 0)
	return &Picture{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
		hr:     float64(width-1) / 2,
		vr:     float64(height-1) / 2,
	}
}

// NewFromPixels creates a picture and places every pixel of the sequence
// at the grid position of its Pos. Pixels that land outside the picture
// are dropped.
func NewFromPixels(width, height int, pixels iter.Seq[Pixel]) *Picture {
	p := New(width, height)
	for px := range pixels {
		x, y := p.Grid(px.Pos)
		p.Set(x, y, px.Color)
	}
	return p
}

// Width returns the width of the picture.
func (p *Picture) Width() int {
	return p.width
}

// Height returns the height of the picture.
func (p *Picture) Height() int {
	return p.height
}

// Contains reports whether (x, y) lies within the picture.
func (p *Picture) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < p.width && y < p.height
}

// At returns the color at grid position (x, y).
// Positions outside the picture read as Black.
func (p *Picture) At(x, y int) Color {
	if !p.Contains(x, y) {
		return Black
	}
	return p.pix[y*p.width+x]
}

// Set sets the color at grid position (x, y).
// Positions outside the picture are ignored.
//
// Set is meant for building a picture; operators never call it on a
// picture they did not allocate.
func (p *Picture) Set(x, y int, c Color) {
	if !p.Contains(x, y) {
		return
	}
	p.pix[y*p.width+x] = c
}

// Point converts grid position (x, y) to the centered plane.
func (p *Picture) Point(x, y int) Point {
	return Point{
		X: float64(x) - p.hr,
		Y: p.vr - float64(y),
	}
}

// Grid converts a point in the centered plane to the nearest grid
// position, rounding halves up.
func (p *Picture) Grid(pt Point) (x, y int) {
	return int(math.Floor(pt.X + p.hr + 0.5)), int(math.Floor(p.vr - pt.Y + 0.5))
}

// AtPoint returns the color nearest to pt, or Black outside the picture.
func (p *Picture) AtPoint(pt Point) Color {
	return p.At(p.Grid(pt))
}

// Pixels returns every pixel in row-major order (y outer, x inner).
// The sequence is lazy; ranging over it again recomputes it.
func (p *Picture) Pixels() iter.Seq[Pixel] {
	return func(yield func(Pixel) bool) {
		for y := range p.height {
			for x := range p.width {
				if !yield(Pixel{Pos: p.Point(x, y), Color: p.pix[y*p.width+x]}) {
					return
				}
			}
		}
	}
}

// Clone returns a copy of the picture.
func (p *Picture) Clone() *Picture {
	c := New(p.width, p.height)
	copy(c.pix, p.pix)
	return c
}

// Equal reports whether two pictures have the same size and colors.
func (p *Picture) Equal(o *Picture) bool {
	if p == nil || o == nil {
		return p == o
	}
	if p.width != o.width || p.height != o.height {
		return false
	}
	for i, c := range p.pix {
		if o.pix[i] != c {
			return false
		}
	}
	return true
}

// String formats the picture one row per line as (r,g,b) triples.
func (p *Picture) String() string {
	var sb strings.Builder
	for y := range p.height {
		for x := range p.width {
			sb.WriteString(p.pix[y*p.width+x].String())
		}
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')
	return sb.String()
}
