package picture

import (
	"iter"
	"slices"
)

// Map returns a new picture of the same size built from fn applied to
// every pixel of p. Each returned pixel is placed at the grid position of
// its Pos, so fn may move pixels as well as recolor them.
func (p *Picture) Map(fn func(Pixel) Pixel) *Picture {
	return NewFromPixels(p.width, p.height, func(yield func(Pixel) bool) {
		for px := range p.Pixels() {
			if !yield(fn(px)) {
				return
			}
		}
	})
}

// MapColor returns a new picture with fn applied to every color.
func (p *Picture) MapColor(fn func(Color) Color) *Picture {
	return p.Map(func(px Pixel) Pixel {
		return Pixel{Pos: px.Pos, Color: fn(px.Color)}
	})
}

// Inverted returns the color negative of p.
func (p *Picture) Inverted() *Picture {
	return p.MapColor(Color.Inverted)
}

// Grayscaled returns p with every color reduced to its channel mean.
func (p *Picture) Grayscaled() *Picture {
	return p.MapColor(Color.Grayscaled)
}

// Add returns the pixel-wise sum of p and o, sized like p.
// Where o is smaller than p its missing pixels read as Black.
func (p *Picture) Add(o *Picture) *Picture {
	dst := New(p.width, p.height)
	rows(p.height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := range p.width {
				i := y*p.width + x
				dst.pix[i] = p.pix[i].Add(o.At(x, y))
			}
		}
	})
	return dst
}

// Multiply returns p with every color scaled by k.
func (p *Picture) Multiply(k float64) *Picture {
	dst := New(p.width, p.height)
	rows(p.height, func(y0, y1 int) {
		for i := y0 * p.width; i < y1*p.width; i++ {
			dst.pix[i] = p.pix[i].Multiply(k)
		}
	})
	return dst
}

// Blended returns the pixel-wise average of p and every picture in
// others, sized like p. The sequence is consumed exactly once.
//
// Channel sums are scaled by 1/n with the epsilon-truncation rule, so
// blending a picture with copies of itself returns it unchanged.
func (p *Picture) Blended(others iter.Seq[*Picture]) *Picture {
	var pics []*Picture
	if others != nil {
		pics = slices.Collect(others)
	}
	n := len(pics) + 1
	scale := 1 / float64(n)

	for i, o := range pics {
		if o.width != p.width || o.height != p.height {
			Logger().Warn("picture: blend input size differs",
				"index", i,
				"want", [2]int{p.width, p.height},
				"got", [2]int{o.width, o.height})
		}
	}

	dst := New(p.width, p.height)
	rows(p.height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := range p.width {
				total := p.pix[y*p.width+x]
				for _, o := range pics {
					total = total.Add(o.At(x, y))
				}
				dst.pix[y*p.width+x] = total.Multiply(scale)
			}
		}
	})

	Logger().Debug("picture: blended", "pictures", n)
	return dst
}
