package picture

import (
	"fmt"
	"math"
)

// Axis selects the mirror axis for Flipped.
type Axis int

const (
	// Horizontal mirrors left and right.
	Horizontal Axis = iota
	// Vertical mirrors top and bottom.
	Vertical
)

// String returns "H" or "V".
func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "H"
	case Vertical:
		return "V"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Transformed returns the image of p under m, resampled by inverse mapping.
//
// The new size comes from where m sends the two top corners of p: the
// larger absolute coordinate of the two gives each new radius. This bounds
// rotations and flips, which are symmetric about the center, but can clip
// the result of a general linear map.
//
// Every destination pixel is mapped back through the inverse of m and takes
// the color of the nearest source pixel, or Black if that falls outside p.
// Returns ErrSingularMatrix if m has no inverse and ErrTooLarge if the
// result would not fit in maxPixels.
func (p *Picture) Transformed(m Matrix) (*Picture, error) {
	if m.IsIdentity() {
		return p.Clone(), nil
	}
	inv, err := m.Invert()
	if err != nil {
		return nil, err
	}

	ntl := m.Apply(p.Point(0, 0))
	ntr := m.Apply(p.Point(p.width-1, 0))

	hr := math.Max(math.Abs(ntl.X), math.Abs(ntr.X))
	vr := math.Max(math.Abs(ntl.Y), math.Abs(ntr.Y))

	w, h := 0, 0
	if p.width > 0 && p.height > 0 {
		fw := math.Floor(2*hr + 1)
		fh := math.Floor(2*vr + 1)
		if !(fw*fh <= maxPixels) {
			return nil, fmt.Errorf("%w: %gx%g", ErrTooLarge, fw, fh)
		}
		w, h = int(fw), int(fh)
	}
	dst := New(w, h)
	w, h = dst.width, dst.height

	rows(h, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			row := dst.pix[y*w : (y+1)*w]
			for x := range row {
				row[x] = p.AtPoint(inv.Apply(dst.Point(x, y)))
			}
		}
	})

	Logger().Debug("picture: transformed",
		"matrix", m,
		"from", [2]int{p.width, p.height},
		"to", [2]int{w, h})
	return dst, nil
}

// Rotated returns p rotated by angle degrees, clockwise as displayed.
func (p *Picture) Rotated(degrees float64) (*Picture, error) {
	return p.Transformed(Rotation(degrees))
}

// Flipped returns p mirrored along the given axis.
func (p *Picture) Flipped(axis Axis) (*Picture, error) {
	switch axis {
	case Horizontal:
		return p.Transformed(FlipH())
	case Vertical:
		return p.Transformed(FlipV())
	default:
		return nil, fmt.Errorf("picture: unknown flip axis %v", axis)
	}
}

// Convoluted returns p convolved with k.
//
// Only pixels whose whole neighbourhood lies inside p are computed; a
// border of half the kernel size on each side keeps the source colors.
// Each channel is accumulated in float64 and truncated as floor(v + 0.01).
func (p *Picture) Convoluted(k *Kernel) (*Picture, error) {
	if k == nil || k.m == nil {
		return nil, ErrNilKernel
	}
	kh, kw := k.Dims()
	if kh%2 == 0 || kw%2 == 0 {
		return nil, ErrEvenKernel
	}
	hkr := (kw - 1) / 2
	vkr := (kh - 1) / 2

	dst := p.Clone()

	nx := p.width - kw + 1
	ny := p.height - kh + 1
	if nx <= 0 || ny <= 0 {
		return dst, nil
	}

	weights := make([]float64, kh*kw)
	for ky := range kh {
		for kx := range kw {
			weights[ky*kw+kx] = k.At(ky, kx)
		}
	}

	rows(ny, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := range nx {
				var r, g, b float64
				for ky := range kh {
					src := p.pix[(y+ky)*p.width+x : (y+ky)*p.width+x+kw]
					for kx, c := range src {
						w := weights[ky*kw+kx]
						r += w * float64(c.R)
						g += w * float64(c.G)
						b += w * float64(c.B)
					}
				}
				dst.pix[(y+vkr)*p.width+x+hkr] = Color{R: truncate(r), G: truncate(g), B: truncate(b)}
			}
		}
	})

	Logger().Debug("picture: convoluted", "kernel", [2]int{kh, kw}, "size", [2]int{p.width, p.height})
	return dst, nil
}
