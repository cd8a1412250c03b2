// Package pipeline parses a command list and applies it to a picture.
package pipeline

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/gogpu/picture"
)

// Loader loads the picture stored at path.
type Loader func(path string) (*picture.Picture, error)

// Command is one parsed pipeline step.
type Command interface {
	// Name returns the command keyword.
	Name() string

	// Apply runs the step on p. Loader is used by steps that read
	// further pictures.
	Apply(p *picture.Picture, load Loader) (*picture.Picture, error)

	fmt.Stringer
}

// Invert negates every color.
type Invert struct{}

func (Invert) Name() string   { return "invert" }
func (Invert) String() string { return "invert" }

func (Invert) Apply(p *picture.Picture, _ Loader) (*picture.Picture, error) {
	return p.Inverted(), nil
}

// Grayscale reduces every color to its channel mean.
type Grayscale struct{}

func (Grayscale) Name() string   { return "grayscale" }
func (Grayscale) String() string { return "grayscale" }

func (Grayscale) Apply(p *picture.Picture, _ Loader) (*picture.Picture, error) {
	return p.Grayscaled(), nil
}

// Rotate turns the picture clockwise by Degrees.
type Rotate struct {
	Degrees float64
}

func (Rotate) Name() string { return "rotate" }

func (c Rotate) String() string {
	return "rotate " + strconv.FormatFloat(c.Degrees, 'g', -1, 64)
}

func (c Rotate) Apply(p *picture.Picture, _ Loader) (*picture.Picture, error) {
	return p.Rotated(c.Degrees)
}

// Flip mirrors the picture along Axis.
type Flip struct {
	Axis picture.Axis
}

func (Flip) Name() string     { return "flip" }
func (c Flip) String() string { return "flip " + c.Axis.String() }

func (c Flip) Apply(p *picture.Picture, _ Loader) (*picture.Picture, error) {
	return p.Flipped(c.Axis)
}

// Transform applies an arbitrary 2x2 matrix.
type Transform struct {
	Matrix picture.Matrix
}

func (Transform) Name() string { return "matrix" }

func (c Transform) String() string {
	m := c.Matrix
	return "matrix " + strings.Join([]string{
		strconv.FormatFloat(m.A, 'g', -1, 64),
		strconv.FormatFloat(m.B, 'g', -1, 64),
		strconv.FormatFloat(m.C, 'g', -1, 64),
		strconv.FormatFloat(m.D, 'g', -1, 64),
	}, " ")
}

func (c Transform) Apply(p *picture.Picture, _ Loader) (*picture.Picture, error) {
	return p.Transformed(c.Matrix)
}

// Blur applies a 3x3 mean filter.
type Blur struct{}

func (Blur) Name() string   { return "blur" }
func (Blur) String() string { return "blur" }

// meanKernel is the normalised 3x3 box kernel used by Blur.
var meanKernel = sync.OnceValues(func() (*picture.Kernel, error) {
	box, err := picture.BoxKernel(3)
	if err != nil {
		return nil, err
	}
	return box.Normalised()
})

func (Blur) Apply(p *picture.Picture, _ Loader) (*picture.Picture, error) {
	k, err := meanKernel()
	if err != nil {
		return nil, err
	}
	return p.Convoluted(k)
}

// Blend averages the picture with the pictures stored at Paths.
type Blend struct {
	Paths []string
}

func (Blend) Name() string { return "blend" }

func (c Blend) String() string {
	return strings.Join(append([]string{"blend"}, c.Paths...), " ")
}

// Apply loads every path before blending, so a missing file fails the
// step without producing a partial result.
func (c Blend) Apply(p *picture.Picture, load Loader) (*picture.Picture, error) {
	others := make([]*picture.Picture, 0, len(c.Paths))
	for _, path := range c.Paths {
		o, err := load(path)
		if err != nil {
			return nil, err
		}
		others = append(others, o)
	}
	return p.Blended(slices.Values(others)), nil
}
