// Package codec loads and saves pictures as image files.
//
// Decoding auto-detects PNG, JPEG and GIF (standard library) and BMP, TIFF
// and WebP (golang.org/x/image). Encoding picks the format from the file
// extension; WebP is decode-only.
package codec

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // registers the WebP decoder

	"github.com/gogpu/picture"
)

// ErrUnsupportedFormat is returned when a format cannot be encoded.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Error records a failed codec operation and the file involved.
type Error struct {
	Op   string // "open", "decode", "encode", "write"
	Path string // empty for in-memory operations
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return "codec: " + e.Op + ": " + e.Err.Error()
	}
	return "codec: " + e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// Format identifies an image file format.
type Format string

// Supported formats.
const (
	PNG  Format = "png"
	JPEG Format = "jpeg"
	GIF  Format = "gif"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
	WebP Format = "webp"
)

// FormatFromPath returns the format implied by the file extension.
// Unknown or missing extensions default to PNG.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return JPEG
	case ".gif":
		return GIF
	case ".bmp":
		return BMP
	case ".tif", ".tiff":
		return TIFF
	case ".webp":
		return WebP
	default:
		return PNG
	}
}

// Options controls encoding.
type Options struct {
	// JPEGQuality is the JPEG quality, clamped to 1..100.
	JPEGQuality int
}

// DefaultOptions returns the default encoding options.
func DefaultOptions() Options {
	return Options{JPEGQuality: 90}
}

// Load reads and decodes the image file at path.
func Load(path string) (*picture.Picture, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, &Error{Op: "open", Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, &Error{Op: "decode", Path: path, Err: err}
	}
	p := FromImage(img)
	picture.Logger().Debug("codec: loaded", "path", path, "format", format,
		"width", p.Width(), "height", p.Height())
	return p, nil
}

// Decode decodes an image from r, auto-detecting the format.
// It returns the picture and the detected format name.
func Decode(r io.Reader) (*picture.Picture, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", &Error{Op: "decode", Err: err}
	}
	return FromImage(img), format, nil
}

// Save encodes p in the format implied by path and writes it there.
// The image is fully encoded before the file is created, so a failed
// encode leaves no file behind.
func Save(p *picture.Picture, path string, opts Options) error {
	var buf bytes.Buffer
	if err := Encode(&buf, p, FormatFromPath(path), opts); err != nil {
		var ce *Error
		if errors.As(err, &ce) {
			ce.Path = path
		}
		return err
	}
	if err := os.WriteFile(filepath.Clean(path), buf.Bytes(), 0o644); err != nil {
		return &Error{Op: "write", Path: path, Err: err}
	}
	picture.Logger().Debug("codec: saved", "path", path, "bytes", buf.Len())
	return nil
}

// Encode writes p to w in the given format.
func Encode(w io.Writer, p *picture.Picture, format Format, opts Options) error {
	img := ToImage(p)

	var err error
	switch format {
	case PNG:
		err = png.Encode(w, img)
	case JPEG:
		q := min(max(opts.JPEGQuality, 1), 100)
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: q})
	case GIF:
		err = gif.Encode(w, img, nil)
	case BMP:
		err = bmp.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	default:
		err = fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return &Error{Op: "encode", Err: err}
	}
	return nil
}

// FromImage converts a standard library image to a Picture.
// Alpha is discarded; colors are taken non-premultiplied.
func FromImage(img image.Image) *picture.Picture {
	b := img.Bounds()
	p := picture.New(b.Dx(), b.Dy())

	// Fast path for NRGBA images
	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := range b.Dy() {
			row := nrgba.Pix[y*nrgba.Stride:]
			for x := range b.Dx() {
				p.Set(x, y, picture.RGB(int(row[x*4]), int(row[x*4+1]), int(row[x*4+2])))
			}
		}
		return p
	}

	for y := range b.Dy() {
		for x := range b.Dx() {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			p.Set(x, y, picture.RGB(int(c.R), int(c.G), int(c.B)))
		}
	}
	return p
}

// ToImage converts a Picture to an opaque NRGBA image.
// Channels outside 0..255 keep only their low 8 bits.
func ToImage(p *picture.Picture) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.Width(), p.Height()))
	for y := range p.Height() {
		row := img.Pix[y*img.Stride:]
		for x := range p.Width() {
			c := p.At(x, y)
			row[x*4] = uint8(c.R & 0xff)
			row[x*4+1] = uint8(c.G & 0xff)
			row[x*4+2] = uint8(c.B & 0xff)
			row[x*4+3] = 0xff
		}
	}
	return img
}
