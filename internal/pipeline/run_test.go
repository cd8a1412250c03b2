package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"github.com/gogpu/picture"
)

func filled(w, h int, c picture.Color) *picture.Picture {
	p := picture.New(w, h)
	for y := range h {
		for x := range w {
			p.Set(x, y, c)
		}
	}
	return p
}

func gradient(w, h int) *picture.Picture {
	p := picture.New(w, h)
	for y := range h {
		for x := range w {
			p.Set(x, y, picture.RGB(x*20, y*20, x+y))
		}
	}
	return p
}

// memLoader serves pictures from a map.
func memLoader(files map[string]*picture.Picture) Loader {
	return func(path string) (*picture.Picture, error) {
		p, ok := files[path]
		if !ok {
			return nil, fmt.Errorf("open %s: %w", path, fs.ErrNotExist)
		}
		return p, nil
	}
}

func mustRun(t *testing.T, src *picture.Picture, line string, load Loader) *picture.Picture {
	t.Helper()
	cmds, err := Parse(strings.Fields(line))
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", line, err)
	}
	out, err := Run(context.Background(), src, cmds, load)
	if err != nil {
		t.Fatalf("Run(%q) error = %v", line, err)
	}
	return out
}

func TestRun_Identities(t *testing.T) {
	src := gradient(5, 3)
	for _, line := range []string{
		"",
		"matrix 1 0 0 1",
		"flip H flip H",
		"flip V flip V",
		"invert invert",
		"rotate 90 rotate 270",
		"rotate 180 flip H flip V",
	} {
		t.Run(line, func(t *testing.T) {
			if got := mustRun(t, src, line, nil); !got.Equal(src) {
				t.Errorf("Run(%q) =\n%v\nwant\n%v", line, got, src)
			}
		})
	}
}

func TestRun_Colors(t *testing.T) {
	red := filled(3, 3, picture.RGB(255, 0, 0))

	tests := []struct {
		line string
		want picture.Color
	}{
		{"invert", picture.RGB(0, 255, 255)},
		{"grayscale", picture.RGB(85, 85, 85)},
		{"invert grayscale", picture.RGB(170, 170, 170)},
		{"blur", picture.RGB(255, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got := mustRun(t, red, tt.line, nil)
			if want := filled(3, 3, tt.want); !got.Equal(want) {
				t.Errorf("Run(%q) =\n%v\nwant\n%v", tt.line, got, want)
			}
		})
	}
}

func TestRun_RotateSwapsSize(t *testing.T) {
	got := mustRun(t, gradient(3, 2), "rotate 90", nil)
	if got.Width() != 2 || got.Height() != 3 {
		t.Errorf("rotate 90 size = (%d, %d), want (2, 3)", got.Width(), got.Height())
	}
}

func TestRun_Blend(t *testing.T) {
	src := filled(2, 2, picture.RGB(0, 0, 0))
	load := memLoader(map[string]*picture.Picture{
		"a.png": filled(2, 2, picture.RGB(90, 90, 90)),
		"b.png": filled(2, 2, picture.RGB(180, 0, 30)),
	})

	got := mustRun(t, src, "blend a.png b.png", load)
	if want := filled(2, 2, picture.RGB(90, 30, 40)); !got.Equal(want) {
		t.Errorf("blend =\n%v\nwant\n%v", got, want)
	}
}

func TestRun_BlendMissingFile(t *testing.T) {
	load := memLoader(map[string]*picture.Picture{"a.png": filled(2, 2, picture.Black)})
	cmds, err := Parse([]string{"invert", "blend", "a.png", "missing.png"})
	if err != nil {
		t.Fatal(err)
	}

	out, err := Run(context.Background(), filled(2, 2, picture.Black), cmds, load)
	if out != nil {
		t.Error("Run() returned a picture alongside an error")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Run() error = %v, want fs.ErrNotExist", err)
	}
	if !strings.Contains(err.Error(), "step 2") {
		t.Errorf("Run() error = %q, want it to name step 2", err)
	}
}

func TestRun_SingularMatrix(t *testing.T) {
	cmds := []Command{Invert{}, Transform{Matrix: picture.Matrix{A: 1, B: 2, C: 2, D: 4}}}
	_, err := Run(context.Background(), gradient(3, 3), cmds, nil)
	if !errors.Is(err, picture.ErrSingularMatrix) {
		t.Errorf("Run() error = %v, want ErrSingularMatrix", err)
	}
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, gradient(3, 3), []Command{Invert{}}, nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}

func TestRun_DoesNotModifySource(t *testing.T) {
	src := gradient(4, 4)
	want := src.Clone()
	mustRun(t, src, "invert rotate 90 blur grayscale", nil)
	if !src.Equal(want) {
		t.Error("Run() modified the source picture")
	}
}
