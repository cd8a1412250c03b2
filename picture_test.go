package picture

import "testing"

// newTestPicture creates a picture whose colors come from fn.
func newTestPicture(w, h int, fn func(x, y int) Color) *Picture {
	p := New(w, h)
	for y := range h {
		for x := range w {
			p.Set(x, y, fn(x, y))
		}
	}
	return p
}

// filled creates a picture of a single color.
func filled(w, h int, c Color) *Picture {
	return newTestPicture(w, h, func(int, int) Color { return c })
}

// gradient creates an asymmetric picture where every pixel is distinct.
func gradient(w, h int) *Picture {
	return newTestPicture(w, h, func(x, y int) Color {
		return RGB(x*10, y*10, x+y*w)
	})
}

func TestNew(t *testing.T) {
	p := New(4, 3)
	if p.Width() != 4 || p.Height() != 3 {
		t.Errorf("New(4, 3) size = (%d, %d)", p.Width(), p.Height())
	}
	for px := range p.Pixels() {
		if px.Color != Black {
			t.Fatalf("New() pixel %v = %v, want black", px.Pos, px.Color)
		}
	}

	empty := New(-1, 5)
	if empty.Width() != 0 || empty.Height() != 5 {
		t.Errorf("New(-1, 5) size = (%d, %d), want (0, 5)", empty.Width(), empty.Height())
	}
}

func TestPicture_Point(t *testing.T) {
	tests := []struct {
		w, h int
		x, y int
		want Point
	}{
		{3, 3, 0, 0, Pt(-1, 1)},
		{3, 3, 1, 1, Pt(0, 0)},
		{3, 3, 2, 2, Pt(1, -1)},
		{4, 2, 0, 0, Pt(-1.5, 0.5)},
		{4, 2, 3, 1, Pt(1.5, -0.5)},
		{1, 1, 0, 0, Pt(0, 0)},
	}
	for _, tt := range tests {
		p := New(tt.w, tt.h)
		if got := p.Point(tt.x, tt.y); got != tt.want {
			t.Errorf("New(%d, %d).Point(%d, %d) = %v, want %v", tt.w, tt.h, tt.x, tt.y, got, tt.want)
		}
	}
}

func TestPicture_GridRoundTrip(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {3, 3}, {4, 2}, {5, 8}} {
		p := New(size[0], size[1])
		for y := range p.Height() {
			for x := range p.Width() {
				gx, gy := p.Grid(p.Point(x, y))
				if gx != x || gy != y {
					t.Errorf("%dx%d: Grid(Point(%d, %d)) = (%d, %d)", size[0], size[1], x, y, gx, gy)
				}
			}
		}
	}
}

func TestPicture_GridRounding(t *testing.T) {
	p := New(3, 3) // radii 1, 1
	tests := []struct {
		pt     Point
		gx, gy int
	}{
		{Pt(0.4, 0.4), 1, 1},
		{Pt(0.5, -0.5), 2, 2}, // halves round up
		{Pt(-0.5, 0.5), 1, 1}, // halves round up
		{Pt(-1.6, 0), -1, 1},  // floor, not truncation toward zero
		{Pt(0, 1.6), 1, -1},
	}
	for _, tt := range tests {
		gx, gy := p.Grid(tt.pt)
		if gx != tt.gx || gy != tt.gy {
			t.Errorf("Grid(%v) = (%d, %d), want (%d, %d)", tt.pt, gx, gy, tt.gx, tt.gy)
		}
	}
}

func TestPicture_OutOfBounds(t *testing.T) {
	p := filled(2, 2, RGB(9, 9, 9))

	for _, xy := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		if got := p.At(xy[0], xy[1]); got != Black {
			t.Errorf("At(%d, %d) = %v, want black", xy[0], xy[1], got)
		}
	}
	if got := p.AtPoint(Pt(10, 10)); got != Black {
		t.Errorf("AtPoint(10, 10) = %v, want black", got)
	}

	// Writes outside the picture are ignored.
	p.Set(5, 5, RGB(1, 1, 1))
	if !p.Equal(filled(2, 2, RGB(9, 9, 9))) {
		t.Error("Set outside the picture changed it")
	}
}

func TestPicture_PixelsOrder(t *testing.T) {
	p := gradient(3, 2)

	var got []Pixel
	for px := range p.Pixels() {
		got = append(got, px)
	}
	if len(got) != 6 {
		t.Fatalf("Pixels() yielded %d pixels, want 6", len(got))
	}
	i := 0
	for y := range 2 {
		for x := range 3 {
			if got[i].Pos != p.Point(x, y) || got[i].Color != p.At(x, y) {
				t.Errorf("pixel %d = %+v, want pos %v color %v", i, got[i], p.Point(x, y), p.At(x, y))
			}
			i++
		}
	}
}

func TestPicture_PixelsRestartAndBreak(t *testing.T) {
	p := gradient(4, 4)
	seq := p.Pixels()

	count := func() int {
		n := 0
		for range seq {
			n++
		}
		return n
	}
	if a, b := count(), count(); a != 16 || b != 16 {
		t.Errorf("ranging twice yielded %d and %d pixels, want 16 each", a, b)
	}

	n := 0
	for range seq {
		n++
		if n == 5 {
			break
		}
	}
	if n != 5 {
		t.Errorf("break after 5 pixels, counted %d", n)
	}
}

func TestNewFromPixels(t *testing.T) {
	p := gradient(5, 3)
	q := NewFromPixels(p.Width(), p.Height(), p.Pixels())
	if !q.Equal(p) {
		t.Errorf("NewFromPixels(Pixels()) differs:\n%v\nwant\n%v", q, p)
	}
}

func TestPicture_CloneIndependent(t *testing.T) {
	p := gradient(2, 2)
	c := p.Clone()
	c.Set(0, 0, RGB(1, 2, 3))
	if p.At(0, 0) == RGB(1, 2, 3) {
		t.Error("Clone shares storage with the original")
	}
}

func TestPicture_Equal(t *testing.T) {
	a := gradient(3, 3)
	if !a.Equal(gradient(3, 3)) {
		t.Error("identical pictures not equal")
	}
	if a.Equal(gradient(3, 2)) {
		t.Error("pictures of different size are equal")
	}
	b := gradient(3, 3)
	b.Set(2, 2, RGB(0, 0, 0))
	if a.Equal(b) {
		t.Error("pictures with different colors are equal")
	}
	var nilPic *Picture
	if a.Equal(nil) || !nilPic.Equal(nil) {
		t.Error("nil handling in Equal is wrong")
	}
}

func TestPicture_String(t *testing.T) {
	p := newTestPicture(2, 2, func(x, y int) Color { return RGB(x, y, 0) })
	want := "(0,0,0)(1,0,0)\n(0,1,0)(1,1,0)\n\n"
	if got := p.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
