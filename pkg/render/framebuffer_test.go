package render

import (
	"errors"
	"math"
	"testing"

	"github.com/rafael049/Software-Rasterizer/pkg/math3d"
)

func TestNewFramebufferInvalidDimensions(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 10},
		{"zero height", 10, 0},
		{"negative", -1, -1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewFramebuffer(tc.width, tc.height)
			if !errors.Is(err, ErrInvalidDimensions) {
				t.Errorf("err = %v, want ErrInvalidDimensions", err)
			}
		})
	}
}

func TestFramebufferClear(t *testing.T) {
	fb, err := NewFramebuffer(8, 4)
	if err != nil {
		t.Fatal(err)
	}
	for y := range fb.Height {
		for x := range fb.Width {
			fb.SetPixel(x, y, math3d.V4(1, 0.5, 0.25, 1))
			fb.SetDepth(x, y, 0.3)
		}
	}

	fb.Clear()

	for i, b := range fb.Pixels {
		if b != 0 {
			t.Fatalf("Pixels[%d] = %d after Clear, want 0", i, b)
		}
	}
	for i, d := range fb.Depth {
		if d != 1.0 {
			t.Fatalf("Depth[%d] = %v after Clear, want 1.0", i, d)
		}
	}
}

func TestFramebufferPixelRoundTrip(t *testing.T) {
	fb, _ := NewFramebuffer(4, 4)
	colors := []math3d.Vec4{
		math3d.V4(0, 0, 0, 0),
		math3d.V4(1, 1, 1, 1),
		math3d.V4(0.2, 0.4, 0.6, 0.8),
		math3d.V4(0.001, 0.999, 0.5, 1),
	}
	for _, c := range colors {
		fb.SetPixel(2, 1, c)
		got := fb.GetPixel(2, 1)
		for i, pair := range [][2]float64{{got.X, c.X}, {got.Y, c.Y}, {got.Z, c.Z}, {got.W, c.W}} {
			if math.Abs(pair[0]-pair[1]) > 1.0/255 {
				t.Errorf("channel %d of %v: got %v", i, c, pair[0])
			}
		}
	}
}

func TestFramebufferSetPixelClampsAndRounds(t *testing.T) {
	fb, _ := NewFramebuffer(1, 1)
	fb.SetPixel(0, 0, math3d.V4(1.5, -0.2, 0.5, 1))

	want := []uint8{255, 0, 128, 255}
	for i, w := range want {
		if fb.Pixels[i] != w {
			t.Errorf("Pixels[%d] = %d, want %d", i, fb.Pixels[i], w)
		}
	}
}

func TestFramebufferOutOfRange(t *testing.T) {
	fb, _ := NewFramebuffer(4, 3)
	c := math3d.V4(1, 1, 1, 1)

	for _, p := range []Point{{-1, 0}, {0, -1}, {4, 0}, {0, 3}, {-5, 10}} {
		fb.SetPixel(p.X, p.Y, c)
		fb.SetDepth(p.X, p.Y, 0)
		if got := fb.GetDepth(p.X, p.Y); got != 1.0 {
			t.Errorf("GetDepth(%d,%d) = %v, want 1.0", p.X, p.Y, got)
		}
		if got := fb.GetPixel(p.X, p.Y); got != (math3d.Vec4{}) {
			t.Errorf("GetPixel(%d,%d) = %v, want zero", p.X, p.Y, got)
		}
	}
	for i, b := range fb.Pixels {
		if b != 0 {
			t.Fatalf("out-of-range write landed at Pixels[%d]", i)
		}
	}
}

func TestFramebufferExport(t *testing.T) {
	fb, _ := NewFramebuffer(5, 3)
	fb.SetPixel(4, 2, math3d.V4(1, 0, 0, 1))

	pix, w, h := fb.Export()
	if w != 5 || h != 3 {
		t.Fatalf("Export size = %dx%d, want 5x3", w, h)
	}
	if len(pix) != 5*3*4 {
		t.Fatalf("len(pix) = %d, want %d", len(pix), 5*3*4)
	}
	i := (2*5 + 4) * 4
	if pix[i] != 255 || pix[i+3] != 255 {
		t.Errorf("last pixel = %v, want red", pix[i:i+4])
	}

	img := fb.ToImage()
	if r, _, _, _ := img.At(4, 2).RGBA(); r>>8 != 255 {
		t.Errorf("ToImage At(4,2) red = %d, want 255", r>>8)
	}
}

func TestDrawLine(t *testing.T) {
	fb, _ := NewFramebuffer(10, 10)
	white := math3d.V4(1, 1, 1, 1)
	fb.DrawLine(1, 1, 8, 5, white)

	for _, p := range []Point{{1, 1}, {8, 5}} {
		if fb.GetPixel(p.X, p.Y) != white {
			t.Errorf("endpoint %v not drawn", p)
		}
	}
	if d := fb.GetDepth(1, 1); d != 1.0 {
		t.Errorf("DrawLine touched depth: %v", d)
	}

	// Clipped lines must not panic.
	fb.DrawLine(-20, -20, 30, 30, white)
}
