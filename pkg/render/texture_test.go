package render

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/rafael049/Software-Rasterizer/pkg/math3d"
)

var (
	red   = color.RGBA{255, 0, 0, 255}
	green = color.RGBA{0, 255, 0, 255}
	blue  = color.RGBA{0, 0, 255, 255}
	white = color.RGBA{255, 255, 255, 255}
)

func TestTextureSample(t *testing.T) {
	// 2x2: top row red, green; bottom row blue, white.
	tex := NewTexture(2, 2)
	tex.SetTexel(0, 0, red)
	tex.SetTexel(1, 0, green)
	tex.SetTexel(0, 1, blue)
	tex.SetTexel(1, 1, white)

	tests := []struct {
		name string
		uv   math3d.Vec2
		want color.RGBA
	}{
		{"origin is bottom-left", math3d.V2(0, 0), blue},
		{"bottom-right", math3d.V2(0.75, 0.25), white},
		{"top-left", math3d.V2(0.25, 0.75), red},
		{"top-right", math3d.V2(0.99, 0.99), green},
		{"u=1 clamps", math3d.V2(1, 1), green},
		{"negative clamps", math3d.V2(-3, -3), blue},
		{"far out clamps", math3d.V2(7, 0), white},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tex.Sample(tc.uv); got != tc.want {
				t.Errorf("Sample(%v) = %v, want %v", tc.uv, got, tc.want)
			}
		})
	}
}

func TestTextureSampleRepeat(t *testing.T) {
	tex := NewTexture(2, 1)
	tex.SetTexel(0, 0, red)
	tex.SetTexel(1, 0, green)
	tex.Wrap = WrapRepeat

	if got := tex.Sample(math3d.V2(1.25, 0)); got != red {
		t.Errorf("Sample(1.25) = %v, want red", got)
	}
	if got := tex.Sample(math3d.V2(-0.25, 0)); got != green {
		t.Errorf("Sample(-0.25) = %v, want green", got)
	}
}

func TestTextureFromNRGBA(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.Set(2, 1, blue)

	tex := TextureFromNRGBA(img.SubImage(image.Rect(1, 0, 3, 2)).(*image.NRGBA))
	if tex.Width != 2 || tex.Height != 2 {
		t.Fatalf("size = %dx%d, want 2x2", tex.Width, tex.Height)
	}
	if got := tex.Texel(1, 1); got != blue {
		t.Errorf("Texel(1,1) = %v, want blue", got)
	}
}

func TestTextureArena(t *testing.T) {
	var a TextureArena
	t1 := NewTexture(1, 1)
	t2 := NewTexture(1, 1)
	h1 := a.Add(t1)
	h2 := a.Add(t2)

	bound, err := a.Bind(h2, h1)
	if err != nil {
		t.Fatal(err)
	}
	if bound[0] != t2 || bound[1] != t1 {
		t.Error("Bind did not preserve slot order")
	}

	if _, err := a.Get(TextureHandle(5)); !errors.Is(err, ErrUnknownTexture) {
		t.Errorf("Get(5) err = %v, want ErrUnknownTexture", err)
	}
	if _, err := a.Bind(h1, -1); !errors.Is(err, ErrUnknownTexture) {
		t.Errorf("Bind(-1) err = %v, want ErrUnknownTexture", err)
	}
}
