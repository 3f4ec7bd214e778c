package render

import (
	"image"
	"image/color"
	"math"

	"github.com/rafael049/Software-Rasterizer/pkg/math3d"
)

// WrapMode determines how texture coordinates outside [0,1] are handled.
type WrapMode int

const (
	WrapClamp  WrapMode = iota // Clamp to edge
	WrapRepeat                 // Tile the texture
)

// Texture is an RGBA8 image stored row-major with the top row first, the
// way image decoders produce it. Sampling flips V so that v=0 addresses
// the bottom row.
type Texture struct {
	Width  int
	Height int
	Pix    []uint8 // len = Width*Height*4
	Wrap   WrapMode
}

// NewTexture creates a transparent texture with the given dimensions.
func NewTexture(width, height int) *Texture {
	return &Texture{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*channels),
	}
}

// TextureFromNRGBA copies img into a new texture. Colors stay
// non-premultiplied.
func TextureFromNRGBA(img *image.NRGBA) *Texture {
	b := img.Bounds()
	tex := NewTexture(b.Dx(), b.Dy())
	rowLen := tex.Width * channels
	for y := range tex.Height {
		src := img.Pix[img.PixOffset(b.Min.X, b.Min.Y+y):]
		copy(tex.Pix[y*rowLen:(y+1)*rowLen], src[:rowLen])
	}
	return tex
}

// NewCheckerTexture creates a procedural checkerboard texture.
func NewCheckerTexture(width, height, checkSize int, c1, c2 color.RGBA) *Texture {
	tex := NewTexture(width, height)
	for y := range height {
		for x := range width {
			if (x/checkSize+y/checkSize)%2 == 0 {
				tex.SetTexel(x, y, c1)
			} else {
				tex.SetTexel(x, y, c2)
			}
		}
	}
	return tex
}

// SetTexel sets the texel at (x, y), counted from the top-left corner.
func (t *Texture) SetTexel(x, y int, c color.RGBA) {
	if x < 0 || x >= t.Width || y < 0 || y >= t.Height {
		return
	}
	i := (y*t.Width + x) * channels
	t.Pix[i], t.Pix[i+1], t.Pix[i+2], t.Pix[i+3] = c.R, c.G, c.B, c.A
}

// Texel returns the texel at (x, y) with bounds checking.
func (t *Texture) Texel(x, y int) color.RGBA {
	if x < 0 || x >= t.Width || y < 0 || y >= t.Height {
		return color.RGBA{}
	}
	i := (y*t.Width + x) * channels
	return color.RGBA{t.Pix[i], t.Pix[i+1], t.Pix[i+2], t.Pix[i+3]}
}

// Sample returns the nearest texel for uv. Texel indices are
// clamp(int(u*W), 0, W-1) and clamp(int(v*H), 0, H-1), and the row is
// read from H-1-ty.
func (t *Texture) Sample(uv math3d.Vec2) color.RGBA {
	if t.Width == 0 || t.Height == 0 {
		return color.RGBA{}
	}
	u, v := uv.X, uv.Y
	if t.Wrap == WrapRepeat {
		u -= math.Floor(u)
		v -= math.Floor(v)
	}
	tx := texelIndex(u, t.Width)
	ty := texelIndex(v, t.Height)
	return t.Texel(tx, t.Height-1-ty)
}

func texelIndex(c float64, size int) int {
	if math.IsNaN(c) {
		return 0
	}
	return int(math3d.Clamp(c*float64(size), 0, float64(size-1)))
}

// TextureHandle identifies a texture stored in a TextureArena.
type TextureHandle int

// TextureArena owns the textures of a pipeline. Handles stay valid for the
// life of the arena.
type TextureArena struct {
	textures []*Texture
}

// Add stores t and returns its handle.
func (a *TextureArena) Add(t *Texture) TextureHandle {
	a.textures = append(a.textures, t)
	return TextureHandle(len(a.textures) - 1)
}

// Get returns the texture for h.
func (a *TextureArena) Get(h TextureHandle) (*Texture, error) {
	if h < 0 || int(h) >= len(a.textures) {
		return nil, ErrUnknownTexture
	}
	return a.textures[h], nil
}

// Bind resolves handles into the ordered texture slice the rasterizer
// consumes. Slot 0 is the albedo texture.
func (a *TextureArena) Bind(handles ...TextureHandle) ([]*Texture, error) {
	out := make([]*Texture, 0, len(handles))
	for _, h := range handles {
		t, err := a.Get(h)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// Len returns the number of stored textures.
func (a *TextureArena) Len() int { return len(a.textures) }
