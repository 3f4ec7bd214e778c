// Package render is the software rasterization core: a color+depth
// framebuffer, the geometry stage, the rasterizer and per-pixel shading,
// and the pipeline that runs them once per frame.
package render

import (
	"fmt"
	"image"
	"math"

	"github.com/rafael049/Software-Rasterizer/pkg/math3d"
)

const (
	channels = 4   // bytes per pixel (RGBA)
	farDepth = 1.0 // depth of a cleared pixel
)

// Framebuffer holds the render target as flat slices: interleaved RGBA
// bytes and one depth value per pixel, both row-major.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []uint8   // len = Width*Height*4
	Depth  []float64 // len = Width*Height, 1.0 is farthest
}

// NewFramebuffer allocates a zeroed color buffer and a depth buffer filled
// with 1.0.
func NewFramebuffer(width, height int) (*Framebuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	fb := &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]uint8, width*height*channels),
		Depth:  make([]float64, width*height),
	}
	fill(fb.Depth, farDepth)
	return fb, nil
}

// Clear resets every pixel to transparent black and every depth to 1.0.
// Call it once at the start of each frame; nothing else clears the color
// buffer between frames.
func (fb *Framebuffer) Clear() {
	clear(fb.Pixels)
	fill(fb.Depth, farDepth)
}

// fill sets every element of s to v, using copy-doubling.
func fill(s []float64, v float64) {
	if len(s) == 0 {
		return
	}
	s[0] = v
	for i := 1; i < len(s); i *= 2 {
		copy(s[i:], s[:i])
	}
}

func (fb *Framebuffer) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < fb.Width && y < fb.Height
}

// SetPixel writes a normalized RGBA color at (x, y). Each channel is
// clamped to [0,1] and stored as round(c*255). Writes outside the buffer
// are ignored.
func (fb *Framebuffer) SetPixel(x, y int, c math3d.Vec4) {
	if !fb.inBounds(x, y) {
		return
	}
	i := (y*fb.Width + x) * channels
	fb.Pixels[i+0] = toByte(c.X)
	fb.Pixels[i+1] = toByte(c.Y)
	fb.Pixels[i+2] = toByte(c.Z)
	fb.Pixels[i+3] = toByte(c.W)
}

// GetPixel returns the normalized RGBA color at (x, y), or the zero vector
// outside the buffer.
func (fb *Framebuffer) GetPixel(x, y int) math3d.Vec4 {
	if !fb.inBounds(x, y) {
		return math3d.Vec4{}
	}
	i := (y*fb.Width + x) * channels
	return math3d.V4(
		float64(fb.Pixels[i+0])/255,
		float64(fb.Pixels[i+1])/255,
		float64(fb.Pixels[i+2])/255,
		float64(fb.Pixels[i+3])/255,
	)
}

// SetDepth stores the depth at (x, y). Writes outside the buffer are ignored.
func (fb *Framebuffer) SetDepth(x, y int, d float64) {
	if !fb.inBounds(x, y) {
		return
	}
	fb.Depth[y*fb.Width+x] = d
}

// GetDepth returns the depth at (x, y), or 1.0 outside the buffer.
func (fb *Framebuffer) GetDepth(x, y int) float64 {
	if !fb.inBounds(x, y) {
		return farDepth
	}
	return fb.Depth[y*fb.Width+x]
}

// Export returns the raw RGBA buffer and its dimensions. The slice is the
// framebuffer's own storage; it is overwritten by the next frame.
func (fb *Framebuffer) Export() (pix []uint8, width, height int) {
	return fb.Pixels, fb.Width, fb.Height
}

// ToImage wraps the color buffer in an image.RGBA without copying.
func (fb *Framebuffer) ToImage() *image.RGBA {
	return &image.RGBA{
		Pix:    fb.Pixels,
		Stride: fb.Width * channels,
		Rect:   image.Rect(0, 0, fb.Width, fb.Height),
	}
}

// DrawLine draws a line from (x0, y0) to (x1, y1) using Bresenham's
// algorithm. The depth buffer is not touched.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 int, c math3d.Vec4) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		fb.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func toByte(v float64) uint8 {
	return uint8(math.Round(math3d.Clamp(v, 0, 1) * 255))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
