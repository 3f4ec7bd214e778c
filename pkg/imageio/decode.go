// Package imageio reads textures and writes rendered frames. Decoding
// covers PNG, JPEG, GIF, BMP, WebP and TGA; encoding covers PNG, JPEG,
// WebP and TGA.
package imageio

import (
	"bufio"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/webp"

	"github.com/rafael049/Software-Rasterizer/pkg/render"
)

type decoder struct {
	name   string
	magic  string // "?" matches any byte
	decode func(io.Reader) (image.Image, error)
}

// TGA has no signature, so it is tried last.
var decoders = []decoder{
	{"png", "\x89PNG\r\n\x1a\n", png.Decode},
	{"jpeg", "\xff\xd8", jpeg.Decode},
	{"gif", "GIF8", gif.Decode},
	{"bmp", "BM", bmp.Decode},
	{"webp", "RIFF????WEBP", webp.Decode},
}

// Decode sniffs the image format from its leading bytes and decodes it.
// Data matching no known signature is decoded as TGA.
func Decode(r io.Reader) (image.Image, string, error) {
	br := bufio.NewReader(r)
	name, decode := "tga", tga.Decode
	for _, d := range decoders {
		if b, err := br.Peek(len(d.magic)); err == nil && match(d.magic, b) {
			name, decode = d.name, d.decode
			break
		}
	}

	img, err := decode(br)
	if err != nil {
		return nil, "", fmt.Errorf("decode %s: %w", name, err)
	}
	return img, name, nil
}

func match(magic string, b []byte) bool {
	for i, c := range b {
		if magic[i] != c && magic[i] != '?' {
			return false
		}
	}
	return true
}

// LoadTexture reads and decodes an image file into a texture.
func LoadTexture(path string) (*render.Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}
	return ToTexture(img), nil
}

// ToTexture converts any image to a texture.
func ToTexture(img image.Image) *render.Texture {
	return render.TextureFromNRGBA(toNRGBA(img))
}

// toNRGBA converts src to non-premultiplied RGBA, reusing it when it
// already is one.
func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

// Resize scales img to width x height with nearest-neighbor sampling,
// which keeps rendered pixels crisp.
func Resize(img image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}
