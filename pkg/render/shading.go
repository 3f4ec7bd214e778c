package render

import (
	"github.com/rafael049/Software-Rasterizer/pkg/math3d"
)

const ambient = 0.1

// Shade computes the color of one fragment: a Lambert diffuse term plus a
// constant ambient, modulated by the albedo texture in slot 0 and
// gamma-encoded. Channels can exceed 1; SetPixel clamps them.
func Shade(normal math3d.Vec3, uv math3d.Vec2, u Uniforms, textures []*Texture) (math3d.Vec3, error) {
	albedo, err := albedoTexture(textures)
	if err != nil {
		return math3d.Vec3{}, err
	}
	return shade(normal, uv, u, albedo), nil
}

func albedoTexture(textures []*Texture) (*Texture, error) {
	if len(textures) == 0 || textures[0] == nil {
		return nil, ErrMissingTexture
	}
	return textures[0], nil
}

func shade(normal math3d.Vec3, uv math3d.Vec2, u Uniforms, albedo *Texture) math3d.Vec3 {
	diffuse := math3d.Clamp(normal.Dot(u.LightDir.Negate()), 0, 1)

	t := albedo.Sample(uv)
	base := math3d.V3(float64(t.R), float64(t.G), float64(t.B)).Scale(1.0 / 255)

	c := math3d.Splat3(ambient + diffuse).Mul(base)
	return GammaCorrect(c, u.Gamma)
}

// GammaCorrect raises each channel of c to 1/gamma. Negative channels
// become 0; values above 1 are left for the framebuffer to clamp.
func GammaCorrect(c math3d.Vec3, gamma float64) math3d.Vec3 {
	return c.Max(math3d.Zero3()).Pow(1 / gamma)
}
