package render

import (
	"fmt"
	"math"

	"github.com/rafael049/Software-Rasterizer/pkg/math3d"
)

// Uniforms are the per-frame values shared by every vertex and fragment.
type Uniforms struct {
	Time     float64
	LightDir math3d.Vec3 // direction the light travels, normalized
	Model    math3d.Mat4
	View     math3d.Mat4
	Gamma    float64
}

// DefaultUniforms returns identity transforms, a light shining down -Z and
// gamma 1.
func DefaultUniforms() Uniforms {
	return Uniforms{
		LightDir: math3d.V3(0, 0, -1),
		Model:    math3d.Identity(),
		View:     math3d.Identity(),
		Gamma:    1,
	}
}

// Validate reports uniforms that would make shading undefined.
func (u Uniforms) Validate() error {
	if !(u.Gamma > 0) || math.IsInf(u.Gamma, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidGamma, u.Gamma)
	}
	return nil
}
