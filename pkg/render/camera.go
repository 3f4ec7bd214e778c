package render

import (
	"math"

	"github.com/rafael049/Software-Rasterizer/pkg/math3d"
)

// OrbitCamera circles the origin at a fixed radius and height, always
// looking at the origin with +Y up. The angle is Speed*t radians.
type OrbitCamera struct {
	Radius float64
	Height float64
	Speed  float64
}

// NewOrbitCamera creates a camera orbiting at radius with the given
// angular speed.
func NewOrbitCamera(radius, speed float64) *OrbitCamera {
	return &OrbitCamera{Radius: radius, Speed: speed}
}

// PositionAt returns the eye position at time t. At t=0 the camera sits
// on +Z.
func (c *OrbitCamera) PositionAt(t float64) math3d.Vec3 {
	angle := c.Speed * t
	return math3d.V3(
		c.Radius*math.Sin(angle),
		c.Height,
		c.Radius*math.Cos(angle),
	)
}

// ViewAt returns the view matrix at time t.
func (c *OrbitCamera) ViewAt(t float64) math3d.Mat4 {
	return math3d.LookAt(c.PositionAt(t), math3d.Zero3(), math3d.Up())
}
