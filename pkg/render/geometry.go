package render

import (
	"fmt"
	"math"

	"github.com/rafael049/Software-Rasterizer/pkg/math3d"
)

// VertexArrays is triangle-ordered mesh data: every consecutive triple of
// positions is one triangle. Normals and UVs are optional; when supplied
// they must be the same length as Positions.
type VertexArrays struct {
	Positions []math3d.Vec3
	Normals   []math3d.Vec3
	UVs       []math3d.Vec2
}

// TriangleCount returns the number of complete triangles.
func (v VertexArrays) TriangleCount() int {
	return len(v.Positions) / 3
}

// Validate checks the attribute array invariants.
func (v VertexArrays) Validate() error {
	n := len(v.Positions)
	if len(v.Normals) != 0 && len(v.Normals) != n {
		return fmt.Errorf("%w: %d positions, %d normals", ErrAttributeLengthMismatch, n, len(v.Normals))
	}
	if len(v.UVs) != 0 && len(v.UVs) != n {
		return fmt.Errorf("%w: %d positions, %d uvs", ErrAttributeLengthMismatch, n, len(v.UVs))
	}
	if n%3 != 0 {
		return fmt.Errorf("%w: %d positions", ErrIncompleteTriangle, n)
	}
	return nil
}

// TransformedVertices is the output of the geometry stage, index-aligned
// with the input arrays.
type TransformedVertices struct {
	Positions      []math3d.Vec3 // NDC
	WorldPositions []math3d.Vec3
	Normals        []math3d.Vec3
	UVs            []math3d.Vec2
}

// Projection describes a perspective frustum.
type Projection struct {
	FOV    float64 // vertical, radians
	Aspect float64
	Near   float64
	Far    float64
}

// DefaultProjection returns a 45° vertical FOV, 16:9 frustum from 0.1 to 100.
func DefaultProjection() Projection {
	return Projection{
		FOV:    math.Pi / 4,
		Aspect: 16.0 / 9.0,
		Near:   0.1,
		Far:    100,
	}
}

// Matrix returns the projection matrix.
func (p Projection) Matrix() math3d.Mat4 {
	return math3d.Perspective(p.FOV, p.Aspect, p.Near, p.Far)
}

// Geometry is the vertex stage. It holds the projection, which stays fixed
// for the life of the pipeline.
type Geometry struct {
	projection math3d.Mat4

	// TransformNormals applies the model's normal matrix to every normal.
	// Off by default: normals pass through in object space.
	TransformNormals bool
}

// NewGeometry creates a vertex stage for p.
func NewGeometry(p Projection) *Geometry {
	return &Geometry{projection: p.Matrix()}
}

// Transform projects every vertex to NDC and computes its world position.
// Nothing is transformed when the attribute arrays are inconsistent.
func (g *Geometry) Transform(v VertexArrays, u Uniforms) (*TransformedVertices, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}

	n := len(v.Positions)
	out := &TransformedVertices{
		Positions:      make([]math3d.Vec3, n),
		WorldPositions: make([]math3d.Vec3, n),
		Normals:        make([]math3d.Vec3, n),
		UVs:            make([]math3d.Vec2, n),
	}

	mvp := g.projection.Mul(u.View).Mul(u.Model)
	var normalMat math3d.Mat4
	if g.TransformNormals {
		normalMat = u.Model.NormalMatrix()
	}

	for i, p := range v.Positions {
		out.Positions[i] = mvp.TransformPoint(p)
		out.WorldPositions[i] = u.Model.TransformPoint(p)

		if len(v.Normals) > 0 {
			nrm := v.Normals[i]
			if g.TransformNormals {
				nrm = normalMat.MulVec3Dir(nrm).Normalize()
			}
			out.Normals[i] = nrm
		}
		if len(v.UVs) > 0 {
			out.UVs[i] = v.UVs[i]
		}
	}
	return out, nil
}
