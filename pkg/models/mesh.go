// Package models loads triangle meshes from OBJ and glTF files and
// flattens them into the triangle-ordered arrays the renderer consumes.
package models

import (
	"math"

	"github.com/rafael049/Software-Rasterizer/pkg/math3d"
	"github.com/rafael049/Software-Rasterizer/pkg/render"
)

// Mesh is an indexed triangle mesh.
type Mesh struct {
	Name     string
	Vertices []MeshVertex
	Faces    []Face

	// Set by loaders when the source file carried the attribute.
	HasNormals bool
	HasUVs     bool

	// Bounding box (calculated on load)
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// MeshVertex holds all vertex attributes.
type MeshVertex struct {
	Position math3d.Vec3
	Normal   math3d.Vec3
	UV       math3d.Vec2 // v=0 is the bottom of the texture
}

// Face is a triangle as indices into Mesh.Vertices.
type Face [3]int

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{Name: name}
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		m.BoundsMin, m.BoundsMax = math3d.Vec3{}, math3d.Vec3{}
		return
	}

	m.BoundsMin = m.Vertices[0].Position
	m.BoundsMax = m.Vertices[0].Position
	for _, v := range m.Vertices[1:] {
		m.BoundsMin = m.BoundsMin.Min(v.Position)
		m.BoundsMax = m.BoundsMax.Max(v.Position)
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// VertexCount returns the number of unique vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// Triangles flattens the mesh by its face indices into triangle-ordered
// arrays. Normals and UVs are left empty when the source had none.
func (m *Mesh) Triangles() render.VertexArrays {
	n := len(m.Faces) * 3
	out := render.VertexArrays{Positions: make([]math3d.Vec3, 0, n)}
	if m.HasNormals {
		out.Normals = make([]math3d.Vec3, 0, n)
	}
	if m.HasUVs {
		out.UVs = make([]math3d.Vec2, 0, n)
	}

	for _, f := range m.Faces {
		for _, idx := range f {
			v := m.Vertices[idx]
			out.Positions = append(out.Positions, v.Position)
			if m.HasNormals {
				out.Normals = append(out.Normals, v.Normal)
			}
			if m.HasUVs {
				out.UVs = append(out.UVs, v.UV)
			}
		}
	}
	return out
}

// FitTransform returns a model matrix that centers the mesh on the origin
// and scales its largest dimension to 2, so it fits in [-1,1]³.
func (m *Mesh) FitTransform() math3d.Mat4 {
	size := m.Size()
	extent := math.Max(size.X, math.Max(size.Y, size.Z))
	scale := 1.0
	if extent > 0 {
		scale = 2 / extent
	}
	return math3d.ScaleUniform(scale).Mul(math3d.Translate(m.Center().Negate()))
}
