package models

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafael049/Software-Rasterizer/pkg/math3d"
)

func TestTrianglesFlattensByIndex(t *testing.T) {
	mesh, err := ParseOBJ(strings.NewReader(cubeFaceOBJ), "face")
	require.NoError(t, err)

	v := mesh.Triangles()
	require.NoError(t, v.Validate())
	assert.Equal(t, 2, v.TriangleCount())
	assert.Len(t, v.Normals, 6)
	assert.Len(t, v.UVs, 6)

	// Second triangle is corners 0, 2, 3.
	assert.Equal(t, mesh.Vertices[0].Position, v.Positions[3])
	assert.Equal(t, mesh.Vertices[2].Position, v.Positions[4])
	assert.Equal(t, mesh.Vertices[3].UV, v.UVs[5])
}

func TestFitTransform(t *testing.T) {
	mesh := NewMesh("box")
	mesh.Vertices = []MeshVertex{
		{Position: math3d.V3(10, 20, 30)},
		{Position: math3d.V3(14, 22, 31)},
	}
	mesh.CalculateBounds()

	m := mesh.FitTransform()
	lo := m.TransformPoint(mesh.BoundsMin)
	hi := m.TransformPoint(mesh.BoundsMax)

	const eps = 1e-9
	assert.InDelta(t, -1, lo.X, eps)
	assert.InDelta(t, 1, hi.X, eps)
	assert.InDelta(t, -0.5, lo.Y, eps)
	assert.InDelta(t, 0.5, hi.Y, eps)
	assert.InDelta(t, 0, m.TransformPoint(mesh.Center()).Len(), eps)
}

func TestFitTransformEmptyMesh(t *testing.T) {
	m := NewMesh("empty").FitTransform()
	p := m.TransformPoint(math3d.V3(1, 2, 3))
	assert.False(t, math.IsNaN(p.X))
	assert.Equal(t, math3d.V3(1, 2, 3), p)
}
