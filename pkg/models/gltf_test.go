package models

import (
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafael049/Software-Rasterizer/pkg/math3d"
)

func TestLoadGLBInvalidPath(t *testing.T) {
	_, err := LoadGLB("/nonexistent/path.glb")
	assert.Error(t, err)

	_, _, err = LoadGLBWithTexture("/nonexistent/path.glb")
	assert.Error(t, err)
}

// quadDocument builds an in-memory glTF document holding one indexed quad.
func quadDocument(withNormals bool) *gltf.Document {
	doc := gltf.NewDocument()
	attrs := map[string]int{
		gltf.POSITION: modeler.WritePosition(doc, [][3]float32{
			{0, 0, 0}, {2, 0, 0}, {2, 1, 0}, {0, 1, 0},
		}),
		gltf.TEXCOORD_0: modeler.WriteTextureCoord(doc, [][2]float32{
			{0, 1}, {1, 1}, {1, 0}, {0, 0},
		}),
	}
	if withNormals {
		attrs[gltf.NORMAL] = modeler.WriteNormal(doc, [][3]float32{
			{0, 0, 1}, {0, 0, 1}, {0, 0, 1}, {0, 0, 1},
		})
	}
	doc.Meshes = []*gltf.Mesh{{
		Name: "quad",
		Primitives: []*gltf.Primitive{{
			Indices:    gltf.Index(modeler.WriteIndices(doc, []uint16{0, 1, 2, 0, 2, 3})),
			Attributes: attrs,
		}},
	}}
	return doc
}

func TestMeshFromDocument(t *testing.T) {
	mesh, err := meshFromDocument(quadDocument(true), "quad.glb")
	require.NoError(t, err)

	assert.Equal(t, 4, mesh.VertexCount())
	assert.Equal(t, 2, mesh.TriangleCount())
	assert.Equal(t, Face{0, 2, 3}, mesh.Faces[1])
	assert.True(t, mesh.HasNormals)
	assert.True(t, mesh.HasUVs)

	// V is flipped so that v=0 is the bottom of the image.
	assert.Equal(t, math3d.V2(0, 0), mesh.Vertices[0].UV)
	assert.Equal(t, math3d.V2(1, 1), mesh.Vertices[2].UV)

	assert.Equal(t, math3d.V3(0, 0, 0), mesh.BoundsMin)
	assert.Equal(t, math3d.V3(2, 1, 0), mesh.BoundsMax)
}

func TestMeshFromDocumentWithoutNormals(t *testing.T) {
	mesh, err := meshFromDocument(quadDocument(false), "quad.glb")
	require.NoError(t, err)

	assert.False(t, mesh.HasNormals)
	v := mesh.Triangles()
	assert.Empty(t, v.Normals)
	assert.Len(t, v.UVs, 6)
	assert.NoError(t, v.Validate())
}
