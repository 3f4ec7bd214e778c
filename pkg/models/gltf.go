package models

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/rafael049/Software-Rasterizer/pkg/imageio"
	"github.com/rafael049/Software-Rasterizer/pkg/math3d"
)

// LoadGLB loads a glTF or binary glTF (.glb) file. Every triangle
// primitive of every mesh is merged into one Mesh; node transforms are
// ignored.
func LoadGLB(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}
	return meshFromDocument(doc, filepath.Base(path))
}

// LoadGLBWithTexture loads a glTF file and decodes its albedo texture: the
// base color texture of the first material, or else the first image in
// the file. The image is nil when the file has none.
func LoadGLBWithTexture(path string) (*Mesh, image.Image, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open gltf: %w", err)
	}
	mesh, err := meshFromDocument(doc, filepath.Base(path))
	if err != nil {
		return nil, nil, err
	}

	for _, idx := range imageOrder(doc) {
		data, err := imageData(doc, doc.Images[idx], filepath.Dir(path))
		if err != nil || len(data) == 0 {
			continue
		}
		img, _, err := imageio.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, nil, fmt.Errorf("gltf image %d: %w", idx, err)
		}
		return mesh, img, nil
	}
	return mesh, nil, nil
}

func meshFromDocument(doc *gltf.Document, name string) (*Mesh, error) {
	mesh := NewMesh(name)
	mesh.HasNormals, mesh.HasUVs = true, true

	for _, m := range doc.Meshes {
		for i, prim := range m.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
				continue
			}
			if err := addPrimitive(doc, prim, mesh); err != nil {
				return nil, fmt.Errorf("mesh %q primitive %d: %w", m.Name, i, err)
			}
		}
	}

	if len(mesh.Faces) == 0 {
		mesh.HasNormals, mesh.HasUVs = false, false
	}
	mesh.CalculateBounds()
	return mesh, nil
}

func addPrimitive(doc *gltf.Document, prim *gltf.Primitive, mesh *Mesh) error {
	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return nil
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return fmt.Errorf("read positions: %w", err)
	}

	var normals [][3]float32
	if idx, ok := prim.Attributes[gltf.NORMAL]; ok {
		if normals, err = modeler.ReadNormal(doc, doc.Accessors[idx], nil); err != nil {
			return fmt.Errorf("read normals: %w", err)
		}
	} else {
		mesh.HasNormals = false
	}

	var uvs [][2]float32
	if idx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
		if uvs, err = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil); err != nil {
			return fmt.Errorf("read uvs: %w", err)
		}
	} else {
		mesh.HasUVs = false
	}

	base := len(mesh.Vertices)
	for i, p := range positions {
		v := MeshVertex{Position: vec3(p)}
		if i < len(normals) {
			v.Normal = vec3(normals[i])
		}
		if i < len(uvs) {
			// glTF puts v=0 at the top of the image.
			v.UV = math3d.V2(float64(uvs[i][0]), 1-float64(uvs[i][1]))
		}
		mesh.Vertices = append(mesh.Vertices, v)
	}

	if prim.Indices == nil {
		for i := 0; i+2 < len(positions); i += 3 {
			mesh.Faces = append(mesh.Faces, Face{base + i, base + i + 1, base + i + 2})
		}
		return nil
	}

	indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
	if err != nil {
		return fmt.Errorf("read indices: %w", err)
	}
	for i := 0; i+2 < len(indices); i += 3 {
		f := Face{base + int(indices[i]), base + int(indices[i+1]), base + int(indices[i+2])}
		for _, idx := range f {
			if idx >= len(mesh.Vertices) {
				return fmt.Errorf("index %d out of range", idx-base)
			}
		}
		mesh.Faces = append(mesh.Faces, f)
	}
	return nil
}

// imageOrder lists image indices with the first material's base color
// image first.
func imageOrder(doc *gltf.Document) []int {
	order := make([]int, 0, len(doc.Images))
	preferred := -1
	if len(doc.Materials) > 0 {
		if pbr := doc.Materials[0].PBRMetallicRoughness; pbr != nil && pbr.BaseColorTexture != nil {
			if ti := pbr.BaseColorTexture.Index; ti < len(doc.Textures) && doc.Textures[ti].Source != nil {
				if src := *doc.Textures[ti].Source; src < len(doc.Images) {
					preferred = src
					order = append(order, preferred)
				}
			}
		}
	}
	for i := range doc.Images {
		if i != preferred {
			order = append(order, i)
		}
	}
	return order
}

// imageData returns the encoded bytes of img, read from its buffer view,
// a data URI, or a file next to the document.
func imageData(doc *gltf.Document, img *gltf.Image, dir string) ([]byte, error) {
	if img.BufferView != nil {
		bv := doc.BufferViews[*img.BufferView]
		buf := doc.Buffers[bv.Buffer]
		end := bv.ByteOffset + bv.ByteLength
		if end > len(buf.Data) {
			return nil, fmt.Errorf("buffer view %d out of range", *img.BufferView)
		}
		return buf.Data[bv.ByteOffset:end], nil
	}
	if img.IsEmbeddedResource() {
		return img.MarshalData()
	}
	if img.URI != "" {
		return os.ReadFile(filepath.Join(dir, img.URI))
	}
	return nil, nil
}

func vec3(f [3]float32) math3d.Vec3 {
	return math3d.V3(float64(f[0]), float64(f[1]), float64(f[2]))
}
