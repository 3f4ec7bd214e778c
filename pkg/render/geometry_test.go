package render

import (
	"errors"
	"math"
	"testing"

	"github.com/rafael049/Software-Rasterizer/pkg/math3d"
)

func approx(a, b math3d.Vec3) bool {
	const eps = 1e-9
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}

func triangle() VertexArrays {
	return VertexArrays{
		Positions: []math3d.Vec3{{X: -1, Y: -1, Z: 0}, {X: 1, Y: -1, Z: 0}, {X: 0, Y: 1, Z: 0}},
		Normals:   []math3d.Vec3{{Z: 1}, {Z: 1}, {Z: 1}},
		UVs:       []math3d.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0.5, Y: 1}},
	}
}

func TestVertexArraysValidate(t *testing.T) {
	ok := triangle()

	short := triangle()
	short.Normals = short.Normals[:2]

	shortUV := triangle()
	shortUV.UVs = shortUV.UVs[:1]

	partial := triangle()
	partial.Positions = append(partial.Positions, math3d.Vec3{})
	partial.Normals = nil
	partial.UVs = nil

	noAttrs := VertexArrays{Positions: ok.Positions}

	tests := []struct {
		name string
		v    VertexArrays
		want error
	}{
		{"valid", ok, nil},
		{"positions only", noAttrs, nil},
		{"empty", VertexArrays{}, nil},
		{"normals too short", short, ErrAttributeLengthMismatch},
		{"uvs too short", shortUV, ErrAttributeLengthMismatch},
		{"incomplete triangle", partial, ErrIncompleteTriangle},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.v.Validate()
			if !errors.Is(err, tc.want) {
				t.Errorf("Validate() = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestGeometryTransform(t *testing.T) {
	g := NewGeometry(DefaultProjection())
	u := DefaultUniforms()
	u.Model = math3d.Translate(math3d.V3(0, 0, -5))

	tv, err := g.Transform(triangle(), u)
	if err != nil {
		t.Fatal(err)
	}

	want := []math3d.Vec3{{X: -1, Y: -1, Z: -5}, {X: 1, Y: -1, Z: -5}, {X: 0, Y: 1, Z: -5}}
	for i, w := range want {
		if !approx(tv.WorldPositions[i], w) {
			t.Errorf("WorldPositions[%d] = %v, want %v", i, tv.WorldPositions[i], w)
		}
	}

	mvp := DefaultProjection().Matrix().Mul(u.Model)
	for i, p := range triangle().Positions {
		if !approx(tv.Positions[i], mvp.TransformPoint(p)) {
			t.Errorf("Positions[%d] = %v, want %v", i, tv.Positions[i], mvp.TransformPoint(p))
		}
		if z := tv.Positions[i].Z; z <= -1 || z >= 1 {
			t.Errorf("NDC z = %v, want inside (-1, 1)", z)
		}
	}

	if tv.UVs[2] != math3d.V2(0.5, 1) {
		t.Errorf("UVs[2] = %v, want passthrough", tv.UVs[2])
	}
}

func TestGeometryNormals(t *testing.T) {
	u := DefaultUniforms()
	u.Model = math3d.RotateY(math.Pi / 2)

	t.Run("pass through by default", func(t *testing.T) {
		tv, err := NewGeometry(DefaultProjection()).Transform(triangle(), u)
		if err != nil {
			t.Fatal(err)
		}
		if !approx(tv.Normals[0], math3d.V3(0, 0, 1)) {
			t.Errorf("normal = %v, want untouched (0,0,1)", tv.Normals[0])
		}
	})

	t.Run("normal matrix", func(t *testing.T) {
		g := NewGeometry(DefaultProjection())
		g.TransformNormals = true
		tv, err := g.Transform(triangle(), u)
		if err != nil {
			t.Fatal(err)
		}
		if !approx(tv.Normals[0], math3d.V3(1, 0, 0)) {
			t.Errorf("normal = %v, want (1,0,0)", tv.Normals[0])
		}
	})

	t.Run("missing normals read as zero", func(t *testing.T) {
		v := VertexArrays{Positions: triangle().Positions}
		tv, err := NewGeometry(DefaultProjection()).Transform(v, u)
		if err != nil {
			t.Fatal(err)
		}
		if len(tv.Normals) != 3 || tv.Normals[1] != (math3d.Vec3{}) {
			t.Errorf("normals = %v, want three zero vectors", tv.Normals)
		}
	})
}

func TestGeometryRejectsMismatch(t *testing.T) {
	v := triangle()
	v.UVs = v.UVs[:2]
	tv, err := NewGeometry(DefaultProjection()).Transform(v, DefaultUniforms())
	if !errors.Is(err, ErrAttributeLengthMismatch) {
		t.Fatalf("err = %v, want ErrAttributeLengthMismatch", err)
	}
	if tv != nil {
		t.Error("expected no output on error")
	}
}
