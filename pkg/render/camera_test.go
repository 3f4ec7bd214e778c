package render

import (
	"math"
	"testing"

	"github.com/rafael049/Software-Rasterizer/pkg/math3d"
)

func TestOrbitCameraPosition(t *testing.T) {
	cam := &OrbitCamera{Radius: 3, Height: 1, Speed: math.Pi / 2}

	tests := []struct {
		t    float64
		want math3d.Vec3
	}{
		{0, math3d.V3(0, 1, 3)},
		{1, math3d.V3(3, 1, 0)},
		{2, math3d.V3(0, 1, -3)},
	}
	for _, tc := range tests {
		if got := cam.PositionAt(tc.t); !approx(got, tc.want) {
			t.Errorf("PositionAt(%v) = %v, want %v", tc.t, got, tc.want)
		}
	}
}

func TestOrbitCameraView(t *testing.T) {
	cam := NewOrbitCamera(4, 0.3)

	for _, tm := range []float64{0, 1, 7.5} {
		view := cam.ViewAt(tm)

		eye := view.TransformPoint(cam.PositionAt(tm))
		if !approx(eye, math3d.Vec3{}) {
			t.Errorf("t=%v: eye maps to %v, want origin", tm, eye)
		}

		origin := view.TransformPoint(math3d.Vec3{})
		if !approx(origin, math3d.V3(0, 0, -4)) {
			t.Errorf("t=%v: origin maps to %v, want (0,0,-4)", tm, origin)
		}
	}
}
