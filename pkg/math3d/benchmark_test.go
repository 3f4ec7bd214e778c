package math3d

import (
	"math"
	"testing"
)

func BenchmarkMat4Mul(b *testing.B) {
	m1 := Translate(V3(1, 2, 3))
	m2 := RotateY(0.5)

	for b.Loop() {
		_ = m1.Mul(m2)
	}
}

func BenchmarkMVPTransformPoint(b *testing.B) {
	proj := Perspective(math.Pi/4, 16.0/9.0, 0.1, 100)
	view := LookAt(V3(0, 0, 3), Zero3(), Up())
	mvp := proj.Mul(view).Mul(RotateY(0.5))
	v := V3(0.25, -0.5, 0.75)

	for b.Loop() {
		_ = mvp.TransformPoint(v)
	}
}

func BenchmarkNormalMatrix(b *testing.B) {
	m := Translate(V3(1, 2, 3)).Mul(RotateY(0.5)).Mul(Scale(V3(2, 1, 3)))

	for b.Loop() {
		_ = m.NormalMatrix()
	}
}
