package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rafael049/Software-Rasterizer/pkg/render"
)

func TestOrbitZoomClamped(t *testing.T) {
	o := newOrbit(render.NewOrbitCamera(3, 0.02), 30)

	o.Zoom(100)
	assert.Equal(t, maxRadius, o.zoomTarget)

	o.Zoom(-100)
	assert.Equal(t, minRadius, o.zoomTarget)
}

func TestOrbitZoomSettles(t *testing.T) {
	cam := render.NewOrbitCamera(3, 0.02)
	o := newOrbit(cam, 30)

	o.Zoom(7)
	for range 300 {
		o.Step()
	}
	assert.InDelta(t, 10, cam.Radius, 1e-2)
}

func TestOrbitPause(t *testing.T) {
	o := newOrbit(render.NewOrbitCamera(3, 0.02), 30)

	assert.Equal(t, 1.0, o.Step())
	assert.Equal(t, 2.0, o.Step())

	o.TogglePause()
	assert.Equal(t, 2.0, o.Step())

	o.TogglePause()
	assert.Equal(t, 3.0, o.Step())
}

func TestOrbitReset(t *testing.T) {
	o := newOrbit(render.NewOrbitCamera(3, 0.02), 30)
	o.Nudge(5)
	o.Zoom(4)
	o.Step()

	o.Reset(3)
	assert.Equal(t, 0.0, o.t)
	assert.Equal(t, 0.0, o.spin)
	assert.Equal(t, 3.0, o.zoomTarget)
}
