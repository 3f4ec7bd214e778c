package main

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/rafael049/Software-Rasterizer/pkg/render"
)

const (
	minRadius = 1.0
	maxRadius = 20.0
	zoomStep  = 0.5
)

// orbit drives the camera in the interactive presenters. Zoom eases
// toward its target on a spring; manual spin decays back to zero.
type orbit struct {
	cam *render.OrbitCamera
	t   float64

	zoom, zoomVel, zoomTarget float64
	zoomSpring                harmonica.Spring

	spin, spinAccel float64
	spinSpring      harmonica.Spring

	paused bool
}

func newOrbit(cam *render.OrbitCamera, fps int) *orbit {
	return &orbit{
		cam:        cam,
		zoom:       cam.Radius,
		zoomTarget: cam.Radius,
		// Critically damped: no overshoot.
		zoomSpring: harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0),
		spinSpring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Zoom moves the zoom target by delta, clamped to [minRadius, maxRadius].
func (o *orbit) Zoom(delta float64) {
	o.zoomTarget = math.Min(maxRadius, math.Max(minRadius, o.zoomTarget+delta))
}

// Nudge adds manual spin, in frames per tick.
func (o *orbit) Nudge(v float64) {
	o.spin += v
}

// TogglePause stops or resumes the automatic orbit.
func (o *orbit) TogglePause() {
	o.paused = !o.paused
}

// Reset returns to the starting position.
func (o *orbit) Reset(radius float64) {
	o.t = 0
	o.spin, o.spinAccel = 0, 0
	o.zoomTarget = radius
}

// Step advances one tick and returns the time to render.
func (o *orbit) Step() float64 {
	if !o.paused {
		o.t++
	}
	o.t += o.spin
	o.spin, o.spinAccel = o.spinSpring.Update(o.spin, o.spinAccel, 0)

	o.zoom, o.zoomVel = o.zoomSpring.Update(o.zoom, o.zoomVel, o.zoomTarget)
	o.cam.Radius = o.zoom
	return o.t
}
