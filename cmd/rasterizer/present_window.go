//go:build cgo

package main

import (
	"context"
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// runWindow shows the animation in a desktop window. It blocks until the
// window is closed, Escape is pressed or ctx is cancelled.
func runWindow(ctx context.Context, s *scene, cfg Config) error {
	fb := s.pipeline.Framebuffer()
	g := &windowGame{
		ctx:    ctx,
		scene:  s,
		orbit:  newOrbit(s.camera, cfg.FPS),
		radius: cfg.Radius,
	}

	ebiten.SetWindowTitle("rasterizer - " + s.name)
	ebiten.SetWindowSize(fb.Width*2, fb.Height*2)
	ebiten.SetTPS(cfg.FPS)

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

type windowGame struct {
	ctx    context.Context
	scene  *scene
	orbit  *orbit
	radius float64
	img    *ebiten.Image
}

func (g *windowGame) Update() error {
	if g.ctx.Err() != nil || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		g.orbit.Zoom(-dy * zoomStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.orbit.Nudge(-0.5)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.orbit.Nudge(0.5)
	}
	if ebiten.IsKeyPressed(ebiten.KeyR) {
		g.orbit.Reset(g.radius)
	}

	return g.scene.render(g.ctx, g.orbit.Step())
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	fb := g.scene.pipeline.Framebuffer()
	if g.img == nil {
		g.img = ebiten.NewImage(fb.Width, fb.Height)
	}
	g.img.WritePixels(fb.Pixels)
	screen.DrawImage(g.img, nil)
}

func (g *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	fb := g.scene.pipeline.Framebuffer()
	return fb.Width, fb.Height
}
