package main

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"
	"time"

	uv "github.com/charmbracelet/ultraviolet"

	"github.com/rafael049/Software-Rasterizer/pkg/imageio"
	"github.com/rafael049/Software-Rasterizer/pkg/render"
)

// runTerminal shows the animation in the terminal with half-block cells.
//
// Controls:
//
//	Scroll, +/-  - Zoom
//	Left/Right   - Spin
//	Space        - Pause orbit
//	R            - Reset view
//	Esc, Q       - Quit
func runTerminal(ctx context.Context, s *scene, cfg Config) error {
	// Log lines would tear the alt screen.
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.DiscardHandler))
	defer slog.SetDefault(prev)

	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}
	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	// Mouse tracking with SGR encoding, for wheel events.
	fmt.Fprint(os.Stdout, "\x1b[?1000h")
	fmt.Fprint(os.Stdout, "\x1b[?1006h")

	defer func() {
		fmt.Fprint(os.Stdout, "\x1b[?1000l")
		fmt.Fprint(os.Stdout, "\x1b[?1006l")
		term.ExitAltScreen()
		term.ShowCursor()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := term.Shutdown(shutdownCtx); err != nil {
			slog.Debug("Terminal shutdown", "error", err)
		}
	}()

	o := newOrbit(s.camera, cfg.FPS)
	ticker := time.NewTicker(time.Second / time.Duration(cfg.FPS))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-term.Events():
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				width, height = ev.Width, ev.Height
				term.Erase()
				term.Resize(width, height)
			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("esc", "q", "ctrl+c"):
					return nil
				case ev.MatchString("+", "="):
					o.Zoom(-zoomStep)
				case ev.MatchString("-", "_"):
					o.Zoom(zoomStep)
				case ev.MatchString("left", "a"):
					o.Nudge(-5)
				case ev.MatchString("right", "d"):
					o.Nudge(5)
				case ev.MatchString("space"):
					o.TogglePause()
				case ev.MatchString("r"):
					o.Reset(cfg.Radius)
				}
			case uv.MouseWheelEvent:
				switch ev.Button {
				case uv.MouseWheelUp:
					o.Zoom(-zoomStep)
				case uv.MouseWheelDown:
					o.Zoom(zoomStep)
				}
			}

		case <-ticker.C:
			if err := s.render(ctx, o.Step()); err != nil {
				return err
			}
			pane, err := fitFrame(s.pipeline.Framebuffer(), width, height)
			if err != nil {
				return err
			}
			term.Draw(pane)
			if err := term.Display(); err != nil {
				return fmt.Errorf("display: %w", err)
			}
		}
	}
}

// framePane centers a framebuffer in the drawing area.
type framePane struct {
	fb *render.Framebuffer
}

func (p framePane) Draw(scr uv.Screen, area uv.Rectangle) {
	rows := (p.fb.Height + 1) / 2
	p.fb.Draw(scr, uv.CenterRect(area, p.fb.Width, rows))
}

// fitFrame scales fb to the largest size that fits a cols x rows terminal
// while keeping its aspect ratio.
func fitFrame(fb *render.Framebuffer, cols, rows int) (framePane, error) {
	maxW, maxH := render.TerminalSize(cols, rows)
	w, h := fitSize(fb.Width, fb.Height, maxW, maxH)
	if w == fb.Width && h == fb.Height {
		return framePane{fb}, nil
	}

	scaled := imageio.Resize(fb.ToImage(), w, h)
	out, err := render.NewFramebuffer(w, h)
	if err != nil {
		return framePane{}, err
	}
	copy(out.Pixels, scaled.Pix)
	return framePane{out}, nil
}

// fitSize returns the largest w x h with the aspect of srcW x srcH that
// fits in maxW x maxH. Both results are at least 1.
func fitSize(srcW, srcH, maxW, maxH int) (int, int) {
	scale := math.Min(float64(maxW)/float64(srcW), float64(maxH)/float64(srcH))
	w := max(1, int(math.Floor(float64(srcW)*scale)))
	h := max(1, int(math.Floor(float64(srcH)*scale)))
	return w, h
}
