// Command rasterizer renders a textured, lit 3D model with the software
// pipeline in pkg/render and shows the result as image files, in the
// terminal, or in a desktop window.
//
// Usage:
//
//	rasterizer [options] <model.obj|model.glb>
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()
	app.Name = "rasterizer"
	app.Description = "A software rasterizer for OBJ and glTF models"
	app.Usage = "rasterizer [options] <model file>"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config",
			Usage: "Path to a JSON config file",
		},
		cli.StringFlag{
			Name:  "texture",
			Usage: "Path to the albedo texture (PNG, JPEG, GIF, BMP, WebP or TGA)",
		},
		cli.IntFlag{
			Name:  "width",
			Usage: "Framebuffer width in pixels (default 320)",
		},
		cli.IntFlag{
			Name:  "height",
			Usage: "Framebuffer height in pixels (default 180)",
		},
		cli.Float64Flag{
			Name:  "gamma",
			Usage: "Display gamma (default 2.2)",
		},
		cli.IntFlag{
			Name:  "frames",
			Usage: "Number of frames to write with --present file (default 1)",
		},
		cli.StringFlag{
			Name:  "output",
			Usage: "Output image path; the extension picks the format (default frame.png)",
		},
		cli.StringFlag{
			Name:  "present",
			Usage: "Where to show frames: file, terminal or window (default file)",
		},
		cli.Float64Flag{
			Name:  "radius",
			Usage: "Camera orbit radius (default 3)",
		},
		cli.Float64Flag{
			Name:  "speed",
			Usage: "Camera orbit speed in radians per frame (default 0.02)",
		},
		cli.Float64Flag{
			Name:  "spin",
			Usage: "Model spin around its vertical axis in radians per frame",
		},
		cli.BoolFlag{
			Name:  "wireframe",
			Usage: "Draw triangle edges over the shaded model",
		},
		cli.IntFlag{
			Name:  "fps",
			Usage: "Frame rate of the interactive presenters (default 30)",
		},
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "Enable debug logging",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		slog.Error("Error running rasterizer", "error", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.Bool("verbose") {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
		slog.SetDefault(slog.New(handler))
	}

	modelPath := c.Args().First()
	if modelPath == "" {
		cli.ShowAppHelp(c)
		return errors.New("no model path provided")
	}

	var cfg Config
	if path := c.String("config"); path != "" {
		var err error
		if cfg, err = LoadConfig(path); err != nil {
			return err
		}
	}
	cfg.Resolve(flagsFrom(c))
	if err := cfg.Validate(); err != nil {
		return err
	}

	mesh, tex, err := loadAssets(modelPath, cfg.Texture)
	if err != nil {
		return err
	}
	s, err := newScene(cfg, mesh, tex)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("Rendering",
		"present", cfg.Present,
		"width", cfg.Width,
		"height", cfg.Height,
		"gamma", cfg.Gamma,
	)

	switch cfg.Present {
	case presentTerminal:
		return runTerminal(ctx, s, cfg)
	case presentWindow:
		return runWindow(ctx, s, cfg)
	default:
		err := runFile(ctx, s, cfg)
		if errors.Is(err, context.Canceled) {
			slog.Info("Interrupted")
			return nil
		}
		return err
	}
}

func flagsFrom(c *cli.Context) Flags {
	return Flags{
		Texture:   c.String("texture"),
		Output:    c.String("output"),
		Present:   c.String("present"),
		Width:     c.Int("width"),
		Height:    c.Int("height"),
		Frames:    c.Int("frames"),
		FPS:       c.Int("fps"),
		Gamma:     c.Float64("gamma"),
		Radius:    c.Float64("radius"),
		Speed:     c.Float64("speed"),
		Spin:      c.Float64("spin"),
		Wireframe: c.Bool("wireframe"),
	}
}
