package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/rafael049/Software-Rasterizer/pkg/imageio"
)

// runFile renders cfg.Frames frames and writes each one to disk. With more
// than one frame the index is appended to the output name.
func runFile(ctx context.Context, s *scene, cfg Config) error {
	if _, err := imageio.FormatFromPath(cfg.Output); err != nil {
		return err
	}

	for i := range cfg.Frames {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.render(ctx, float64(i)); err != nil {
			return err
		}

		path := framePath(cfg.Output, i, cfg.Frames)
		if err := imageio.Save(path, s.pipeline.Framebuffer().ToImage()); err != nil {
			return err
		}
		slog.Info("Wrote frame", "frame", i+1, "total", cfg.Frames, "path", path)
	}
	return nil
}

// framePath returns out for a single frame, and out with a zero-padded
// index before the extension otherwise.
func framePath(out string, i, n int) string {
	if n <= 1 {
		return out
	}
	ext := filepath.Ext(out)
	return fmt.Sprintf("%s_%04d%s", strings.TrimSuffix(out, ext), i, ext)
}
