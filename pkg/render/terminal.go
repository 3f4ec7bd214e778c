package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// Draw paints the framebuffer onto a terminal screen using half-block
// cells: every terminal row shows two framebuffer rows, the upper one as
// the foreground of "▀" and the lower one as its background.
func (fb *Framebuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := (row - area.Min.Y) * 2
		botY := topY + 1
		if topY >= fb.Height {
			break
		}

		for col := area.Min.X; col < area.Max.X; col++ {
			x := col - area.Min.X
			if x >= fb.Width {
				break
			}
			scr.SetCell(col, row, &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: fb.cellColor(x, topY),
					Bg: fb.cellColor(x, botY),
				},
			})
		}
	}
}

// cellColor returns the pixel at (x, y) as a terminal color. Transparent
// pixels (never shaded this frame) map to the terminal default.
func (fb *Framebuffer) cellColor(x, y int) color.Color {
	if !fb.inBounds(x, y) {
		return nil
	}
	i := (y*fb.Width + x) * channels
	if fb.Pixels[i+3] == 0 {
		return nil
	}
	return color.RGBA{fb.Pixels[i], fb.Pixels[i+1], fb.Pixels[i+2], 255}
}

// TerminalSize returns the framebuffer size that fills a terminal of the
// given cell dimensions with half-block rendering.
func TerminalSize(cols, rows int) (width, height int) {
	return cols, rows * 2
}
