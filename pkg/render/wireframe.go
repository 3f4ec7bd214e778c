package render

import "github.com/rafael049/Software-Rasterizer/pkg/math3d"

// DrawWireframe outlines every triangle of the NDC positions with lines of
// color c. Edges are drawn on top of whatever is in the framebuffer; the
// depth buffer is ignored.
func DrawWireframe(fb *Framebuffer, ndc []math3d.Vec3, c math3d.Vec4) {
	pts := ScreenMapping(ndc, fb.Width, fb.Height)
	for i := 0; i+2 < len(pts); i += 3 {
		a, b, d := pts[i], pts[i+1], pts[i+2]
		fb.DrawLine(a.X, a.Y, b.X, b.Y, c)
		fb.DrawLine(b.X, b.Y, d.X, d.Y, c)
		fb.DrawLine(d.X, d.Y, a.X, a.Y, c)
	}
}
