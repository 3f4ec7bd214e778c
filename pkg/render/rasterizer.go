package render

import (
	"math"

	"github.com/rafael049/Software-Rasterizer/pkg/math3d"
)

// Point is an integer pixel coordinate.
type Point struct {
	X, Y int
}

// RasterStats counts what the rasterizer did during the last frame.
type RasterStats struct {
	Triangles     int // triangles submitted
	Degenerate    int // zero-area triangles skipped
	Fragments     int // pixels written
	DepthRejected int // covered pixels that failed the depth test
}

// ScreenMapping converts NDC positions to pixel coordinates:
// x = round((ndc.x+0.5)*width), y = round((-ndc.y+0.5)*height).
func ScreenMapping(ndc []math3d.Vec3, width, height int) []Point {
	return appendScreen(make([]Point, 0, len(ndc)), ndc, width, height)
}

func appendScreen(dst []Point, ndc []math3d.Vec3, width, height int) []Point {
	w, h := float64(width), float64(height)
	for _, p := range ndc {
		dst = append(dst, Point{
			X: int(math.Round((p.X + 0.5) * w)),
			Y: int(math.Round((-p.Y + 0.5) * h)),
		})
	}
	return dst
}

// Rasterizer scan-converts triangles into a framebuffer with a depth test
// and per-pixel shading.
type Rasterizer struct {
	fb     *Framebuffer
	screen []Point // reused between frames
	stats  RasterStats
}

// NewRasterizer creates a rasterizer that draws into fb.
func NewRasterizer(fb *Framebuffer) *Rasterizer {
	return &Rasterizer{fb: fb}
}

// Stats returns the counters of the last Rasterize call.
func (r *Rasterizer) Stats() RasterStats {
	return r.stats
}

// Rasterize draws every triangle of tv. Texture slot 0 is the albedo map;
// when it is missing nothing is written and ErrMissingTexture is returned.
// Empty Normals or UVs read as zero vectors.
func (r *Rasterizer) Rasterize(tv *TransformedVertices, u Uniforms, textures []*Texture) error {
	r.stats = RasterStats{}
	n := len(tv.Positions)
	if (len(tv.Normals) > 0 && len(tv.Normals) != n) || (len(tv.UVs) > 0 && len(tv.UVs) != n) {
		return ErrAttributeLengthMismatch
	}
	if n < 3 {
		return nil
	}
	albedo, err := albedoTexture(textures)
	if err != nil {
		return err
	}

	r.screen = appendScreen(r.screen[:0], tv.Positions, r.fb.Width, r.fb.Height)
	for i := 0; i+2 < len(r.screen); i += 3 {
		r.drawTriangle(tv, i, u, albedo)
	}
	return nil
}

func (r *Rasterizer) drawTriangle(tv *TransformedVertices, i int, u Uniforms, albedo *Texture) {
	r.stats.Triangles++
	p1, p2, p3 := r.screen[i], r.screen[i+1], r.screen[i+2]

	if area2(p1, p2, p3) == 0 {
		r.stats.Degenerate++
		return
	}

	minX, minY, maxX, maxY, ok := boundingBox(p1, p2, p3, r.fb.Width, r.fb.Height)
	if !ok {
		return
	}

	z1, z2, z3 := tv.Positions[i].Z, tv.Positions[i+1].Z, tv.Positions[i+2].Z
	var (
		n1, n2, n3 math3d.Vec3
		t1, t2, t3 math3d.Vec2
	)
	if len(tv.Normals) > 0 {
		n1, n2, n3 = tv.Normals[i], tv.Normals[i+1], tv.Normals[i+2]
	}
	if len(tv.UVs) > 0 {
		t1, t2, t3 = tv.UVs[i], tv.UVs[i+1], tv.UVs[i+2]
	}

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			a, b, c := barycentric(Point{x, y}, p1, p2, p3)
			if a < 0 || b < 0 || c < 0 {
				continue
			}

			depth := fragmentDepth(a*z1 + b*z2 + c*z3)
			if !(depth < r.fb.GetDepth(x, y)) {
				r.stats.DepthRejected++
				continue
			}

			normal := math3d.Weighted3(n1, n2, n3, a, b, c)
			uv := math3d.Weighted2(t1, t2, t3, a, b, c)
			color := shade(normal, uv, u, albedo)

			r.fb.SetPixel(x, y, math3d.V4FromV3(color, 1))
			r.fb.SetDepth(x, y, depth)
			r.stats.Fragments++
		}
	}
}

// fragmentDepth maps NDC z in [-1,1] (near to far) to [0,1].
func fragmentDepth(z float64) float64 {
	return (z + 1) / 2
}

// boundingBox returns the inclusive pixel bounds of the triangle clamped
// to the framebuffer. ok is false when the box lies entirely outside.
func boundingBox(p1, p2, p3 Point, width, height int) (minX, minY, maxX, maxY int, ok bool) {
	minX = max(min(p1.X, p2.X, p3.X), 0)
	minY = max(min(p1.Y, p2.Y, p3.Y), 0)
	maxX = min(max(p1.X, p2.X, p3.X), width-1)
	maxY = min(max(p1.Y, p2.Y, p3.Y), height-1)
	return minX, minY, maxX, maxY, minX <= maxX && minY <= maxY
}

// barycentric returns the weights of p1, p2 and p3 for point p. A
// zero-area triangle yields (-1, -1, 1), which every inside test rejects.
func barycentric(p, p1, p2, p3 Point) (u, v, w float64) {
	a := math3d.V3(float64(p3.X-p1.X), float64(p3.X-p2.X), float64(p.X-p3.X))
	b := math3d.V3(float64(p3.Y-p1.Y), float64(p3.Y-p2.Y), float64(p.Y-p3.Y))
	c := a.Cross(b)
	if c.Z == 0 {
		return -1, -1, 1
	}
	u = c.X / c.Z
	v = c.Y / c.Z
	return u, v, 1 - u - v
}

// area2 returns twice the signed area of the triangle.
func area2(p1, p2, p3 Point) int {
	return (p2.X-p1.X)*(p3.Y-p1.Y) - (p3.X-p1.X)*(p2.Y-p1.Y)
}
