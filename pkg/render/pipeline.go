package render

import (
	"context"
	"fmt"

	"github.com/rafael049/Software-Rasterizer/pkg/math3d"
)

// Pipeline owns a framebuffer and a texture arena and renders one frame
// at a time: Clear, Transform, Rasterize.
type Pipeline struct {
	fb         *Framebuffer
	geometry   *Geometry
	rasterizer *Rasterizer
	textures   TextureArena

	wireframe *math3d.Vec4
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithProjection replaces the default projection.
func WithProjection(p Projection) Option {
	return func(pl *Pipeline) {
		transformNormals := pl.geometry.TransformNormals
		pl.geometry = NewGeometry(p)
		pl.geometry.TransformNormals = transformNormals
	}
}

// WithNormalTransform makes the geometry stage apply the model's normal
// matrix to vertex normals.
func WithNormalTransform(on bool) Option {
	return func(pl *Pipeline) {
		pl.geometry.TransformNormals = on
	}
}

// WithWireframe overlays triangle edges in color c after shading.
func WithWireframe(c math3d.Vec4) Option {
	return func(pl *Pipeline) {
		pl.wireframe = &c
	}
}

// NewPipeline creates a pipeline rendering into a width x height
// framebuffer. The default projection is DefaultProjection.
func NewPipeline(width, height int, opts ...Option) (*Pipeline, error) {
	fb, err := NewFramebuffer(width, height)
	if err != nil {
		return nil, err
	}
	p := &Pipeline{
		fb:         fb,
		geometry:   NewGeometry(DefaultProjection()),
		rasterizer: NewRasterizer(fb),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// AddTexture stores t in the pipeline's arena.
func (p *Pipeline) AddTexture(t *Texture) TextureHandle {
	return p.textures.Add(t)
}

// Texture returns the texture stored under h.
func (p *Pipeline) Texture(h TextureHandle) (*Texture, error) {
	return p.textures.Get(h)
}

// Framebuffer returns the render target. Its contents are the last
// rendered frame.
func (p *Pipeline) Framebuffer() *Framebuffer {
	return p.fb
}

// Stats returns the rasterizer counters for the last frame.
func (p *Pipeline) Stats() RasterStats {
	return p.rasterizer.Stats()
}

// RenderFrame renders v with uniforms u. bound lists the textures to use,
// slot 0 being the albedo map. Cancellation is checked before clearing
// and between stages.
func (p *Pipeline) RenderFrame(ctx context.Context, v VertexArrays, u Uniforms, bound ...TextureHandle) error {
	if err := u.Validate(); err != nil {
		return err
	}
	if err := v.Validate(); err != nil {
		return err
	}
	textures, err := p.textures.Bind(bound...)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	p.fb.Clear()

	tv, err := p.geometry.Transform(v, u)
	if err != nil {
		return fmt.Errorf("transform: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := p.rasterizer.Rasterize(tv, u, textures); err != nil {
		return fmt.Errorf("rasterize: %w", err)
	}

	if p.wireframe != nil {
		DrawWireframe(p.fb, tv.Positions, *p.wireframe)
	}
	return nil
}
