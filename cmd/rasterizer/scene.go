package main

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/rafael049/Software-Rasterizer/pkg/imageio"
	"github.com/rafael049/Software-Rasterizer/pkg/math3d"
	"github.com/rafael049/Software-Rasterizer/pkg/models"
	"github.com/rafael049/Software-Rasterizer/pkg/render"
)

var (
	wireColor    = math3d.V4(0, 1, 0.5, 1)
	checkerLight = color.RGBA{200, 200, 200, 255}
	checkerDark  = color.RGBA{100, 100, 100, 255}
)

// scene is everything needed to render one frame of the loaded model.
type scene struct {
	name     string
	pipeline *render.Pipeline
	vertices render.VertexArrays
	albedo   render.TextureHandle
	model    math3d.Mat4
	spin     [3]float64
	light    math3d.Vec3
	gamma    float64
	camera   *render.OrbitCamera
}

// loadAssets loads the model and picks its albedo texture: the explicit
// texture path, then a texture embedded in a glTF file, then a checker.
func loadAssets(modelPath, texturePath string) (*models.Mesh, *render.Texture, error) {
	var (
		mesh *models.Mesh
		tex  *render.Texture
		err  error
	)

	if texturePath != "" {
		if tex, err = imageio.LoadTexture(texturePath); err != nil {
			return nil, nil, err
		}
		slog.Info("Loaded texture", "path", texturePath, "width", tex.Width, "height", tex.Height)
	}

	switch ext := strings.ToLower(filepath.Ext(modelPath)); ext {
	case ".glb", ".gltf":
		m, img, err := models.LoadGLBWithTexture(modelPath)
		if err != nil {
			return nil, nil, fmt.Errorf("load model: %w", err)
		}
		mesh = m
		if tex == nil && img != nil {
			tex = imageio.ToTexture(img)
			slog.Info("Using embedded texture", "width", tex.Width, "height", tex.Height)
		}
	default:
		if mesh, err = models.Load(modelPath); err != nil {
			return nil, nil, fmt.Errorf("load model: %w", err)
		}
	}

	if tex == nil {
		slog.Debug("No texture found, using checkerboard")
		tex = render.NewCheckerTexture(64, 64, 8, checkerLight, checkerDark)
	}

	slog.Info("Loaded model",
		"path", modelPath,
		"vertices", mesh.VertexCount(),
		"triangles", mesh.TriangleCount(),
		"normals", mesh.HasNormals,
		"uvs", mesh.HasUVs,
	)
	return mesh, tex, nil
}

func newScene(cfg Config, mesh *models.Mesh, tex *render.Texture) (*scene, error) {
	proj := render.DefaultProjection()
	proj.Aspect = float64(cfg.Width) / float64(cfg.Height)

	opts := []render.Option{
		render.WithProjection(proj),
		render.WithNormalTransform(cfg.TransformNormals),
	}
	if cfg.Wireframe {
		opts = append(opts, render.WithWireframe(wireColor))
	}

	p, err := render.NewPipeline(cfg.Width, cfg.Height, opts...)
	if err != nil {
		return nil, err
	}

	cam := render.NewOrbitCamera(cfg.Radius, cfg.Speed)
	cam.Height = cfg.CameraHeight

	return &scene{
		name:     mesh.Name,
		pipeline: p,
		vertices: mesh.Triangles(),
		albedo:   p.AddTexture(tex),
		model:    mesh.FitTransform(),
		spin:     cfg.Spin,
		light:    cfg.LightDir(),
		gamma:    cfg.Gamma,
		camera:   cam,
	}, nil
}

// uniforms builds the per-frame uniforms for time t.
func (s *scene) uniforms(t float64) render.Uniforms {
	return render.Uniforms{
		Time:     t,
		LightDir: s.light,
		Model:    s.modelAt(t),
		View:     s.camera.ViewAt(t),
		Gamma:    s.gamma,
	}
}

// modelAt returns the fitted model matrix spun to time t, X first.
func (s *scene) modelAt(t float64) math3d.Mat4 {
	return math3d.RotateZ(s.spin[2] * t).
		Mul(math3d.RotateY(s.spin[1] * t)).
		Mul(math3d.RotateX(s.spin[0] * t)).
		Mul(s.model)
}

// render draws the frame at time t into the pipeline's framebuffer.
func (s *scene) render(ctx context.Context, t float64) error {
	if err := s.pipeline.RenderFrame(ctx, s.vertices, s.uniforms(t), s.albedo); err != nil {
		return fmt.Errorf("render frame: %w", err)
	}
	st := s.pipeline.Stats()
	slog.Debug("Frame rendered",
		"time", t,
		"triangles", st.Triangles,
		"degenerate", st.Degenerate,
		"fragments", st.Fragments,
		"depth_rejected", st.DepthRejected,
	)
	return nil
}
