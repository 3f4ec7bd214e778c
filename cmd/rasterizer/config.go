package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/rafael049/Software-Rasterizer/pkg/math3d"
)

// Presenter names accepted by --present.
const (
	presentFile     = "file"
	presentTerminal = "terminal"
	presentWindow   = "window"
)

// Config holds the render settings. It can be loaded from a JSON file and
// is then overridden by CLI flags.
type Config struct {
	// Paths
	Texture string `json:"texture"`
	Output  string `json:"output"`

	// Render settings
	Width            int        `json:"width"`
	Height           int        `json:"height"`
	Gamma            float64    `json:"gamma"`
	Light            [3]float64 `json:"light"`
	Wireframe        bool       `json:"wireframe"`
	TransformNormals bool       `json:"transform_normals"`

	// Camera
	Radius       float64 `json:"radius"`
	CameraHeight float64 `json:"camera_height"`
	Speed        float64 `json:"speed"` // radians per frame

	// Model spin around X, Y and Z, radians per frame
	Spin [3]float64 `json:"spin"`

	// Frame loop
	Frames  int    `json:"frames"`
	FPS     int    `json:"fps"`
	Present string `json:"present"`
}

// LoadConfig reads a JSON config file. Fields not set in the file keep
// their zero values until Resolve.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Texture   string
	Output    string
	Present   string
	Width     int
	Height    int
	Frames    int
	FPS       int
	Gamma     float64
	Radius    float64
	Speed     float64
	Spin      float64 // around Y
	Wireframe bool
}

// Resolve applies non-zero flags over the file values, then fills the
// remaining zero fields with defaults.
func (c *Config) Resolve(flags Flags) {
	if flags.Texture != "" {
		c.Texture = flags.Texture
	}
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.Present != "" {
		c.Present = flags.Present
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.FPS > 0 {
		c.FPS = flags.FPS
	}
	if flags.Gamma > 0 {
		c.Gamma = flags.Gamma
	}
	if flags.Radius > 0 {
		c.Radius = flags.Radius
	}
	if flags.Speed != 0 {
		c.Speed = flags.Speed
	}
	if flags.Spin != 0 {
		c.Spin[1] = flags.Spin
	}
	if flags.Wireframe {
		c.Wireframe = true
	}

	if c.Width <= 0 {
		c.Width = 320
	}
	if c.Height <= 0 {
		c.Height = 180
	}
	if c.Gamma <= 0 {
		c.Gamma = 2.2
	}
	if c.Frames <= 0 {
		c.Frames = 1
	}
	if c.Radius <= 0 {
		c.Radius = 3
	}
	if c.Speed == 0 {
		c.Speed = 0.02
	}
	if c.FPS <= 0 {
		c.FPS = 30
	}
	if c.Output == "" {
		c.Output = "frame.png"
	}
	if c.Present == "" {
		c.Present = presentFile
	}
	if c.Light == [3]float64{} {
		c.Light = [3]float64{0, -1, -1}
	}
}

// Validate reports settings Resolve cannot fix.
func (c Config) Validate() error {
	switch c.Present {
	case presentFile, presentTerminal, presentWindow:
	default:
		return fmt.Errorf("config: unknown presenter %q (want file, terminal or window)", c.Present)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return errors.New("config: width and height must be positive")
	}
	return nil
}

// LightDir returns the normalized light direction.
func (c Config) LightDir() math3d.Vec3 {
	return math3d.V3(c.Light[0], c.Light[1], c.Light[2]).Normalize()
}
