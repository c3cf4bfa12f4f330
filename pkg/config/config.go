// Package config loads polychain settings from YAML over built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/philipparndt/polychain/pkg/chain"
	"github.com/philipparndt/polychain/pkg/mesh"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned by Validate for unusable settings
var ErrInvalid = errors.New("invalid config")

// Source kinds accepted by Config.Source
const (
	SourceStatic   = "static"
	SourceRemote   = "remote"
	SourceFile     = "file"
	SourceGenerate = "generate"
)

// Config is the full set of settings
type Config struct {
	Source   string         `yaml:"source"`
	Endpoint string         `yaml:"endpoint"`
	File     string         `yaml:"file"`
	Window   WindowConfig   `yaml:"window"`
	Camera   CameraConfig   `yaml:"camera"`
	Light    LightConfig    `yaml:"light"`
	Tube     TubeConfig     `yaml:"tube"`
	Axes     float64        `yaml:"axes"`
	Server   ServerConfig   `yaml:"server"`
	Generate GenerateConfig `yaml:"generate"`
}

// WindowConfig sizes the viewer. The size is read once at startup.
type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	Background uint32 `yaml:"background"`
}

// CameraConfig describes the perspective camera
type CameraConfig struct {
	FOV      float64    `yaml:"fov"` // vertical, degrees
	Near     float64    `yaml:"near"`
	Far      float64    `yaml:"far"`
	Position [3]float64 `yaml:"position"`
	Target   [3]float64 `yaml:"target"`
}

// LightConfig describes the single spot light
type LightConfig struct {
	Position [3]float64 `yaml:"position"`
	Color    uint32     `yaml:"color"`
}

// TubeConfig controls segment tessellation and appearance
type TubeConfig struct {
	Radius          float64 `yaml:"radius"`
	TubularSegments int     `yaml:"tubular_segments"`
	RadialSegments  int     `yaml:"radial_segments"`
	Color           uint32  `yaml:"color"`
	Wireframe       bool    `yaml:"wireframe"`
}

// ServerConfig configures the chain service
type ServerConfig struct {
	Addr        string `yaml:"addr"`
	ChainLength int    `yaml:"chain_length"`
	MaxAttempts int    `yaml:"max_attempts"`
}

// GenerateConfig configures local chain generation
type GenerateConfig struct {
	Length      int    `yaml:"length"`
	Seed        uint64 `yaml:"seed"`
	MaxAttempts int    `yaml:"max_attempts"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Source:   SourceStatic,
		Endpoint: chain.DefaultEndpoint,
		Window: WindowConfig{
			Width:      1400,
			Height:     900,
			Title:      "polychain",
			Background: 0x000001,
		},
		Camera: CameraConfig{
			FOV:      45,
			Near:     0.1,
			Far:      1000,
			Position: [3]float64{6, 6, 6},
		},
		Light: LightConfig{
			Position: [3]float64{-40, 60, -10},
			Color:    0xffffff,
		},
		Tube: TubeConfig{
			Radius:          mesh.DefaultRadius,
			TubularSegments: mesh.DefaultTubularSegments,
			RadialSegments:  mesh.DefaultRadialSegments,
			Color:           mesh.DefaultColor,
		},
		Axes: 10,
		Server: ServerConfig{
			Addr:        ":5000",
			ChainLength: 10,
			MaxAttempts: 100000,
		},
		Generate: GenerateConfig{
			Length: 10,
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that all settings are usable
func (c *Config) Validate() error {
	var problems []string

	switch c.Source {
	case SourceStatic, SourceRemote, SourceGenerate:
	case SourceFile:
		if c.File == "" {
			problems = append(problems, "source file requires a file path")
		}
	default:
		problems = append(problems, fmt.Sprintf("unknown source %q", c.Source))
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		problems = append(problems, "window size must be positive")
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		problems = append(problems, "camera fov must be between 0 and 180 degrees")
	}
	if c.Camera.Near <= 0 || c.Camera.Near >= c.Camera.Far {
		problems = append(problems, "camera near must be positive and less than far")
	}
	if c.Tube.Radius <= 0 {
		problems = append(problems, "tube radius must be positive")
	}
	if c.Tube.TubularSegments < 1 {
		problems = append(problems, "tube tubular_segments must be at least 1")
	}
	if c.Tube.RadialSegments < 3 {
		problems = append(problems, "tube radial_segments must be at least 3")
	}
	if c.Server.ChainLength < 2 || c.Server.ChainLength%2 != 0 {
		problems = append(problems, "server chain_length must be even and at least 2")
	}
	if c.Generate.Length < 2 || c.Generate.Length%2 != 0 {
		problems = append(problems, "generate length must be even and at least 2")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

// TubeOptions converts the tube settings for the mesh builder
func (c *Config) TubeOptions() mesh.TubeOptions {
	return mesh.TubeOptions{
		Radius:          c.Tube.Radius,
		TubularSegments: c.Tube.TubularSegments,
		RadialSegments:  c.Tube.RadialSegments,
	}
}

// Material builds the shared segment material
func (c *Config) Material() *mesh.Material {
	return mesh.NewMaterial(c.Tube.Color, c.Tube.Wireframe)
}

// ChainSource builds the configured chain source
func (c *Config) ChainSource() (chain.Source, error) {
	switch c.Source {
	case SourceStatic:
		return chain.StaticSource{}, nil
	case SourceRemote:
		return chain.NewRemoteSource(c.Endpoint), nil
	case SourceFile:
		return &chain.FileSource{Path: c.File, CloseLoop: true}, nil
	case SourceGenerate:
		return &chain.GeneratorSource{
			Length:      c.Generate.Length,
			Seed:        c.Generate.Seed,
			MaxAttempts: c.Generate.MaxAttempts,
		}, nil
	default:
		return nil, fmt.Errorf("%w: unknown source %q", ErrInvalid, c.Source)
	}
}
