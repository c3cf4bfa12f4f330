// Package scene holds the state a chain viewer renders from.
package scene

import (
	"image/color"
	"math"

	"github.com/philipparndt/polychain/pkg/config"
	"github.com/philipparndt/polychain/pkg/geometry"
	"github.com/philipparndt/polychain/pkg/mesh"
)

// Camera is a perspective camera
type Camera struct {
	FOV      float64 // vertical field of view, degrees
	Near     float64
	Far      float64
	Aspect   float64
	Position geometry.Vector3
	Target   geometry.Vector3
	Up       geometry.Vector3
}

// FOVRadians returns the vertical field of view in radians
func (c Camera) FOVRadians() float64 {
	return c.FOV * math.Pi / 180
}

// Light is a point-like spot light
type Light struct {
	Position geometry.Vector3
	Color    color.RGBA
}

// Direction returns the unit direction light travels towards target
func (l Light) Direction(target geometry.Vector3) geometry.Vector3 {
	return target.Sub(l.Position).Normalize()
}

// Context is everything a frame needs. It is created once at startup and
// handed to the render loop; nothing is kept in package state.
type Context struct {
	Width, Height int
	Title         string
	Background    color.RGBA
	Camera        Camera
	Light         Light
	AxesLength    float64
	TubeOptions   mesh.TubeOptions
	Material      *mesh.Material

	group *mesh.Group
}

// New builds a scene context from config. The viewport size is taken once
// from the config and never updated.
func New(cfg *config.Config) *Context {
	aspect := float64(cfg.Window.Width) / float64(cfg.Window.Height)
	material := cfg.Material()

	return &Context{
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Title:      cfg.Window.Title,
		Background: mesh.HexColor(cfg.Window.Background),
		Camera: Camera{
			FOV:      cfg.Camera.FOV,
			Near:     cfg.Camera.Near,
			Far:      cfg.Camera.Far,
			Aspect:   aspect,
			Position: vec(cfg.Camera.Position),
			Target:   vec(cfg.Camera.Target),
			Up:       geometry.NewVector3(0, 1, 0),
		},
		Light: Light{
			Position: vec(cfg.Light.Position),
			Color:    mesh.HexColor(cfg.Light.Color),
		},
		AxesLength:  cfg.Axes,
		TubeOptions: cfg.TubeOptions(),
		Material:    material,
		group:       mesh.NewGroup("chain", material),
	}
}

// Group returns the attached chain group. It is never nil.
func (c *Context) Group() *mesh.Group {
	return c.group
}

// Attach replaces the displayed group in one step and returns the old one
func (c *Context) Attach(g *mesh.Group) *mesh.Group {
	if g == nil {
		g = mesh.NewGroup("chain", c.Material)
	}
	old := c.group
	c.group = g
	return old
}

// Build turns points into a group using the scene's tube settings.
// The result is not attached.
func (c *Context) Build(points []geometry.Vector3) *mesh.Group {
	return mesh.BuildChainWith(points, c.TubeOptions, c.Material)
}

func vec(a [3]float64) geometry.Vector3 {
	return geometry.NewVector3(a[0], a[1], a[2])
}
