package mesh

import "image/color"

// Shading selects the lighting model a renderer should apply
type Shading int

const (
	// ShadingPhong is lit with diffuse and specular terms
	ShadingPhong Shading = iota
	// ShadingBasic ignores lights
	ShadingBasic
)

func (s Shading) String() string {
	switch s {
	case ShadingPhong:
		return "phong"
	case ShadingBasic:
		return "basic"
	default:
		return "unknown"
	}
}

// Material describes how segments look. One material is shared by all
// segments of a group.
type Material struct {
	Color     color.RGBA
	Wireframe bool
	Shading   Shading
}

// DefaultColor is the flat gray used for chain tubes
const DefaultColor = 0xcccccc

// NewMaterial creates a material from a 0xRRGGBB color
func NewMaterial(hex uint32, wireframe bool) *Material {
	return &Material{
		Color:     HexColor(hex),
		Wireframe: wireframe,
		Shading:   ShadingPhong,
	}
}

// DefaultMaterial returns the flat gray, solid, Phong material
func DefaultMaterial() *Material {
	return NewMaterial(DefaultColor, false)
}

// HexColor converts 0xRRGGBB to an opaque color
func HexColor(hex uint32) color.RGBA {
	return color.RGBA{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
}
