package mesh

import (
	"github.com/philipparndt/polychain/pkg/geometry"
)

// Segment is one tube connecting two consecutive chain points
type Segment struct {
	Index    int
	Start    geometry.Vector3
	End      geometry.Vector3
	Geometry *TubeGeometry
	Material *Material
}

// Group owns all segments of one displayed chain
type Group struct {
	Name     string
	Material *Material
	Segments []*Segment
}

// NewGroup creates an empty group
func NewGroup(name string, material *Material) *Group {
	if material == nil {
		material = DefaultMaterial()
	}
	return &Group{Name: name, Material: material}
}

// Add appends a segment
func (g *Group) Add(s *Segment) {
	g.Segments = append(g.Segments, s)
}

// Len returns the number of segments
func (g *Group) Len() int {
	if g == nil {
		return 0
	}
	return len(g.Segments)
}

// TriangleCount returns the number of faces over all segments
func (g *Group) TriangleCount() int {
	total := 0
	for _, s := range g.Segments {
		total += s.Geometry.TriangleCount()
	}
	return total
}

// Triangles flattens all segments into world space triangles
func (g *Group) Triangles() []geometry.Triangle {
	out := make([]geometry.Triangle, 0, g.TriangleCount())
	for _, s := range g.Segments {
		out = append(out, s.Geometry.Triangles()...)
	}
	return out
}

// Bounds returns the bounding box of all segment surfaces
func (g *Group) Bounds() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, s := range g.Segments {
		bbox.Union(s.Geometry.Bounds())
	}
	return bbox
}
