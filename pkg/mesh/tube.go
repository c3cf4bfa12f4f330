package mesh

import (
	"math"

	"github.com/philipparndt/polychain/pkg/geometry"
)

// Default tube parameters for chain links
const (
	DefaultRadius          = 0.04
	DefaultTubularSegments = 1
	DefaultRadialSegments  = 8
)

// TubeOptions controls tube tessellation
type TubeOptions struct {
	Radius          float64
	TubularSegments int // divisions along the path
	RadialSegments  int // divisions around the path
}

// DefaultTubeOptions returns the options used for chain links
func DefaultTubeOptions() TubeOptions {
	return TubeOptions{
		Radius:          DefaultRadius,
		TubularSegments: DefaultTubularSegments,
		RadialSegments:  DefaultRadialSegments,
	}
}

func (o TubeOptions) normalized() TubeOptions {
	if o.TubularSegments < 1 {
		o.TubularSegments = 1
	}
	if o.RadialSegments < 3 {
		o.RadialSegments = 3
	}
	return o
}

// LinePath is a straight path between two points
type LinePath struct {
	Start, End geometry.Vector3
}

// PointAt returns the point at fraction u of the path
func (p LinePath) PointAt(u float64) geometry.Vector3 {
	return p.Start.Lerp(p.End, u)
}

// Tangent returns the unit direction of the path
func (p LinePath) Tangent() geometry.Vector3 {
	return p.End.Sub(p.Start).Normalize()
}

// TubeGeometry is an open-ended tube around a path.
// Vertices are laid out ring by ring, each ring holding RadialSegments+1
// vertices so the seam carries its own UVs.
type TubeGeometry struct {
	Path     LinePath
	Options  TubeOptions
	Vertices []geometry.Vector3
	Normals  []geometry.Vector3
	UVs      [][2]float64
	Indices  [][3]int
}

// NewTubeGeometry tessellates a tube around path
func NewTubeGeometry(path LinePath, opts TubeOptions) *TubeGeometry {
	opts = opts.normalized()
	frame := geometry.FrameForTangent(path.End.Sub(path.Start))

	rings := opts.TubularSegments + 1
	perRing := opts.RadialSegments + 1

	g := &TubeGeometry{
		Path:     path,
		Options:  opts,
		Vertices: make([]geometry.Vector3, 0, rings*perRing),
		Normals:  make([]geometry.Vector3, 0, rings*perRing),
		UVs:      make([][2]float64, 0, rings*perRing),
		Indices:  make([][3]int, 0, 2*opts.TubularSegments*opts.RadialSegments),
	}

	for j := 0; j < rings; j++ {
		u := float64(j) / float64(opts.TubularSegments)
		center := path.PointAt(u)

		for i := 0; i < perRing; i++ {
			v := float64(i) / float64(opts.RadialSegments) * 2 * math.Pi
			sin := math.Sin(v)
			cos := -math.Cos(v)

			normal := frame.Normal.Mul(cos).Add(frame.Binormal.Mul(sin)).Normalize()
			g.Normals = append(g.Normals, normal)
			g.Vertices = append(g.Vertices, center.Add(normal.Mul(opts.Radius)))
			g.UVs = append(g.UVs, [2]float64{u, float64(i) / float64(opts.RadialSegments)})
		}
	}

	for j := 1; j <= opts.TubularSegments; j++ {
		for i := 1; i <= opts.RadialSegments; i++ {
			a := perRing*(j-1) + (i - 1)
			b := perRing*j + (i - 1)
			c := perRing*j + i
			d := perRing*(j-1) + i

			g.Indices = append(g.Indices, [3]int{a, b, d}, [3]int{b, c, d})
		}
	}

	return g
}

// TriangleCount returns the number of faces
func (g *TubeGeometry) TriangleCount() int {
	return len(g.Indices)
}

// Triangles expands the indexed faces into standalone triangles
func (g *TubeGeometry) Triangles() []geometry.Triangle {
	out := make([]geometry.Triangle, 0, len(g.Indices))
	for _, f := range g.Indices {
		tri := geometry.Triangle{V1: g.Vertices[f[0]], V2: g.Vertices[f[1]], V3: g.Vertices[f[2]]}
		tri.Normal = tri.CalculateNormal()
		out = append(out, tri)
	}
	return out
}

// Bounds returns the bounding box of the tube surface
func (g *TubeGeometry) Bounds() geometry.BoundingBox {
	return geometry.BoundsOf(g.Vertices)
}
