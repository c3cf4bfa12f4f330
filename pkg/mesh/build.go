// Package mesh turns chains into renderable tube segments.
package mesh

import (
	"github.com/philipparndt/polychain/pkg/geometry"
)

// BuildChain builds one tube segment per pair of consecutive points using
// the default radius and the shared default material. Fewer than two points
// produce an empty group. The input slice is not modified.
func BuildChain(points []geometry.Vector3) *Group {
	return BuildChainWith(points, DefaultTubeOptions(), DefaultMaterial())
}

// BuildChainWith is BuildChain with explicit tube options and material.
// Segment i always connects points[i] to points[i+1]; coordinates are used
// as given, including duplicates and non-finite values.
func BuildChainWith(points []geometry.Vector3, opts TubeOptions, material *Material) *Group {
	group := NewGroup("chain", material)

	for i := 0; i+1 < len(points); i++ {
		path := LinePath{Start: points[i], End: points[i+1]}
		group.Add(&Segment{
			Index:    i,
			Start:    path.Start,
			End:      path.End,
			Geometry: NewTubeGeometry(path, opts),
			Material: group.Material,
		})
	}

	return group
}
