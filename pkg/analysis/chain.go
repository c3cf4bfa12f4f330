// Package analysis computes statistics for chains and their meshes.
package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/polychain/pkg/chain"
	"github.com/philipparndt/polychain/pkg/geometry"
	"github.com/philipparndt/polychain/pkg/mesh"
)

// LinkInfo describes one link of a chain
type LinkInfo struct {
	Index  int
	Start  geometry.Vector3
	End    geometry.Vector3
	Length float64
}

// ChainResult contains measurements of a chain and its built mesh
type ChainResult struct {
	PointCount       int
	SegmentCount     int
	IsLoop           bool
	LatticeClosed    bool
	SelfIntersecting bool
	NonFinitePoints  int
	BoundingBox      geometry.BoundingBox
	Dimensions       geometry.Vector3
	TotalLength      float64
	MinLinkLength    float64
	MaxLinkLength    float64
	AvgLinkLength    float64
	TriangleCount    int
	SurfaceArea      float64
	Links            []LinkInfo
}

// AnalyzeChain measures a chain and, when group is not nil, its mesh
func AnalyzeChain(c chain.Chain, group *mesh.Group) *ChainResult {
	result := &ChainResult{
		PointCount:       c.Len(),
		IsLoop:           c.IsLoop(),
		SelfIntersecting: hasRepeatedInterior(c),
		BoundingBox:      c.Bounds(),
		Links:            make([]LinkInfo, 0, c.Len()),
	}
	result.Dimensions = result.BoundingBox.Size()

	// the lattice closure test ignores the appended origin
	if c.IsLoop() && c.Len() > 2 {
		result.LatticeClosed = chain.IsClosed(c[:c.Len()-1])
	}

	for _, p := range c {
		if !p.IsFinite() {
			result.NonFinitePoints++
		}
	}

	minLength := math.MaxFloat64
	maxLength := 0.0
	for _, l := range c.Links() {
		length := l.Start.Distance(l.End)
		result.Links = append(result.Links, LinkInfo{Index: l.Index, Start: l.Start, End: l.End, Length: length})

		result.TotalLength += length
		minLength = math.Min(minLength, length)
		maxLength = math.Max(maxLength, length)
	}

	result.SegmentCount = len(result.Links)
	if result.SegmentCount > 0 {
		result.MinLinkLength = minLength
		result.MaxLinkLength = maxLength
		result.AvgLinkLength = result.TotalLength / float64(result.SegmentCount)
	}

	if group != nil {
		for _, s := range group.Segments {
			for _, t := range s.Geometry.Triangles() {
				result.SurfaceArea += t.Area()
			}
		}
		result.TriangleCount = group.TriangleCount()
	}

	return result
}

// hasRepeatedInterior reports duplicate vertices, treating a closing
// point equal to the first as part of the loop rather than a crossing.
func hasRepeatedInterior(c chain.Chain) bool {
	if c.IsLoop() {
		return chain.IsSelfIntersecting(c[:c.Len()-1])
	}
	return chain.IsSelfIntersecting(c)
}

// LongestLinks returns the count longest links, longest first
func LongestLinks(result *ChainResult, count int) []LinkInfo {
	links := make([]LinkInfo, len(result.Links))
	copy(links, result.Links)

	sort.SliceStable(links, func(i, j int) bool {
		return links[i].Length > links[j].Length
	})

	if count > len(links) {
		count = len(links)
	}
	return links[:count]
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
