package mesh

import (
	"math"
	"testing"

	"github.com/philipparndt/polychain/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildChainSegmentCount(t *testing.T) {
	for n := 0; n <= 12; n++ {
		points := make([]geometry.Vector3, n)
		for i := range points {
			points[i] = geometry.NewVector3(float64(i), float64(i%2), 0)
		}

		group := BuildChain(points)
		expected := 0
		if n >= 2 {
			expected = n - 1
		}
		assert.Equal(t, expected, group.Len(), "n=%d", n)
	}
}

func TestBuildChainScenarioA(t *testing.T) {
	a := geometry.NewVector3(0, 0, 0)
	b := geometry.NewVector3(1, 1, 1)

	group := BuildChain([]geometry.Vector3{a, b, a})
	require.Equal(t, 2, group.Len())

	assert.Equal(t, a, group.Segments[0].Start)
	assert.Equal(t, b, group.Segments[0].End)
	assert.Equal(t, b, group.Segments[1].Start)
	assert.Equal(t, a, group.Segments[1].End)
}

func TestBuildChainPreservesOrderAndInput(t *testing.T) {
	points := []geometry.Vector3{
		geometry.NewVector3(3, 0, 0),
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(1, 0, 0), // duplicates are kept
		geometry.NewVector3(2, 5, 0),
	}
	snapshot := append([]geometry.Vector3(nil), points...)

	group := BuildChain(points)
	require.Equal(t, 3, group.Len())
	for i, s := range group.Segments {
		assert.Equal(t, i, s.Index)
		assert.Equal(t, points[i], s.Start)
		assert.Equal(t, points[i+1], s.End)
	}
	assert.Equal(t, snapshot, points)
}

func TestBuildChainSharesMaterial(t *testing.T) {
	group := BuildChain([]geometry.Vector3{
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(1, 1, 0),
	})

	require.NotNil(t, group.Material)
	assert.Equal(t, HexColor(0xcccccc), group.Material.Color)
	assert.False(t, group.Material.Wireframe)
	assert.Equal(t, ShadingPhong, group.Material.Shading)
	for _, s := range group.Segments {
		assert.Same(t, group.Material, s.Material)
	}
}

func TestBuildChainPassesNonFiniteThrough(t *testing.T) {
	group := BuildChain([]geometry.Vector3{
		geometry.NewVector3(math.NaN(), 0, 0),
		geometry.NewVector3(1, math.Inf(1), 0),
	})
	require.Equal(t, 1, group.Len())
	assert.True(t, math.IsNaN(group.Segments[0].Start.X))
}

func TestBuildChainWithOptions(t *testing.T) {
	material := NewMaterial(0xff0000, true)
	opts := TubeOptions{Radius: 0.5, TubularSegments: 2, RadialSegments: 8}

	group := BuildChainWith([]geometry.Vector3{
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(0, 0, 4),
	}, opts, material)

	require.Equal(t, 1, group.Len())
	assert.Same(t, material, group.Segments[0].Material)
	assert.Equal(t, 2*2*8, group.TriangleCount())
	assert.Len(t, group.Triangles(), 32)

	bbox := group.Bounds()
	assert.InDelta(t, -0.5, bbox.Min.X, 1e-9)
	assert.InDelta(t, 0.5, bbox.Max.X, 1e-9)
	assert.InDelta(t, 4.0, bbox.Max.Z, 1e-9)
}
