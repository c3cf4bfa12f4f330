package analysis

import (
	"math"
	"testing"

	"github.com/philipparndt/polychain/pkg/chain"
	"github.com/philipparndt/polychain/pkg/geometry"
	"github.com/philipparndt/polychain/pkg/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeStaticChain(t *testing.T) {
	c := chain.Static()
	group := mesh.BuildChain(c)

	result := AnalyzeChain(c, group)
	assert.Equal(t, 11, result.PointCount)
	assert.Equal(t, 10, result.SegmentCount)
	assert.True(t, result.IsLoop)
	assert.False(t, result.SelfIntersecting)
	assert.Equal(t, 0, result.NonFinitePoints)
	assert.Equal(t, 160, result.TriangleCount)
	assert.Greater(t, result.SurfaceArea, 0.0)

	assert.Equal(t, geometry.NewVector3(-2, -2, -5), result.BoundingBox.Min)
	assert.Equal(t, geometry.NewVector3(0, 2, 1), result.BoundingBox.Max)
	assert.InDelta(t, math.Sqrt(3), result.MinLinkLength, 1e-12)
	assert.InDelta(t, result.TotalLength/10, result.AvgLinkLength, 1e-12)
}

func TestAnalyzeGeneratedChainIsLatticeClosed(t *testing.T) {
	c, err := (&chain.GeneratorSource{Length: 8, Seed: 5}).Load(t.Context())
	require.NoError(t, err)

	result := AnalyzeChain(c, nil)
	assert.True(t, result.LatticeClosed)
	assert.False(t, result.SelfIntersecting)
	assert.Equal(t, 0, result.TriangleCount)
}

func TestAnalyzeShortChains(t *testing.T) {
	result := AnalyzeChain(nil, mesh.BuildChain(nil))
	assert.Equal(t, 0, result.SegmentCount)
	assert.Equal(t, 0.0, result.MinLinkLength)
	assert.Equal(t, 0.0, result.AvgLinkLength)

	single := AnalyzeChain(chain.Chain{geometry.NewVector3(1, 1, 1)}, nil)
	assert.Equal(t, 1, single.PointCount)
	assert.False(t, single.IsLoop)
}

func TestAnalyzeCountsNonFinite(t *testing.T) {
	c := chain.Chain{geometry.NewVector3(math.NaN(), 0, 0), geometry.NewVector3(1, 0, 0)}
	assert.Equal(t, 1, AnalyzeChain(c, nil).NonFinitePoints)
}

func TestLongestLinks(t *testing.T) {
	c := chain.Chain{
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(1, 5, 0),
		geometry.NewVector3(1, 5, 2),
	}
	links := LongestLinks(AnalyzeChain(c, nil), 2)
	require.Len(t, links, 2)
	assert.Equal(t, 1, links[0].Index)
	assert.Equal(t, 2, links[1].Index)

	assert.Len(t, LongestLinks(AnalyzeChain(c, nil), 10), 3)
}
