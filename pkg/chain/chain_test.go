package chain

import (
	"testing"

	"github.com/philipparndt/polychain/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinksPreserveOrder(t *testing.T) {
	c := Chain{
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 1, 1),
		geometry.NewVector3(0, 0, 0),
	}

	links := c.Links()
	require.Len(t, links, 2)
	assert.Equal(t, Link{Index: 0, Start: c[0], End: c[1]}, links[0])
	assert.Equal(t, Link{Index: 1, Start: c[1], End: c[2]}, links[1])
}

func TestLinksShortChains(t *testing.T) {
	assert.Empty(t, Chain(nil).Links())
	assert.Empty(t, Chain{geometry.NewVector3(1, 2, 3)}.Links())
}

func TestWithClosureDoesNotMutate(t *testing.T) {
	c := make(Chain, 2, 8)
	c[0] = geometry.NewVector3(1, 0, 0)
	c[1] = geometry.NewVector3(0, 1, 0)

	closed := c.WithClosure()
	require.Len(t, closed, 3)
	assert.Equal(t, geometry.Origin, closed[2])
	assert.Len(t, c, 2)

	// appending to the original must not leak into the closed copy
	c = append(c, geometry.NewVector3(9, 9, 9))
	assert.Equal(t, geometry.Origin, closed[2])
}

func TestStaticChain(t *testing.T) {
	c := Static()
	require.Len(t, c, 11)
	assert.True(t, c.IsLoop())
	assert.Len(t, c.Links(), 10)

	c[0] = geometry.NewVector3(5, 5, 5)
	assert.Equal(t, geometry.Origin, Static()[0], "Static must hand out copies")
}

func TestChainLength(t *testing.T) {
	c := Chain{
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(3, 4, 0),
		geometry.NewVector3(3, 4, 12),
	}
	assert.InDelta(t, 17.0, c.Length(), 1e-10)
}
