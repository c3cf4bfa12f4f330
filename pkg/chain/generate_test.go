package chain

import (
	"context"
	"math"
	"testing"

	"github.com/philipparndt/polychain/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectionsOrder(t *testing.T) {
	assert.Equal(t, geometry.NewVector3(-1, -1, -1), Directions[0])
	assert.Equal(t, geometry.NewVector3(-1, -1, 1), Directions[1])
	assert.Equal(t, geometry.NewVector3(1, -1, -1), Directions[4])
	assert.Equal(t, geometry.NewVector3(1, 1, 1), Directions[7])
}

func TestStepWeightsAtOriginAreUniform(t *testing.T) {
	probs := StepWeights(9, geometry.Origin)
	for _, p := range probs {
		assert.InDelta(t, 1.0/8.0, p, 1e-12)
	}
}

func TestStepWeightsSumToOne(t *testing.T) {
	nodes := []geometry.Vector3{
		geometry.NewVector3(1, 1, 1),
		geometry.NewVector3(3, -1, 1),
		geometry.NewVector3(-2, 2, 0),
		geometry.NewVector3(5, 5, -5),
	}
	for _, node := range nodes {
		for n := 1; n <= 8; n++ {
			probs := StepWeights(n, node)
			sum := 0.0
			for _, p := range probs {
				assert.GreaterOrEqual(t, p, 0.0)
				sum += p
			}
			assert.InDelta(t, 1.0, sum, 1e-9, "n=%d node=%v", n, node)
		}
	}
}

func TestStepWeightsLastStepPointsHome(t *testing.T) {
	// one step left from (1,1,1): only (-1,-1,-1) reaches the origin
	probs := StepWeights(1, geometry.NewVector3(1, 1, 1))
	assert.InDelta(t, 1.0, probs[0], 1e-12)
}

func TestGenerateChainSteps(t *testing.T) {
	src := NewRand(7)
	c, err := GenerateChain(12, src)
	require.NoError(t, err)
	require.Len(t, c, 12)
	assert.Equal(t, geometry.Origin, c[0])

	for _, l := range c.Links() {
		d := l.End.Sub(l.Start)
		assert.Equal(t, 1.0, math.Abs(d.X))
		assert.Equal(t, 1.0, math.Abs(d.Y))
		assert.Equal(t, 1.0, math.Abs(d.Z))
	}
}

func TestGenerateChainInvalidLength(t *testing.T) {
	_, err := GenerateChain(0, NewRand(1))
	assert.ErrorIs(t, err, ErrInvalidLength)
}

func TestGenerateClosedChain(t *testing.T) {
	c, _, err := GenerateClosedChain(context.Background(), 10, NewRand(3), 0)
	require.NoError(t, err)
	require.Len(t, c, 11)

	assert.Equal(t, geometry.Origin, c[len(c)-1])
	assert.True(t, c.IsLoop())
	assert.True(t, IsClosed(c[:len(c)-1]))
	assert.False(t, IsSelfIntersecting(c[:len(c)-1]))
}

func TestGenerateClosedChainRejectsOddLength(t *testing.T) {
	_, _, err := GenerateClosedChain(context.Background(), 9, NewRand(3), 0)
	assert.ErrorIs(t, err, ErrInvalidLength)
}

func TestGenerateClosedChainCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := GenerateClosedChain(ctx, 10, NewRand(3), 0)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestIsClosedAndSelfIntersecting(t *testing.T) {
	open := Chain{geometry.Origin, geometry.NewVector3(1, 1, 1), geometry.NewVector3(2, 2, 2)}
	assert.False(t, IsClosed(open))
	assert.False(t, IsSelfIntersecting(open))

	closed := Chain{geometry.Origin, geometry.NewVector3(1, 1, 1), geometry.NewVector3(2, 0, 0), geometry.NewVector3(1, -1, 1)}
	assert.True(t, IsClosed(closed))

	looped := Chain{geometry.Origin, geometry.NewVector3(1, 1, 1), geometry.Origin}
	assert.True(t, IsSelfIntersecting(looped))
	assert.False(t, IsClosed(Chain{geometry.Origin}))
}

func TestRunTrials(t *testing.T) {
	var seen []int
	result, err := RunTrials(context.Background(), 4, 3, NewRand(11), func(trial, attempts int) {
		seen = append(seen, trial)
	})
	require.NoError(t, err)
	assert.Len(t, result.Attempts, 3)
	assert.Equal(t, []int{1, 2, 3}, seen)

	total := 0
	for _, a := range result.Attempts {
		total += a
	}
	assert.InDelta(t, float64(total)/3, result.Average, 1e-12)
}
