package chain

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/philipparndt/polychain/pkg/geometry"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	// LinkLength is the distance between neighbouring lattice nodes
	LinkLength = 1.7320508075688772
	epsilon    = 1.0e-12
)

var (
	// ErrInvalidLength is returned for chain lengths the walk cannot close
	ErrInvalidLength = errors.New("invalid chain length")
	// ErrTooManyAttempts is returned when closure was not reached within the cap
	ErrTooManyAttempts = errors.New("too many attempts to generate a closed chain")
)

// Directions are the eight steps of the body-centered cubic lattice,
// ordered as binary counts with -1 for 0 and +1 for 1.
var Directions = func() [8]Point {
	var dirs [8]Point
	for i := range dirs {
		var c [3]float64
		for j := 0; j < 3; j++ {
			bit := (i >> (2 - j)) & 1
			c[j] = float64(2*bit - 1)
		}
		dirs[i] = geometry.NewVector3(c[0], c[1], c[2])
	}
	return dirs
}()

// NewRand returns a deterministic random source for the given seed
func NewRand(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}

// StepWeights returns the probability of each direction when n steps remain
// and the walk is at node. Each weight is the product over the coordinates
// of (n - d_j*x_j) / (2n); a weight drops to zero as soon as a factor turns
// it negative. Weights are renormalized when any of them is zero.
func StepWeights(n int, node Point) [8]float64 {
	var probs [8]float64
	nf := float64(n)
	anyZero := false

	for i, d := range Directions {
		p := 1.0
		for j := 0; j < 3; j++ {
			p *= (nf - d.Component(j)*node.Component(j)) / (2 * nf)
			if p < 0 {
				p = 0
			}
		}
		probs[i] = p
		if p == 0 {
			anyZero = true
		}
	}

	if anyZero {
		sum := 0.0
		for _, p := range probs {
			sum += p
		}
		if sum > 0 {
			for i := range probs {
				probs[i] /= sum
			}
		}
	}
	return probs
}

// GenerateChain returns a random walk of n nodes starting at the origin.
// The walk is biased towards returning home and never steps straight back
// unless that is the only possible move. It is not guaranteed to be closed.
func GenerateChain(n int, src rand.Source) (Chain, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}

	node := geometry.Origin
	c := make(Chain, 0, n)
	c = append(c, node)

	var dir Point
	for i := 1; i < n; i++ {
		probs := StepWeights(n-i, node)
		dist := distuv.NewCategorical(probs[:], src)

		idx := int(dist.Rand())
		for dir.Add(Directions[idx]).IsZero() {
			if math.Abs(probs[idx]-1.0) < epsilon {
				break
			}
			idx = int(dist.Rand())
		}

		dir = Directions[idx]
		node = node.Add(dir)
		c = append(c, node)
	}
	return c, nil
}

// IsClosed reports whether the last node is one lattice step from the first
func IsClosed(c Chain) bool {
	if len(c) < 2 {
		return false
	}
	return math.Abs(c[0].Distance(c[len(c)-1])-LinkLength) < epsilon
}

// IsSelfIntersecting reports whether any vertex occurs more than once
func IsSelfIntersecting(c Chain) bool {
	seen := make(map[Point]struct{}, len(c))
	for _, p := range c {
		if _, ok := seen[p]; ok {
			return true
		}
		seen[p] = struct{}{}
	}
	return false
}

// GenerateClosedChain draws walks of n nodes until one is closed and
// self-avoiding, then appends the origin. It returns the chain and the
// number of rejected walks. A walk with an odd node count can never close,
// so odd n is rejected up front. maxAttempts <= 0 means no cap.
func GenerateClosedChain(ctx context.Context, n int, src rand.Source, maxAttempts int) (Chain, int, error) {
	if n < 2 || n%2 != 0 {
		return nil, 0, fmt.Errorf("%w: %d (closed chains need an even node count >= 2)", ErrInvalidLength, n)
	}

	attempts := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, attempts, err
		}

		c, err := GenerateChain(n, src)
		if err != nil {
			return nil, attempts, err
		}
		if IsClosed(c) && !IsSelfIntersecting(c) {
			return c.WithClosure(), attempts, nil
		}

		attempts++
		if maxAttempts > 0 && attempts >= maxAttempts {
			return nil, attempts, fmt.Errorf("%w: gave up after %d", ErrTooManyAttempts, attempts)
		}
	}
}

// TrialResult summarizes repeated closed chain generation
type TrialResult struct {
	Attempts []int
	Average  float64
}

// RunTrials generates closed chains repeatedly and records how many walks
// each one took. progress, when not nil, is called after every trial.
func RunTrials(ctx context.Context, n, trials int, src rand.Source, progress func(trial, attempts int)) (*TrialResult, error) {
	result := &TrialResult{Attempts: make([]int, 0, trials)}
	total := 0
	for i := 0; i < trials; i++ {
		_, attempts, err := GenerateClosedChain(ctx, n, src, 0)
		if err != nil {
			return nil, fmt.Errorf("trial %d: %w", i+1, err)
		}
		result.Attempts = append(result.Attempts, attempts)
		total += attempts
		if progress != nil {
			progress(i+1, attempts)
		}
	}
	if trials > 0 {
		result.Average = float64(total) / float64(trials)
	}
	return result, nil
}
