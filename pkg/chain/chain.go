// Package chain holds the polymer chain model and the sources that supply it.
package chain

import (
	"github.com/philipparndt/polychain/pkg/geometry"
)

// Point is a single chain vertex
type Point = geometry.Vector3

// Chain is an ordered list of points. By convention the first and last
// point are equal, which closes the chain into a loop.
type Chain []Point

// Link is a pair of consecutive chain points
type Link struct {
	Index      int
	Start, End Point
}

// Len returns the number of points
func (c Chain) Len() int {
	return len(c)
}

// Links returns the consecutive point pairs in input order.
// Chains with fewer than two points have no links.
func (c Chain) Links() []Link {
	if len(c) < 2 {
		return nil
	}
	links := make([]Link, 0, len(c)-1)
	for i := 0; i < len(c)-1; i++ {
		links = append(links, Link{Index: i, Start: c[i], End: c[i+1]})
	}
	return links
}

// IsLoop reports whether the chain ends where it starts
func (c Chain) IsLoop() bool {
	return len(c) >= 2 && c[0] == c[len(c)-1]
}

// WithClosure returns a copy of the chain with the origin appended.
// The receiver is left untouched.
func (c Chain) WithClosure() Chain {
	out := make(Chain, len(c), len(c)+1)
	copy(out, c)
	return append(out, geometry.Origin)
}

// Clone returns an independent copy of the chain
func (c Chain) Clone() Chain {
	if c == nil {
		return nil
	}
	out := make(Chain, len(c))
	copy(out, c)
	return out
}

// Bounds returns the bounding box of all points
func (c Chain) Bounds() geometry.BoundingBox {
	return geometry.BoundsOf(c)
}

// Length returns the summed length of all links
func (c Chain) Length() float64 {
	total := 0.0
	for _, l := range c.Links() {
		total += l.Start.Distance(l.End)
	}
	return total
}
