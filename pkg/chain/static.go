package chain

import "github.com/philipparndt/polychain/pkg/geometry"

// staticPoints is a closed 10-link chain taken from a sample generator run
var staticPoints = [...]Point{
	geometry.NewVector3(0, 0, 0),
	geometry.NewVector3(-1, 1, 1),
	geometry.NewVector3(-2, -2, -2),
	geometry.NewVector3(-1, -1, -3),
	geometry.NewVector3(-2, -2, -4),
	geometry.NewVector3(-1, -1, -5),
	geometry.NewVector3(0, 0, -4),
	geometry.NewVector3(-1, 1, -3),
	geometry.NewVector3(0, 2, -2),
	geometry.NewVector3(-1, 1, -1),
	geometry.NewVector3(0, 0, 0),
}

// Static returns a fresh copy of the built-in sample chain
func Static() Chain {
	out := make(Chain, len(staticPoints))
	copy(out, staticPoints[:])
	return out
}
