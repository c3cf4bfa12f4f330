package geometry

import "math"

// Frame is an orthonormal basis attached to a point on a path.
// Tangent follows the path, Normal and Binormal span the cross-section.
type Frame struct {
	Tangent  Vector3
	Normal   Vector3
	Binormal Vector3
}

// FrameForTangent builds a frame around a tangent direction. The seed axis is
// the world axis the tangent is least aligned with, so the cross products
// never collapse for a non-zero tangent. A zero tangent yields a zero frame.
func FrameForTangent(tangent Vector3) Frame {
	t := tangent.Normalize()
	if t.IsZero() {
		return Frame{}
	}

	ax, ay, az := math.Abs(t.X), math.Abs(t.Y), math.Abs(t.Z)
	seed := NewVector3(0, 0, 1)
	smallest := math.MaxFloat64
	if ax <= smallest {
		smallest = ax
		seed = NewVector3(1, 0, 0)
	}
	if ay <= smallest {
		smallest = ay
		seed = NewVector3(0, 1, 0)
	}
	if az <= smallest {
		seed = NewVector3(0, 0, 1)
	}

	side := t.Cross(seed).Normalize()
	normal := t.Cross(side)
	binormal := t.Cross(normal)

	return Frame{Tangent: t, Normal: normal, Binormal: binormal}
}
