package geometry

import (
	"math"
	"testing"
)

func TestBoundingBoxExtend(t *testing.T) {
	bbox := NewBoundingBox()

	bbox.Extend(NewVector3(1, 2, 3))
	bbox.Extend(NewVector3(4, 5, 6))
	bbox.Extend(NewVector3(-1, 0, 2))

	expectedMin := NewVector3(-1, 0, 2)
	expectedMax := NewVector3(4, 5, 6)

	if bbox.Min != expectedMin {
		t.Errorf("Min failed: expected %v, got %v", expectedMin, bbox.Min)
	}
	if bbox.Max != expectedMax {
		t.Errorf("Max failed: expected %v, got %v", expectedMax, bbox.Max)
	}
}

func TestBoundingBoxEmpty(t *testing.T) {
	bbox := NewBoundingBox()
	if !bbox.IsEmpty() {
		t.Error("new bounding box should be empty")
	}
	if size := bbox.Size(); !size.IsZero() {
		t.Errorf("empty box size should be zero, got %v", size)
	}

	other := NewBoundingBox()
	other.Union(bbox)
	if !other.IsEmpty() {
		t.Error("union with an empty box should stay empty")
	}
}

func TestBoundsOfChainPoints(t *testing.T) {
	bbox := BoundsOf([]Vector3{
		NewVector3(0, 0, 0),
		NewVector3(-2, -2, -4),
		NewVector3(0, 2, -2),
	})

	if center := bbox.Center(); center != NewVector3(-1, 0, -2) {
		t.Errorf("Center failed: got %v", center)
	}
	if dim := bbox.MaxDimension(); math.Abs(dim-4) > 1e-10 {
		t.Errorf("MaxDimension failed: expected 4, got %v", dim)
	}
}
