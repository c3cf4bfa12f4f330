package geometry

import (
	"math"
	"testing"
)

func TestTriangleArea(t *testing.T) {
	// Create a right triangle with sides 3, 4, 5
	tri := NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 4, 0),
	)

	area := tri.Area()
	expected := 6.0 // (3 * 4) / 2 = 6

	if math.Abs(area-expected) > 1e-10 {
		t.Errorf("Area failed: expected %v, got %v", expected, area)
	}
}

func TestTriangleEdgeLengths(t *testing.T) {
	tri := NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 4, 0),
	)

	lengths := tri.EdgeLengths()

	// Expected lengths: 3, 5, 4 (Pythagorean triple)
	if math.Abs(lengths[0]-3.0) > 1e-10 {
		t.Errorf("Edge 0 length failed: expected 3.0, got %v", lengths[0])
	}
	if math.Abs(lengths[1]-5.0) > 1e-10 {
		t.Errorf("Edge 1 length failed: expected 5.0, got %v", lengths[1])
	}
	if math.Abs(lengths[2]-4.0) > 1e-10 {
		t.Errorf("Edge 2 length failed: expected 4.0, got %v", lengths[2])
	}
}

func TestTrianglePerimeter(t *testing.T) {
	tri := NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 4, 0),
	)

	perimeter := tri.Perimeter()
	expected := 12.0 // 3 + 4 + 5 = 12

	if math.Abs(perimeter-expected) > 1e-10 {
		t.Errorf("Perimeter failed: expected %v, got %v", expected, perimeter)
	}
}

func TestTriangleCenter(t *testing.T) {
	tri := NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 3, 0),
	)

	center := tri.Center()
	expected := NewVector3(1, 1, 0)

	if center != expected {
		t.Errorf("Center failed: expected %v, got %v", expected, center)
	}
}

func TestTriangleVerticesWindingOrder(t *testing.T) {
	a := NewVector3(1, 0, 0)
	b := NewVector3(0, 1, 0)
	c := NewVector3(0, 0, 1)
	tri := NewTriangle(Vector3{}, a, b, c)

	verts := tri.Vertices()
	if verts[0] != a || verts[1] != b || verts[2] != c {
		t.Errorf("Vertices failed: expected [%v %v %v], got %v", a, b, c, verts)
	}
}

func TestTriangleCalculateNormal(t *testing.T) {
	tri := NewTriangle(
		Vector3{},
		NewVector3(0, 0, 0),
		NewVector3(2, 0, 0),
		NewVector3(0, 2, 0),
	)

	n := tri.CalculateNormal()
	if !n.ApproxEqual(NewVector3(0, 0, 1), 1e-10) {
		t.Errorf("CalculateNormal failed: expected (0, 0, 1), got %v", n)
	}

	// Reversed winding flips the normal
	flipped := NewTriangle(Vector3{}, tri.V1, tri.V3, tri.V2).CalculateNormal()
	if !flipped.ApproxEqual(NewVector3(0, 0, -1), 1e-10) {
		t.Errorf("CalculateNormal reversed failed: expected (0, 0, -1), got %v", flipped)
	}
}

func TestTriangleAreaTilted(t *testing.T) {
	// Equilateral triangle spanning the unit axes, side sqrt(2)
	tri := NewTriangle(
		Vector3{},
		NewVector3(1, 0, 0),
		NewVector3(0, 1, 0),
		NewVector3(0, 0, 1),
	)

	expected := math.Sqrt(3) / 2
	if math.Abs(tri.Area()-expected) > 1e-10 {
		t.Errorf("Area failed: expected %v, got %v", expected, tri.Area())
	}
}

func TestTriangleAreaDegenerate(t *testing.T) {
	tri := NewTriangle(
		Vector3{},
		NewVector3(0, 0, 0),
		NewVector3(1, 1, 1),
		NewVector3(2, 2, 2),
	)

	if tri.Area() != 0 {
		t.Errorf("Area failed: collinear corners should have zero area, got %v", tri.Area())
	}
}
