package viewer

import (
	"math"

	"github.com/philipparndt/polychain/pkg/geometry"
	"github.com/philipparndt/polychain/pkg/scene"
)

const (
	minDistance  = 0.1
	maxElevation = math.Pi/2 - 0.1
)

// Camera is an orbit camera around a target point
type Camera struct {
	Position  geometry.Vector3
	Target    geometry.Vector3
	Up        geometry.Vector3
	FOV       float64 // vertical field of view in radians
	Near      float64
	Far       float64
	Distance  float64
	RotationX float64 // elevation
	RotationY float64 // azimuth
}

// NewCamera creates an orbit camera matching a scene camera
func NewCamera(sc scene.Camera) *Camera {
	offset := sc.Position.Sub(sc.Target)
	distance := math.Max(offset.Length(), minDistance)

	up := sc.Up
	if up.IsZero() {
		up = geometry.NewVector3(0, 1, 0)
	}

	c := &Camera{
		Target:    sc.Target,
		Up:        up,
		FOV:       sc.FOVRadians(),
		Near:      sc.Near,
		Far:       sc.Far,
		Distance:  distance,
		RotationX: clamp(math.Asin(clamp(offset.Y/distance, -1, 1)), -maxElevation, maxElevation),
		RotationY: math.Atan2(offset.X, offset.Z),
	}
	c.UpdatePosition()
	return c
}

// UpdatePosition places the camera on its orbit
func (c *Camera) UpdatePosition() {
	x := c.Distance * math.Cos(c.RotationX) * math.Sin(c.RotationY)
	y := c.Distance * math.Sin(c.RotationX)
	z := c.Distance * math.Cos(c.RotationX) * math.Cos(c.RotationY)

	c.Position = c.Target.Add(geometry.NewVector3(x, y, z))
}

// Rotate orbits by the given angles
func (c *Camera) Rotate(deltaX, deltaY float64) {
	c.RotationX = clamp(c.RotationX+deltaX, -maxElevation, maxElevation)
	c.RotationY += deltaY
	c.UpdatePosition()
}

// Zoom scales the orbit distance
func (c *Camera) Zoom(delta float64) {
	c.Distance *= 1.0 + delta
	if c.Distance < minDistance {
		c.Distance = minDistance
	}
	if c.Far > 0 && c.Distance > c.Far {
		c.Distance = c.Far
	}
	c.UpdatePosition()
}

// Frame points the camera at a bounding box so all of it is in view
func (c *Camera) Frame(bbox geometry.BoundingBox) {
	if bbox.IsEmpty() {
		return
	}
	c.Target = bbox.Center()
	radius := bbox.Diagonal() / 2
	c.Distance = math.Max(radius/math.Sin(c.FOV/2), minDistance)
	c.UpdatePosition()
}

func (c *Camera) basis() (forward, right, up geometry.Vector3) {
	forward = c.Target.Sub(c.Position).Normalize()
	right = forward.Cross(c.Up).Normalize()
	up = right.Cross(forward).Normalize()
	return forward, right, up
}

// Project maps a world point to screen coordinates. depth is the distance
// along the view direction; visible is false outside the near/far range.
func (c *Camera) Project(point geometry.Vector3, width, height float64) (x, y, depth float64, visible bool) {
	forward, right, up := c.basis()

	relative := point.Sub(c.Position)
	cx := relative.Dot(right)
	cy := relative.Dot(up)
	depth = relative.Dot(forward)

	visible = depth >= c.Near && (c.Far <= 0 || depth <= c.Far)
	z := math.Max(depth, 1e-6)

	aspect := width / height
	fovScale := math.Tan(c.FOV / 2)

	x = (cx/(z*fovScale*aspect))*(width/2) + width/2
	y = (-cy/(z*fovScale))*(height/2) + height/2
	return x, y, depth, visible
}

// Unproject converts screen coordinates to a world space ray
func (c *Camera) Unproject(screenX, screenY, width, height float64) (origin, direction geometry.Vector3) {
	ndcX := (2.0 * screenX / width) - 1.0
	ndcY := 1.0 - (2.0 * screenY / height)

	aspect := width / height
	fovScale := math.Tan(c.FOV / 2)

	forward, right, up := c.basis()
	dir := forward.Add(right.Mul(ndcX * fovScale * aspect)).Add(up.Mul(ndcY * fovScale))
	return c.Position, dir.Normalize()
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
