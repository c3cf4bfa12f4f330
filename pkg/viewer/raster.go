package viewer

import (
	"image"
	"image/color"
	"math"

	"github.com/philipparndt/polychain/pkg/geometry"
	"github.com/philipparndt/polychain/pkg/mesh"
	"github.com/philipparndt/polychain/pkg/scene"
)

const ambient = 0.25

var (
	axisX = color.RGBA{255, 0, 0, 255}
	axisY = color.RGBA{0, 255, 0, 255}
	axisZ = color.RGBA{0, 0, 255, 255}
)

// RenderScene rasterizes the scene's chain group and axes into an image
// of the given size using a depth buffer. Solid materials are lit by the
// scene light, wireframe materials are drawn as triangle edges.
func RenderScene(sc *scene.Context, cam *Camera, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	bg := sc.Background
	bg.A = 255
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = bg.R, bg.G, bg.B, bg.A
	}

	zbuffer := make([]float64, width*height)
	for i := range zbuffer {
		zbuffer[i] = math.Inf(1)
	}

	w, h := float64(width), float64(height)
	lightDir := sc.Light.Direction(sc.Camera.Target)

	for _, seg := range sc.Group().Segments {
		material := seg.Material
		if material == nil {
			material = mesh.DefaultMaterial()
		}

		for _, tri := range seg.Geometry.Triangles() {
			var pts [3][3]float64
			visible := true
			for i, v := range tri.Vertices() {
				x, y, z, ok := cam.Project(v, w, h)
				if !ok {
					visible = false
					break
				}
				pts[i] = [3]float64{x, y, z}
			}
			if !visible {
				continue
			}

			if material.Wireframe {
				for i := 0; i < 3; i++ {
					a, b := pts[i], pts[(i+1)%3]
					drawLine(img, int(a[0]), int(a[1]), int(b[0]), int(b[1]), material.Color)
				}
				continue
			}

			col := shade(material, sc.Light.Color, tri.CalculateNormal(), lightDir)
			fillTriangle(img, zbuffer, pts, col)
		}
	}

	if sc.AxesLength > 0 {
		drawAxes(img, cam, sc.AxesLength, w, h)
	}
	return img
}

// shade applies two-sided diffuse lighting. Tubes have open ends, so
// back faces are visible and lit like front faces.
func shade(m *mesh.Material, light color.RGBA, normal, lightDir geometry.Vector3) color.RGBA {
	if m.Shading == mesh.ShadingBasic {
		return m.Color
	}
	diffuse := math.Abs(normal.Dot(lightDir.Mul(-1)))
	intensity := ambient + (1-ambient)*diffuse

	channel := func(base, l uint8) uint8 {
		return uint8(math.Min(255, float64(base)*intensity*float64(l)/255))
	}
	return color.RGBA{
		R: channel(m.Color.R, light.R),
		G: channel(m.Color.G, light.G),
		B: channel(m.Color.B, light.B),
		A: 255,
	}
}

func drawAxes(img *image.RGBA, cam *Camera, length, w, h float64) {
	axes := []struct {
		end geometry.Vector3
		col color.RGBA
	}{
		{geometry.NewVector3(length, 0, 0), axisX},
		{geometry.NewVector3(0, length, 0), axisY},
		{geometry.NewVector3(0, 0, length), axisZ},
	}

	ox, oy, _, ok := cam.Project(geometry.Origin, w, h)
	if !ok {
		return
	}
	for _, a := range axes {
		x, y, _, ok := cam.Project(a.end, w, h)
		if !ok {
			continue
		}
		drawLine(img, int(ox), int(oy), int(x), int(y), a.col)
	}
}

// fillTriangle fills a screen space triangle with depth testing using
// barycentric coordinates over its bounding rectangle
func fillTriangle(img *image.RGBA, zbuffer []float64, pts [3][3]float64, col color.RGBA) {
	bounds := img.Bounds()
	width := bounds.Max.X

	minX := int(math.Max(0, math.Floor(math.Min(pts[0][0], math.Min(pts[1][0], pts[2][0])))))
	maxX := int(math.Min(float64(bounds.Max.X-1), math.Ceil(math.Max(pts[0][0], math.Max(pts[1][0], pts[2][0])))))
	minY := int(math.Max(0, math.Floor(math.Min(pts[0][1], math.Min(pts[1][1], pts[2][1])))))
	maxY := int(math.Min(float64(bounds.Max.Y-1), math.Ceil(math.Max(pts[0][1], math.Max(pts[1][1], pts[2][1])))))

	area := edge(pts[0], pts[1], pts[2][0], pts[2][1])
	if area == 0 {
		return
	}

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			w0 := edge(pts[1], pts[2], px, py) / area
			w1 := edge(pts[2], pts[0], px, py) / area
			w2 := edge(pts[0], pts[1], px, py) / area
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			z := w0*pts[0][2] + w1*pts[1][2] + w2*pts[2][2]
			idx := y*width + x
			if z < zbuffer[idx] {
				zbuffer[idx] = z
				img.SetRGBA(x, y, col)
			}
		}
	}
}

func edge(a, b [3]float64, px, py float64) float64 {
	return (b[0]-a[0])*(py-a[1]) - (b[1]-a[1])*(px-a[0])
}

// drawLine draws a line using Bresenham's algorithm
func drawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	bounds := img.Bounds()
	if outOfRange(x1, y1) || outOfRange(x2, y2) {
		return
	}

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	for {
		if (image.Point{X: x1, Y: y1}).In(bounds) {
			img.SetRGBA(x1, y1, col)
		}
		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// outOfRange rejects endpoints projected from points close to the camera
func outOfRange(x, y int) bool {
	const limit = 1 << 15
	return abs(x) > limit || abs(y) > limit
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
