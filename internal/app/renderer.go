package app

import (
	"image/color"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/polychain/pkg/geometry"
	"github.com/philipparndt/polychain/pkg/mesh"
	"github.com/philipparndt/polychain/pkg/scene"
)

const ambient = 0.3

// segmentToRaylibMesh converts a segment's tube to a Raylib mesh with
// lighting baked into the vertex colors
func segmentToRaylibMesh(seg *mesh.Segment, light scene.Light, target geometry.Vector3) rl.Mesh {
	geom := seg.Geometry
	triangleCount := len(geom.Indices)
	vertexCount := triangleCount * 3

	m := rl.Mesh{
		VertexCount:   int32(vertexCount),
		TriangleCount: int32(triangleCount),
	}

	vertices := make([]float32, 0, vertexCount*3)
	normals := make([]float32, 0, vertexCount*3)
	texcoords := make([]float32, 0, vertexCount*2)
	colors := make([]uint8, 0, vertexCount*4)

	material := seg.Material
	if material == nil {
		material = mesh.DefaultMaterial()
	}
	lightDir := light.Direction(target)

	for _, face := range geom.Indices {
		for _, i := range face {
			v, n, uv := geom.Vertices[i], geom.Normals[i], geom.UVs[i]
			c := bakeColor(material, light.Color, n, lightDir)

			vertices = append(vertices, float32(v.X), float32(v.Y), float32(v.Z))
			normals = append(normals, float32(n.X), float32(n.Y), float32(n.Z))
			texcoords = append(texcoords, float32(uv[0]), float32(uv[1]))
			colors = append(colors, c.R, c.G, c.B, c.A)
		}
	}

	if len(vertices) > 0 {
		m.Vertices = &vertices[0]
		m.Normals = &normals[0]
		m.Texcoords = &texcoords[0]
		m.Colors = &colors[0]
	}

	rl.UploadMesh(&m, false)
	return m
}

// bakeColor computes the lit vertex color. Normals point out of the tube,
// so faces turned away from the light keep only the ambient term.
func bakeColor(m *mesh.Material, light color.RGBA, normal, lightDir geometry.Vector3) color.RGBA {
	if m.Shading == mesh.ShadingBasic {
		return m.Color
	}
	intensity := math.Max(ambient, -normal.Dot(lightDir))

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

// uploadGroup uploads every segment of the group
func (app *App) uploadGroup(group *mesh.Group) []rl.Mesh {
	meshes := make([]rl.Mesh, 0, group.Len())
	for _, seg := range group.Segments {
		meshes = append(meshes, segmentToRaylibMesh(seg, app.scene.Light, app.scene.Camera.Target))
	}
	return meshes
}

func unloadMeshes(meshes []rl.Mesh) {
	for i := range meshes {
		rl.UnloadMesh(&meshes[i])
	}
}

// drawChain draws all segment meshes
func (app *App) drawChain() {
	if app.Chain.group == nil {
		return
	}
	wireframe := app.View.showWireframe || app.scene.Material.Wireframe
	if wireframe {
		app.drawWireframe()
		return
	}
	for _, m := range app.Chain.meshes {
		rl.DrawMesh(m, app.Chain.material, rl.MatrixIdentity())
	}
}

// drawAxes draws the X, Y and Z axes from the origin in red, green and blue
func (app *App) drawAxes() {
	l := float32(app.scene.AxesLength)
	origin := rl.Vector3{}
	rl.DrawLine3D(origin, rl.Vector3{X: l}, rl.Red)
	rl.DrawLine3D(origin, rl.Vector3{Y: l}, rl.Green)
	rl.DrawLine3D(origin, rl.Vector3{Z: l}, rl.Blue)
}
