package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

type edgeKey struct {
	seg  int
	a, b int
}

// drawWireframe renders every tube as its triangle edges in the material
// color. Edges shared by two faces are drawn once.
func (app *App) drawWireframe() {
	c := app.scene.Material.Color
	wireColor := rl.NewColor(c.R, c.G, c.B, 255)

	drawn := make(map[edgeKey]struct{})
	for s, seg := range app.Chain.group.Segments {
		geom := seg.Geometry
		for _, face := range geom.Indices {
			for i := 0; i < 3; i++ {
				a, b := face[i], face[(i+1)%3]
				if a > b {
					a, b = b, a
				}
				key := edgeKey{seg: s, a: a, b: b}
				if _, ok := drawn[key]; ok {
					continue
				}
				drawn[key] = struct{}{}
				rl.DrawLine3D(toRL(geom.Vertices[a]), toRL(geom.Vertices[b]), wireColor)
			}
		}
	}
}
