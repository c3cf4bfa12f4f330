package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/polychain/pkg/geometry"
	"github.com/philipparndt/polychain/pkg/scene"
)

const maxElevation = 1.5

// setupCamera places the orbit camera where the scene camera is
func (app *App) setupCamera(sc scene.Camera) {
	target := toRL(sc.Target)
	offset := sc.Position.Sub(sc.Target)
	distance := math.Max(offset.Length(), 0.1)

	app.Camera.target = target
	app.Camera.distance = float32(distance)
	app.Camera.angleX = float32(math.Asin(math.Max(-1, math.Min(1, offset.Y/distance))))
	app.Camera.angleY = float32(math.Atan2(offset.X, offset.Z))

	app.Camera.defaultDist = app.Camera.distance
	app.Camera.defaultAngleX = app.Camera.angleX
	app.Camera.defaultAngleY = app.Camera.angleY
	app.Camera.defaultTarget = target

	app.Camera.camera = rl.Camera3D{
		Position:   toRL(sc.Position),
		Target:     target,
		Up:         toRL(sc.Up),
		Fovy:       float32(sc.FOV),
		Projection: rl.CameraPerspective,
	}
}

// resetCameraView resets the camera to the default view
func (app *App) resetCameraView() {
	app.Camera.distance = app.Camera.defaultDist
	app.Camera.angleX = app.Camera.defaultAngleX
	app.Camera.angleY = app.Camera.defaultAngleY
	app.Camera.target = app.Camera.defaultTarget
}

// frameChain centers the view on the loaded chain
func (app *App) frameChain() {
	bbox := app.Chain.group.Bounds()
	if bbox.IsEmpty() {
		return
	}
	app.Camera.target = toRL(bbox.Center())
	fov := float64(app.Camera.camera.Fovy) * math.Pi / 180
	app.Camera.distance = float32(math.Max(bbox.Diagonal()/2/math.Sin(fov/2), 0.1))
}

// setCameraTopView looks straight down the Y axis
func (app *App) setCameraTopView() {
	app.Camera.angleX = maxElevation
	app.Camera.angleY = 0
}

// setCameraFrontView looks along -Z
func (app *App) setCameraFrontView() {
	app.Camera.angleX = 0
	app.Camera.angleY = 0
}

// setCameraSideView looks along -X
func (app *App) setCameraSideView() {
	app.Camera.angleX = 0
	app.Camera.angleY = math.Pi / 2
}

// updateCamera updates camera position based on angles
func (app *App) updateCamera() {
	x := app.Camera.distance * float32(math.Cos(float64(app.Camera.angleX))) * float32(math.Sin(float64(app.Camera.angleY)))
	y := app.Camera.distance * float32(math.Sin(float64(app.Camera.angleX)))
	z := app.Camera.distance * float32(math.Cos(float64(app.Camera.angleX))) * float32(math.Cos(float64(app.Camera.angleY)))

	app.Camera.camera.Position = rl.Vector3{
		X: app.Camera.target.X + x,
		Y: app.Camera.target.Y + y,
		Z: app.Camera.target.Z + z,
	}
	app.Camera.camera.Target = app.Camera.target
}

// doPan moves the camera target in the view plane
func (app *App) doPan(delta rl.Vector2) {
	forward := rl.Vector3Normalize(rl.Vector3Subtract(app.Camera.target, app.Camera.camera.Position))
	right := rl.Vector3Normalize(rl.Vector3CrossProduct(forward, app.Camera.camera.Up))
	up := rl.Vector3Normalize(rl.Vector3CrossProduct(right, forward))

	panSpeed := app.Camera.distance * 0.001

	app.Camera.target = rl.Vector3Add(app.Camera.target, rl.Vector3Scale(right, -delta.X*panSpeed))
	app.Camera.target = rl.Vector3Add(app.Camera.target, rl.Vector3Scale(up, delta.Y*panSpeed))
}

// doZoom scales the orbit distance, staying inside the clip range
func (app *App) doZoom(wheel float32) {
	app.Camera.distance *= 1.0 - wheel*0.05
	if app.Camera.distance < app.near {
		app.Camera.distance = app.near
	}
	if app.Camera.distance > app.far {
		app.Camera.distance = app.far
	}
}

func toRL(v geometry.Vector3) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}
