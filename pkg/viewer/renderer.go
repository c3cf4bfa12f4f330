// Package viewer draws chain scenes in software for the fyne front end.
package viewer

import (
	"image"
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/polychain/pkg/geometry"
	"github.com/philipparndt/polychain/pkg/scene"
)

// pickRadius is how close, in pixels, a tap must land to select a vertex
const pickRadius = 20

// ChainView is a fyne widget showing a scene's chain group
type ChainView struct {
	widget.BaseWidget
	scene  *scene.Context
	camera *Camera

	raster    *canvas.Raster
	marker    *canvas.Circle
	selected  int
	dragStart *fyne.Position
	dragging  bool
	width     float64
	height    float64
	onSelect  func(index int, point geometry.Vector3)
}

// NewChainView creates a view of sc
func NewChainView(sc *scene.Context) *ChainView {
	v := &ChainView{
		scene:    sc,
		camera:   NewCamera(sc.Camera),
		selected: -1,
		width:    float64(sc.Width),
		height:   float64(sc.Height),
	}
	v.raster = canvas.NewRaster(func(w, h int) image.Image {
		return RenderScene(v.scene, v.camera, w, h)
	})
	v.marker = canvas.NewCircle(color.RGBA{255, 0, 0, 255})
	v.marker.StrokeColor = color.White
	v.marker.StrokeWidth = 2
	v.marker.Hide()
	v.ExtendBaseWidget(v)
	return v
}

// Camera returns the view's orbit camera
func (v *ChainView) Camera() *Camera {
	return v.camera
}

// SetOnSelect sets the callback for vertex selection
func (v *ChainView) SetOnSelect(callback func(index int, point geometry.Vector3)) {
	v.onSelect = callback
}

// Selected returns the index of the selected chain vertex, or -1
func (v *ChainView) Selected() int {
	return v.selected
}

// ClearSelection removes the vertex marker
func (v *ChainView) ClearSelection() {
	v.selected = -1
	v.Refresh()
}

// CreateRenderer creates the renderer for the widget
func (v *ChainView) CreateRenderer() fyne.WidgetRenderer {
	return &chainViewRenderer{view: v}
}

// Dragged orbits the camera
func (v *ChainView) Dragged(event *fyne.DragEvent) {
	if v.dragStart != nil {
		deltaX := event.Position.X - v.dragStart.X
		deltaY := event.Position.Y - v.dragStart.Y
		v.camera.Rotate(float64(deltaY)*0.01, float64(-deltaX)*0.01)
		v.Refresh()
	}
	pos := event.Position
	v.dragStart = &pos
	v.dragging = true
}

// DragEnd handles the end of a drag
func (v *ChainView) DragEnd() {
	v.dragStart = nil
	v.dragging = false
}

// Scrolled zooms the camera
func (v *ChainView) Scrolled(event *fyne.ScrollEvent) {
	v.camera.Zoom(-float64(event.Scrolled.DY) * 0.001)
	v.Refresh()
}

// Tapped selects the chain vertex nearest to the tap
func (v *ChainView) Tapped(event *fyne.PointEvent) {
	if v.dragging {
		return
	}

	index, point, dist := v.nearestVertex(float64(event.Position.X), float64(event.Position.Y))
	if index < 0 || dist > pickRadius {
		return
	}

	v.selected = index
	v.Refresh()
	if v.onSelect != nil {
		v.onSelect(index, point)
	}
}

// vertices lists the chain points in order as recovered from the segments
func (v *ChainView) vertices() []geometry.Vector3 {
	segments := v.scene.Group().Segments
	if len(segments) == 0 {
		return nil
	}
	points := make([]geometry.Vector3, 0, len(segments)+1)
	points = append(points, segments[0].Start)
	for _, s := range segments {
		points = append(points, s.End)
	}
	return points
}

func (v *ChainView) nearestVertex(screenX, screenY float64) (int, geometry.Vector3, float64) {
	best := -1
	var bestPoint geometry.Vector3
	minDist := math.MaxFloat64

	for i, p := range v.vertices() {
		x, y, _, ok := v.camera.Project(p, v.width, v.height)
		if !ok {
			continue
		}
		if d := math.Hypot(x-screenX, y-screenY); d < minDist {
			best, bestPoint, minDist = i, p, d
		}
	}
	return best, bestPoint, minDist
}

type chainViewRenderer struct {
	view *ChainView
}

func (r *chainViewRenderer) Layout(size fyne.Size) {
	r.view.width = float64(size.Width)
	r.view.height = float64(size.Height)
	r.view.raster.Resize(size)
	r.placeMarker()
}

func (r *chainViewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (r *chainViewRenderer) Refresh() {
	r.placeMarker()
	r.view.raster.Refresh()
	r.view.marker.Refresh()
}

func (r *chainViewRenderer) placeMarker() {
	v := r.view
	points := v.vertices()
	if v.selected < 0 || v.selected >= len(points) {
		v.marker.Hide()
		return
	}

	x, y, _, ok := v.camera.Project(points[v.selected], v.width, v.height)
	if !ok {
		v.marker.Hide()
		return
	}
	size := float32(10)
	v.marker.Resize(fyne.NewSize(size, size))
	v.marker.Move(fyne.NewPos(float32(x)-size/2, float32(y)-size/2))
	v.marker.Show()
}

func (r *chainViewRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.view.raster, r.view.marker}
}

func (r *chainViewRenderer) Destroy() {}
