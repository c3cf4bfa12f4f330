package app

import (
	"sync/atomic"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/polychain/pkg/analysis"
	"github.com/philipparndt/polychain/pkg/chain"
	"github.com/philipparndt/polychain/pkg/mesh"
	"github.com/philipparndt/polychain/pkg/watcher"
)

// CameraState holds all camera-related state
type CameraState struct {
	camera        rl.Camera3D
	distance      float32
	angleX        float32
	angleY        float32
	target        rl.Vector3 // can be panned
	defaultDist   float32
	defaultAngleX float32
	defaultAngleY float32
	defaultTarget rl.Vector3
}

// ChainData holds the displayed chain and its GPU meshes, one per segment
type ChainData struct {
	chain    chain.Chain
	group    *mesh.Group
	meshes   []rl.Mesh
	material rl.Material
	info     *analysis.ChainResult
}

// ViewSettings holds display toggles
type ViewSettings struct {
	showAxes      bool
	showWireframe bool
	showHelp      bool
}

// InteractionState holds mouse state
type InteractionState struct {
	isPanning bool
}

// LoadState tracks acquisition progress for the status line
type LoadState struct {
	source       chain.Source
	startTime    time.Time
	lastDuration time.Duration
	loads        int
}

// FileWatchState holds file watching and reload state
type FileWatchState struct {
	files       []string
	fileWatcher *watcher.FileWatcher
	needsReload atomic.Bool // set from the watcher goroutine
}

// UIState holds UI-related state
type UIState struct {
	font rl.Font
}
