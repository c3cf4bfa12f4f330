// Package app is the raylib desktop viewer for chains.
package app

import (
	"context"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/polychain/pkg/chain"
	"github.com/philipparndt/polychain/pkg/scene"
)

// Options configures a viewer session
type Options struct {
	Source chain.Source
	// Watch lists files whose changes trigger a reload
	Watch  []string
	Logger *slog.Logger
}

// App is the state of one viewer window
type App struct {
	Camera      CameraState
	Chain       ChainData
	View        ViewSettings
	Interaction InteractionState
	Load        LoadState
	FileWatch   FileWatchState
	UI          UIState

	ctx    context.Context
	scene  *scene.Context
	loader *scene.Loader
	logger *slog.Logger
	near   float32
	far    float32
}

// Run opens the window and renders sc until the window is closed or ctx
// is done. The chain is acquired in the background; the window shows an
// empty scene until it arrives. Run must be called from the main thread.
func Run(ctx context.Context, sc *scene.Context, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	src := opts.Source
	if src == nil {
		src = chain.StaticSource{}
	}

	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(sc.Width), int32(sc.Height), sc.Title)
	rl.SetTargetFPS(60)
	defer rl.CloseWindow()

	app := &App{
		View: ViewSettings{
			showAxes: sc.AxesLength > 0,
			showHelp: true,
		},
		Load:   LoadState{source: src},
		ctx:    ctx,
		scene:  sc,
		loader: scene.NewLoader(sc.Build),
		logger: logger.With("component", "viewer"),
		near:   float32(sc.Camera.Near),
		far:    float32(sc.Camera.Far),
	}
	app.Chain.group = sc.Group()
	app.Chain.material = rl.LoadMaterialDefault()
	app.UI.font = rl.GetFontDefault()
	app.setupCamera(sc.Camera)

	if len(opts.Watch) > 0 {
		if err := app.setupFileWatcher(opts.Watch); err != nil {
			app.logger.Warn("auto-reload not available", "err", err)
		} else {
			defer app.FileWatch.fileWatcher.Close()
		}
	}

	app.startLoad()

	background := rl.NewColor(sc.Background.R, sc.Background.G, sc.Background.B, 255)
	for !rl.WindowShouldClose() {
		if ctx.Err() != nil {
			break
		}

		if app.FileWatch.needsReload.Load() && !app.loader.Loading() {
			app.FileWatch.needsReload.Store(false)
			app.startLoad()
		}

		app.applyLoaded()

		app.handleInput()
		app.updateCamera()

		rl.BeginDrawing()
		rl.ClearBackground(background)

		rl.BeginMode3D(app.Camera.camera)
		app.drawChain()
		if app.View.showAxes {
			app.drawAxes()
		}
		rl.EndMode3D()

		app.drawUI()
		rl.EndDrawing()
	}

	app.releaseChain()
	return nil
}
