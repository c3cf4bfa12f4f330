package app

import (
	"fmt"
	"time"

	"github.com/philipparndt/polychain/pkg/analysis"
	"github.com/philipparndt/polychain/pkg/watcher"
)

// setupFileWatcher reloads the chain whenever one of files changes
func (app *App) setupFileWatcher(files []string) error {
	fw, err := watcher.NewFileWatcher(500 * time.Millisecond)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	callback := func(changedFile string) {
		app.logger.Info("file changed", "file", changedFile)
		app.FileWatch.needsReload.Store(true)
	}

	if err := fw.Watch(files, callback); err != nil {
		fw.Close()
		return fmt.Errorf("failed to watch files: %w", err)
	}

	fw.Start(app.ctx)
	app.FileWatch.files = files
	app.FileWatch.fileWatcher = fw
	app.logger.Info("watching for changes", "files", files)
	return nil
}

// startLoad begins acquiring a chain in the background. It does nothing
// while a load is in flight.
func (app *App) startLoad() {
	if !app.loader.Start(app.ctx, app.Load.source) {
		return
	}
	app.Load.startTime = time.Now()
	app.logger.Debug("loading chain")
}

// applyLoaded attaches a finished load. It must run on the main thread
// because the meshes are uploaded here.
func (app *App) applyLoaded() {
	r, ok := app.loader.Apply(app.scene)
	if !ok {
		return
	}

	newMeshes := app.uploadGroup(r.Group)
	oldMeshes := app.Chain.meshes

	app.Chain.chain = r.Chain
	app.Chain.group = r.Group
	app.Chain.meshes = newMeshes
	app.Chain.info = analysis.AnalyzeChain(r.Chain, r.Group)

	unloadMeshes(oldMeshes)

	app.Load.lastDuration = r.Duration
	app.Load.loads++
	app.logger.Info("chain loaded",
		"points", r.Chain.Len(),
		"segments", r.Group.Len(),
		"duration", r.Duration)
}

// releaseChain frees GPU resources of the displayed chain
func (app *App) releaseChain() {
	unloadMeshes(app.Chain.meshes)
	app.Chain.meshes = nil
}
