package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/polychain/pkg/analysis"
	"github.com/philipparndt/polychain/pkg/chain"
	"github.com/philipparndt/polychain/pkg/config"
	"github.com/philipparndt/polychain/pkg/geometry"
	"github.com/philipparndt/polychain/pkg/scene"
	"github.com/philipparndt/polychain/pkg/viewer"
)

type App struct {
	window fyne.Window
	scene  *scene.Context
	loader *scene.Loader
	source chain.Source
	view   *viewer.ChainView

	infoLabel      *widget.Label
	selectionLabel *widget.Label
	statusLabel    *widget.Label
}

func main() {
	var configPath string
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	src, err := cfg.ChainSource()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	a := app.New()
	w := a.NewWindow(cfg.Window.Title)

	sc := scene.New(cfg)
	appInstance := &App{
		window: w,
		scene:  sc,
		loader: scene.NewLoader(sc.Build),
		source: src,
	}
	appInstance.setupMainUI()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go appInstance.pollLoads(ctx)
	appInstance.reload(ctx)

	w.Resize(fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))
	w.ShowAndRun()
}

func (a *App) setupMainUI() {
	a.infoLabel = widget.NewLabel("No chain loaded")
	a.selectionLabel = widget.NewLabel("Vertex: Not selected")
	a.statusLabel = widget.NewLabel("")
	a.statusLabel.Wrapping = fyne.TextWrapWord

	a.view = viewer.NewChainView(a.scene)
	a.view.SetOnSelect(func(index int, point geometry.Vector3) {
		a.selectionLabel.SetText(fmt.Sprintf("Vertex %d: %s", index, analysis.FormatVector(point)))
	})

	reloadButton := widget.NewButton("New Chain", func() {
		a.reload(context.Background())
	})
	frameButton := widget.NewButton("Frame Chain", func() {
		a.view.Camera().Frame(a.scene.Group().Bounds())
		a.view.Refresh()
	})
	clearButton := widget.NewButton("Clear Selection", func() {
		a.view.ClearSelection()
		a.selectionLabel.SetText("Vertex: Not selected")
	})

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Drag to rotate the view\n" +
			"• Scroll to zoom in/out\n" +
			"• Click a vertex to inspect it",
	)
	instructions.Wrapping = fyne.TextWrapWord

	infoPanel := container.NewVBox(
		widget.NewLabel("Chain Information:"),
		widget.NewSeparator(),
		a.infoLabel,
		widget.NewSeparator(),
		a.selectionLabel,
		widget.NewSeparator(),
		instructions,
		widget.NewSeparator(),
		reloadButton,
		frameButton,
		clearButton,
		a.statusLabel,
	)

	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(300, 0))

	a.window.SetContent(container.NewBorder(nil, nil, nil, infoScroll, a.view))
}

// reload starts a new acquisition unless one is running
func (a *App) reload(ctx context.Context) {
	if a.loader.Start(ctx, a.source) {
		a.statusLabel.SetText("Loading chain...")
	}
}

// pollLoads hands finished loads to the UI thread
func (a *App) pollLoads(ctx context.Context) {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		fyne.Do(func() {
			r, ok := a.loader.Apply(a.scene)
			if !ok {
				if err := a.loader.Err(); err != nil && !a.loader.Loading() {
					a.statusLabel.SetText(fmt.Sprintf("Load failed: %v", err))
				}
				return
			}
			a.showChain(r)
		})
	}
}

func (a *App) showChain(r scene.Loaded) {
	result := analysis.AnalyzeChain(r.Chain, r.Group)
	a.infoLabel.SetText(fmt.Sprintf(
		"Points: %d\nSegments: %d\nTriangles: %d\nLength: %.3f\nClosed: %t\nSelf-intersecting: %t\n\nDimensions:\n  X: %.2f\n  Y: %.2f\n  Z: %.2f",
		result.PointCount,
		result.SegmentCount,
		result.TriangleCount,
		result.TotalLength,
		result.IsLoop,
		result.SelfIntersecting,
		result.Dimensions.X,
		result.Dimensions.Y,
		result.Dimensions.Z,
	))
	a.statusLabel.SetText(fmt.Sprintf("Loaded in %s", r.Duration.Round(time.Millisecond)))
	a.view.ClearSelection()
	a.selectionLabel.SetText("Vertex: Not selected")
	slog.Debug("chain shown", "segments", r.Group.Len())
}
