package app

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/polychain/version"
)

var helpLines = []string{
	"Drag: rotate   Shift+drag / middle: pan   Wheel: zoom",
	"Home: reset   F: frame chain   T: top   1: front   2: side",
	"W: wireframe   A: axes   R: new chain   H: hide help",
}

// drawUI draws the status overlay
func (app *App) drawUI() {
	y := float32(10)
	lineHeight := float32(20)
	fontSize16 := float32(16)
	fontSize14 := float32(14)
	fontSize12 := float32(12)

	screenWidth := float32(rl.GetScreenWidth())
	screenHeight := float32(rl.GetScreenHeight())

	text := func(s string, size float32, col rl.Color) {
		rl.DrawTextEx(app.UI.font, s, rl.Vector2{X: 10, Y: y}, size, 1, col)
		y += lineHeight
	}

	if app.loader.Loading() {
		elapsed := time.Since(app.Load.startTime).Seconds()
		spinnerChars := []string{"|", "/", "-", "\\"}
		loadingText := fmt.Sprintf("%s Loading chain... (%.1fs)", spinnerChars[int(elapsed*10)%len(spinnerChars)], elapsed)

		boxWidth := float32(260)
		boxHeight := float32(40)
		boxX := screenWidth - boxWidth - 20
		boxY := float32(20)
		rl.DrawRectangle(int32(boxX), int32(boxY), int32(boxWidth), int32(boxHeight), rl.NewColor(0, 0, 0, 180))
		rl.DrawRectangleLines(int32(boxX), int32(boxY), int32(boxWidth), int32(boxHeight), rl.Yellow)

		textSize := rl.MeasureTextEx(app.UI.font, loadingText, fontSize16, 1)
		rl.DrawTextEx(app.UI.font, loadingText,
			rl.Vector2{X: boxX + (boxWidth-textSize.X)/2, Y: boxY + (boxHeight-textSize.Y)/2},
			fontSize16, 1, rl.Yellow)
	}

	text("Chain:", fontSize16, rl.Yellow)
	if info := app.Chain.info; info != nil {
		text(fmt.Sprintf("  Points: %d", info.PointCount), fontSize14, rl.White)
		text(fmt.Sprintf("  Segments: %d", info.SegmentCount), fontSize14, rl.White)
		text(fmt.Sprintf("  Triangles: %d", info.TriangleCount), fontSize14, rl.White)
		text(fmt.Sprintf("  Length: %.3f", info.TotalLength), fontSize14, rl.White)
		text(fmt.Sprintf("  Size: %.2f x %.2f x %.2f", info.Dimensions.X, info.Dimensions.Y, info.Dimensions.Z), fontSize14, rl.White)

		closed := "open"
		if info.IsLoop {
			closed = "closed"
		}
		if info.SelfIntersecting {
			closed += ", self-intersecting"
		}
		text("  "+closed, fontSize14, rl.NewColor(100, 200, 255, 255))
		text(fmt.Sprintf("  Loaded in %s", app.Load.lastDuration.Round(time.Millisecond)), fontSize14, rl.Gray)
	} else {
		text("  Segments: 0", fontSize14, rl.White)
	}

	if err := app.loader.Err(); err != nil {
		y += lineHeight / 2
		text(fmt.Sprintf("Load failed: %v", err), fontSize14, rl.Red)
	}

	if app.View.showHelp {
		hy := screenHeight - 30 - float32(len(helpLines))*lineHeight
		for _, line := range helpLines {
			rl.DrawTextEx(app.UI.font, line, rl.Vector2{X: 10, Y: hy}, fontSize12, 1, rl.LightGray)
			hy += lineHeight
		}
	}

	bottomY := screenHeight - 20
	versionText := fmt.Sprintf("v%s", version.GetVersion())
	rl.DrawTextEx(app.UI.font, versionText, rl.Vector2{X: 10, Y: bottomY}, fontSize12, 1, rl.Gray)
	fpsText := fmt.Sprintf("%d FPS", rl.GetFPS())
	versionWidth := rl.MeasureTextEx(app.UI.font, versionText, fontSize12, 1).X
	rl.DrawTextEx(app.UI.font, fpsText, rl.Vector2{X: 10 + versionWidth + 15, Y: bottomY}, fontSize12, 1, rl.Lime)
}
