//go:build raylib

// Package window draws the game in a native window with raylib. The frame
// time of every rendered frame is fed to the engine, so it runs in
// time-gated mode. Build with -tags raylib; it needs cgo and OpenGL.
package window

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

// Available reports whether the binary was built with window support.
const Available = true

// hudHeight is the strip above the grid holding the length counter.
const hudHeight = 24

// keyHeadings maps arrow keys 1:1 to headings.
var keyHeadings = map[int32]game.Heading{
	rl.KeyUp:    game.Up,
	rl.KeyDown:  game.Down,
	rl.KeyLeft:  game.Left,
	rl.KeyRight: game.Right,
}

// Run opens a window sized to the grid and plays until it is closed.
func Run(state *game.State, opts Options) error {
	logger := opts.logger()
	size := int32(state.GridSize() * opts.CellPixels)

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(size, size+hudHeight, "Snake")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(opts.FPS))

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			logger.Info("quit", "ticks", state.Ticks(), "len", state.Len())
			break
		}
		for k, h := range keyHeadings {
			if rl.IsKeyPressed(k) {
				state.ChangeHeading(h)
			}
		}

		res := state.Step(float64(rl.GetFrameTime()))
		if res.Collided {
			logger.Info("self-collision", "capacity", state.Capacity(), "head", state.Head())
		}

		draw(state, opts.CellPixels)
	}
	return nil
}

// draw renders one frame: a filled rectangle per trail cell and one for
// the target.
func draw(state *game.State, cellPixels int) {
	rl.BeginDrawing()
	defer rl.EndDrawing()

	rl.ClearBackground(rl.Black)
	rl.DrawText(fmt.Sprintf("len %d/%d", state.Len(), state.Capacity()), 6, 4, 18, rl.LightGray)

	for _, c := range state.Trail() {
		fillCell(c, cellPixels, rl.Green)
	}
	fillCell(state.Target(), cellPixels, rl.Red)
}

func fillCell(c game.Cell, cellPixels int, color rl.Color) {
	r := core.NewRect(c.X, c.Y, 1, 1).Scale(cellPixels)
	rl.DrawRectangle(int32(r.X), int32(r.Y)+hudHeight, int32(r.W), int32(r.H), color)
}
