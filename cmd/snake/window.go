package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a native window",
	Long: `Open a window of grid x render.cell_pixels pixels and play with the
arrow keys. Q or closing the window quits.

Requires a binary built with -tags raylib.`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()
	logger := mustLogger(os.Stderr, "snake")

	opts := game.OptionsFromConfig(cfg)
	state := game.New(opts, game.NewRandom(flagSeed))

	err := window.Run(state, window.Options{
		CellPixels: cfg.Render.CellPixels,
		FPS:        cfg.Render.FPS,
		Logger:     logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
