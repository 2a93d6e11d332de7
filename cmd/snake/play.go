package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play in the terminal. Frames are drawn at render.fps and the snake
moves once every tick.threshold seconds.

Controls:
  Arrows/WASD - Change direction
  P/Esc       - Pause
  R           - Restart
  Q/Ctrl+C    - Quit

The terminal is owned by the game while it runs, so logs are only written
when --log-file is given.

Examples:
  snake play
  snake play --grid 15 --seed 42
  snake play --log-file snake.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()

	// The board needs the grid plus a border, a HUD line and a help line
	need := cfg.Grid.Size + 2
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		if w < need || h < need+2 {
			fmt.Fprintf(os.Stderr, "Error: terminal is %dx%d, a %d grid needs at least %dx%d\n",
				w, h, cfg.Grid.Size, need, need+2)
			os.Exit(1)
		}
	}

	logger := log.New(io.Discard)
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logger = mustLogger(f, "snake")
	}

	opts := tui.Options{
		Game:   game.OptionsFromConfig(cfg),
		Glyphs: glyphsFromConfig(cfg),
		FPS:    cfg.Render.FPS,
		Seed:   flagSeed,
		Logger: logger,
	}
	logger.Info("starting", "grid", opts.Game.GridSize, "mode", opts.Game.Mode, "collision", opts.Game.Collision)

	if err := tui.Run(opts); err != nil {
		logger.Error("run failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
