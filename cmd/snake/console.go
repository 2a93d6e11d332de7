package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/platform/console"
)

var flagClassic bool

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Play by typing one direction per line",
	Long: `Play on standard input and output. The grid is printed, then one
line is read: w, a, s or d turns the snake, anything else keeps its
direction. Every line moves the snake exactly one cell. Enter q to quit.
The step mode is tick_per_call unless --mode says otherwise.

End of input stops the game with an error.

Examples:
  snake console
  snake console --classic
  printf 'd\nd\ns\n' | snake console --seed 1`,
	Args: cobra.NoArgs,
	Run:  runConsole,
}

func init() {
	consoleCmd.Flags().BoolVar(&flagClassic, "classic", false, "Start at (10,10) with the target at (5,5)")
}

func runConsole(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()
	logger := mustLogger(os.Stderr, "snake")

	opts := game.OptionsFromConfig(cfg)
	if flagMode == "" {
		opts.Mode = game.TickPerCall
	}
	rng := game.NewRandom(flagSeed)

	var state *game.State
	if flagClassic {
		state = game.NewAt(opts, rng, []game.Cell{{X: 10, Y: 10}}, game.Cell{X: 5, Y: 5})
	} else {
		state = game.New(opts, rng)
	}
	logger.Debug("starting", "grid", opts.GridSize, "head", state.Head(), "target", state.Target())

	driver := console.New(state, os.Stdin, os.Stdout,
		console.WithGlyphs(glyphsFromConfig(cfg)),
		console.WithClearScreen(term.IsTerminal(int(os.Stdout.Fd()))),
		console.WithLogger(logger),
	)

	err := driver.Run(context.Background())
	switch {
	case err == nil:
		return
	case errors.Is(err, console.ErrInputClosed):
		fmt.Fprintln(os.Stderr, "Error: failed to read input")
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(1)
}
