// snake is a wrapping-grid snake game for the terminal, the console, a
// native window or SSH.
//
// Usage:
//
//	snake play       - Play in the terminal (time-gated, Bubble Tea)
//	snake console    - Play by typing w/a/s/d lines (one movement per line)
//	snake window     - Play in a native window (build with -tags raylib)
//	snake serve      - Start an SSH server, one game per session
//	snake config     - Print the effective configuration as YAML
//
// Global flags:
//
//	--config <path>      - Config file (default search: ~/.snake/configs, ./configs, embedded)
//	--grid <n>           - Grid side length
//	--mode <mode>        - time_gated or tick_per_call
//	--collision <policy> - shrink or grow_then_shrink
//	--seed <value>       - RNG seed for reproducible placement
//	--log-level <level>  - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/game"
)

var (
	// Global flags
	flagConfig    string
	flagGrid      int
	flagMode      string
	flagCollision string
	flagSeed      int64
	flagLogLevel  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake on a wrapping grid",
	Long: `Snake moves one cell per tick across a grid whose edges wrap around.
Reaching the target grows the trail by one; running into the trail
shrinks it back to its starting length.

Available commands:
  play     - Play in the terminal
  console  - Play by typing one direction per line
  window   - Play in a native window
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  snake play
  snake play --grid 30
  snake console
  snake serve --ssh :2222
  snake config > ~/.snake/configs/snake.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagGrid, "grid", 0, "Grid side length (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagMode, "mode", "", "Step mode: time_gated, tick_per_call (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagCollision, "collision", "", "Collision policy: shrink, grow_then_shrink (overrides config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(consoleCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the config file and applies flag overrides.
func loadConfig() (config.SnakeConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagGrid != 0 {
		cfg.Grid.Size = flagGrid
	}
	if flagMode != "" {
		cfg.Tick.Mode = flagMode
	}
	if flagCollision != "" {
		cfg.Collision = flagCollision
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// mustLoadConfig loads the config or exits.
func mustLoadConfig() config.SnakeConfig {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// glyphsFromConfig applies the configured characters to the default glyphs.
func glyphsFromConfig(cfg config.SnakeConfig) game.Glyphs {
	g := game.DefaultGlyphs()
	g.Head = config.Glyph(cfg.Render.Head, g.Head)
	g.Trail = config.Glyph(cfg.Render.Trail, g.Trail)
	g.Target = config.Glyph(cfg.Render.Target, g.Target)
	g.Empty = config.Glyph(cfg.Render.Empty, g.Empty)
	return g
}

// newLogger creates a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          prefix,
	}), nil
}

// mustLogger creates a logger or exits.
func mustLogger(w io.Writer, prefix string) *log.Logger {
	logger, err := newLogger(w, prefix)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return logger
}
