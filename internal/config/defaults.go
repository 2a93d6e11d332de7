package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration, used when the
// embedded YAML cannot be parsed.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Size: 20,
		},
		Trail: TrailConfig{
			Baseline: 5,
		},
		Tick: TickConfig{
			Threshold: 0.1,
			Mode:      ModeTimeGated,
		},
		Collision: CollisionShrink,
		Render: RenderConfig{
			Head:       "*",
			Trail:      "*",
			Target:     "#",
			Empty:      " ",
			FPS:        60,
			CellPixels: 20,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
