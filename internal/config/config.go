// Package config provides YAML-based configuration for the snake engine
// and its drivers.
package config

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Step modes accepted by tick.mode.
const (
	ModeTimeGated   = "time_gated"
	ModeTickPerCall = "tick_per_call"
)

// Collision policies accepted by collision.
const (
	CollisionShrink         = "shrink"
	CollisionGrowThenShrink = "grow_then_shrink"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// SnakeConfig contains all configuration for a snake session.
type SnakeConfig struct {
	Grid      GridConfig   `yaml:"grid"`
	Trail     TrailConfig  `yaml:"trail"`
	Tick      TickConfig   `yaml:"tick"`
	Collision string       `yaml:"collision"`
	Render    RenderConfig `yaml:"render"`
}

// GridConfig defines the playing field.
type GridConfig struct {
	Size int `yaml:"size"`
}

// TrailConfig defines trail growth.
type TrailConfig struct {
	Baseline int `yaml:"baseline"`
}

// TickConfig defines how elapsed time turns into movements.
type TickConfig struct {
	Threshold float64 `yaml:"threshold"` // seconds
	Mode      string  `yaml:"mode"`
}

// RenderConfig defines glyphs and frame pacing for the drivers.
type RenderConfig struct {
	Head       string `yaml:"head"`
	Trail      string `yaml:"trail"`
	Target     string `yaml:"target"`
	Empty      string `yaml:"empty"`
	FPS        int    `yaml:"fps"`
	CellPixels int    `yaml:"cell_pixels"`
}

// Validate reports the first invalid value. The returned error wraps
// ErrInvalid.
func (c SnakeConfig) Validate() error {
	if c.Grid.Size < 2 {
		return fmt.Errorf("%w: grid.size must be at least 2, got %d", ErrInvalid, c.Grid.Size)
	}
	if c.Trail.Baseline < 1 {
		return fmt.Errorf("%w: trail.baseline must be at least 1, got %d", ErrInvalid, c.Trail.Baseline)
	}
	if c.Tick.Threshold <= 0 {
		return fmt.Errorf("%w: tick.threshold must be positive, got %g", ErrInvalid, c.Tick.Threshold)
	}
	switch c.Tick.Mode {
	case ModeTimeGated, ModeTickPerCall:
	default:
		return fmt.Errorf("%w: tick.mode must be %q or %q, got %q",
			ErrInvalid, ModeTimeGated, ModeTickPerCall, c.Tick.Mode)
	}
	switch c.Collision {
	case CollisionShrink, CollisionGrowThenShrink:
	default:
		return fmt.Errorf("%w: collision must be %q or %q, got %q",
			ErrInvalid, CollisionShrink, CollisionGrowThenShrink, c.Collision)
	}

	glyphs := []struct {
		name, value string
	}{
		{"render.head", c.Render.Head},
		{"render.trail", c.Render.Trail},
		{"render.target", c.Render.Target},
		{"render.empty", c.Render.Empty},
	}
	for _, g := range glyphs {
		if utf8.RuneCountInString(g.value) != 1 {
			return fmt.Errorf("%w: %s must be a single character, got %q", ErrInvalid, g.name, g.value)
		}
	}

	if c.Render.FPS < 1 {
		return fmt.Errorf("%w: render.fps must be at least 1, got %d", ErrInvalid, c.Render.FPS)
	}
	if c.Render.CellPixels < 1 {
		return fmt.Errorf("%w: render.cell_pixels must be at least 1, got %d", ErrInvalid, c.Render.CellPixels)
	}
	return nil
}

// Glyph returns the first rune of s, or fallback when s is empty.
func Glyph(s string, fallback rune) rune {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return fallback
	}
	return r
}
