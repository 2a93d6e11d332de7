package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
)

func withFlags(t *testing.T, path string, grid int, mode, collision string) {
	t.Helper()
	oldConfig, oldGrid, oldMode, oldCollision := flagConfig, flagGrid, flagMode, flagCollision
	flagConfig, flagGrid, flagMode, flagCollision = path, grid, mode, collision
	t.Cleanup(func() {
		flagConfig, flagGrid, flagMode, flagCollision = oldConfig, oldGrid, oldMode, oldCollision
	})
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigFlagOverrides(t *testing.T) {
	path := writeConfig(t, "grid:\n  size: 12\n")
	withFlags(t, path, 30, config.ModeTickPerCall, config.CollisionGrowThenShrink)

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() failed: %v", err)
	}
	if cfg.Grid.Size != 30 {
		t.Errorf("grid size = %d, expected the flag value 30", cfg.Grid.Size)
	}
	if cfg.Tick.Mode != config.ModeTickPerCall {
		t.Errorf("mode = %q, expected %q", cfg.Tick.Mode, config.ModeTickPerCall)
	}
	if cfg.Collision != config.CollisionGrowThenShrink {
		t.Errorf("collision = %q, expected %q", cfg.Collision, config.CollisionGrowThenShrink)
	}
}

func TestLoadConfigFileWithoutFlags(t *testing.T) {
	path := writeConfig(t, "grid:\n  size: 12\n")
	withFlags(t, path, 0, "", "")

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() failed: %v", err)
	}
	if cfg.Grid.Size != 12 {
		t.Errorf("grid size = %d, expected 12 from the file", cfg.Grid.Size)
	}
	if cfg.Tick.Mode != config.ModeTimeGated {
		t.Errorf("mode = %q, expected the default %q", cfg.Tick.Mode, config.ModeTimeGated)
	}
}

func TestLoadConfigRejectsBadFlag(t *testing.T) {
	path := writeConfig(t, "{}\n")
	withFlags(t, path, 0, "sometimes", "")

	if _, err := loadConfig(); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("loadConfig() = %v, expected ErrInvalid", err)
	}
}

func TestGlyphsFromConfig(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Render.Head = "@"
	cfg.Render.Target = "o"

	g := glyphsFromConfig(cfg)
	if g.Head != '@' || g.Target != 'o' {
		t.Errorf("glyphs = %q/%q, expected '@'/'o'", g.Head, g.Target)
	}
	if g.Trail != '*' || g.Empty != ' ' {
		t.Errorf("glyphs = %q/%q, expected the defaults '*'/' '", g.Trail, g.Empty)
	}
}

func TestNewLoggerRejectsBadLevel(t *testing.T) {
	old := flagLogLevel
	flagLogLevel = "loud"
	t.Cleanup(func() { flagLogLevel = old })

	if _, err := newLogger(os.Stderr, "snake"); err == nil {
		t.Error("newLogger() should reject an unknown level")
	}
}
