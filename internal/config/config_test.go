package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(DefaultYAML()) failed: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultSnakeConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("embedded defaults should validate, got %v", err)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("Load(\"\") = %+v, expected defaults", cfg)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".snake", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "snake.yaml"), []byte("grid:\n  size: 12\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if cfg.Grid.Size != 12 {
		t.Errorf("Grid.Size = %d, expected 12 from user config", cfg.Grid.Size)
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	data := []byte(`
grid:
  size: 30
tick:
  mode: tick_per_call
collision: grow_then_shrink
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Grid.Size != 30 {
		t.Errorf("Grid.Size = %d, expected 30", cfg.Grid.Size)
	}
	if cfg.Tick.Mode != ModeTickPerCall {
		t.Errorf("Tick.Mode = %q, expected %q", cfg.Tick.Mode, ModeTickPerCall)
	}
	if cfg.Collision != CollisionGrowThenShrink {
		t.Errorf("Collision = %q, expected %q", cfg.Collision, CollisionGrowThenShrink)
	}
	// Keys missing from the file keep their defaults
	if cfg.Trail.Baseline != 5 {
		t.Errorf("Trail.Baseline = %d, expected default 5", cfg.Trail.Baseline)
	}
	if cfg.Tick.Threshold != 0.1 {
		t.Errorf("Tick.Threshold = %g, expected default 0.1", cfg.Tick.Threshold)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("grid: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(broken); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("grid:\n  size: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(invalid)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("Load() of an invalid config = %v, expected ErrInvalid", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*SnakeConfig)
	}{
		{"grid too small", func(c *SnakeConfig) { c.Grid.Size = 1 }},
		{"zero baseline", func(c *SnakeConfig) { c.Trail.Baseline = 0 }},
		{"zero threshold", func(c *SnakeConfig) { c.Tick.Threshold = 0 }},
		{"negative threshold", func(c *SnakeConfig) { c.Tick.Threshold = -0.5 }},
		{"unknown mode", func(c *SnakeConfig) { c.Tick.Mode = "turbo" }},
		{"unknown collision", func(c *SnakeConfig) { c.Collision = "explode" }},
		{"empty glyph", func(c *SnakeConfig) { c.Render.Target = "" }},
		{"wide glyph", func(c *SnakeConfig) { c.Render.Trail = "**" }},
		{"zero fps", func(c *SnakeConfig) { c.Render.FPS = 0 }},
		{"zero cell pixels", func(c *SnakeConfig) { c.Render.CellPixels = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.modify(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestGlyph(t *testing.T) {
	if g := Glyph("@", '*'); g != '@' {
		t.Errorf("Glyph(\"@\") = %q, expected '@'", g)
	}
	if g := Glyph("█", '*'); g != '█' {
		t.Errorf("Glyph(\"█\") = %q, expected '█'", g)
	}
	if g := Glyph("", '*'); g != '*' {
		t.Errorf("Glyph(\"\") = %q, expected fallback '*'", g)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultSnakeConfig()
	cfg.Grid.Size = 42

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	got, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if got != cfg {
		t.Errorf("round trip = %+v, expected %+v", got, cfg)
	}
}
