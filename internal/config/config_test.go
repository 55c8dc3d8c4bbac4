package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := ParseSnake(defaultSnakeYAML)
	if err != nil {
		t.Fatalf("ParseSnake(embedded) failed: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultSnakeConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadSnakeFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg.Area.Width != 80 || cfg.Area.Height != 60 {
		t.Errorf("area = %dx%d, expected 80x60", cfg.Area.Width, cfg.Area.Height)
	}
	if cfg.Snake.InitialLength != 20 {
		t.Errorf("initial_length = %d, expected 20", cfg.Snake.InitialLength)
	}
}

func TestLoadSnakeUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".snake", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "snake.yaml"), []byte("loop:\n  fps: 25\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg.Loop.FPS != 25 {
		t.Errorf("fps = %d, expected 25 from user config", cfg.Loop.FPS)
	}
	// Keys absent from the file keep their defaults
	if cfg.Area.Width != 80 {
		t.Errorf("area width = %d, expected default 80", cfg.Area.Width)
	}
}

func TestLoadSnakeCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte(`
area:
  width: 40
  height: 30
snake:
  initial_length: 5
loop:
  start_delay: 500ms
  coalesce_input: false
score:
  backend: sqlite
  path: /tmp/best.db
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake(%s) failed: %v", path, err)
	}
	if cfg.Area.Width != 40 || cfg.Area.Height != 30 {
		t.Errorf("area = %dx%d, expected 40x30", cfg.Area.Width, cfg.Area.Height)
	}
	if cfg.Loop.StartDelay != 500*time.Millisecond {
		t.Errorf("start_delay = %v, expected 500ms", cfg.Loop.StartDelay)
	}
	if cfg.Loop.CoalesceInput {
		t.Error("coalesce_input should be false")
	}
	if cfg.Score.Backend != ScoreBackendSQLite {
		t.Errorf("score backend = %q, expected sqlite", cfg.Score.Backend)
	}
}

func TestLoadSnakeCustomPathErrors(t *testing.T) {
	if _, err := LoadSnake(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("area: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSnake(path); err == nil {
		t.Error("malformed custom config should fail")
	}
}

func TestMarshalRoundTripKeepsDuration(t *testing.T) {
	cfg := DefaultSnakeConfig()
	cfg.Loop.StartDelay = 1500 * time.Millisecond

	data, err := MarshalSnake(cfg)
	if err != nil {
		t.Fatalf("MarshalSnake() failed: %v", err)
	}
	back, err := ParseSnake(data)
	if err != nil {
		t.Fatalf("ParseSnake() failed: %v\n%s", err, data)
	}
	if back != cfg {
		t.Errorf("round trip = %+v, expected %+v", back, cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SnakeConfig)
		valid  bool
	}{
		{"defaults", func(*SnakeConfig) {}, true},
		{"length just fits", func(c *SnakeConfig) { c.Area.Width, c.Area.Height, c.Snake.InitialLength = 11, 11, 5 }, true},
		{"length equals half side", func(c *SnakeConfig) { c.Area.Width, c.Area.Height, c.Snake.InitialLength = 10, 40, 5 }, false},
		{"length too long", func(c *SnakeConfig) { c.Snake.InitialLength = 30 }, false},
		{"zero length", func(c *SnakeConfig) { c.Snake.InitialLength = 0 }, false},
		{"zero width", func(c *SnakeConfig) { c.Area.Width = 0 }, false},
		{"zero fps", func(c *SnakeConfig) { c.Loop.FPS = 0 }, false},
		{"zero piece size", func(c *SnakeConfig) { c.Area.PieceSize = 0 }, false},
		{"negative delay", func(c *SnakeConfig) { c.Loop.StartDelay = -time.Second }, false},
		{"unknown backend", func(c *SnakeConfig) { c.Score.Backend = "redis" }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.valid {
				if err == nil {
					t.Error("Validate() = nil, expected error")
				} else if !errors.Is(err, ErrInvalid) {
					t.Errorf("Validate() error %v should wrap ErrInvalid", err)
				}
			}
		})
	}
}

func TestDifficultyPresets(t *testing.T) {
	tests := []struct {
		in       string
		expected int
	}{
		{"easy", 6},
		{"normal", 10},
		{"hard", 16},
		{"fixed", 10},
		{"", 10},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			preset, err := ParseDifficulty(tc.in)
			if err != nil {
				t.Fatalf("ParseDifficulty(%q) failed: %v", tc.in, err)
			}
			cfg := DefaultSnakeConfig()
			ApplySnakePreset(&cfg, preset)
			if cfg.Loop.FPS != tc.expected {
				t.Errorf("fps = %d, expected %d", cfg.Loop.FPS, tc.expected)
			}
		})
	}

	if _, err := ParseDifficulty("insane"); err == nil {
		t.Error("ParseDifficulty should reject unknown presets")
	}
}
