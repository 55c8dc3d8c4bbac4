// Package config provides YAML-based game configuration loading and
// difficulty presets for the snake arcade.
package config

import (
	"errors"
	"fmt"
	"time"
)

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Area   AreaConfig   `yaml:"area"`
	Snake  BodyConfig   `yaml:"snake"`
	Target TargetConfig `yaml:"target"`
	Loop   LoopConfig   `yaml:"loop"`
	Score  ScoreConfig  `yaml:"score"`
}

// AreaConfig defines the playfield grid.
type AreaConfig struct {
	Width     int `yaml:"width"`      // Cells
	Height    int `yaml:"height"`     // Cells
	PieceSize int `yaml:"piece_size"` // Pixels per cell (window backend)
}

// BodyConfig defines the snake at spawn.
type BodyConfig struct {
	InitialLength int `yaml:"initial_length"`
}

// TargetConfig defines the target cube.
type TargetConfig struct {
	Enabled   bool `yaml:"enabled"`
	AvoidBody bool `yaml:"avoid_body"`
}

// LoopConfig defines tick pacing and input handling.
type LoopConfig struct {
	FPS           int           `yaml:"fps"`
	StartDelay    time.Duration `yaml:"start_delay"`
	CoalesceInput bool          `yaml:"coalesce_input"`
}

// ScoreConfig defines where the best score is kept.
type ScoreConfig struct {
	Backend string `yaml:"backend"` // "file" or "sqlite"
	Path    string `yaml:"path"`
}

// Score backends.
const (
	ScoreBackendFile   = "file"
	ScoreBackendSQLite = "sqlite"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Validate checks the preconditions the simulation relies on.
// The snake spawns fully inside the area without wrapping, so the initial
// length must be under half of the smallest area side.
func (c SnakeConfig) Validate() error {
	if c.Area.Width <= 0 || c.Area.Height <= 0 {
		return fmt.Errorf("%w: area must be positive, got %dx%d", ErrInvalid, c.Area.Width, c.Area.Height)
	}
	if c.Snake.InitialLength < 1 {
		return fmt.Errorf("%w: initial_length must be at least 1, got %d", ErrInvalid, c.Snake.InitialLength)
	}
	minSide := min(c.Area.Width, c.Area.Height)
	if 2*c.Snake.InitialLength >= minSide {
		return fmt.Errorf("%w: initial_length %d needs an area side above %d, smallest side is %d",
			ErrInvalid, c.Snake.InitialLength, 2*c.Snake.InitialLength, minSide)
	}
	if c.Area.PieceSize <= 0 {
		return fmt.Errorf("%w: piece_size must be positive, got %d", ErrInvalid, c.Area.PieceSize)
	}
	if c.Loop.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalid, c.Loop.FPS)
	}
	if c.Loop.StartDelay < 0 {
		return fmt.Errorf("%w: start_delay must not be negative", ErrInvalid)
	}
	switch c.Score.Backend {
	case ScoreBackendFile, ScoreBackendSQLite:
	default:
		return fmt.Errorf("%w: unknown score backend %q", ErrInvalid, c.Score.Backend)
	}
	return nil
}
