package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration: an 80×60 area,
// a 20 segment snake and 10 ticks per second.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Area: AreaConfig{
			Width:     80,
			Height:    60,
			PieceSize: 10,
		},
		Snake: BodyConfig{
			InitialLength: 20,
		},
		Target: TargetConfig{
			Enabled:   true,
			AvoidBody: false,
		},
		Loop: LoopConfig{
			FPS:           10,
			StartDelay:    2 * time.Second,
			CoalesceInput: true,
		},
		Score: ScoreConfig{
			Backend: ScoreBackendFile,
			Path:    "~/.snake/score.snake",
		},
	}
}
