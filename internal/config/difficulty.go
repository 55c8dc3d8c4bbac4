package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
// For snake the only lever is the tick rate.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficulty validates a preset name. The empty string means fixed.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyFixed, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or fixed)", ErrInvalid, s)
	}
}

// FPSForPreset returns the tick rate for a preset, or 0 when the preset
// keeps the configured rate.
func FPSForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 6
	case DifficultyNormal:
		return 10
	case DifficultyHard:
		return 16
	default:
		return 0
	}
}

// ApplySnakePreset modifies the config based on a difficulty preset.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	if fps := FPSForPreset(preset); fps > 0 {
		cfg.Loop.FPS = fps
	}
}
