package snake

import (
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Variant is a named tweak of the loaded configuration.
type Variant struct {
	ID    string
	Title string
	Apply func(cfg *config.SnakeConfig) // nil keeps the configuration as loaded
}

// DefaultVariant is played when no variant is named.
const DefaultVariant = "classic"

// Variants lists the built-in presets. They differ only in grid granularity,
// initial length, frame rate and whether a target exists.
var Variants = []Variant{
	{
		ID:    "classic",
		Title: "Snake",
	},
	{
		ID:    "coarse",
		Title: "Snake (coarse grid)",
		Apply: func(cfg *config.SnakeConfig) {
			cfg.Area.Width = 40
			cfg.Area.Height = 30
			cfg.Area.PieceSize = 20
			cfg.Snake.InitialLength = 10
		},
	},
	{
		ID:    "short",
		Title: "Snake (short start)",
		Apply: func(cfg *config.SnakeConfig) {
			cfg.Snake.InitialLength = 3
		},
	},
	{
		ID:    "fast",
		Title: "Snake (fast)",
		Apply: func(cfg *config.SnakeConfig) {
			cfg.Loop.FPS = 20
		},
	},
	{
		ID:    "bare",
		Title: "Snake (no target)",
		Apply: func(cfg *config.SnakeConfig) {
			cfg.Target.Enabled = false
		},
	},
}

// LookupVariant returns the built-in variant with the given ID.
func LookupVariant(id string) (Variant, bool) {
	for _, v := range Variants {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}

func init() {
	for _, v := range Variants {
		registry.Register(v.ID, v.Title, func(cfg config.SnakeConfig) (registry.Game, error) {
			return New(v, cfg)
		})
	}
}
