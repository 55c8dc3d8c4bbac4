package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StateIdle     GameStateType = "idle"
	StatePlaying  GameStateType = "playing"
	StatePaused   GameStateType = "paused"
	StateGameOver GameStateType = "game_over"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick      int
	Variant   string
	SnakeLen  int
	Head      core.Point
	Dir       core.Direction
	Digesting bool
	HasTarget bool
	Target    core.Point
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Variant: g.variant.ID,
		State:   StateIdle,
	}
	if g.state == nil {
		return snap
	}

	s := g.state.Snake
	snap.Tick = g.state.Ticks
	snap.SnakeLen = s.Len()
	snap.Head = s.Head()
	snap.Dir = s.Direction()
	snap.Digesting = s.Digesting()
	if g.state.Target != nil {
		snap.HasTarget = true
		snap.Target = g.state.Target.Position()
	}

	switch {
	case g.state.Over:
		snap.State = StateGameOver
	case g.paused:
		snap.State = StatePaused
	default:
		snap.State = StatePlaying
	}
	return snap
}
