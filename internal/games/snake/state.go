package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// GameState is everything one round of snake needs. It is owned by a single
// driver and mutated only through Tick.
type GameState struct {
	Area   core.Area
	Snake  *Snake
	Target *Target // nil when the variant plays without a target
	Ticks  int
	Over   bool

	rng       *rand.Rand
	avoidBody bool
	coalesce  bool
}

// TickResult reports what happened during one tick.
type TickResult struct {
	Ate  bool
	Died bool
}

// NewGameState spawns the snake and, if enabled, the target.
func NewGameState(cfg config.SnakeConfig, rng *rand.Rand) (*GameState, error) {
	area := core.NewArea(cfg.Area.Width, cfg.Area.Height)

	s, err := NewSnake(area, cfg.Snake.InitialLength, rng)
	if err != nil {
		return nil, err
	}

	st := &GameState{
		Area:      area,
		Snake:     s,
		rng:       rng,
		avoidBody: cfg.Target.AvoidBody,
		coalesce:  cfg.Loop.CoalesceInput,
	}
	if cfg.Target.Enabled {
		st.Target = &Target{}
		st.relocateTarget()
	}
	return st, nil
}

// Steer applies the turns received during one tick.
// Coalescing keeps only the last turn, so two keys in the same tick cannot
// add up to a reversal; otherwise each turn is applied in arrival order.
func (st *GameState) Steer(turns []core.Direction) {
	if len(turns) == 0 {
		return
	}
	if st.coalesce {
		st.Snake.SetDirection(turns[len(turns)-1])
		return
	}
	for _, d := range turns {
		st.Snake.SetDirection(d)
	}
}

// Tick advances the round by one step: steer, move, check for
// self-collision, then try to eat the target.
func (st *GameState) Tick(turns []core.Direction) TickResult {
	if st.Over {
		return TickResult{}
	}

	st.Steer(turns)
	st.Snake.Advance()
	st.Ticks++

	if st.Snake.HasSelfCollision() {
		st.Over = true
		return TickResult{Died: true}
	}

	if st.Target != nil && st.Snake.TryConsume(st.Target.Position()) {
		st.relocateTarget()
		return TickResult{Ate: true}
	}
	return TickResult{}
}

// relocateTarget moves the target, honoring the avoid_body setting.
func (st *GameState) relocateTarget() {
	if st.avoidBody {
		st.Target.RelocateAvoiding(st.Area, st.rng, st.Snake.Occupies)
		return
	}
	st.Target.Relocate(st.Area, st.rng)
}
