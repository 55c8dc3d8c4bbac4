package snake

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Colors used by Render.
const (
	BackgroundColor = core.ColorBlack
	BodyColor       = core.ColorDarkGray
	HeadColor       = core.ColorGray
	TargetColor     = core.ColorYellow
)

// Game implements one snake variant on top of GameState.
type Game struct {
	variant Variant
	cfg     config.SnakeConfig
	rng     *rand.Rand
	state   *GameState
	paused  bool
	err     error // Spawn failure; the game reports itself over
}

// New creates a game for the variant, applying its overrides to cfg.
// The resulting configuration is validated.
func New(v Variant, cfg config.SnakeConfig) (*Game, error) {
	if v.Apply != nil {
		v.Apply(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("snake: variant %q: %w", v.ID, err)
	}
	return &Game{
		variant: v,
		cfg:     cfg,
	}, nil
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// Config returns the effective configuration after variant overrides.
func (g *Game) Config() config.SnakeConfig {
	return g.cfg
}

// Area returns the playfield size.
func (g *Game) Area() core.Area {
	return core.NewArea(g.cfg.Area.Width, g.cfg.Area.Height)
}

// Scored reports whether this variant keeps score. Without a target the
// snake never grows, so there is nothing to record.
func (g *Game) Scored() bool {
	return g.cfg.Target.Enabled
}

// Err returns the error from the last Reset, if any.
func (g *Game) Err() error {
	return g.err
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.paused = false
	g.state, g.err = NewGameState(g.cfg, g.rng)
}

// GameState exposes the round for inspection.
func (g *Game) GameState() *GameState {
	return g.state
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if g.state == nil {
		return core.StepResult{Status: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) && !g.state.Over {
		g.paused = !g.paused
	}

	if g.paused || g.state.Over {
		return core.StepResult{Status: g.State()}
	}

	res := g.state.Tick(input.Turns())
	return core.StepResult{
		Status: g.State(),
		Ate:    res.Ate,
		Died:   res.Died,
	}
}

// Render draws the playfield, snake and target into dst, resizing dst to
// the area if needed.
func (g *Game) Render(dst *core.Frame) {
	area := g.Area()
	dst.Resize(area.W, area.H)
	dst.Clear(BackgroundColor)

	if g.state == nil {
		return
	}

	body := g.state.Snake.body
	for i := len(body) - 1; i >= 0; i-- {
		c := BodyColor
		if i == 0 {
			c = HeadColor
		}
		dst.DrawRect(body[i].X, body[i].Y, 1, c)
	}

	if g.state.Target != nil {
		p := g.state.Target.Position()
		dst.DrawRect(p.X, p.Y, 1, TargetColor)
	}
}

// State returns the current game status. The score is the snake length.
func (g *Game) State() core.Status {
	if g.state == nil {
		return core.Status{GameOver: true}
	}
	return core.Status{
		Score:    g.state.Snake.Len(),
		Ticks:    g.state.Ticks,
		GameOver: g.state.Over,
		Paused:   g.paused,
	}
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	if g.state == nil {
		return fmt.Sprintf("%s: not started (%v)\n", g.variant.ID, g.err)
	}
	var b strings.Builder
	s := g.state.Snake
	b.WriteString(fmt.Sprintf("Tick: %d, Length: %d, Direction: %s\n", g.state.Ticks, s.Len(), s.Direction()))
	b.WriteString(fmt.Sprintf("Head: (%d, %d), Digesting: %v\n", s.Head().X, s.Head().Y, s.Digesting()))
	if g.state.Target != nil {
		p := g.state.Target.Position()
		b.WriteString(fmt.Sprintf("Target: (%d, %d)\n", p.X, p.Y))
	}
	b.WriteString(fmt.Sprintf("GameOver: %v, Paused: %v\n", g.state.Over, g.paused))
	return b.String()
}
