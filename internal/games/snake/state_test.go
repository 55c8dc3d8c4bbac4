package snake

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// newTestState wraps a hand-built snake in a GameState without a target.
func newTestState(s *Snake, coalesce bool) *GameState {
	return &GameState{
		Area:     s.area,
		Snake:    s,
		rng:      rand.New(rand.NewSource(1)),
		coalesce: coalesce,
	}
}

func TestNewGameState(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	st, err := NewGameState(cfg, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("NewGameState() failed: %v", err)
	}
	if st.Area != core.NewArea(80, 60) {
		t.Errorf("Area = %v, expected 80x60", st.Area)
	}
	if st.Snake.Len() != 20 {
		t.Errorf("snake length = %d, expected 20", st.Snake.Len())
	}
	if st.Target == nil || !st.Area.Contains(st.Target.Position()) {
		t.Error("target should be placed inside the area")
	}

	cfg.Target.Enabled = false
	st, err = NewGameState(cfg, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatal(err)
	}
	if st.Target != nil {
		t.Error("target should be nil when disabled")
	}

	cfg = config.DefaultSnakeConfig()
	cfg.Snake.InitialLength = 40
	if _, err := NewGameState(cfg, rand.New(rand.NewSource(7))); err == nil {
		t.Error("oversized snake should fail to spawn")
	}
}

func TestBoxTurnCollidesWithinPerimeter(t *testing.T) {
	// Length 20 heading right; down, left, up traces a 4-cell box that the
	// head closes onto its own body.
	s := straightSnake(t, canonicalArea, core.Point{X: 40, Y: 30}, core.DirRight, 20)
	st := newTestState(s, true)

	turns := []core.Direction{core.DirDown, core.DirLeft, core.DirUp, core.DirRight}
	died := -1
	for i, d := range turns {
		res := st.Tick([]core.Direction{d})
		if res.Died {
			died = i + 1
			break
		}
	}

	if died < 0 {
		t.Fatal("snake should collide with itself within 4 ticks")
	}
	if !st.Over {
		t.Error("state should be over after the collision")
	}
	if died != 3 {
		t.Errorf("collided on tick %d, expected 3", died)
	}
}

func TestTickAfterGameOverIsNoop(t *testing.T) {
	s := straightSnake(t, canonicalArea, core.Point{X: 40, Y: 30}, core.DirRight, 20)
	st := newTestState(s, true)
	st.Over = true
	head := s.Head()

	res := st.Tick(nil)
	if res.Died || res.Ate {
		t.Error("Tick after game over should report nothing")
	}
	if s.Head() != head || st.Ticks != 0 {
		t.Error("Tick after game over must not move the snake")
	}
}

func TestSteerCoalescesToLastTurn(t *testing.T) {
	// Up then left within one tick would reverse a right-moving snake.
	s := straightSnake(t, canonicalArea, core.Point{X: 40, Y: 30}, core.DirRight, 5)
	st := newTestState(s, true)

	res := st.Tick([]core.Direction{core.DirUp, core.DirLeft})

	if res.Died {
		t.Fatal("coalesced input must not allow a two-key reversal")
	}
	if s.Direction() != core.DirRight {
		t.Errorf("direction = %v, expected right (left is ignored as opposite)", s.Direction())
	}

	st.Tick([]core.Direction{core.DirLeft, core.DirUp})
	if s.Direction() != core.DirUp {
		t.Errorf("direction = %v, expected up (last turn wins)", s.Direction())
	}
}

func TestSteerSequentialAllowsTwoKeyReversal(t *testing.T) {
	s := straightSnake(t, canonicalArea, core.Point{X: 40, Y: 30}, core.DirRight, 5)
	st := newTestState(s, false)

	res := st.Tick([]core.Direction{core.DirUp, core.DirLeft})

	if s.Direction() != core.DirLeft {
		t.Errorf("direction = %v, expected left after sequential turns", s.Direction())
	}
	if !res.Died {
		t.Error("sequential up+left should drive the head into the neck")
	}
}

func TestTickEatsTargetAndGrows(t *testing.T) {
	s := straightSnake(t, canonicalArea, core.Point{X: 40, Y: 30}, core.DirRight, 5)
	st := newTestState(s, true)
	st.Target = &Target{position: core.Point{X: 41, Y: 30}}

	res := st.Tick(nil)
	if !res.Ate {
		t.Fatal("head on target should eat it")
	}
	if s.Len() != 5 {
		t.Errorf("length = %d right after eating, expected 5", s.Len())
	}

	st.Target.position = core.Point{X: 0, Y: 0}
	st.Tick(nil)
	if s.Len() != 6 {
		t.Errorf("length = %d after digestion, expected 6", s.Len())
	}
}

func TestTickRelocatesTargetAvoidingBody(t *testing.T) {
	area := core.NewArea(12, 12)
	s := straightSnake(t, area, core.Point{X: 6, Y: 6}, core.DirRight, 5)
	st := newTestState(s, true)
	st.Area = area
	st.avoidBody = true

	for i := range 5 {
		st.Target = &Target{position: s.Head().Add(s.Direction().Vector())}
		if !st.Tick(nil).Ate {
			t.Fatalf("iteration %d: expected to eat", i)
		}
		if s.Occupies(st.Target.Position()) {
			t.Fatalf("iteration %d: target relocated onto the snake at %v", i, st.Target.Position())
		}
		if !area.Contains(st.Target.Position()) {
			t.Fatalf("iteration %d: target outside area", i)
		}
	}
}
