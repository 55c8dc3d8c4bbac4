package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// stubGame ends after a fixed number of ticks.
type stubGame struct {
	area    core.Area
	endAt   int
	ticks   int
	resets  int
	steered []core.Direction
}

func (g *stubGame) ID() string      { return "stub" }
func (g *stubGame) Title() string   { return "Stub" }
func (g *stubGame) Area() core.Area { return g.area }
func (g *stubGame) Scored() bool    { return true }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.ticks = 0
	g.resets++
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	if g.ticks < g.endAt {
		g.ticks++
		g.steered = append(g.steered, in.Turns()...)
	}
	return core.StepResult{Status: g.State()}
}

func (g *stubGame) Render(dst *core.Frame) {
	dst.Resize(g.area.W, g.area.H)
	dst.Clear(core.ColorBlack)
	dst.Set(0, 0, core.ColorYellow)
}

func (g *stubGame) State() core.Status {
	return core.Status{Score: 3 + g.ticks, Ticks: g.ticks, GameOver: g.ticks >= g.endAt}
}

func newTestModel(g *stubGame, onOver core.GameOverFunc) Model {
	m := NewModel(g, core.RuntimeConfig{TickRate: 10, Seed: 1}, Options{OnGameOver: onOver})
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapper(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{runes("w"), core.ActionUp},
		{runes("j"), core.ActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{runes("d"), core.ActionRight},
		{runes("p"), core.ActionPause},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{runes("q"), core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{runes("r"), core.ActionNone}, // restart is disabled while playing
		{runes("x"), core.ActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKey(tt.msg); got != tt.want {
			t.Errorf("MapKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}

	km.SetGameOver(true)
	if got := km.MapKey(runes("r")); got != core.ActionRestart {
		t.Errorf("after game over MapKey(r) = %v, want Restart", got)
	}
	if got := km.MapKey(runes("p")); got != core.ActionNone {
		t.Errorf("after game over MapKey(p) = %v, want None", got)
	}
}

func TestRenderFrameRows(t *testing.T) {
	tests := []struct {
		w, h int
		rows int
	}{
		{4, 4, 2},
		{4, 5, 3},
		{80, 60, 30},
		{1, 1, 1},
	}

	for _, tt := range tests {
		f := core.NewFrame(tt.w, tt.h)
		if got := FrameRows(f); got != tt.rows {
			t.Errorf("FrameRows(%dx%d) = %d, want %d", tt.w, tt.h, got, tt.rows)
		}
		out := RenderFrame(f)
		if n := strings.Count(out, "\n") + 1; n != tt.rows {
			t.Errorf("RenderFrame(%dx%d) has %d lines, want %d", tt.w, tt.h, n, tt.rows)
		}
		if n := strings.Count(out, string(halfBlock)); n != tt.w*tt.rows {
			t.Errorf("RenderFrame(%dx%d) has %d blocks, want %d", tt.w, tt.h, n, tt.w*tt.rows)
		}
	}
}

func TestQuitIsImmediate(t *testing.T) {
	m := newTestModel(&stubGame{area: core.NewArea(4, 4), endAt: 10}, nil)

	m, cmd := update(t, m, runes("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestTurnsReachTheGame(t *testing.T) {
	g := &stubGame{area: core.NewArea(4, 4), endAt: 10}
	m := newTestModel(g, nil)

	m, _ = update(t, m, runes("s"))
	m, _ = update(t, m, runes("a"))
	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Error("tick should schedule the next tick while playing")
	}

	want := []core.Direction{core.DirDown, core.DirLeft}
	if len(g.steered) != len(want) {
		t.Fatalf("game saw turns %v, want %v", g.steered, want)
	}
	for i := range want {
		if g.steered[i] != want[i] {
			t.Errorf("turn %d = %v, want %v", i, g.steered[i], want[i])
		}
	}

	// The input frame is cleared after each tick
	m, _ = update(t, m, TickMsg{})
	if len(g.steered) != len(want) {
		t.Errorf("turns leaked into the next tick: %v", g.steered)
	}
}

func TestGameOverReportedOnce(t *testing.T) {
	g := &stubGame{area: core.NewArea(4, 4), endAt: 2}
	calls := 0
	var last core.Status
	m := newTestModel(g, func(id string, st core.Status) {
		calls++
		last = st
		if id != "stub" {
			t.Errorf("callback id = %q, want stub", id)
		}
	})

	m, _ = update(t, m, TickMsg{})
	m, cmd := update(t, m, TickMsg{})
	if cmd != nil {
		t.Error("ticking should stop once the game is over")
	}
	m, _ = update(t, m, TickMsg{})

	if calls != 1 {
		t.Fatalf("OnGameOver called %d times, want 1", calls)
	}
	if !last.GameOver || last.Score != 5 {
		t.Errorf("reported status = %+v, want game over with score 5", last)
	}
	if !strings.Contains(m.View(), "Length reached: 5") {
		t.Error("view should show the final length")
	}
	if !strings.Contains(m.View(), "Best: 5") {
		t.Error("HUD should show the new best")
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := &stubGame{area: core.NewArea(4, 4), endAt: 1}
	calls := 0
	m := newTestModel(g, func(string, core.Status) { calls++ })

	// Restart is ignored while playing
	m, _ = update(t, m, runes("r"))
	if g.resets != 1 {
		t.Fatalf("resets = %d before game over, want 1", g.resets)
	}

	m, _ = update(t, m, TickMsg{})
	m, cmd := update(t, m, runes("r"))
	if g.resets != 2 {
		t.Errorf("resets = %d after restart, want 2", g.resets)
	}
	if cmd == nil {
		t.Error("restart should re-arm the tick loop")
	}

	m, _ = update(t, m, TickMsg{})
	if calls != 2 {
		t.Errorf("OnGameOver called %d times over two rounds, want 2", calls)
	}
}

func TestInitSeedsStatus(t *testing.T) {
	g := &stubGame{area: core.NewArea(4, 4), endAt: 5}
	m := NewModel(g, core.RuntimeConfig{TickRate: 10, Seed: 1}, Options{})

	cmd := m.Init()
	if cmd == nil {
		t.Fatal("Init should return commands")
	}
	batch, ok := cmd().(tea.BatchMsg)
	if !ok {
		t.Fatalf("Init command produced %T, want tea.BatchMsg", cmd())
	}

	var start tea.Msg
	for _, c := range batch {
		if msg, ok := c().(StartMsg); ok {
			start = msg
		}
	}
	if start == nil {
		t.Fatal("Init should emit a StartMsg")
	}

	m, _ = update(t, m, start)
	if m.Status().Score != 3 {
		t.Errorf("status score = %d after start, want 3", m.Status().Score)
	}
	if !strings.Contains(m.View(), "Length: 3") {
		t.Error("HUD should show the initial length before the first tick")
	}

	// A late start message must not roll back a ticked round
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, start)
	if m.Status().Ticks != 1 {
		t.Errorf("ticks = %d, want 1 after a late start message", m.Status().Ticks)
	}
}

func TestWindowTooSmall(t *testing.T) {
	m := newTestModel(&stubGame{area: core.NewArea(80, 60), endAt: 10}, nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 20})
	if !strings.Contains(m.View(), "Window too small") {
		t.Error("a small terminal should get the resize notice")
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 50})
	if strings.Contains(m.View(), "Window too small") {
		t.Error("a large terminal should show the playfield")
	}
}
