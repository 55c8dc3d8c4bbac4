// Package tcellui drives a snake game with an explicit tick loop on a
// tcell screen. Input is collected between ticks and drained at the start
// of each one.
package tcellui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

const halfBlock = '▀'

// DefaultLinger is how long Run keeps the final frame on screen.
const DefaultLinger = 2 * time.Second

// Options tune a Runner beyond the runtime config.
type Options struct {
	Logger     *log.Logger
	OnGameOver core.GameOverFunc
	Best       int
	HasBest    bool
	// Linger keeps the game over frame visible until it expires or a key
	// is pressed. Zero returns right away.
	Linger time.Duration
}

// Runner owns one game on one screen.
type Runner struct {
	screen tcell.Screen
	game   registry.Game
	frame  *core.Frame
	input  core.InputFrame
	cfg    core.RuntimeConfig
	opts   Options
	status core.Status
	quit   bool
}

// NewRunner prepares a runner. The screen must already be initialized.
func NewRunner(screen tcell.Screen, game registry.Game, cfg core.RuntimeConfig, opts Options) *Runner {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	area := game.Area()
	return &Runner{
		screen: screen,
		game:   game,
		frame:  core.NewFrame(area.W, area.H),
		input:  core.NewInputFrame(),
		cfg:    cfg,
		opts:   opts,
	}
}

// Start resets the game and draws the first frame.
func (r *Runner) Start() {
	r.game.Reset(r.cfg)
	r.status = r.game.State()
	r.Draw()
}

// HandleEvent records a terminal event for the next tick.
func (r *Runner) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch a := mapKey(ev); a {
		case core.ActionNone, core.ActionRestart:
		case core.ActionQuit:
			r.quit = true
		default:
			r.input.Set(a)
		}
	case *tcell.EventResize:
		r.screen.Sync()
	}
}

// Quitting reports whether the player asked to leave.
func (r *Runner) Quitting() bool {
	return r.quit
}

// Status returns the status after the last tick.
func (r *Runner) Status() core.Status {
	return r.status
}

// Tick runs one simulation step and redraws. It returns false once the
// loop should stop.
func (r *Runner) Tick() bool {
	if r.quit {
		return false
	}

	res := r.game.Step(r.input)
	r.input.Clear()
	r.status = res.Status
	r.Draw()

	if res.Status.GameOver {
		r.opts.Logger.Info("game over", "game", r.game.ID(), "length", res.Status.Score, "ticks", res.Status.Ticks)
		if r.opts.OnGameOver != nil {
			r.opts.OnGameOver(r.game.ID(), res.Status)
		}
		return false
	}
	return true
}

// Draw presents the current frame and the status line.
func (r *Runner) Draw() {
	r.game.Render(r.frame)
	r.screen.Clear()

	rows := (r.frame.Height() + 1) / 2
	for y := range rows {
		for x := range r.frame.Width() {
			top := r.frame.At(x, 2*y)
			bottom := r.frame.At(x, 2*y+1)
			style := tcell.StyleDefault.Foreground(rgb(top)).Background(rgb(bottom))
			r.screen.SetContent(x, y, halfBlock, nil, style)
		}
	}

	drawText(r.screen, 0, rows, tcell.StyleDefault, r.statusLine())
	r.screen.Show()
}

func (r *Runner) statusLine() string {
	line := fmt.Sprintf("%s  Length: %d", r.game.Title(), r.status.Score)
	if r.game.Scored() && r.opts.HasBest {
		line += fmt.Sprintf("  Best: %d", r.opts.Best)
	}
	switch {
	case r.status.GameOver:
		line += "  You ate yourself!"
	case r.status.Paused:
		line += "  Paused"
	}
	return line
}

// Loop runs the tick loop until game over, quit or ctx is done.
func (r *Runner) Loop(ctx context.Context) (core.Status, error) {
	events := make(chan tcell.Event, 64)
	stop := make(chan struct{})
	go r.screen.ChannelEvents(events, stop)
	defer close(stop)

	ticker := time.NewTicker(time.Second / time.Duration(r.cfg.TickRate))
	defer ticker.Stop()

	r.Start()
	for {
		select {
		case <-ctx.Done():
			return r.status, ctx.Err()
		case <-ticker.C:
		}

		r.drain(events)
		if !r.Tick() {
			if r.status.GameOver && !r.quit {
				r.hold(ctx, events)
			}
			return r.status, nil
		}
	}
}

// hold waits on the final frame for Linger, a key press or ctx.
func (r *Runner) hold(ctx context.Context, events <-chan tcell.Event) {
	if r.opts.Linger <= 0 {
		return
	}
	timer := time.NewTimer(r.opts.Linger)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev.(type) {
			case *tcell.EventKey:
				return
			case *tcell.EventResize:
				r.screen.Sync()
			}
		}
	}
}

// drain consumes every pending event without blocking.
func (r *Runner) drain(events <-chan tcell.Event) {
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				r.quit = true
				return
			}
			r.HandleEvent(ev)
		default:
			return
		}
	}
}

// Run opens the terminal, plays one game and restores the terminal.
func Run(ctx context.Context, game registry.Game, cfg core.RuntimeConfig, opts Options) (core.Status, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return core.Status{}, fmt.Errorf("tcellui: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return core.Status{}, fmt.Errorf("tcellui: cannot init screen: %w", err)
	}
	defer screen.Fini()

	return NewRunner(screen, game, cfg, opts).Loop(ctx)
}

func mapKey(ev *tcell.EventKey) core.Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return core.ActionUp
	case tcell.KeyDown:
		return core.ActionDown
	case tcell.KeyLeft:
		return core.ActionLeft
	case tcell.KeyRight:
		return core.ActionRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'k':
			return core.ActionUp
		case 's', 'j':
			return core.ActionDown
		case 'a', 'h':
			return core.ActionLeft
		case 'd', 'l':
			return core.ActionRight
		case 'p':
			return core.ActionPause
		case 'q':
			return core.ActionQuit
		}
	}
	return core.ActionNone
}

func rgb(c core.Color) tcell.Color {
	r, g, b := c.RGB()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, ch := range text {
		s.SetContent(x, y, ch, nil, style)
		x++
	}
}
