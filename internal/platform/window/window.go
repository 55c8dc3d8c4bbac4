// Package window runs a snake game in a desktop window using Ebiten.
// Each Ebiten update is one simulation tick, so the tick rate is set
// through ebiten.SetTPS.
package window

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Title is the window caption.
const Title = "Snake"

// Options tune the window beyond the runtime config.
type Options struct {
	Logger     *log.Logger
	OnGameOver core.GameOverFunc
	PieceSize  int       // Pixels per grid cell
	Console    io.Writer // Receives the running length line; nil means stdout
}

// Window adapts a registry.Game to ebiten.Game.
type Window struct {
	game   registry.Game
	frame  *core.Frame
	input  core.InputFrame
	keys   []ebiten.Key
	opts   Options
	status core.Status
}

// New creates a window for game and resets it with cfg.
func New(game registry.Game, cfg core.RuntimeConfig, opts Options) *Window {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.PieceSize <= 0 {
		opts.PieceSize = 10
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Console == nil {
		opts.Console = os.Stdout
	}

	area := game.Area()
	w := &Window{
		game:  game,
		frame: core.NewFrame(area.W, area.H),
		input: core.NewInputFrame(),
		opts:  opts,
	}
	game.Reset(cfg)
	w.status = game.State()
	return w
}

// Update collects the keys pressed since the last tick and steps the game.
func (w *Window) Update() error {
	w.keys = inpututil.AppendJustPressedKeys(w.keys[:0])
	return w.step(w.keys)
}

// step applies keys and runs one tick. It returns ebiten.Termination
// once the window should close.
func (w *Window) step(keys []ebiten.Key) error {
	for _, k := range keys {
		switch a := mapKey(k); a {
		case core.ActionNone, core.ActionRestart:
		case core.ActionQuit:
			// Quit leaves without running the tick.
			return ebiten.Termination
		default:
			w.input.Set(a)
		}
	}

	res := w.game.Step(w.input)
	w.input.Clear()
	w.status = res.Status
	fmt.Fprintf(w.opts.Console, "\rSnake length: %d", res.Status.Score)

	if res.Status.GameOver {
		fmt.Fprintln(w.opts.Console)
		w.opts.Logger.Info("game over", "game", w.game.ID(), "length", res.Status.Score, "ticks", res.Status.Ticks)
		if w.opts.OnGameOver != nil {
			w.opts.OnGameOver(w.game.ID(), res.Status)
		}
		return ebiten.Termination
	}
	return nil
}

// Draw fills one square per non-background cell.
func (w *Window) Draw(screen *ebiten.Image) {
	w.game.Render(w.frame)
	bg := w.frame.Background()
	screen.Fill(rgba(bg))

	ps := float32(w.opts.PieceSize)
	for y := range w.frame.Height() {
		for x := range w.frame.Width() {
			c := w.frame.At(x, y)
			if c == bg {
				continue
			}
			vector.DrawFilledRect(screen, float32(x)*ps, float32(y)*ps, ps, ps, rgba(c), false)
		}
	}
}

// Layout keeps the logical screen at the playfield size in pixels.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.Size()
}

// Size returns the window size in pixels.
func (w *Window) Size() (int, int) {
	area := w.game.Area()
	return area.W * w.opts.PieceSize, area.H * w.opts.PieceSize
}

// Status returns the status after the last tick.
func (w *Window) Status() core.Status {
	return w.status
}

// Run opens the window and blocks until the game ends or the window closes.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (core.Status, error) {
	w := New(game, cfg, opts)

	width, height := w.Size()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(Title)
	ebiten.SetWindowIcon([]image.Image{Icon(16), Icon(32), Icon(48)})
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	if err := ebiten.RunGame(w); err != nil {
		return w.status, fmt.Errorf("window: %w", err)
	}
	return w.status, nil
}

// Icon draws a size by size window icon: a bent snake and its target on
// an 8x8 grid.
func Icon(size int) image.Image {
	f := core.NewFrame(8, 8)
	f.Clear(core.ColorBlack)
	for _, p := range []core.Point{{1, 5}, {2, 5}, {3, 5}, {4, 5}, {4, 4}, {4, 3}} {
		f.Set(p.X, p.Y, core.ColorDarkGray)
	}
	f.Set(4, 2, core.ColorGray)
	f.Set(2, 2, core.ColorYellow)

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := range size {
		for x := range size {
			img.SetRGBA(x, y, rgba(f.At(x*f.Width()/size, y*f.Height()/size)))
		}
	}
	return img
}

func mapKey(k ebiten.Key) core.Action {
	switch k {
	case ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyK:
		return core.ActionUp
	case ebiten.KeyArrowDown, ebiten.KeyS, ebiten.KeyJ:
		return core.ActionDown
	case ebiten.KeyArrowLeft, ebiten.KeyA, ebiten.KeyH:
		return core.ActionLeft
	case ebiten.KeyArrowRight, ebiten.KeyD, ebiten.KeyL:
		return core.ActionRight
	case ebiten.KeyP:
		return core.ActionPause
	case ebiten.KeyQ, ebiten.KeyEscape:
		return core.ActionQuit
	}
	return core.ActionNone
}

func rgba(c core.Color) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
