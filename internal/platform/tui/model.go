package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	hudStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	fieldStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("241"))
	noticeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
)

// Options tune a Model beyond the runtime config.
type Options struct {
	Logger     *log.Logger
	OnGameOver core.GameOverFunc // Called once per finished round
	Best       int               // Stored best shown in the HUD
	HasBest    bool
}

// Model is the Bubble Tea model for running a snake variant.
type Model struct {
	game       registry.Game
	frame      *core.Frame
	config     core.RuntimeConfig
	opts       Options
	keys       *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	status     core.Status
	width      int
	height     int
	reported   bool // Whether OnGameOver ran for the current round
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	area := game.Area()
	return Model{
		game:       game,
		frame:      core.NewFrame(area.W, area.H),
		config:     cfg,
		opts:       opts,
		keys:       NewKeyMapper(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)

	// Init has a value receiver, so the first status arrives as a message
	return tea.Batch(startCmd(m.game.State()), tickCmd(m.config.TickRate))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case StartMsg:
		// A tick may already have landed
		if m.status.Ticks == 0 && !m.status.GameOver {
			m.status = core.Status(msg)
		}
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.MapKey(msg); action {
	case core.ActionNone:
	case core.ActionQuit:
		// Quit leaves at once; the pending input is dropped.
		m.quitting = true
		return m, tea.Quit
	case core.ActionRestart:
		return m.restart()
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// restart starts a fresh round after game over.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.status = m.game.State()
	m.reported = false
	m.keys.SetGameOver(false)
	m.inputFrame.Clear()
	m.opts.Logger.Debug("round restarted", "game", m.game.ID(), "seed", m.config.Seed)
	return m, tickCmd(m.config.TickRate)
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.status.GameOver && m.reported {
		// The round has ended; the loop stays stopped until restart.
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.status = result.Status
	m.inputFrame.Clear()

	if result.Ate {
		m.opts.Logger.Debug("target eaten", "length", m.status.Score, "tick", m.status.Ticks)
	}

	if m.status.GameOver {
		m.finishRound()
		return m, nil
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// finishRound reports the ended round exactly once.
func (m *Model) finishRound() {
	if m.reported {
		return
	}
	m.reported = true
	m.keys.SetGameOver(true)
	m.opts.Logger.Info("game over", "game", m.game.ID(), "length", m.status.Score, "ticks", m.status.Ticks)

	if m.opts.OnGameOver != nil {
		m.opts.OnGameOver(m.game.ID(), m.status)
	}
	if m.game.Scored() && (!m.opts.HasBest || m.status.Score > m.opts.Best) {
		m.opts.Best = m.status.Score
		m.opts.HasBest = true
	}
}

// Status returns the status after the last tick.
func (m Model) Status() core.Status {
	return m.status
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	area := m.game.Area()
	needW := area.W + 2
	needH := (area.H+1)/2 + 2 + 3 // field, border, HUD, notice and help
	if m.width > 0 && m.height > 0 && (m.width < needW || m.height < needH) {
		msg := fmt.Sprintf("Window too small\nNeed %dx%d, have %dx%d", needW, needH, m.width, m.height)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, noticeStyle.Render(msg))
	}

	// Render game to frame buffer
	m.game.Render(m.frame)

	var b strings.Builder
	b.WriteString(m.renderHUD())
	b.WriteByte('\n')
	b.WriteString(fieldStyle.Render(RenderFrame(m.frame)))
	b.WriteByte('\n')
	b.WriteString(noticeStyle.Render(m.notice()))
	b.WriteByte('\n')
	b.WriteString(m.help.View(m.keys.Keys))
	return b.String()
}

// renderHUD draws the top status line.
func (m Model) renderHUD() string {
	hud := fmt.Sprintf("  Length: %d", m.status.Score)
	if m.game.Scored() && m.opts.HasBest {
		hud += fmt.Sprintf("  Best: %d", m.opts.Best)
	}
	return titleStyle.Render(m.game.Title()) + hudStyle.Render(hud)
}

// notice returns the line shown under the playfield.
func (m Model) notice() string {
	switch {
	case m.status.GameOver:
		return fmt.Sprintf("You ate yourself! Length reached: %d", m.status.Score)
	case m.status.Paused:
		return "Paused"
	default:
		return ""
	}
}

// Run starts the Bubble Tea program for the game and blocks until the
// player quits. It returns the status of the last round.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (core.Status, error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return core.Status{}, err
	}
	if fm, ok := final.(Model); ok {
		return fm.status, nil
	}
	return core.Status{}, nil
}
