package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/registry"
)

// menuKeys are the bindings of the variant picker.
type menuKeys struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

func defaultMenuKeys() menuKeys {
	return menuKeys{
		Up:     key.NewBinding(key.WithKeys("up", "k", "w")),
		Down:   key.NewBinding(key.WithKeys("down", "j", "s")),
		Select: key.NewBinding(key.WithKeys("enter", " ")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	}
}

// MenuModel is the Bubble Tea model for the variant picker.
type MenuModel struct {
	items    []registry.GameInfo
	cursor   int
	width    int
	best     int
	hasBest  bool
	keys     menuKeys
	selected string
	quitting bool
}

// NewMenuModel lists every registered variant. best is shown in the header
// when hasBest is set.
func NewMenuModel(width, best int, hasBest bool, current string) MenuModel {
	items := registry.List()
	m := MenuModel{
		items:   items,
		width:   width,
		best:    best,
		hasBest: hasBest,
		keys:    defaultMenuKeys(),
	}
	for i, it := range items {
		if it.ID == current {
			m.cursor = i
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			if len(m.items) > 0 {
				m.selected = m.items[m.cursor].ID
				return m, tea.Quit // Exit menu to start game
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("S N A K E"), "S N A K E", m.width))
	b.WriteString("\n\n")

	sub := "Select a variant"
	if m.hasBest {
		sub = fmt.Sprintf("Select a variant  (best length: %d)", m.best)
	}
	b.WriteString(centerText(sub, sub, m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-8s %s", cursor, item.ID, item.Title)
		b.WriteString(centerText(line, line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Q: Quit"
	b.WriteString(centerText(hudStyle.Render(controls), controls, m.width))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the chosen variant ID, or "" if none was chosen.
func (m MenuModel) Selected() string {
	return m.selected
}

// centerText pads rendered so that plain, its visible text, is centered.
func centerText(rendered, plain string, width int) string {
	n := len([]rune(plain))
	if n >= width {
		return rendered
	}
	return strings.Repeat(" ", (width-n)/2) + rendered
}

// RunMenu shows the picker and returns the chosen variant ID, or "" when
// the player quit.
func RunMenu(width, best int, hasBest bool, current string) (string, error) {
	p := tea.NewProgram(
		NewMenuModel(width, best, hasBest, current),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return "", err
	}
	if m, ok := final.(MenuModel); ok {
		return m.Selected(), nil
	}
	return "", nil
}
