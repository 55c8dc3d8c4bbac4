// Package tui provides the Bubble Tea integration for the snake arcade.
// It handles the terminal UI loop, input mapping, and frame presentation.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// StartMsg carries the status of a freshly reset round.
type StartMsg core.Status

func startCmd(st core.Status) tea.Cmd {
	return func() tea.Msg {
		return StartMsg(st)
	}
}

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 10
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
