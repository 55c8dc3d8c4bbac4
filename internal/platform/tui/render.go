package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// halfBlock draws the top cell in the foreground and the bottom cell in the
// background color, so one terminal row holds two grid rows.
const halfBlock = '▀'

type cellPair struct {
	top, bottom core.Color
}

// pairStyles caches one lipgloss style per color pair.
var pairStyles = map[cellPair]lipgloss.Style{}

func styleFor(p cellPair) lipgloss.Style {
	if s, ok := pairStyles[p]; ok {
		return s
	}
	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.top.ANSI())).
		Background(lipgloss.Color(p.bottom.ANSI()))
	pairStyles[p] = s
	return s
}

// FrameRows returns the number of terminal rows RenderFrame produces.
func FrameRows(f *core.Frame) int {
	return (f.Height() + 1) / 2
}

// RenderFrame converts a Frame to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderFrame(f *core.Frame) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(f.Width()*FrameRows(f)*4 + FrameRows(f))

	for y := 0; y < f.Height(); y += 2 {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color pair for efficiency
		x := 0
		for x < f.Width() {
			start := pairAt(f, x, y)

			var run strings.Builder
			for x < f.Width() && pairAt(f, x, y) == start {
				run.WriteRune(halfBlock)
				x++
			}

			sb.WriteString(styleFor(start).Render(run.String()))
		}
	}
	return sb.String()
}

// pairAt returns the colors of grid rows y and y+1 at column x.
// Past the last row the background is used.
func pairAt(f *core.Frame, x, y int) cellPair {
	return cellPair{top: f.At(x, y), bottom: f.At(x, y+1)}
}
