package core

import (
	"strings"
)

// Frame is a grid of colored cells, one per playfield cell.
// It decouples game rendering from the output device: games clear and fill
// cells, while each platform backend decides how a frame is presented.
type Frame struct {
	width      int
	height     int
	background Color
	cells      [][]Color
}

// NewFrame creates a new frame with the given dimensions.
func NewFrame(width, height int) *Frame {
	f := &Frame{
		width:  width,
		height: height,
	}
	f.allocate()
	f.Clear(ColorBlack)
	return f
}

// allocate creates the underlying cell storage.
func (f *Frame) allocate() {
	f.cells = make([][]Color, f.height)
	for y := range f.cells {
		f.cells[y] = make([]Color, f.width)
	}
}

// Width returns the frame width in cells.
func (f *Frame) Width() int {
	return f.width
}

// Height returns the frame height in cells.
func (f *Frame) Height() int {
	return f.height
}

// Background returns the color used by the last Clear.
func (f *Frame) Background() Color {
	return f.background
}

// Resize changes the frame dimensions and clears it.
func (f *Frame) Resize(width, height int) {
	if width == f.width && height == f.height {
		return
	}
	f.width = width
	f.height = height
	f.allocate()
	f.Clear(f.background)
}

// Clear fills the entire frame with c.
func (f *Frame) Clear(c Color) {
	f.background = c
	for y := range f.cells {
		for x := range f.cells[y] {
			f.cells[y][x] = c
		}
	}
}

// Set colors the cell at (x, y).
// Out-of-bounds coordinates are silently ignored.
func (f *Frame) Set(x, y int, c Color) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	f.cells[y][x] = c
}

// At returns the color at (x, y), or the background when out of bounds.
func (f *Frame) At(x, y int) Color {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return f.background
	}
	return f.cells[y][x]
}

// Filled reports whether the cell differs from the background.
func (f *Frame) Filled(x, y int) bool {
	return f.At(x, y) != f.background
}

// DrawRect fills a size×size square whose top-left cell is (x, y).
func (f *Frame) DrawRect(x, y, size int, c Color) {
	f.FillRect(NewRect(x, y, size, size), c)
}

// FillRect fills an arbitrary rectangle.
func (f *Frame) FillRect(r Rect, c Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			f.Set(x, y, c)
		}
	}
}

// String renders the frame as text, '#' for filled cells and '.' for
// background. Used for debugging and screenshots.
func (f *Frame) String() string {
	var sb strings.Builder
	sb.Grow(f.width*f.height + f.height)
	for y := range f.height {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range f.width {
			if f.Filled(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
