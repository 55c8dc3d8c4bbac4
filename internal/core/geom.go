// Package core provides fundamental types and utilities for the snake arcade.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Point is a cell coordinate on the playfield grid.
type Point struct {
	X, Y int
}

// Add returns the component-wise sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale multiplies both components by k.
func (p Point) Scale(k int) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// IsZero reports whether p is the origin.
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// Area is the fixed playfield, measured in grid cells.
type Area struct {
	W, H int
}

// NewArea creates an area of w by h cells.
func NewArea(w, h int) Area {
	return Area{W: w, H: h}
}

// Contains returns true if p lies inside the area.
func (a Area) Contains(p Point) bool {
	return p.X >= 0 && p.X < a.W && p.Y >= 0 && p.Y < a.H
}

// Cells returns the number of cells in the area.
func (a Area) Cells() int {
	return a.W * a.H
}

// MinSide returns the smaller of the two dimensions.
func (a Area) MinSide() int {
	return Min(a.W, a.H)
}

// Wrap applies the wrap-around boundary policy to a point that left the area
// by at most one cell. Each axis is handled independently: below zero maps to
// the last cell, past the last cell maps to zero.
func (a Area) Wrap(p Point) Point {
	switch {
	case p.X < 0:
		p.X = a.W - 1
	case p.X > a.W-1:
		p.X = 0
	}
	switch {
	case p.Y < 0:
		p.Y = a.H - 1
	case p.Y > a.H-1:
		p.Y = 0
	}
	return p
}

// Rect represents an axis-aligned rectangle in grid cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
