package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snake is the player-controlled creature. It owns its body geometry,
// direction and digestion state; termination is decided by the caller.
type Snake struct {
	area      core.Area
	body      []core.Point // Head at index 0
	direction core.Direction
	digesting bool // Keep the tail on the next Advance
}

// NewSnake spawns a snake of initialLength segments at a random anchor,
// heading in a random direction, with the body extended backwards from the
// anchor. The anchor keeps initialLength cells of margin on every side so the
// whole body fits without wrapping.
func NewSnake(area core.Area, initialLength int, rng *rand.Rand) (*Snake, error) {
	if initialLength < 1 || 2*initialLength >= area.MinSide() {
		return nil, fmt.Errorf("snake: initial length %d does not fit a %dx%d area",
			initialLength, area.W, area.H)
	}

	anchor := core.Point{
		X: initialLength + rng.Intn(area.W-2*initialLength),
		Y: initialLength + rng.Intn(area.H-2*initialLength),
	}
	dir := core.Directions[rng.Intn(len(core.Directions))]

	body := make([]core.Point, initialLength)
	for i := range body {
		body[i] = anchor.Sub(dir.Vector().Scale(i))
	}

	return &Snake{
		area:      area,
		body:      body,
		direction: dir,
	}, nil
}

// NewSnakeFromBody builds a snake with an explicit body, head first.
func NewSnakeFromBody(area core.Area, body []core.Point, dir core.Direction) (*Snake, error) {
	if len(body) == 0 {
		return nil, fmt.Errorf("snake: body must not be empty")
	}
	for _, p := range body {
		if !area.Contains(p) {
			return nil, fmt.Errorf("snake: segment (%d, %d) outside %dx%d area", p.X, p.Y, area.W, area.H)
		}
	}
	return &Snake{
		area:      area,
		body:      append([]core.Point(nil), body...),
		direction: dir,
	}, nil
}

// SetDirection turns the snake unless d is exactly opposite to the current
// direction. Reports whether the direction was applied.
func (s *Snake) SetDirection(d core.Direction) bool {
	if d.IsOpposite(s.direction) {
		return false
	}
	s.direction = d
	return true
}

// Advance runs one tick of movement. Every segment takes the previous
// position of its predecessor (the tail is kept when digesting), then the
// head moves one cell and wraps around the area edges.
func (s *Snake) Advance() {
	n := len(s.body)
	if s.digesting {
		s.body = append(s.body, core.Point{})
		s.digesting = false
	}
	// copy has memmove semantics, so the shift reads pre-tick positions.
	copy(s.body[1:], s.body[:n])
	s.body[0] = s.area.Wrap(s.body[0].Add(s.direction.Vector()))
}

// HasSelfCollision reports whether the head shares a cell with any other
// segment. O(n) per call.
func (s *Snake) HasSelfCollision() bool {
	head := s.body[0]
	for _, seg := range s.body[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// TryConsume reports whether the head is on p; if so the snake starts
// digesting and grows by one segment on the next Advance. Consuming again
// before that Advance does not add more growth.
func (s *Snake) TryConsume(p core.Point) bool {
	if s.body[0] != p {
		return false
	}
	s.digesting = true
	return true
}

// Occupies reports whether any segment is on p.
func (s *Snake) Occupies(p core.Point) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Head returns the head position.
func (s *Snake) Head() core.Point {
	return s.body[0]
}

// Body returns a copy of the segments, head first.
func (s *Snake) Body() []core.Point {
	return append([]core.Point(nil), s.body...)
}

// Direction returns the current heading.
func (s *Snake) Direction() core.Direction {
	return s.direction
}

// Digesting reports whether the next Advance grows the snake.
func (s *Snake) Digesting() bool {
	return s.digesting
}
