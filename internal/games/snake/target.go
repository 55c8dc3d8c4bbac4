package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Target is the cube the snake eats. It owns its position only; it may land
// on the snake unless relocated with RelocateAvoiding.
type Target struct {
	position core.Point
}

// NewTarget places a target on a uniformly random cell.
func NewTarget(area core.Area, rng *rand.Rand) *Target {
	t := &Target{}
	t.Relocate(area, rng)
	return t
}

// Position returns the target cell.
func (t *Target) Position() core.Point {
	return t.position
}

// Relocate moves the target to a uniformly random cell.
func (t *Target) Relocate(area core.Area, rng *rand.Rand) {
	t.position = core.Point{
		X: rng.Intn(area.W),
		Y: rng.Intn(area.H),
	}
}

// RelocateAvoiding moves the target to a uniformly random cell for which
// occupied returns false. When every cell is occupied it falls back to
// Relocate.
func (t *Target) RelocateAvoiding(area core.Area, rng *rand.Rand, occupied func(core.Point) bool) {
	// Collect all free cells
	free := make([]core.Point, 0, area.Cells())
	for y := range area.H {
		for x := range area.W {
			p := core.Point{X: x, Y: y}
			if !occupied(p) {
				free = append(free, p)
			}
		}
	}

	if len(free) == 0 {
		t.Relocate(area, rng)
		return
	}
	t.position = free[rng.Intn(len(free))]
}
