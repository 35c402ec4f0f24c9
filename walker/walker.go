package walker

import "github.com/katalvlaran/gridwalk/geo"

// Walker tracks a position and heading on the lattice.
// The zero value is not ready for use; call New.
type Walker struct {
	pos     geo.Position
	heading geo.Direction
}

// New returns a Walker at the origin facing North.
func New() *Walker {
	return &Walker{pos: geo.Origin, heading: geo.North}
}

// Position returns the current position.
func (w *Walker) Position() geo.Position { return w.pos }

// Heading returns the current heading.
func (w *Walker) Heading() geo.Direction { return w.heading }

// Apply rotates by s.Turn and then walks the full s.Distance in one move.
func (w *Walker) Apply(s Step) {
	w.heading = w.heading.Turn(s.Turn)
	w.pos.Walk(w.heading, s.Distance)
}

// Displacement runs steps on a fresh Walker and returns the Manhattan
// distance of the final position from the origin. No steps yields 0.
func Displacement(steps []Step) int {
	w := New()
	for _, s := range steps {
		w.Apply(s)
	}
	return w.pos.ManhattanDistance()
}

// FirstIntersection walks steps one unit cell at a time on a fresh Walker
// and returns the Manhattan distance of the first cell entered a second
// time. The origin is visited before the first step. Returns
// ErrNoIntersection when the route never revisits a cell.
func FirstIntersection(steps []Step) (int, error) {
	w := New()
	visited := geo.NewPositionSet(w.pos)
	for _, s := range steps {
		w.heading = w.heading.Turn(s.Turn)
		n := magnitude(s.Distance)
		for i := uint(0); i < n; i++ {
			w.pos.Walk(w.heading, 1)
			if !visited.Add(w.pos) {
				return w.pos.ManhattanDistance(), nil
			}
		}
	}
	return 0, ErrNoIntersection
}

// magnitude returns |n|, exact for every int including math.MinInt.
func magnitude(n int) uint {
	if n < 0 {
		return uint(-(n + 1)) + 1
	}
	return uint(n)
}
