package geo

import (
	"fmt"

	"github.com/katalvlaran/gridwalk/puzzle"
)

// Sentinel errors for geo parsing. Both wrap puzzle.ErrParse.
var (
	// ErrInvalidTurn indicates a turn token other than "R" or "L".
	ErrInvalidTurn = fmt.Errorf("%w: geo: invalid turn", puzzle.ErrParse)
	// ErrInvalidDirection indicates a direction token outside N/E/S/W and U/R/D/L.
	ErrInvalidDirection = fmt.Errorf("%w: geo: invalid direction", puzzle.ErrParse)
)

// Direction is a compass heading on the lattice.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Turn is a rotation relative to the current heading.
type Turn int

const (
	Right Turn = iota
	Left
)

// Position is a point on the 2-D integer lattice.
type Position struct {
	X, Y int
}

// Origin is the lattice point (0,0).
var Origin = Position{}
