package keypad

import (
	"fmt"

	"github.com/katalvlaran/gridwalk/puzzle"
)

// Solver answers day 2: part one enters the code on the Square pad, part
// two on the Diamond pad.
type Solver struct {
	// Options applies to every Keypad the solver creates.
	Options []Option
}

// Solve implements puzzle.Solver.
func (s Solver) Solve(part puzzle.Part, input string) (string, error) {
	lines, err := ParseMoves(input)
	if err != nil {
		return "", err
	}
	var layout *Layout
	switch part {
	case puzzle.PartOne:
		layout = Square()
	case puzzle.PartTwo:
		layout = Diamond()
	default:
		return "", fmt.Errorf("%w: %v", puzzle.ErrInvalidPart, part)
	}
	return New(layout, s.Options...).EnterCode(lines)
}
