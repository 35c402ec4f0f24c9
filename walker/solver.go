package walker

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/gridwalk/puzzle"
)

// Solver answers day 1: part one reports the final displacement, part two
// the distance of the first revisited cell.
type Solver struct{}

// Solve implements puzzle.Solver.
func (Solver) Solve(part puzzle.Part, input string) (string, error) {
	steps, err := ParseSteps(input)
	if err != nil {
		return "", err
	}
	switch part {
	case puzzle.PartOne:
		return strconv.Itoa(Displacement(steps)), nil
	case puzzle.PartTwo:
		d, err := FirstIntersection(steps)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(d), nil
	default:
		return "", fmt.Errorf("%w: %v", puzzle.ErrInvalidPart, part)
	}
}
