package puzzle

import (
	"errors"
	"fmt"
)

// ErrParse is wrapped by every error caused by malformed puzzle input.
var ErrParse = errors.New("puzzle: parse error")

// ErrInvalidPart indicates a part selector other than "1" or "2".
var ErrInvalidPart = errors.New("puzzle: part must be 1 or 2")

// Part selects part one or part two of a puzzle.
type Part int

const (
	// PartOne is the first half of a day's puzzle.
	PartOne Part = iota + 1
	// PartTwo is the second half, usually a twist on the first.
	PartTwo
)

// ParsePart parses the external part selector "1" or "2".
func ParsePart(s string) (Part, error) {
	switch s {
	case "1":
		return PartOne, nil
	case "2":
		return PartTwo, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidPart, s)
	}
}

// String returns the selector form of p, so ParsePart(p.String()) == p.
func (p Part) String() string {
	switch p {
	case PartOne:
		return "1"
	case PartTwo:
		return "2"
	default:
		return fmt.Sprintf("Part(%d)", int(p))
	}
}

// Solver solves one day's puzzle for the requested part.
// The input is the raw puzzle text; the answer is ready for display.
type Solver interface {
	Solve(part Part, input string) (string, error)
}

// SolverFunc adapts a plain function to the Solver interface.
type SolverFunc func(part Part, input string) (string, error)

// Solve calls f(part, input).
func (f SolverFunc) Solve(part Part, input string) (string, error) {
	return f(part, input)
}
