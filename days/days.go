// Package days maps puzzle days to their solvers.
package days

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/gridwalk/keypad"
	"github.com/katalvlaran/gridwalk/puzzle"
	"github.com/katalvlaran/gridwalk/triangle"
	"github.com/katalvlaran/gridwalk/walker"
)

var (
	// ErrDayOutOfRange indicates a day outside 1..25.
	ErrDayOutOfRange = errors.New("days: day must be 1-25")
	// ErrNoSolver indicates a valid day with no registered solver.
	ErrNoSolver = errors.New("days: no solver for day")
)

// FirstDay and LastDay bound the puzzle calendar.
const (
	FirstDay = 1
	LastDay  = 25
)

// Settings tunes the solvers a lookup returns. The zero value selects each
// solver's defaults.
type Settings struct {
	// KeypadResetPerLine restarts every day 2 line from the initial key.
	KeypadResetPerLine bool
}

// Entry describes one registered day.
type Entry struct {
	Day   int
	Title string
	build func(Settings) puzzle.Solver
}

// Solver returns the entry's solver configured by s.
func (e Entry) Solver(s Settings) puzzle.Solver {
	return e.build(s)
}

var registry = map[int]Entry{
	1: {Day: 1, Title: "No Time for a Taxicab", build: func(Settings) puzzle.Solver {
		return walker.Solver{}
	}},
	2: {Day: 2, Title: "Bathroom Security", build: func(s Settings) puzzle.Solver {
		var opts []keypad.Option
		if s.KeypadResetPerLine {
			opts = append(opts, keypad.WithResetPerLine())
		}
		return keypad.Solver{Options: opts}
	}},
	3: {Day: 3, Title: "Squares With Three Sides", build: func(Settings) puzzle.Solver {
		return triangle.Solver{}
	}},
}

// Lookup returns the solver for day with default settings.
func Lookup(day int) (puzzle.Solver, error) {
	return LookupWith(day, Settings{})
}

// LookupWith returns the solver for day configured by s.
func LookupWith(day int, s Settings) (puzzle.Solver, error) {
	if day < FirstDay || day > LastDay {
		return nil, fmt.Errorf("%w: %d", ErrDayOutOfRange, day)
	}
	e, ok := registry[day]
	if !ok {
		return nil, fmt.Errorf("%w %d", ErrNoSolver, day)
	}
	return e.Solver(s), nil
}

// Registered returns every registered day in ascending order.
func Registered() []Entry {
	out := make([]Entry, 0, len(registry))
	for _, e := range registry {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}
