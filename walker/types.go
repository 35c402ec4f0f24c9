package walker

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gridwalk/geo"
	"github.com/katalvlaran/gridwalk/puzzle"
)

var (
	// ErrInvalidDistance indicates a step token whose distance is missing or not an integer.
	ErrInvalidDistance = fmt.Errorf("%w: walker: invalid distance", puzzle.ErrParse)
	// ErrNoIntersection indicates the route never visits any cell twice.
	ErrNoIntersection = errors.New("walker: the route does not cross its own path")
)

// MaxDistance bounds the magnitude of a parsed step distance.
const MaxDistance = math.MaxInt32

// Step is a single instruction: rotate by Turn, then walk Distance cells.
type Step struct {
	Turn     geo.Turn
	Distance int
}

func (s Step) String() string {
	return fmt.Sprintf("%s%d", s.Turn.Token(), s.Distance)
}
