package walker

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/gridwalk/geo"
)

// ParseStep parses a token such as "R8" or "L-15". The first character is
// the turn; everything after it is a base-10 signed distance.
// Returns geo.ErrInvalidTurn for a missing or unknown turn and
// ErrInvalidDistance for a missing or malformed distance, an explicit
// leading "+", or a magnitude above MaxDistance.
func ParseStep(token string) (Step, error) {
	r, size := utf8.DecodeRuneInString(token)
	if size == 0 {
		return Step{}, fmt.Errorf("%w: empty step", geo.ErrInvalidTurn)
	}
	turn, err := geo.ParseTurn(string(r))
	if err != nil {
		return Step{}, err
	}
	rest := token[size:]
	if strings.HasPrefix(rest, "+") {
		return Step{}, fmt.Errorf("%w: %q", ErrInvalidDistance, rest)
	}
	distance, err := strconv.Atoi(rest)
	if err != nil || distance > MaxDistance || distance < -MaxDistance {
		return Step{}, fmt.Errorf("%w: %q", ErrInvalidDistance, rest)
	}
	return Step{Turn: turn, Distance: distance}, nil
}

// ParseSteps parses comma-separated step tokens, trimming whitespace around
// each one. Input that is blank altogether yields no steps; a blank token
// between commas is an error. The first failure is returned.
func ParseSteps(input string) ([]Step, error) {
	if strings.TrimSpace(input) == "" {
		return nil, nil
	}
	tokens := strings.Split(input, ",")
	steps := make([]Step, 0, len(tokens))
	for i, tok := range tokens {
		step, err := ParseStep(strings.TrimSpace(tok))
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		steps = append(steps, step)
	}
	return steps, nil
}
