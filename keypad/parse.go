package keypad

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridwalk/geo"
)

// ParseMoves splits input into lines of single-character directions
// (U/D/L/R or N/E/S/W). Blank lines are skipped. The first bad character
// is returned as geo.ErrInvalidDirection.
func ParseMoves(input string) ([][]geo.Direction, error) {
	var lines [][]geo.Direction
	for n, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		moves := make([]geo.Direction, 0, len(line))
		for _, r := range line {
			d, err := geo.DirectionFromRune(r)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", n+1, err)
			}
			moves = append(moves, d)
		}
		lines = append(lines, moves)
	}
	return lines, nil
}
