package geo

import "fmt"

// unitVectors is indexed by Direction.
var unitVectors = [...]Position{
	North: {0, 1},
	East:  {1, 0},
	South: {0, -1},
	West:  {-1, 0},
}

// Turn returns the heading reached by rotating d a quarter turn.
// Right cycles N→E→S→W→N; Left cycles the other way.
func (d Direction) Turn(t Turn) Direction {
	if t == Left {
		return (d + 3) % 4
	}
	return (d + 1) % 4
}

// Unit returns the unit vector of d.
func (d Direction) Unit() Position {
	return unitVectors[d]
}

// Token returns the canonical one-letter compass token ("N", "E", "S", "W").
func (d Direction) Token() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}
	return "?"
}

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// DirectionFromRune maps a single compass letter or keypad alias to a Direction.
func DirectionFromRune(r rune) (Direction, error) {
	switch r {
	case 'N', 'U':
		return North, nil
	case 'E', 'R':
		return East, nil
	case 'S', 'D':
		return South, nil
	case 'W', 'L':
		return West, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, r)
}

// ParseDirection parses a one-character direction token.
// Accepted: N/U (North), E/R (East), S/D (South), W/L (West).
func ParseDirection(s string) (Direction, error) {
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
	return DirectionFromRune(runes[0])
}
