package geo

import "fmt"

// Token returns the canonical turn token, "R" or "L".
func (t Turn) Token() string {
	if t == Left {
		return "L"
	}
	return "R"
}

func (t Turn) String() string {
	switch t {
	case Right:
		return "Right"
	case Left:
		return "Left"
	}
	return fmt.Sprintf("Turn(%d)", int(t))
}

// ParseTurn parses a turn token. Only "R" and "L" are accepted; compass
// letters belong to ParseDirection.
func ParseTurn(s string) (Turn, error) {
	switch s {
	case "R":
		return Right, nil
	case "L":
		return Left, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidTurn, s)
}
