package triangle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridwalk/puzzle"
)

var (
	// ErrInvalidSide indicates a side that is not a non-negative integer.
	ErrInvalidSide = fmt.Errorf("%w: triangle: invalid side", puzzle.ErrParse)
	// ErrSideCount indicates a line without exactly three sides.
	ErrSideCount = fmt.Errorf("%w: triangle: each line needs three sides", puzzle.ErrParse)
	// ErrLineCount indicates a column reading whose line count is not a multiple of three.
	ErrLineCount = errors.New("triangle: number of lines must be divisible by 3")
)

// Triangle is a candidate triple of side lengths.
type Triangle struct {
	A, B, C int
}

// IsValid reports whether the sides satisfy the strict triangle inequality.
// Sides must be non-negative; each sum is compared as a difference so that
// sides up to math.MaxInt cannot overflow.
func (t Triangle) IsValid() bool {
	if t.A < 0 || t.B < 0 || t.C < 0 {
		return false
	}
	return t.A > t.C-t.B && t.A > t.B-t.C && t.B > t.A-t.C
}

// CountValid returns how many of ts are valid.
func CountValid(ts []Triangle) int {
	n := 0
	for _, t := range ts {
		if t.IsValid() {
			n++
		}
	}
	return n
}

// ParseRows reads one triangle per non-blank line.
func ParseRows(input string) ([]Triangle, error) {
	rows, err := parseLines(input)
	if err != nil {
		return nil, err
	}
	ts := make([]Triangle, len(rows))
	for i, r := range rows {
		ts[i] = Triangle{r[0], r[1], r[2]}
	}
	return ts, nil
}

// ParseColumns reads non-blank lines in groups of three; each column of a
// group is one triangle, top to bottom.
func ParseColumns(input string) ([]Triangle, error) {
	rows, err := parseLines(input)
	if err != nil {
		return nil, err
	}
	if len(rows)%3 != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrLineCount, len(rows))
	}
	ts := make([]Triangle, 0, len(rows))
	for i := 0; i < len(rows); i += 3 {
		for col := 0; col < 3; col++ {
			ts = append(ts, Triangle{rows[i][col], rows[i+1][col], rows[i+2][col]})
		}
	}
	return ts, nil
}

// parseLines returns the three sides of every non-blank line.
func parseLines(input string) ([][3]int, error) {
	var rows [][3]int
	for n, line := range strings.Split(input, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 3 {
			return nil, fmt.Errorf("line %d: %w: got %d", n+1, ErrSideCount, len(fields))
		}
		var row [3]int
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil || v < 0 {
				return nil, fmt.Errorf("line %d: %w: %q", n+1, ErrInvalidSide, f)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Solver answers day 3: part one reads triangles across rows, part two down
// columns. The answer is the number of valid triangles.
type Solver struct{}

// Solve implements puzzle.Solver.
func (Solver) Solve(part puzzle.Part, input string) (string, error) {
	var (
		ts  []Triangle
		err error
	)
	switch part {
	case puzzle.PartOne:
		ts, err = ParseRows(input)
	case puzzle.PartTwo:
		ts, err = ParseColumns(input)
	default:
		return "", fmt.Errorf("%w: %v", puzzle.ErrInvalidPart, part)
	}
	if err != nil {
		return "", err
	}
	return strconv.Itoa(CountValid(ts)), nil
}
