package triangle_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridwalk/puzzle"
	"github.com/katalvlaran/gridwalk/triangle"
)

// TestTriangle_IsValid covers degenerate and proper triples.
func TestTriangle_IsValid(t *testing.T) {
	cases := []struct {
		tri  triangle.Triangle
		want bool
	}{
		{triangle.Triangle{A: 3, B: 4, C: 5}, true},
		{triangle.Triangle{A: 5, B: 10, C: 25}, false},
		{triangle.Triangle{A: 1, B: 2, C: 3}, false}, // degenerate
		{triangle.Triangle{A: 2, B: 2, C: 2}, true},
		{triangle.Triangle{A: 0, B: 0, C: 0}, false},
		{triangle.Triangle{A: math.MaxInt, B: math.MaxInt, C: 1}, true},
		{triangle.Triangle{A: math.MaxInt, B: 1, C: 1}, false},
		{triangle.Triangle{A: math.MaxInt, B: math.MaxInt, C: math.MaxInt}, true},
		{triangle.Triangle{A: -1, B: 5, C: 5}, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.tri.IsValid(), "%+v", tc.tri)
	}
}

// TestParseRows reads one triangle per line and skips blank lines.
func TestParseRows(t *testing.T) {
	ts, err := triangle.ParseRows("  5  10  25\n\n 3 4 5\n")
	require.NoError(t, err)
	assert.Equal(t, []triangle.Triangle{{A: 5, B: 10, C: 25}, {A: 3, B: 4, C: 5}}, ts)
	assert.Equal(t, 1, triangle.CountValid(ts))
}

// TestParseRows_Errors rejects short lines and bad numbers.
func TestParseRows_Errors(t *testing.T) {
	_, err := triangle.ParseRows("1 2\n")
	assert.ErrorIs(t, err, triangle.ErrSideCount)
	assert.ErrorIs(t, err, puzzle.ErrParse)

	_, err = triangle.ParseRows("1 2 x\n")
	assert.ErrorIs(t, err, triangle.ErrInvalidSide)

	_, err = triangle.ParseRows("1 2 -3\n")
	assert.ErrorIs(t, err, triangle.ErrInvalidSide)
}

// TestParseRows_LargeSides counts a triangle whose sides sum past math.MaxInt.
func TestParseRows_LargeSides(t *testing.T) {
	big := strconv.Itoa(math.MaxInt)
	ts, err := triangle.ParseRows(big + " " + big + " 1\n")
	require.NoError(t, err)
	assert.Equal(t, 1, triangle.CountValid(ts))
}

// TestParseColumns transposes each group of three lines.
func TestParseColumns(t *testing.T) {
	input := "101 301 501\n102 302 502\n103 303 503\n201 401 601\n202 402 602\n203 403 603\n"
	ts, err := triangle.ParseColumns(input)
	require.NoError(t, err)
	require.Len(t, ts, 6)
	assert.Equal(t, triangle.Triangle{A: 101, B: 102, C: 103}, ts[0])
	assert.Equal(t, triangle.Triangle{A: 501, B: 502, C: 503}, ts[2])
	assert.Equal(t, triangle.Triangle{A: 201, B: 202, C: 203}, ts[3])
	assert.Equal(t, 6, triangle.CountValid(ts))

	_, err = triangle.ParseColumns("1 2 3\n4 5 6\n")
	assert.ErrorIs(t, err, triangle.ErrLineCount)
}

// TestSolver dispatches rows and columns by part.
func TestSolver(t *testing.T) {
	input := "5 10 25\n3 4 5\n10 20 25\n"
	var s puzzle.Solver = triangle.Solver{}

	got, err := s.Solve(puzzle.PartOne, input)
	require.NoError(t, err)
	assert.Equal(t, "2", got)

	// Columns: (5,3,10) (10,4,20) (25,5,25).
	got, err = s.Solve(puzzle.PartTwo, input)
	require.NoError(t, err)
	assert.Equal(t, "1", got)

	_, err = s.Solve(puzzle.Part(3), input)
	assert.ErrorIs(t, err, puzzle.ErrInvalidPart)
}
