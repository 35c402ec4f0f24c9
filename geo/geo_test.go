package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridwalk/geo"
	"github.com/katalvlaran/gridwalk/puzzle"
)

//----------------------------------------------------------------------------//
// Direction and Turn
//----------------------------------------------------------------------------//

// TestDirection_Turn checks the full rotation table in both senses.
func TestDirection_Turn(t *testing.T) {
	cases := []struct {
		from        geo.Direction
		right, left geo.Direction
	}{
		{geo.North, geo.East, geo.West},
		{geo.East, geo.South, geo.North},
		{geo.South, geo.West, geo.East},
		{geo.West, geo.North, geo.South},
	}
	for _, tc := range cases {
		t.Run(tc.from.String(), func(t *testing.T) {
			assert.Equal(t, tc.right, tc.from.Turn(geo.Right))
			assert.Equal(t, tc.left, tc.from.Turn(geo.Left))
			assert.Equal(t, tc.from, tc.from.Turn(geo.Right).Turn(geo.Left))
		})
	}
}

// TestDirection_FourTurnsIsIdentity rotates each heading a full circle.
func TestDirection_FourTurnsIsIdentity(t *testing.T) {
	for _, d := range []geo.Direction{geo.North, geo.East, geo.South, geo.West} {
		for _, turn := range []geo.Turn{geo.Right, geo.Left} {
			got := d
			for i := 0; i < 4; i++ {
				got = got.Turn(turn)
			}
			assert.Equal(t, d, got)
		}
	}
}

// TestDirection_Unit checks the fixed unit vectors; a half turn cancels them.
func TestDirection_Unit(t *testing.T) {
	assert.Equal(t, geo.Position{X: 0, Y: 1}, geo.North.Unit())
	assert.Equal(t, geo.Position{X: 1, Y: 0}, geo.East.Unit())
	assert.Equal(t, geo.Position{X: 0, Y: -1}, geo.South.Unit())
	assert.Equal(t, geo.Position{X: -1, Y: 0}, geo.West.Unit())

	for _, d := range []geo.Direction{geo.North, geo.East, geo.South, geo.West} {
		assert.Equal(t, geo.Origin, d.Unit().Add(d.Turn(geo.Right).Turn(geo.Right).Unit()), "%v", d)
	}
}

// TestParseDirection covers compass letters and keypad aliases.
func TestParseDirection(t *testing.T) {
	cases := map[string]geo.Direction{
		"N": geo.North, "U": geo.North,
		"E": geo.East, "R": geo.East,
		"S": geo.South, "D": geo.South,
		"W": geo.West, "L": geo.West,
	}
	for in, want := range cases {
		got, err := geo.ParseDirection(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

// TestParseDirection_Invalid rejects unknown letters, empty and long tokens.
func TestParseDirection_Invalid(t *testing.T) {
	for _, in := range []string{"", "X", "n", "NN", "North", " "} {
		_, err := geo.ParseDirection(in)
		assert.ErrorIs(t, err, geo.ErrInvalidDirection, "input %q", in)
		assert.ErrorIs(t, err, puzzle.ErrParse, "input %q", in)
	}
}

// TestParseTurn accepts only R and L.
func TestParseTurn(t *testing.T) {
	got, err := geo.ParseTurn("R")
	require.NoError(t, err)
	assert.Equal(t, geo.Right, got)

	got, err = geo.ParseTurn("L")
	require.NoError(t, err)
	assert.Equal(t, geo.Left, got)

	for _, in := range []string{"", "N", "U", "r", "RL"} {
		_, err := geo.ParseTurn(in)
		assert.ErrorIs(t, err, geo.ErrInvalidTurn, "input %q", in)
		assert.ErrorIs(t, err, puzzle.ErrParse, "input %q", in)
	}
}

// TestTokens_RoundTrip formats canonical tokens and parses them back.
func TestTokens_RoundTrip(t *testing.T) {
	for _, d := range []geo.Direction{geo.North, geo.East, geo.South, geo.West} {
		got, err := geo.ParseDirection(d.Token())
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
	for _, turn := range []geo.Turn{geo.Right, geo.Left} {
		got, err := geo.ParseTurn(turn.Token())
		require.NoError(t, err)
		assert.Equal(t, turn, got)
	}
}

//----------------------------------------------------------------------------//
// Position
//----------------------------------------------------------------------------//

// TestPosition_Walk covers zero, forward and backward walks.
func TestPosition_Walk(t *testing.T) {
	p := geo.Position{X: 8, Y: -3}
	p.Walk(geo.North, 0)
	assert.Equal(t, geo.Position{X: 8, Y: -3}, p)

	p = geo.Position{X: 99, Y: 14}
	p.Walk(geo.South, 15)
	assert.Equal(t, geo.Position{X: 99, Y: -1}, p)

	p = geo.Origin
	p.Walk(geo.East, -4)
	assert.Equal(t, geo.Position{X: -4, Y: 0}, p)
}

// TestPosition_Step leaves the receiver untouched.
func TestPosition_Step(t *testing.T) {
	p := geo.Position{X: 1, Y: 1}
	q := p.Step(geo.West, 2)
	assert.Equal(t, geo.Position{X: 1, Y: 1}, p)
	assert.Equal(t, geo.Position{X: -1, Y: 1}, q)
}

// TestPosition_ManhattanDistance is never negative.
func TestPosition_ManhattanDistance(t *testing.T) {
	cases := []struct {
		p    geo.Position
		want int
	}{
		{geo.Origin, 0},
		{geo.Position{X: 3, Y: 4}, 7},
		{geo.Position{X: -3, Y: 4}, 7},
		{geo.Position{X: -3, Y: -4}, 7},
		{geo.Position{X: 0, Y: -150}, 150},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.p.ManhattanDistance(), tc.p.String())
	}
}

// TestPositionSet tracks first insertions only.
func TestPositionSet(t *testing.T) {
	s := geo.NewPositionSet(geo.Origin)
	assert.True(t, s.Contains(geo.Origin))
	assert.Equal(t, 1, s.Len())

	p := geo.Position{X: 2, Y: -1}
	assert.True(t, s.Add(p))
	assert.False(t, s.Add(p))
	assert.False(t, s.Add(geo.Origin))
	assert.Equal(t, 2, s.Len())
	assert.False(t, s.Contains(geo.Position{X: -1, Y: 2}))
}
