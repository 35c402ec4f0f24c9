package keypad

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridwalk/geo"
)

// Layout is an immutable keypad shape. Lattice position (x, y) lives in grid
// cell (origin.Col+x, origin.Row-y), so y grows towards the top row.
type Layout struct {
	Width, Height int
	keys          [][]string
	origin        Cell
	initial       geo.Position
	size          int
}

// NewLayout builds a Layout from rows listed top to bottom. An empty string
// marks a cell without a key. origin is the grid cell that holds lattice
// position (0,0); initial is where a fresh Keypad's cursor starts.
// It deep-copies rows.
// Returns ErrEmptyLayout, ErrNonRectangular, ErrDuplicateKey or
// ErrInitialOffPad when the description is unusable.
func NewLayout(rows [][]string, origin Cell, initial geo.Position) (*Layout, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyLayout
	}
	h, w := len(rows), len(rows[0])
	seen := make(map[string]struct{})
	keys := make([][]string, h)
	for r, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		keys[r] = make([]string, w)
		copy(keys[r], row)
		for _, k := range row {
			if k == "" {
				continue
			}
			if _, dup := seen[k]; dup {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, k)
			}
			seen[k] = struct{}{}
		}
	}
	l := &Layout{
		Width:   w,
		Height:  h,
		keys:    keys,
		origin:  origin,
		initial: initial,
		size:    len(seen),
	}
	if !l.Contains(initial) {
		return nil, fmt.Errorf("%w: %v", ErrInitialOffPad, initial)
	}

	return l, nil
}

// mustLayout is NewLayout for the built-in layouts, whose literals are known good.
func mustLayout(rows [][]string, origin Cell, initial geo.Position) *Layout {
	l, err := NewLayout(rows, origin, initial)
	if err != nil {
		panic(err)
	}
	return l
}

// InBounds reports whether cell c lies within the grid.
func (l *Layout) InBounds(c Cell) bool {
	return c.Col >= 0 && c.Col < l.Width && c.Row >= 0 && c.Row < l.Height
}

// cell maps a lattice position to its grid cell.
func (l *Layout) cell(p geo.Position) Cell {
	return Cell{Col: l.origin.Col + p.X, Row: l.origin.Row - p.Y}
}

// position maps a grid cell back to its lattice position.
func (l *Layout) position(c Cell) geo.Position {
	return geo.Position{X: c.Col - l.origin.Col, Y: l.origin.Row - c.Row}
}

// KeyAt returns the symbol at p, or ErrNotOnPad.
func (l *Layout) KeyAt(p geo.Position) (string, error) {
	c := l.cell(p)
	if !l.InBounds(c) || l.keys[c.Row][c.Col] == "" {
		return "", fmt.Errorf("%w: %v", ErrNotOnPad, p)
	}
	return l.keys[c.Row][c.Col], nil
}

// Contains reports whether p holds a key.
func (l *Layout) Contains(p geo.Position) bool {
	_, err := l.KeyAt(p)
	return err == nil
}

// Find returns the position of symbol key.
func (l *Layout) Find(key string) (geo.Position, bool) {
	if key == "" {
		return geo.Position{}, false
	}
	for r, row := range l.keys {
		for c, k := range row {
			if k == key {
				return l.position(Cell{Col: c, Row: r}), true
			}
		}
	}
	return geo.Position{}, false
}

// Initial returns the starting position of a fresh Keypad.
func (l *Layout) Initial() geo.Position { return l.initial }

// Len returns the number of keys on the pad.
func (l *Layout) Len() int { return l.size }

// String renders the pad row by row, holes as blanks.
func (l *Layout) String() string {
	var sb strings.Builder
	for r, row := range l.keys {
		cells := make([]string, len(row))
		for c, k := range row {
			if k == "" {
				k = " "
			}
			cells[c] = k
		}
		sb.WriteString(strings.TrimRight(strings.Join(cells, " "), " "))
		if r < len(l.keys)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

var (
	square = mustLayout([][]string{
		{"1", "2", "3"},
		{"4", "5", "6"},
		{"7", "8", "9"},
	}, Cell{Col: 0, Row: 2}, geo.Position{X: 1, Y: 1})

	diamond = mustLayout([][]string{
		{"", "", "1", "", ""},
		{"", "2", "3", "4", ""},
		{"5", "6", "7", "8", "9"},
		{"", "A", "B", "C", ""},
		{"", "", "D", "", ""},
	}, Cell{Col: 2, Row: 2}, geo.Position{X: -2, Y: 0})
)

// Square returns the 3×3 keypad: positions {0,1,2}×{0,1,2}, (0,2) is "1",
// (2,0) is "9", starting on "5" at (1,1).
func Square() *Layout { return square }

// Diamond returns the 13-key keypad of Manhattan radius 2 around the origin,
// starting on "5" at (-2,0).
func Diamond() *Layout { return diamond }
