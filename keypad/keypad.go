package keypad

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridwalk/geo"
)

// Keypad is a cursor on a Layout.
type Keypad struct {
	layout *Layout
	active geo.Position
	opts   Options
}

// New returns a Keypad whose cursor rests on layout.Initial().
func New(layout *Layout, opts ...Option) *Keypad {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return &Keypad{layout: layout, active: layout.Initial(), opts: o}
}

// Position returns the active position.
func (k *Keypad) Position() geo.Position { return k.active }

// Reset moves the cursor back to the layout's initial position.
func (k *Keypad) Reset() { k.active = k.layout.Initial() }

// Move shifts the cursor one key along d. A move that would leave the pad
// is dropped; Move reports whether the cursor actually moved.
func (k *Keypad) Move(d geo.Direction) bool {
	candidate := k.active.Step(d, 1)
	if !k.layout.Contains(candidate) {
		return false
	}
	k.active = candidate
	return true
}

// Key returns the symbol under the cursor.
func (k *Keypad) Key() (string, error) {
	s, err := k.layout.KeyAt(k.active)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreachableState, k.active)
	}
	return s, nil
}

// EnterCode applies each line of moves in turn and appends the key the
// cursor rests on after the line. Lines continue from the previous key
// unless the Keypad was built with WithResetPerLine.
func (k *Keypad) EnterCode(lines [][]geo.Direction) (string, error) {
	var code strings.Builder
	for _, moves := range lines {
		if k.opts.ResetPerLine {
			k.Reset()
		}
		for _, d := range moves {
			k.Move(d)
		}
		key, err := k.Key()
		if err != nil {
			return "", err
		}
		code.WriteString(key)
	}
	return code.String(), nil
}
