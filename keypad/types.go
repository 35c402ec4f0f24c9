package keypad

import "errors"

// Sentinel errors for layout construction and keypad traversal.
var (
	// ErrEmptyLayout indicates the layout grid has no rows or no columns.
	ErrEmptyLayout = errors.New("keypad: layout must have at least one row and one column")
	// ErrNonRectangular indicates layout rows of differing lengths.
	ErrNonRectangular = errors.New("keypad: all layout rows must have the same length")
	// ErrDuplicateKey indicates the same symbol appears on two cells.
	ErrDuplicateKey = errors.New("keypad: duplicate key symbol")
	// ErrInitialOffPad indicates the initial position is not a key.
	ErrInitialOffPad = errors.New("keypad: initial position is not on the pad")
	// ErrNotOnPad indicates a position with no key.
	ErrNotOnPad = errors.New("keypad: position is not on the pad")
	// ErrUnreachableState indicates the active position lost its key. It is a
	// logic fault, never a consequence of user input.
	ErrUnreachableState = errors.New("keypad: active position has no key")
)

// Cell addresses a layout grid cell by column and row; row 0 is the top row.
type Cell struct {
	Col, Row int
}

// Options configures a Keypad.
type Options struct {
	// ResetPerLine starts every EnterCode line from the layout's initial
	// position instead of the key the previous line ended on.
	ResetPerLine bool
}

// Option modifies Options.
type Option func(*Options)

// WithResetPerLine returns an Option that sets Options.ResetPerLine.
func WithResetPerLine() Option {
	return func(o *Options) {
		o.ResetPerLine = true
	}
}

// DefaultOptions returns Options with ResetPerLine disabled.
func DefaultOptions() Options {
	return Options{ResetPerLine: false}
}
