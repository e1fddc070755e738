// Package draw is the terminal boundary: raw mode, cursor addressed printing,
// colors and key polling behind a single Screen interface.
package draw

import (
	"time"

	"github.com/tomz197/termshooter/internal/input"
)

// Color is a foreground color the game uses.
type Color int

const (
	ColorDefault Color = iota
	ColorDarkGrey
)

// Screen is a terminal the game can draw on and read keys from.
// Coordinates are 0-based columns and rows.
type Screen interface {
	EnableRawMode() error
	DisableRawMode() error

	// Size returns the terminal size in columns and rows.
	Size() (width, height int, err error)
	// SetSize asks the terminal to resize itself.
	SetSize(width, height int) error

	Clear() error
	HideCursor() error
	ShowCursor() error
	SetForeground(c Color) error
	ResetColor() error
	Print(x, y int, r rune) error
	// Flush makes everything printed so far visible.
	Flush() error

	// PollKey waits up to timeout for a key press. It returns false if none arrived.
	PollKey(timeout time.Duration) (input.Key, bool, error)
}
