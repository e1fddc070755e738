package draw

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/tomz197/termshooter/internal/input"
)

// ANSIOptions configures an ANSIScreen.
type ANSIOptions struct {
	// MakeRaw puts Fd into raw mode on EnableRawMode. Leave it false when the
	// remote side owns the tty, as with SSH sessions.
	MakeRaw bool
	Fd      int

	TermSizeFunc TermSizeFunc
	ColorProfile termenv.Profile
}

// ANSIScreen drives any reader/writer pair with ANSI escape sequences.
type ANSIScreen struct {
	out      *ChunkWriter
	stream   *input.Stream
	styles   map[Color]lipgloss.Style
	current  lipgloss.Style
	opts     ANSIOptions
	rawState *term.State
}

var _ Screen = (*ANSIScreen)(nil)

// NewANSIScreen creates a screen that reads keys from r and writes escape sequences to w.
func NewANSIScreen(r io.Reader, w io.Writer, opts ANSIOptions) *ANSIScreen {
	if opts.TermSizeFunc == nil {
		opts.TermSizeFunc = DefaultTermSizeFunc
	}

	renderer := lipgloss.NewRenderer(w)
	renderer.SetColorProfile(opts.ColorProfile)

	styles := map[Color]lipgloss.Style{
		ColorDefault:  renderer.NewStyle(),
		ColorDarkGrey: renderer.NewStyle().Foreground(lipgloss.Color("8")),
	}

	return &ANSIScreen{
		out:     NewChunkWriter(w),
		stream:  input.StartStream(r),
		styles:  styles,
		current: styles[ColorDefault],
		opts:    opts,
	}
}

// EnableRawMode implements Screen.
func (s *ANSIScreen) EnableRawMode() error {
	if !s.opts.MakeRaw || s.rawState != nil {
		return nil
	}
	state, err := term.MakeRaw(s.opts.Fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	s.rawState = state
	return nil
}

// DisableRawMode implements Screen.
func (s *ANSIScreen) DisableRawMode() error {
	if s.rawState == nil {
		return nil
	}
	state := s.rawState
	s.rawState = nil
	if err := term.Restore(s.opts.Fd, state); err != nil {
		return fmt.Errorf("disable raw mode: %w", err)
	}
	return nil
}

// Size implements Screen.
func (s *ANSIScreen) Size() (int, int, error) {
	return s.opts.TermSizeFunc()
}

// SetSize implements Screen.
func (s *ANSIScreen) SetSize(width, height int) error {
	ResizeWindow(s.out, width, height)
	return nil
}

// Clear implements Screen.
func (s *ANSIScreen) Clear() error {
	ClearScreen(s.out)
	return nil
}

// HideCursor implements Screen.
func (s *ANSIScreen) HideCursor() error {
	HideCursor(s.out)
	return nil
}

// ShowCursor implements Screen.
func (s *ANSIScreen) ShowCursor() error {
	ShowCursor(s.out)
	return nil
}

// SetForeground implements Screen.
func (s *ANSIScreen) SetForeground(c Color) error {
	style, ok := s.styles[c]
	if !ok {
		return fmt.Errorf("unknown color %d", c)
	}
	s.current = style
	return nil
}

// ResetColor implements Screen.
func (s *ANSIScreen) ResetColor() error {
	s.current = s.styles[ColorDefault]
	ResetStyle(s.out)
	return nil
}

// Print implements Screen.
func (s *ANSIScreen) Print(x, y int, r rune) error {
	if x < 0 || y < 0 {
		return fmt.Errorf("print at (%d,%d): negative position", x, y)
	}
	s.out.WriteAt(x+1, y+1, s.current.Render(string(r)))
	return nil
}

// Flush implements Screen.
func (s *ANSIScreen) Flush() error {
	return s.out.Flush()
}

// PollKey implements Screen.
func (s *ANSIScreen) PollKey(timeout time.Duration) (input.Key, bool, error) {
	return s.stream.Next(timeout)
}
