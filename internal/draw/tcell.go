package draw

import (
	"fmt"
	"io"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/tomz197/termshooter/internal/input"
)

// TcellScreen adapts a tcell.Screen to Screen.
type TcellScreen struct {
	screen tcell.Screen
	style  tcell.Style
	events chan tcell.Event
	quit   chan struct{}
}

var _ Screen = (*TcellScreen)(nil)

// NewTcellScreen wraps s. The screen is initialised by EnableRawMode.
func NewTcellScreen(s tcell.Screen) *TcellScreen {
	return &TcellScreen{
		screen: s,
		style:  tcell.StyleDefault,
	}
}

// EnableRawMode initialises the screen and starts pumping its events.
func (t *TcellScreen) EnableRawMode() error {
	if t.events != nil {
		return nil
	}
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	t.events = make(chan tcell.Event, 100)
	t.quit = make(chan struct{})
	go func(events chan<- tcell.Event, quit <-chan struct{}) {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}(t.events, t.quit)
	return nil
}

// DisableRawMode finalises the screen, restoring the terminal.
func (t *TcellScreen) DisableRawMode() error {
	if t.quit == nil {
		return nil
	}
	close(t.quit)
	t.quit = nil
	t.screen.Fini()
	return nil
}

// Size implements Screen.
func (t *TcellScreen) Size() (int, int, error) {
	w, h := t.screen.Size()
	return w, h, nil
}

// SetSize implements Screen.
func (t *TcellScreen) SetSize(width, height int) error {
	t.screen.SetSize(width, height)
	return nil
}

// Clear implements Screen.
func (t *TcellScreen) Clear() error {
	t.screen.Clear()
	return nil
}

// HideCursor implements Screen.
func (t *TcellScreen) HideCursor() error {
	t.screen.HideCursor()
	return nil
}

// ShowCursor parks the cursor at the top-left corner.
func (t *TcellScreen) ShowCursor() error {
	t.screen.ShowCursor(0, 0)
	return nil
}

// SetForeground implements Screen.
func (t *TcellScreen) SetForeground(c Color) error {
	switch c {
	case ColorDefault:
		t.style = tcell.StyleDefault
	case ColorDarkGrey:
		t.style = tcell.StyleDefault.Foreground(tcell.ColorGray)
	default:
		return fmt.Errorf("unknown color %d", c)
	}
	return nil
}

// ResetColor implements Screen.
func (t *TcellScreen) ResetColor() error {
	t.style = tcell.StyleDefault
	return nil
}

// Print implements Screen.
func (t *TcellScreen) Print(x, y int, r rune) error {
	t.screen.SetContent(x, y, r, nil, t.style)
	return nil
}

// Flush implements Screen.
func (t *TcellScreen) Flush() error {
	t.screen.Show()
	return nil
}

// PollKey implements Screen. Resize events repaint the screen and keep waiting.
func (t *TcellScreen) PollKey(timeout time.Duration) (input.Key, bool, error) {
	if t.events == nil {
		return input.Key{}, false, fmt.Errorf("poll key: screen not initialised")
	}

	timer := time.NewTimer(max(timeout, 0))
	defer timer.Stop()

	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				return input.Key{}, false, io.EOF
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				return keyFromTcell(ev), true, nil
			case *tcell.EventResize:
				t.screen.Sync()
			}
		case <-timer.C:
			return input.Key{}, false, nil
		}
	}
}

// keyFromTcell converts a tcell key event to an input.Key.
func keyFromTcell(ev *tcell.EventKey) input.Key {
	mod := modFromTcell(ev.Modifiers())

	switch ev.Key() {
	case tcell.KeyRune:
		return input.Key{Code: input.KeyRune, Rune: ev.Rune(), Mod: mod}
	case tcell.KeyEscape:
		return input.Key{Code: input.KeyEscape, Mod: mod}
	case tcell.KeyEnter:
		return input.Key{Code: input.KeyEnter, Mod: mod}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return input.Key{Code: input.KeyBackspace, Mod: mod}
	case tcell.KeyUp:
		return input.Key{Code: input.KeyUp, Mod: mod}
	case tcell.KeyDown:
		return input.Key{Code: input.KeyDown, Mod: mod}
	case tcell.KeyLeft:
		return input.Key{Code: input.KeyLeft, Mod: mod}
	case tcell.KeyRight:
		return input.Key{Code: input.KeyRight, Mod: mod}
	}

	if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return input.Key{Code: input.KeyRune, Rune: rune('a' + k - tcell.KeyCtrlA), Mod: mod | input.ModCtrl}
	}
	return input.Key{Code: input.KeyUnknown, Mod: mod}
}

func modFromTcell(m tcell.ModMask) input.Modifier {
	var mod input.Modifier
	if m&tcell.ModShift != 0 {
		mod |= input.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mod |= input.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mod |= input.ModAlt
	}
	return mod
}
