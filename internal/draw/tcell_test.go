package draw

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/tomz197/termshooter/internal/input"
)

func newTestTcellScreen(t *testing.T) (*TcellScreen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	s := NewTcellScreen(sim)
	if err := s.EnableRawMode(); err != nil {
		t.Fatalf("EnableRawMode() error: %v", err)
	}
	t.Cleanup(func() { _ = s.DisableRawMode() })
	sim.SetSize(20, 10)
	return s, sim
}

func TestTcellScreenPrint(t *testing.T) {
	s, sim := newTestTcellScreen(t)

	_ = s.SetForeground(ColorDarkGrey)
	_ = s.Print(0, 0, '#')
	_ = s.ResetColor()
	_ = s.Print(3, 2, '^')
	_ = s.Flush()

	r, _, style, _ := sim.GetContent(0, 0)
	if r != '#' {
		t.Errorf("cell (0,0) = %q, expected '#'", r)
	}
	if fg, _, _ := style.Decompose(); fg != tcell.ColorGray {
		t.Errorf("border foreground = %v, expected gray", fg)
	}

	r, _, style, _ = sim.GetContent(3, 2)
	if r != '^' {
		t.Errorf("cell (3,2) = %q, expected '^'", r)
	}
	if style != tcell.StyleDefault {
		t.Errorf("ship style = %v, expected default", style)
	}

	w, h, err := s.Size()
	if err != nil || w != 20 || h != 10 {
		t.Errorf("Size() = %d, %d, %v", w, h, err)
	}
}

func TestTcellScreenPollKey(t *testing.T) {
	s, sim := newTestTcellScreen(t)

	sim.InjectKey(tcell.KeyRight, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'f', tcell.ModNone)
	sim.InjectKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)

	expected := []input.Key{
		input.SpecialKey(input.KeyRight),
		input.RuneKey('f'),
		input.CtrlKey('c'),
	}
	for i, want := range expected {
		got, ok, err := s.PollKey(time.Second)
		if err != nil || !ok {
			t.Fatalf("key %d: PollKey() = %v, %v", i, ok, err)
		}
		if got != want {
			t.Errorf("key %d: got %+v, expected %+v", i, got, want)
		}
	}

	if _, ok, err := s.PollKey(20 * time.Millisecond); ok || err != nil {
		t.Errorf("PollKey() with no input = %v, %v", ok, err)
	}
}

func TestKeyFromTcell(t *testing.T) {
	tests := []struct {
		name     string
		ev       *tcell.EventKey
		expected input.Key
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), input.RuneKey('q')},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), input.SpecialKey(input.KeyEscape)},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), input.SpecialKey(input.KeyLeft)},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), input.SpecialKey(input.KeyEnter)},
		{"ctrl+c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), input.CtrlKey('c')},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModAlt), input.Key{Code: input.KeyRune, Rune: 'c', Mod: input.ModAlt}},
		{"function key", tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone), input.SpecialKey(input.KeyUnknown)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keyFromTcell(tc.ev); got != tc.expected {
				t.Errorf("keyFromTcell() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}
