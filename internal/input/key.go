// Package input turns raw terminal input into keys and keys into game commands.
package input

// KeyCode identifies a key that is not a plain character, or KeyRune for characters.
type KeyCode int

const (
	KeyUnknown KeyCode = iota
	KeyRune
	KeyEscape
	KeyEnter
	KeyBackspace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// Modifier is a bitmask of held modifier keys.
type Modifier int

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
)

// Key is a single decoded key press. Rune is only meaningful for KeyRune.
type Key struct {
	Code KeyCode
	Rune rune
	Mod  Modifier
}

// RuneKey returns the key for a plain character.
func RuneKey(r rune) Key {
	return Key{Code: KeyRune, Rune: r}
}

// CtrlKey returns the key for Ctrl plus a character.
func CtrlKey(r rune) Key {
	return Key{Code: KeyRune, Rune: r, Mod: ModCtrl}
}

// SpecialKey returns the key for a non-character code.
func SpecialKey(code KeyCode) Key {
	return Key{Code: code}
}

// String returns a human-readable name for the key code.
func (c KeyCode) String() string {
	switch c {
	case KeyRune:
		return "Rune"
	case KeyEscape:
		return "Escape"
	case KeyEnter:
		return "Enter"
	case KeyBackspace:
		return "Backspace"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	default:
		return "Unknown"
	}
}
