package input

import "github.com/tomz197/termshooter/internal/geom"

// CommandKind is the decoded intent of a key press.
type CommandKind int

const (
	CommandQuit CommandKind = iota
	CommandMove
	CommandShoot
)

// Command is a decoded user intent. Direction is only set for CommandMove.
type Command struct {
	Kind      CommandKind
	Direction geom.Direction
}

// Quit returns the quit command.
func Quit() Command { return Command{Kind: CommandQuit} }

// Move returns a move command towards d.
func Move(d geom.Direction) Command { return Command{Kind: CommandMove, Direction: d} }

// Shoot returns the shoot command.
func Shoot() Command { return Command{Kind: CommandShoot} }

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c.Kind {
	case CommandQuit:
		return "Quit"
	case CommandMove:
		return "Move(" + c.Direction.String() + ")"
	case CommandShoot:
		return "Shoot"
	default:
		return "Unknown"
	}
}

// Decode maps a key to a command. Keys without a binding return false.
//
//	q, Q, Esc, Ctrl+C  quit
//	Right, Left        move
//	f                  shoot
func Decode(k Key) (Command, bool) {
	switch k.Code {
	case KeyEscape:
		return Quit(), true
	case KeyRight:
		return Move(geom.Right), true
	case KeyLeft:
		return Move(geom.Left), true
	case KeyRune:
		switch k.Rune {
		case 'q', 'Q':
			return Quit(), true
		case 'c', 'C':
			if k.Mod == ModCtrl {
				return Quit(), true
			}
			return Command{}, false
		case 'f':
			return Shoot(), true
		}
	}
	return Command{}, false
}
