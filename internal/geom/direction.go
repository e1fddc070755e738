package geom

// Direction is one of the four grid directions, or Nothing.
type Direction int

const (
	Nothing Direction = iota
	Up
	Down
	Left
	Right
)

// Delta returns the unit offset for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Nothing:
		return "Nothing"
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}
