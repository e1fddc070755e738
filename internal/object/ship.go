package object

import "github.com/tomz197/termshooter/internal/geom"

// ShipSymbol is drawn at the ship's cell.
const ShipSymbol = '^'

// Ship is the player-controlled craft on the bottom row.
type Ship struct {
	Mover
	shooting bool
}

// NewShip creates a ship at (x, y) facing nowhere.
func NewShip(x, y uint16) *Ship {
	return &Ship{
		Mover: Mover{
			Point:     geom.NewPoint(x, y),
			Direction: geom.Nothing,
		},
	}
}

// SetDirection overwrites the facing direction.
func (s *Ship) SetDirection(d geom.Direction) {
	s.Direction = d
}

// Slide moves the ship one cell in its facing direction.
// Wall checks are the caller's job.
func (s *Ship) Slide() error {
	return s.Advance()
}

// Shoot latches the shooting flag. It is never cleared.
func (s *Ship) Shoot() {
	s.shooting = true
}

// Shooting reports whether the ship has fired.
func (s *Ship) Shooting() bool {
	return s.shooting
}

// Symbol implements Object.
func (s *Ship) Symbol() rune {
	return ShipSymbol
}
