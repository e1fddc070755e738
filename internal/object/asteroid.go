package object

import "github.com/tomz197/termshooter/internal/geom"

// AsteroidSymbol is drawn at the asteroid's cell.
const AsteroidSymbol = '*'

// Asteroid falls one row per tick and is recycled at the top once it leaves the board.
type Asteroid struct {
	Mover
}

// NewAsteroid creates an asteroid at (x, y) falling down.
func NewAsteroid(x, y uint16) *Asteroid {
	return &Asteroid{
		Mover: Mover{
			Point:     geom.NewPoint(x, y),
			Direction: geom.Down,
		},
	}
}

// Fall moves the asteroid one row down.
func (a *Asteroid) Fall() error {
	return a.Advance()
}

// Fallen reports whether the asteroid has dropped below a board of the given height.
func (a *Asteroid) Fallen(height uint16) bool {
	return a.Point.Y >= height
}

// Respawn puts the asteroid back on the top row at column x.
func (a *Asteroid) Respawn(x uint16) {
	a.Point = geom.NewPoint(x, 0)
}

// Symbol implements Object.
func (a *Asteroid) Symbol() rune {
	return AsteroidSymbol
}
