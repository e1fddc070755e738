// Package object defines the moving entities on the playfield.
package object

import "github.com/tomz197/termshooter/internal/geom"

// Object is anything the renderer can stamp onto the playfield.
type Object interface {
	// Position returns the grid cell the object occupies.
	Position() geom.Point
	// Symbol returns the character drawn at that cell.
	Symbol() rune
}

// Mover is a position plus a facing direction that advances one cell at a time.
// Ship, Bullet and Asteroid embed it.
type Mover struct {
	Point     geom.Point
	Direction geom.Direction
}

// Position returns the current grid cell.
func (m *Mover) Position() geom.Point {
	return m.Point
}

// Advance moves one cell in the current direction.
// On error the position is left unchanged.
func (m *Mover) Advance() error {
	next, err := m.Point.Transform(m.Direction)
	if err != nil {
		return err
	}
	m.Point = next
	return nil
}
