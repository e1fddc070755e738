// Package geom provides the grid coordinate and direction types shared by all
// game objects.
package geom

import (
	"errors"
	"fmt"
)

// ErrUnderflow is returned when a translation would move a coordinate below zero.
var ErrUnderflow = errors.New("coordinate underflow")

// Point is a cell on the playfield grid. The origin is the top-left cell.
type Point struct {
	X, Y uint16
}

// NewPoint creates a point at (x, y).
func NewPoint(x, y uint16) Point {
	return Point{X: x, Y: y}
}

// Transform returns the point one cell away in direction d.
// Points are not checked against board bounds; only negative results are rejected.
func (p Point) Transform(d Direction) (Point, error) {
	dx, dy := d.Delta()

	x, err := translate(p.X, dx)
	if err != nil {
		return p, err
	}
	y, err := translate(p.Y, dy)
	if err != nil {
		return p, err
	}
	return Point{X: x, Y: y}, nil
}

// String implements fmt.Stringer.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func translate(value uint16, by int) (uint16, error) {
	if by < 0 && uint16(-by) > value {
		return value, fmt.Errorf("translating %d by %d: %w", value, by, ErrUnderflow)
	}
	return uint16(int(value) + by), nil
}
