package geom

import (
	"errors"
	"testing"
)

func TestTransform(t *testing.T) {
	tests := []struct {
		name     string
		start    Point
		dir      Direction
		expected Point
	}{
		{"right", NewPoint(3, 4), Right, NewPoint(4, 4)},
		{"left", NewPoint(3, 4), Left, NewPoint(2, 4)},
		{"down", NewPoint(3, 4), Down, NewPoint(3, 5)},
		{"up", NewPoint(3, 4), Up, NewPoint(3, 3)},
		{"nothing", NewPoint(3, 4), Nothing, NewPoint(3, 4)},
		{"left to origin column", NewPoint(1, 0), Left, NewPoint(0, 0)},
		{"up to origin row", NewPoint(0, 1), Up, NewPoint(0, 0)},
		{"right from origin", NewPoint(0, 0), Right, NewPoint(1, 0)},
		{"down from origin", NewPoint(0, 0), Down, NewPoint(0, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.start.Transform(tc.dir)
			if err != nil {
				t.Fatalf("Transform(%v) error: %v", tc.dir, err)
			}
			if got != tc.expected {
				t.Errorf("Transform(%v) = %v, expected %v", tc.dir, got, tc.expected)
			}
		})
	}
}

func TestTransformChangesOneAxis(t *testing.T) {
	dirs := []Direction{Up, Down, Left, Right}
	for x := uint16(1); x < 5; x++ {
		for y := uint16(1); y < 5; y++ {
			p := NewPoint(x, y)
			for _, d := range dirs {
				got, err := p.Transform(d)
				if err != nil {
					t.Fatalf("%v.Transform(%v) error: %v", p, d, err)
				}
				dx := int(got.X) - int(p.X)
				dy := int(got.Y) - int(p.Y)
				if abs(dx)+abs(dy) != 1 {
					t.Errorf("%v.Transform(%v) = %v, expected a single-axis unit step", p, d, got)
				}
			}
		}
	}
}

func TestTransformNothingIsIdentity(t *testing.T) {
	for _, p := range []Point{NewPoint(0, 0), NewPoint(9, 0), NewPoint(0, 9), NewPoint(65535, 65535)} {
		got, err := p.Transform(Nothing)
		if err != nil {
			t.Fatalf("%v.Transform(Nothing) error: %v", p, err)
		}
		if got != p {
			t.Errorf("%v.Transform(Nothing) = %v", p, got)
		}
	}
}

func TestTransformUnderflow(t *testing.T) {
	tests := []struct {
		name  string
		start Point
		dir   Direction
	}{
		{"left at x=0", NewPoint(0, 5), Left},
		{"up at y=0", NewPoint(5, 0), Up},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.start.Transform(tc.dir)
			if !errors.Is(err, ErrUnderflow) {
				t.Fatalf("Transform(%v) error = %v, expected ErrUnderflow", tc.dir, err)
			}
			if got != tc.start {
				t.Errorf("Transform(%v) returned %v on error, expected unchanged %v", tc.dir, got, tc.start)
			}
		})
	}
}

func TestDirectionString(t *testing.T) {
	if Right.String() != "Right" || Nothing.String() != "Nothing" || Direction(42).String() != "Unknown" {
		t.Errorf("unexpected direction names: %s %s %s", Right, Nothing, Direction(42))
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
