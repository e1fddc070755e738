package loop

import (
	"time"

	"github.com/tomz197/termshooter/internal/config"
)

// Tick timing. The interval shrinks linearly from MaxInterval at speed 0
// to MinInterval at config.MaxSpeed.
const (
	MinInterval = 200 // ms
	MaxInterval = 700 // ms
)

// Initial counters.
const (
	InitialLives = 3
)

// Glyphs that are not game objects.
const (
	borderSymbol     = '#'
	backgroundSymbol = ' '
)

// Interval returns the tick budget for a speed setting.
// Integer division is intentional: each speed step is 25ms.
func Interval(speed uint16) time.Duration {
	step := (MaxInterval - MinInterval) / config.MaxSpeed
	ms := MinInterval + step*(config.MaxSpeed-int(speed))
	return time.Duration(ms) * time.Millisecond
}
