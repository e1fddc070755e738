package config

import (
	"errors"
	"fmt"
)

// MaxSpeed is the highest accepted speed setting.
const MaxSpeed = 20

// Backend names accepted by Config.Backend.
const (
	BackendTcell = "tcell"
	BackendANSI  = "ansi"
)

// ErrInvalid is returned by Validate for unusable settings.
var ErrInvalid = errors.New("invalid config")

// Config holds the settings of one game session.
type Config struct {
	Width   uint16 `yaml:"width"`   // Playfield columns, border excluded
	Height  uint16 `yaml:"height"`  // Playfield rows, border excluded
	Speed   uint16 `yaml:"speed"`   // 0 (slowest) .. MaxSpeed; fixed for the session
	Seed    int64  `yaml:"seed"`    // RNG seed, 0 = time based
	Backend string `yaml:"backend"` // Screen backend for local play
}

// Default returns the built-in 10x10 configuration.
func Default() Config {
	return Config{
		Width:   10,
		Height:  10,
		Speed:   0,
		Seed:    0,
		Backend: BackendTcell,
	}
}

// Validate reports the first unusable setting, wrapped in ErrInvalid.
func (c Config) Validate() error {
	// the wall check needs distinct left and right edges
	if c.Width < 2 || c.Height == 0 {
		return fmt.Errorf("%w: board must be at least 2x1, got %dx%d", ErrInvalid, c.Width, c.Height)
	}
	// the border and the +1 offset must fit in a uint16 terminal coordinate
	if c.Width > 1000 || c.Height > 1000 {
		return fmt.Errorf("%w: board %dx%d is larger than 1000x1000", ErrInvalid, c.Width, c.Height)
	}
	if c.Speed > MaxSpeed {
		return fmt.Errorf("%w: speed %d exceeds %d", ErrInvalid, c.Speed, MaxSpeed)
	}
	switch c.Backend {
	case BackendTcell, BackendANSI:
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalid, c.Backend)
	}
	return nil
}
