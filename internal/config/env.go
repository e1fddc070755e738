// Package config loads and validates game settings from YAML files and the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// ApplyEnv overrides cfg with GAME_WIDTH, GAME_HEIGHT, GAME_SPEED, GAME_SEED
// and GAME_BACKEND when they are set.
func ApplyEnv(cfg *Config) error {
	for _, v := range []struct {
		key string
		dst *uint16
	}{
		{"GAME_WIDTH", &cfg.Width},
		{"GAME_HEIGHT", &cfg.Height},
		{"GAME_SPEED", &cfg.Speed},
	} {
		raw, ok := os.LookupEnv(v.key)
		if !ok {
			continue
		}
		n, err := strconv.ParseUint(raw, 10, 16)
		if err != nil {
			return fmt.Errorf("parse %s: %w", v.key, err)
		}
		*v.dst = uint16(n)
	}

	if raw, ok := os.LookupEnv("GAME_SEED"); ok {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("parse GAME_SEED: %w", err)
		}
		cfg.Seed = n
	}
	cfg.Backend = GetEnv("GAME_BACKEND", cfg.Backend)
	return nil
}
