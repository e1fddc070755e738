package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() error: %v", err)
	}
	if cfg.Width != 10 || cfg.Height != 10 {
		t.Errorf("default board = %dx%d, expected 10x10", cfg.Width, cfg.Height)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		valid  bool
	}{
		{"default", func(c *Config) {}, true},
		{"zero width", func(c *Config) { c.Width = 0 }, false},
		{"zero height", func(c *Config) { c.Height = 0 }, false},
		{"huge board", func(c *Config) { c.Width = 5000 }, false},
		{"single column", func(c *Config) { c.Width = 1 }, false},
		{"smallest board", func(c *Config) { c.Width, c.Height = 2, 1 }, true},
		{"max speed", func(c *Config) { c.Speed = MaxSpeed }, true},
		{"speed too high", func(c *Config) { c.Speed = MaxSpeed + 1 }, false},
		{"ansi backend", func(c *Config) { c.Backend = BackendANSI }, true},
		{"unknown backend", func(c *Config) { c.Backend = "curses" }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.modify(&cfg)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate() error: %v", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() error = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	if err := os.WriteFile(path, []byte("width: 20\nspeed: 5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Width != 20 || cfg.Speed != 5 {
		t.Errorf("Load() = %+v, expected width 20 speed 5", cfg)
	}
	if cfg.Height != 10 || cfg.Backend != BackendTcell {
		t.Errorf("omitted keys not defaulted: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing file succeeded")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("width: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() of malformed YAML succeeded")
	}
}

func TestLoadEmbeddedDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, expected %+v", cfg, Default())
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("GAME_WIDTH", "30")
	t.Setenv("GAME_SPEED", "7")
	t.Setenv("GAME_SEED", "-42")
	t.Setenv("GAME_BACKEND", BackendANSI)

	cfg := Default()
	if err := ApplyEnv(&cfg); err != nil {
		t.Fatalf("ApplyEnv() error: %v", err)
	}
	expected := Config{Width: 30, Height: 10, Speed: 7, Seed: -42, Backend: BackendANSI}
	if cfg != expected {
		t.Errorf("ApplyEnv() = %+v, expected %+v", cfg, expected)
	}

	t.Setenv("GAME_HEIGHT", "tall")
	if err := ApplyEnv(&cfg); err == nil {
		t.Error("ApplyEnv() accepted a non-numeric height")
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("TERMSHOOTER_TEST_KEY", "set")
	if got := GetEnv("TERMSHOOTER_TEST_KEY", "fallback"); got != "set" {
		t.Errorf("GetEnv() = %q, expected set", got)
	}
	if got := GetEnv("TERMSHOOTER_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("GetEnv() = %q, expected fallback", got)
	}
}
