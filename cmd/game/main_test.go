package main

import (
	"errors"
	"testing"

	"github.com/tomz197/termshooter/internal/config"
)

func TestLoadConfigLayers(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Setenv("GAME_WIDTH", "20")
	t.Setenv("GAME_SPEED", "5")

	if err := rootCmd.Flags().Set("width", "30"); err != nil {
		t.Fatalf("Set(width) error: %v", err)
	}
	if err := rootCmd.Flags().Set("backend", config.BackendANSI); err != nil {
		t.Fatalf("Set(backend) error: %v", err)
	}

	cfg, err := loadConfig(rootCmd)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}

	expected := config.Config{Width: 30, Height: 10, Speed: 5, Backend: config.BackendANSI}
	if cfg != expected {
		t.Errorf("loadConfig() = %+v, expected %+v", cfg, expected)
	}
}

func TestLoadConfigRejectsInvalidEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Setenv("GAME_SPEED", "21")

	if _, err := loadConfig(rootCmd); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("loadConfig() error = %v, expected ErrInvalid", err)
	}
}
