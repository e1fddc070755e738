// game plays termshooter in the local terminal.
//
// Usage:
//
//	game [flags]
//
// Controls: Left/Right arrows slide the ship, f fires, q/Esc/Ctrl+C quits.
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/tomz197/termshooter/internal/config"
	"github.com/tomz197/termshooter/internal/draw"
	"github.com/tomz197/termshooter/internal/loop"
)

var (
	flagConfig   string
	flagWidth    uint16
	flagHeight   uint16
	flagSpeed    uint16
	flagSeed     int64
	flagBackend  string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "game",
	Short: "Dodge and shoot falling asteroids in your terminal",
	Long: `Slide the ship along the bottom row and shoot the falling asteroid.

Controls:
  Left/Right  - Slide the ship
  f           - Fire
  q/Esc       - Quit
  Ctrl+C      - Quit

Settings are read from --config, ~/.termshooter/config.yaml or
./configs/config.yaml, then GAME_* environment variables, then flags.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGame,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a config YAML file")
	rootCmd.Flags().Uint16Var(&flagWidth, "width", 10, "Playfield width in cells")
	rootCmd.Flags().Uint16Var(&flagHeight, "height", 10, "Playfield height in cells")
	rootCmd.Flags().Uint16Var(&flagSpeed, "speed", 0, "Speed 0-20, higher is faster")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagBackend, "backend", config.BackendTcell, "Screen backend: tcell or ansi")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("game failed", "err", err)
		os.Exit(1)
	}
}

func runGame(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return err
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "termshooter",
		Level:           level,
	})

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	screen, err := newScreen(cfg.Backend)
	if err != nil {
		return err
	}

	logger.Info("starting game", "backend", cfg.Backend, "width", cfg.Width, "height", cfg.Height)
	return loop.New(screen, cfg, loop.WithLogger(logger)).Run()
}

// loadConfig layers file, environment and explicitly set flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyEnv(&cfg); err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = flagWidth
	}
	if flags.Changed("height") {
		cfg.Height = flagHeight
	}
	if flags.Changed("speed") {
		cfg.Speed = flagSpeed
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("backend") {
		cfg.Backend = flagBackend
	}

	return cfg, cfg.Validate()
}

func newScreen(backend string) (draw.Screen, error) {
	if backend == config.BackendANSI {
		return draw.NewANSIScreen(os.Stdin, os.Stdout, draw.ANSIOptions{
			MakeRaw:      true,
			Fd:           int(os.Stdin.Fd()),
			ColorProfile: termenv.ANSI256,
		}), nil
	}

	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return draw.NewTcellScreen(s), nil
}
