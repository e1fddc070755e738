package loop

import (
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/termshooter/internal/config"
	"github.com/tomz197/termshooter/internal/draw"
	"github.com/tomz197/termshooter/internal/object"
)

// Game owns the screen and the ship for one session.
// The bullet and asteroid live only as long as Run.
type Game struct {
	screen draw.Screen
	width  uint16
	height uint16

	// terminal size before setup, restored on teardown
	origWidth  int
	origHeight int

	ship  *object.Ship
	speed uint16
	score uint16 // never changed during play
	lives uint16 // never changed during play
	ticks int

	rng    *rand.Rand
	now    func() time.Time
	logger *log.Logger
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the session logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// WithClock replaces time.Now for tick timing.
func WithClock(now func() time.Time) Option {
	return func(g *Game) {
		g.now = now
	}
}

// WithRand sets the generator used for asteroid columns.
func WithRand(r *rand.Rand) Option {
	return func(g *Game) {
		g.rng = r
	}
}

// New creates a game on screen. cfg must already be validated.
// The ship starts in the bottom-left cell.
func New(screen draw.Screen, cfg config.Config, opts ...Option) *Game {
	g := &Game{
		screen: screen,
		width:  cfg.Width,
		height: cfg.Height,
		ship:   object.NewShip(0, cfg.Height-1),
		speed:  cfg.Speed,
		lives:  InitialLives,
		now:    time.Now,
		logger: log.New(io.Discard),
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.rng == nil {
		seed := uint64(cfg.Seed)
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		g.rng = rand.New(rand.NewPCG(seed, seed))
	}
	return g
}

// randomColumn returns a column in [0, width).
func (g *Game) randomColumn() uint16 {
	return uint16(g.rng.IntN(int(g.width)))
}
