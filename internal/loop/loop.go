// Package loop runs the game: terminal setup, the tick loop and teardown.
package loop

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/tomz197/termshooter/internal/input"
	"github.com/tomz197/termshooter/internal/object"
)

// Run plays one session until the player quits.
// The terminal is restored on every exit path, including errors and panics.
// A closed input stream ends the session like Quit.
func (g *Game) Run() (err error) {
	if err := g.setup(); err != nil {
		return errors.Join(err, g.teardown())
	}
	defer func() {
		if tErr := g.teardown(); tErr != nil {
			err = errors.Join(err, tErr)
		}
	}()

	ship := g.ship.Position()
	asteroid := object.NewAsteroid(g.randomColumn(), 0)
	bullet := object.NewBullet(ship.X, ship.Y)

	interval := Interval(g.speed)
	g.logger.Debug("session started",
		"width", g.width, "height", g.height, "speed", g.speed, "interval", interval)
	defer func() {
		g.logger.Debug("session ended",
			"ticks", g.ticks, "score", g.score, "lives", g.lives, "error", err)
	}()

	if err := g.render(); err != nil {
		return err
	}

	for {
		// speed is fixed for the session, but the budget is derived every tick
		interval = Interval(g.speed)
		quit, err := g.tick(interval, asteroid, bullet)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// tick runs one iteration: draw and move the falling objects, poll input for
// the rest of the interval, then redraw the board. It reports whether the
// player quit.
func (g *Game) tick(interval time.Duration, asteroid *object.Asteroid, bullet *object.Bullet) (bool, error) {
	g.ticks++

	if err := g.drawObjects(asteroid, bullet); err != nil {
		return false, err
	}
	if err := g.advance(asteroid, bullet); err != nil {
		return false, err
	}

	start := g.now()
	for elapsed := time.Duration(0); elapsed < interval; elapsed = g.now().Sub(start) {
		key, ok, err := g.screen.PollKey(interval - elapsed)
		if errors.Is(err, io.EOF) {
			return true, nil
		}
		if err != nil {
			return false, fmt.Errorf("poll input: %w", err)
		}
		if !ok {
			continue
		}

		cmd, ok := input.Decode(key)
		if !ok {
			continue
		}
		if cmd.Kind == input.CommandQuit {
			return true, nil
		}
		if err := g.apply(cmd); err != nil {
			return false, err
		}
	}

	// a fired bullet gets a second step every tick
	if g.ship.Shooting() {
		if err := bullet.Shoot(); err != nil {
			return false, fmt.Errorf("bullet: %w", err)
		}
	}

	return false, g.render()
}

// setup puts the terminal into game mode.
func (g *Game) setup() error {
	if err := g.screen.EnableRawMode(); err != nil {
		return err
	}

	w, h, err := g.screen.Size()
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}
	g.origWidth, g.origHeight = w, h

	// playfield + two border cells + one spare column/row
	if err := g.screen.SetSize(int(g.width)+3, int(g.height)+3); err != nil {
		return fmt.Errorf("resize terminal: %w", err)
	}
	if err := g.screen.Clear(); err != nil {
		return fmt.Errorf("clear terminal: %w", err)
	}
	if err := g.screen.HideCursor(); err != nil {
		return fmt.Errorf("hide cursor: %w", err)
	}
	return nil
}

// teardown restores the terminal. Every step runs even if an earlier one fails.
func (g *Game) teardown() error {
	var errs []error
	if g.origWidth > 0 && g.origHeight > 0 {
		errs = append(errs, g.screen.SetSize(g.origWidth, g.origHeight))
	}
	errs = append(errs,
		g.screen.ShowCursor(),
		g.screen.ResetColor(),
		g.screen.Flush(),
		g.screen.DisableRawMode(),
	)
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("restore terminal: %w", err)
	}
	return nil
}
