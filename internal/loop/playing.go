package loop

import (
	"fmt"

	"github.com/tomz197/termshooter/internal/geom"
	"github.com/tomz197/termshooter/internal/input"
	"github.com/tomz197/termshooter/internal/object"
)

// advance moves the asteroid and the bullet one step.
// Until the ship fires, the bullet rides along on the ship's column.
func (g *Game) advance(asteroid *object.Asteroid, bullet *object.Bullet) error {
	if err := asteroid.Fall(); err != nil {
		return fmt.Errorf("asteroid: %w", err)
	}
	if asteroid.Fallen(g.height) {
		asteroid.Respawn(g.randomColumn())
	}

	if g.ship.Shooting() {
		if err := bullet.Shoot(); err != nil {
			return fmt.Errorf("bullet: %w", err)
		}
		return nil
	}
	bullet.SyncX(g.ship.Position().X)
	return nil
}

// apply executes a non-quit command.
func (g *Game) apply(cmd input.Command) error {
	switch cmd.Kind {
	case input.CommandMove:
		return g.moveShip(cmd.Direction)
	case input.CommandShoot:
		g.ship.Shoot()
	}
	return nil
}

// moveShip turns the ship towards d and slides it unless that would cross a wall.
func (g *Game) moveShip(d geom.Direction) error {
	g.ship.SetDirection(d)
	if !g.canSlide(d) {
		return nil
	}
	if err := g.ship.Slide(); err != nil {
		return fmt.Errorf("ship: %w", err)
	}
	return nil
}

// canSlide allows a slide from anywhere strictly between the walls, or from
// a wall column when heading away from that wall.
func (g *Game) canSlide(d geom.Direction) bool {
	x := g.ship.Position().X
	last := g.width - 1

	switch {
	case x > 0 && x < last:
		return true
	case x == 0 && d == geom.Right:
		return true
	case x == last && d == geom.Left:
		return true
	}
	return false
}
