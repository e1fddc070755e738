package object

import "github.com/tomz197/termshooter/internal/geom"

// BulletSymbol is drawn at the bullet's cell.
const BulletSymbol = '"'

// Bullet rides on the ship until fired, then climbs on its own.
type Bullet struct {
	Mover
}

// NewBullet creates a bullet at (x, y) pointing up.
func NewBullet(x, y uint16) *Bullet {
	return &Bullet{
		Mover: Mover{
			Point:     geom.NewPoint(x, y),
			Direction: geom.Up,
		},
	}
}

// SyncX keeps the bullet mounted on the ship's column.
func (b *Bullet) SyncX(x uint16) {
	b.Point.X = x
}

// Shoot advances the bullet one cell. There is no bounds check, so leaving
// the top row returns geom.ErrUnderflow.
func (b *Bullet) Shoot() error {
	return b.Advance()
}

// Symbol implements Object.
func (b *Bullet) Symbol() rune {
	return BulletSymbol
}
