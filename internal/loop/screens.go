package loop

import (
	"fmt"

	"github.com/tomz197/termshooter/internal/draw"
	"github.com/tomz197/termshooter/internal/object"
)

// render redraws the border, blanks the playfield and draws the ship.
func (g *Game) render() error {
	if err := g.drawBorders(); err != nil {
		return fmt.Errorf("draw borders: %w", err)
	}
	if err := g.drawBackground(); err != nil {
		return fmt.Errorf("draw background: %w", err)
	}
	if err := g.drawObject(g.ship); err != nil {
		return fmt.Errorf("draw ship: %w", err)
	}
	return g.screen.Flush()
}

// drawObjects stamps the falling objects onto the current frame.
func (g *Game) drawObjects(objects ...object.Object) error {
	for _, obj := range objects {
		if err := g.drawObject(obj); err != nil {
			return fmt.Errorf("draw %q: %w", obj.Symbol(), err)
		}
	}
	return g.screen.Flush()
}

// drawObject prints obj at its cell, shifted by one for the border.
func (g *Game) drawObject(obj object.Object) error {
	p := obj.Position()
	return g.screen.Print(int(p.X)+1, int(p.Y)+1, obj.Symbol())
}

// drawBorders draws the frame one cell outside the playfield.
func (g *Game) drawBorders() error {
	if err := g.screen.SetForeground(draw.ColorDarkGrey); err != nil {
		return err
	}

	right := int(g.width) + 1
	bottom := int(g.height) + 1

	for y := 0; y <= bottom; y++ {
		if err := g.screen.Print(0, y, borderSymbol); err != nil {
			return err
		}
		if err := g.screen.Print(right, y, borderSymbol); err != nil {
			return err
		}
	}
	for x := 0; x <= right; x++ {
		if err := g.screen.Print(x, 0, borderSymbol); err != nil {
			return err
		}
		if err := g.screen.Print(x, bottom, borderSymbol); err != nil {
			return err
		}
	}
	return nil
}

// drawBackground blanks every playfield cell.
func (g *Game) drawBackground() error {
	if err := g.screen.ResetColor(); err != nil {
		return err
	}
	for y := 1; y <= int(g.height); y++ {
		for x := 1; x <= int(g.width); x++ {
			if err := g.screen.Print(x, y, backgroundSymbol); err != nil {
				return err
			}
		}
	}
	return nil
}
