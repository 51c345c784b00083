package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"moneymoves/pkg/game/entities"
	"moneymoves/pkg/game/gameplay"
	"moneymoves/pkg/game/labels"
)

// figure proportions, in world pixels, relative to the tile centre
const (
	headRadius = gameplay.PX * 0.13
	headY      = -gameplay.PX * 0.22
	torsoW     = gameplay.PX * 0.32
	torsoH     = gameplay.PX * 0.24
	torsoY     = -gameplay.PX * 0.10
	legW       = gameplay.PX * 0.11
	legH       = gameplay.PX * 0.20
	legY       = torsoY + torsoH
)

var colorShadow = color.RGBA{0, 0, 0, 60}
var colorBadge = color.RGBA{255, 200, 60, 255}

// drawFigure draws a character centred on p in its theme
func drawFigure(dst *ebiten.Image, p labels.Point, th entities.Theme) {
	cx, cy := float32(p.X), float32(p.Y)

	vector.DrawFilledRect(dst, cx-torsoW/2, cy+legY+legH-3, torsoW, 5, colorShadow, true)

	vector.DrawFilledRect(dst, cx-torsoW/2+2, cy+legY, legW, legH, th.Pants, false)
	vector.DrawFilledRect(dst, cx+torsoW/2-2-legW, cy+legY, legW, legH, th.Pants, false)
	vector.DrawFilledRect(dst, cx-torsoW/2, cy+torsoY, torsoW, torsoH, th.Shirt, false)
	vector.DrawFilledCircle(dst, cx, cy+headY, headRadius, th.Skin, true)

	switch th.Kind {
	case entities.ThemeHat:
		brimW := float32(headRadius * 2.6)
		vector.DrawFilledRect(dst, cx-brimW/2, cy+headY-headRadius*0.7, brimW, 3, th.Primary, false)
		vector.DrawFilledRect(dst, cx-headRadius*0.9, cy+headY-headRadius*1.6, headRadius*1.8, headRadius*0.95, th.Primary, false)
	case entities.ThemeOutline:
		vector.StrokeRect(dst, cx-torsoW/2-1, cy+torsoY-1, torsoW+2, torsoH+legH+2, 2.5, th.Primary, false)
	case entities.ThemeEmoji:
		// Go fonts carry no emoji glyphs, so the accessory is a badge
		if th.Accessory != "" {
			vector.DrawFilledCircle(dst, cx+headRadius, cy+headY-headRadius*1.3, headRadius*0.55, colorBadge, true)
			vector.StrokeCircle(dst, cx+headRadius, cy+headY-headRadius*1.3, headRadius*0.55, 1, darker(colorBadge), true)
		}
	}
}

// drawFocusRing marks a character that can be talked to
func drawFocusRing(dst *ebiten.Image, p labels.Point, col color.Color, width float32) {
	vector.StrokeCircle(dst, float32(p.X), float32(p.Y), float32(gameplay.PX*0.46), width, col, true)
}
