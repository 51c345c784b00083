package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	engine "moneymoves/pkg/engine/world"
	"moneymoves/pkg/game/gameplay"
	"moneymoves/pkg/game/world"
)

// buildBackground renders the static tiles of a world once per scene, at
// world pixel size.
func buildBackground(w *world.World) *ebiten.Image {
	const px = gameplay.PX
	img := ebiten.NewImage(int(float64(w.Width)*px+0.5), int(float64(w.Height)*px+0.5))
	for y := 0; y < w.Height; y++ {
		for x := 0; x < w.Width; x++ {
			drawTile(img, w.Tile(x, y), float32(float64(x)*px), float32(float64(y)*px), float32(px), x, y)
		}
	}
	return img
}

// drawTile paints one tile with a little detail so kinds read at any zoom
func drawTile(dst *ebiten.Image, kind engine.TileKind, x, y, size float32, col, row int) {
	c, ok := tileColors[kind]
	if !ok {
		c = tileColors[engine.Grass]
	}
	base, detail := c[0], c[1]
	vector.DrawFilledRect(dst, x, y, size, size, base, false)

	switch kind {
	case engine.Grass:
		// scattered tufts, stable per tile
		for i := 0; i < 3; i++ {
			tx := x + size*float32((col*7+row*3+i*5)%10)/10
			ty := y + size*float32((col*3+row*7+i*4)%10)/10
			vector.StrokeLine(dst, tx, ty, tx+2, ty-5, 1.5, detail, true)
		}
	case engine.Path:
		vector.DrawFilledCircle(dst, x+size*0.3, y+size*0.35, size*0.06, detail, true)
		vector.DrawFilledCircle(dst, x+size*0.7, y+size*0.7, size*0.05, detail, true)
	case engine.Floor:
		if (col+row)%2 == 0 {
			vector.DrawFilledRect(dst, x, y, size, size, detail, false)
		}
	case engine.Wood:
		for i := 1; i < 4; i++ {
			ly := y + size*float32(i)/4
			vector.StrokeLine(dst, x, ly, x+size, ly, 1, detail, false)
		}
	case engine.Door:
		inset := size * 0.12
		vector.DrawFilledRect(dst, x+inset, y+inset/2, size-inset*2, size-inset/2, darker(base), false)
		vector.StrokeRect(dst, x+inset, y+inset/2, size-inset*2, size-inset/2, 2, detail, false)
		vector.DrawFilledCircle(dst, x+size*0.7, y+size*0.55, size*0.06, detail, true)
	case engine.Wall:
		half := size / 2
		vector.StrokeLine(dst, x, y+half, x+size, y+half, 1.5, detail, false)
		vector.StrokeLine(dst, x+half, y, x+half, y+half, 1.5, detail, false)
		vector.StrokeLine(dst, x+size*0.25, y+half, x+size*0.25, y+size, 1.5, detail, false)
		vector.StrokeLine(dst, x+size*0.75, y+half, x+size*0.75, y+size, 1.5, detail, false)
	}
}

func darker(c color.RGBA) color.RGBA {
	return scaleBrightness(c, 0.7)
}
