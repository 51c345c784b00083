package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"moneymoves/pkg/game/renderer"
)

// textSegment represents a segment of text with a specific color
type textSegment struct {
	text  string
	color color.Color
}

// drawColoredText draws text with the UI face; x, y is the top-left
func (e *EbitenRenderer) drawColoredText(dst *ebiten.Image, str string, x, y float64, col color.Color) {
	e.drawColoredTextWithFace(dst, str, x, y, col, e.getSansFontFace())
}

// drawColoredTextWithFace draws already translated text with a specific face
func (e *EbitenRenderer) drawColoredTextWithFace(dst *ebiten.Image, str string, x, y float64, col color.Color, face *text.GoTextFace) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(dst, str, face, op)
}

// drawColoredTextSegmentsWithFace draws segments side by side on one line
func (e *EbitenRenderer) drawColoredTextSegmentsWithFace(dst *ebiten.Image, segments []textSegment, x, y float64, face *text.GoTextFace) {
	currentX := x
	for _, seg := range segments {
		if seg.text == "" {
			continue
		}
		e.drawColoredTextWithFace(dst, seg.text, currentX, y, seg.color, face)
		w, _ := text.Measure(seg.text, face, 0)
		currentX += w
	}
}

// getTextWidthWithFace returns the width of a string in pixels using the given font face.
func (e *EbitenRenderer) getTextWidthWithFace(str string, face *text.GoTextFace) float64 {
	w, _ := text.Measure(str, face, 0)
	return w
}

// lineHeight is the advance between wrapped lines for a face
func lineHeight(face *text.GoTextFace) float64 {
	return face.Size * 1.35
}

// applyAlpha applies an alpha value to a color
func applyAlpha(c color.Color, alpha float64) color.Color {
	if alpha <= 0 {
		alpha = 0
	}
	if alpha > 1.0 {
		alpha = 1.0
	}

	r, g, b, a := c.RGBA()
	// Fade to transparent black, not transparent bright colors
	return color.RGBA{
		uint8(float64(r>>8) * alpha),
		uint8(float64(g>>8) * alpha),
		uint8(float64(b>>8) * alpha),
		uint8(float64(a>>8) * alpha),
	}
}

// wrapWithFace wraps s for a face
func (e *EbitenRenderer) wrapWithFace(s string, maxWidth float64, face *text.GoTextFace) []string {
	return renderer.WrapText(s, maxWidth, func(line string) float64 {
		return e.getTextWidthWithFace(line, face)
	})
}
