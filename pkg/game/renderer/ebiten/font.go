package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// getUIFontSize returns the font size for UI text, grown slightly with zoom
func (e *EbitenRenderer) getUIFontSize() float64 {
	size := baseFontSize * (0.75 + 0.25*e.tileSize/32.0)
	if size < 12 {
		size = 12
	}
	return size
}

// getLabelFace returns the world space face for name tags and the hint.
// Its size never changes, so label layout is independent of zoom.
func (e *EbitenRenderer) getLabelFace() *text.GoTextFace {
	if e.cachedLabelFace == nil {
		e.cachedLabelFace = &text.GoTextFace{
			Source: e.sansBoldFontSource,
			Size:   labelFontSize,
		}
	}
	return e.cachedLabelFace
}

// getSansFontFace returns a cached sans-serif font face for UI text
func (e *EbitenRenderer) getSansFontFace() *text.GoTextFace {
	size := e.getUIFontSize()
	if e.cachedSansFace == nil || e.cachedUIFontSize != size {
		e.cachedUIFontSize = size
		e.cachedSansFace = &text.GoTextFace{
			Source: e.sansFontSource,
			Size:   size,
		}
	}
	return e.cachedSansFace
}

// getSansBoldFontFace returns a cached sans-serif bold font face (same size as UI)
func (e *EbitenRenderer) getSansBoldFontFace() *text.GoTextFace {
	size := e.getUIFontSize()
	if e.cachedSansBoldFace == nil || e.cachedSansBoldFace.Size != size {
		e.cachedSansBoldFace = &text.GoTextFace{
			Source: e.sansBoldFontSource,
			Size:   size,
		}
	}
	return e.cachedSansBoldFace
}

// getTitleFontFace returns a bold face 6pt larger than UI for panel titles
func (e *EbitenRenderer) getTitleFontFace() *text.GoTextFace {
	size := e.getUIFontSize() + 6
	if e.cachedTitleFace == nil || e.cachedTitleFontSize != size {
		e.cachedTitleFontSize = size
		e.cachedTitleFace = &text.GoTextFace{
			Source: e.sansBoldFontSource,
			Size:   size,
		}
	}
	return e.cachedTitleFace
}

// getMonoUIFontFace returns a monospace font face with UI font size (key hints)
func (e *EbitenRenderer) getMonoUIFontFace() *text.GoTextFace {
	size := e.getUIFontSize() - 2
	if e.cachedMonoUIFace == nil || e.cachedMonoUIFace.Size != size {
		e.cachedMonoUIFace = &text.GoTextFace{
			Source: e.monoFontSource,
			Size:   size,
		}
	}
	return e.cachedMonoUIFace
}

// invalidateFontCache clears cached UI font faces (call when tile size changes)
func (e *EbitenRenderer) invalidateFontCache() {
	e.cachedSansFace = nil
	e.cachedSansBoldFace = nil
	e.cachedTitleFace = nil
	e.cachedMonoUIFace = nil
}

// measureLabel is the label measurer handed to the driver
func (e *EbitenRenderer) measureLabel(s string) (float64, float64) {
	return text.Measure(s, e.getLabelFace(), 0)
}
