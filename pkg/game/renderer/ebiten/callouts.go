package ebiten

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// callout is a short-lived toast near the bottom of the window
type callout struct {
	message   string
	color     color.Color
	createdAt time.Time
	expiresAt time.Time
}

// calloutFade is how long a callout takes to fade out before it expires
const calloutFade = 400 * time.Millisecond

// maxCallouts bounds the stack; the oldest one is dropped
const maxCallouts = 4

// AddCallout shows a message for durationMs milliseconds
func (e *EbitenRenderer) AddCallout(message string, col color.Color, durationMs int) {
	now := time.Now()
	e.callouts = append(e.callouts, callout{
		message:   message,
		color:     col,
		createdAt: now,
		expiresAt: now.Add(time.Duration(durationMs) * time.Millisecond),
	})
	if len(e.callouts) > maxCallouts {
		e.callouts = e.callouts[len(e.callouts)-maxCallouts:]
	}
}

// ClearCallouts removes every callout
func (e *EbitenRenderer) ClearCallouts() {
	e.callouts = nil
}

// expireCallouts drops callouts past their expiry
func (e *EbitenRenderer) expireCallouts(now time.Time) {
	kept := e.callouts[:0]
	for _, c := range e.callouts {
		if now.Before(c.expiresAt) {
			kept = append(kept, c)
		}
	}
	e.callouts = kept
}

// alpha is 1 until the fade window, then falls to 0 at expiry
func (c callout) alpha(now time.Time) float64 {
	left := c.expiresAt.Sub(now)
	if left >= calloutFade {
		return 1
	}
	if left <= 0 {
		return 0
	}
	return float64(left) / float64(calloutFade)
}

func (e *EbitenRenderer) drawCallouts(screen *ebiten.Image) {
	if len(e.callouts) == 0 {
		return
	}
	now := time.Now()
	face := e.getSansFontFace()
	h := lineHeight(face) + 12
	y := float64(e.windowHeight) - footerHeight - h - 8

	for i := len(e.callouts) - 1; i >= 0; i-- {
		c := e.callouts[i]
		a := c.alpha(now)
		w := e.getTextWidthWithFace(c.message, face) + 24
		x := (float64(e.windowWidth) - w) / 2

		drawRoundedRectWithShadow(screen, float32(x), float32(y), float32(w), float32(h), 8, 1.5,
			applyAlpha(colorPanelBackground, a), applyAlpha(c.color, a), float32(a))
		e.drawColoredTextWithFace(screen, c.message, x+12, y+6, applyAlpha(c.color, a), face)
		y -= h + 6
	}
}
