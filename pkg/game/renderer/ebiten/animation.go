package ebiten

import (
	"image/color"
	"math"
	"time"
)

// pulsePeriod is one full bright-dim-bright cycle of the focus highlight
const pulsePeriod = 1600 * time.Millisecond

// pulseValue maps a point in time to 0..1 along a sine wave
func pulseValue(now time.Time, period time.Duration) float64 {
	phase := float64(now.UnixMilli()%period.Milliseconds()) / float64(period.Milliseconds())
	return (math.Sin(phase*2*math.Pi) + 1.0) / 2.0
}

// scaleBrightness multiplies the color channels, keeping alpha
func scaleBrightness(c color.RGBA, brightness float64) color.RGBA {
	return color.RGBA{
		uint8(float64(c.R) * brightness),
		uint8(float64(c.G) * brightness),
		uint8(float64(c.B) * brightness),
		c.A,
	}
}

// getPulsingFocusColor is the outline drawn around the active door or the
// NPC in range. It pulses between 55% and 100% brightness.
func getPulsingFocusColor(now time.Time) color.RGBA {
	const minBrightness, maxBrightness = 0.55, 1.0
	return scaleBrightness(colorFocus, minBrightness+(maxBrightness-minBrightness)*pulseValue(now, pulsePeriod))
}
