package renderer

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestCameraCentersSmallWorld(t *testing.T) {
	ox, oy := Camera(400, 300, 1000, 700, 50, 50)
	assert.Equal(t, 300.0, ox)
	assert.Equal(t, 200.0, oy)
}

func TestCameraFollowsPlayer(t *testing.T) {
	ox, oy := Camera(2000, 2000, 800, 600, 1000, 1000)
	assert.Equal(t, -600.0, ox)
	assert.Equal(t, -700.0, oy)
}

func TestCameraStopsAtEdges(t *testing.T) {
	ox, oy := Camera(2000, 2000, 800, 600, 10, 10)
	assert.Equal(t, 0.0, ox)
	assert.Equal(t, 0.0, oy)

	ox, oy = Camera(2000, 2000, 800, 600, 1990, 1990)
	assert.Equal(t, -1200.0, ox)
	assert.Equal(t, -1400.0, oy)
}

func runeWidth(s string) float64 {
	return float64(utf8.RuneCountInString(s))
}

func TestWrapText(t *testing.T) {
	lines := WrapText("save a little every single month", 12, runeWidth)
	assert.Equal(t, []string{"save a", "little every", "single month"}, lines)
	for _, l := range lines {
		assert.LessOrEqual(t, runeWidth(l), 12.0)
	}
}

func TestWrapTextKeepsNewlinesAndLongWords(t *testing.T) {
	lines := WrapText("first\n\nsupercalifragilistic word", 8, runeWidth)
	assert.Equal(t, []string{"first", "", "supercalifragilistic", "word"}, lines)
}

func TestWrapTextNoLoss(t *testing.T) {
	in := "Pay yourself first, then spend what is left over on the things you enjoy."
	lines := WrapText(in, 20, runeWidth)
	assert.Equal(t, strings.Fields(in), strings.Fields(strings.Join(lines, " ")))
}
