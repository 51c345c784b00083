package renderer

import "strings"

// Camera returns the screen offset of the world's top-left corner. The
// player is centred; a world smaller than the view is centred instead, and
// a larger one never shows past its edges.
func Camera(worldW, worldH, viewW, viewH, playerX, playerY float64) (float64, float64) {
	axis := func(world, view, p float64) float64 {
		if world <= view {
			return (view - world) / 2
		}
		o := view/2 - p
		if o > 0 {
			o = 0
		}
		if o < view-world {
			o = view - world
		}
		return o
	}
	return axis(worldW, viewW, playerX), axis(worldH, viewH, playerY)
}

// WrapText breaks s into lines no wider than maxWidth as measured by width.
// Existing newlines are kept; a single word wider than maxWidth gets its own line.
func WrapText(s string, maxWidth float64, width func(string) float64) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			candidate := line + " " + w
			if width(candidate) > maxWidth {
				lines = append(lines, line)
				line = w
				continue
			}
			line = candidate
		}
		lines = append(lines, line)
	}
	return lines
}
