package gameplay

import (
	"math"

	"moneymoves/pkg/engine/input"
	"moneymoves/pkg/game/labels"
)

// move applies one tick of held direction input and clamps the player so
// its box never straddles the world edge.
func (s *Scene) move(controls input.Controls) {
	dx, dy := controls.Axis()
	w, h := s.Size()

	s.player.X = clamp(s.player.X+float64(dx)*Speed, PX/2, w-PX/2)
	s.player.Y = clamp(s.player.Y+float64(dy)*Speed, PX/2, h-PX/2)
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}

// roundHalfUp rounds like the browser did: halves go towards +inf
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// TileAt returns the tile under a pixel position
func TileAt(p labels.Point) (x, y int) {
	return roundHalfUp((p.X - PX/2) / PX), roundHalfUp((p.Y - PX/2) / PX)
}

// PlayerTile returns the tile the player occupies
func (s *Scene) PlayerTile() (x, y int) {
	return TileAt(s.player)
}
