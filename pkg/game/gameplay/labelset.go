package gameplay

import (
	"moneymoves/pkg/game/labels"
)

// buildLabels creates the stable label order: NPC name tags in roster
// order, then the world's static labels in definition order.
func (s *Scene) buildLabels() {
	s.labels = s.labels[:0]

	for i, n := range s.npcs {
		i, n := i, n
		name := n.DisplayName
		if name == "" {
			name = n.ID
		}
		s.labels = append(s.labels, &labels.Label{
			Owner: "npc:" + n.ID,
			Text:  name,
			Anchor: func() labels.Point {
				c := TileCenter(n.X, n.Y)
				return labels.Point{X: c.X, Y: c.Y + s.bob[i] - PX*0.65}
			},
		})
	}

	for _, l := range s.world.Labels {
		l := l
		s.labels = append(s.labels, &labels.Label{
			Owner:  "world:" + l.Text,
			Text:   l.Text,
			Anchor: labels.Fixed(labels.Point{X: float64(l.X)*PX + PX/2, Y: float64(l.Y)*PX - PX*0.15}),
		})
	}
}
