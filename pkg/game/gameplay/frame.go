package gameplay

import (
	"math"

	"github.com/google/uuid"

	"moneymoves/pkg/engine/input"
	"moneymoves/pkg/game/entities"
	"moneymoves/pkg/game/labels"
)

// Sprite is an NPC's draw position for this frame
type Sprite struct {
	NPC     entities.NPC
	Pos     labels.Point // includes the bob offset
	InRange bool
}

// Frame is everything a surface needs to draw one tick
type Frame struct {
	SceneID uuid.UUID
	Player  labels.Point
	TileX   int
	TileY   int
	Moving  bool
	Sprites []Sprite
	Target  Target
	Hint    Hint
	Labels  []*labels.Label
}

// bobOffset is the shared cosmetic vertical offset for nearby NPCs
func (s *Scene) bobOffset() float64 {
	return math.Sin(float64(s.elapsed)/float64(BobPeriod)) * BobAmplitude
}

func (s *Scene) snapshot(controls input.Controls) Frame {
	tx, ty := s.PlayerTile()
	dx, dy := controls.Axis()

	bob := s.bobOffset()
	sprites := make([]Sprite, len(s.npcs))
	pos := make(map[string]labels.Point, len(s.npcs))
	for i, n := range s.npcs {
		base := TileCenter(n.X, n.Y)
		near := InRange(n, tx, ty)
		s.bob[i] = 0
		if near {
			s.bob[i] = bob
		}
		p := labels.Point{X: base.X, Y: base.Y + s.bob[i]}
		sprites[i] = Sprite{NPC: n, Pos: p, InRange: near}
		pos[n.ID] = p
	}

	target := ResolveTarget(s.world, s.npcs, tx, ty)
	w, h := s.Size()

	return Frame{
		SceneID: s.id,
		Player:  s.player,
		TileX:   tx,
		TileY:   ty,
		Moving:  dx != 0 || dy != 0,
		Sprites: sprites,
		Target:  target,
		Hint:    s.hintFor(target, pos),
		Labels:  labels.Layout(s.labels, w, h, s.measurer),
	}
}
