package gameplay

import (
	"math"

	engine "moneymoves/pkg/engine/world"
	"moneymoves/pkg/game/entities"
	"moneymoves/pkg/game/world"
)

// TargetKind is what the interact key would act on
type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetNPC
	TargetDoor
)

// Target is the single active interaction target
type Target struct {
	Kind TargetKind
	NPC  entities.NPC
	Door world.Point
}

func manhattan(x1, y1, x2, y2 int) int {
	return abs(x1-x2) + abs(y1-y2)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// NearestNPC returns the index of the closest NPC within the proximity
// radius of tile (tx,ty), or -1. Ties go to the earlier NPC.
func NearestNPC(npcs []entities.NPC, tx, ty int) int {
	best := math.MaxInt
	idx := -1
	for i, n := range npcs {
		d := manhattan(tx, ty, n.X, n.Y)
		if d <= ProximityRadius && d < best {
			best = d
			idx = i
		}
	}
	return idx
}

// InRange reports whether an NPC can be talked to from tile (tx,ty)
func InRange(n entities.NPC, tx, ty int) bool {
	return manhattan(tx, ty, n.X, n.Y) <= ProximityRadius
}

// DoorNear finds a door on the occupied tile or its four neighbours,
// checked in probe order: self, east, west, south, north.
func DoorNear(w *world.World, tx, ty int) (world.Point, bool) {
	if !w.InBounds(tx, ty) {
		return world.Point{}, false
	}
	if w.IsDoor(tx, ty) {
		return world.Point{X: tx, Y: ty}, true
	}
	c := w.Grid.GetCell(ty, tx)
	for _, dir := range engine.ProbeOrder() {
		if n := c.GetNeighbor(dir); n.IsDoor() {
			return world.Point{X: n.Col, Y: n.Row}, true
		}
	}
	return world.Point{}, false
}

// ResolveTarget picks the interaction target for a tile. An NPC in range
// always wins over a door.
func ResolveTarget(w *world.World, npcs []entities.NPC, tx, ty int) Target {
	if i := NearestNPC(npcs, tx, ty); i >= 0 {
		return Target{Kind: TargetNPC, NPC: npcs[i]}
	}
	if p, ok := DoorNear(w, tx, ty); ok {
		return Target{Kind: TargetDoor, Door: p}
	}
	return Target{Kind: TargetNone}
}

// dispatch sends an interact press to the collaborator for the target.
// No target is a no-op.
func (s *Scene) dispatch(t Target) {
	switch t.Kind {
	case TargetNPC:
		if s.onTalk != nil {
			s.onTalk(t.NPC)
		}
	case TargetDoor:
		if s.onPortal != nil {
			s.onPortal(t.Door.X, t.Door.Y)
		}
	}
}
