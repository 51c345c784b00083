package world

import (
	engine "moneymoves/pkg/engine/world"
)

// FallbackTable holds the built-in world used for each role when the
// supplied definition fails shape validation.
type FallbackTable struct {
	Town *World
	Bank *World
}

// For returns the fallback world for a role; unknown roles get the town
func (t FallbackTable) For(role Role) *World {
	if role == RoleBank && t.Bank != nil {
		return t.Bank
	}
	return t.Town
}

// DefaultFallbacks builds the two built-in worlds
func DefaultFallbacks() FallbackTable {
	return FallbackTable{
		Town: safeTown(),
		Bank: safeBank(),
	}
}

func filled(rows, cols int, kind engine.TileKind) [][]engine.TileKind {
	out := make([][]engine.TileKind, rows)
	for y := range out {
		out[y] = make([]engine.TileKind, cols)
		for x := range out[y] {
			out[y][x] = kind
		}
	}
	return out
}

// safeTown is an 18x12 lawn with a house, a garden and the bank door.
func safeTown() *World {
	t := filled(12, 18, engine.Grass)
	for y := 3; y <= 8; y++ {
		for x := 5; x <= 10; x++ {
			if (x == 7 || x == 8) && (y == 5 || y == 6) {
				t[y][x] = engine.Wood
			} else {
				t[y][x] = engine.Path
			}
		}
	}
	for y := 4; y <= 8; y++ {
		for x := 12; x <= 15; x++ {
			t[y][x] = engine.Path
		}
	}
	t[2][16] = engine.Door

	return &World{
		ID:     string(RoleTown),
		Width:  18,
		Height: 12,
		Grid:   engine.NewGridFromKinds(t),
		Labels: []Label{
			{X: 6, Y: 10, Text: "Home"},
			{X: 11, Y: 7, Text: "Garden"},
			{X: 16, Y: 1, Text: "Bank"},
		},
		Portals: []Portal{
			{From: Point{X: 16, Y: 2}, To: PortalTarget{World: string(RoleBank), Spawn: "lobby"}},
		},
		Spawns: []Spawn{{Name: StartSpawn, X: 2, Y: 2}},
	}
}

// safeBank is a 10x7 lobby with one door back out.
func safeBank() *World {
	t := filled(7, 10, engine.Path)
	t[6][5] = engine.Door

	return &World{
		ID:      string(RoleBank),
		Width:   10,
		Height:  7,
		Grid:    engine.NewGridFromKinds(t),
		Labels:  []Label{{X: 1, Y: 1, Text: "RBCU"}},
		Portals: []Portal{{From: Point{X: 5, Y: 6}, To: PortalTarget{World: string(RoleTown), Spawn: StartSpawn}}},
		Spawns:  []Spawn{{Name: "lobby", X: 2, Y: 3}},
	}
}
