// Package world provides the game's normalized worlds: the town and bank tile
// maps plus their labels, portals and spawn points.
// It builds on the generic engine/world grid.
package world

import (
	engine "moneymoves/pkg/engine/world"
)

// Role identifies which fallback a world slot uses
type Role string

const (
	RoleTown Role = "town"
	RoleBank Role = "bank"
)

// StartSpawn is the spawn name every fresh or advanced game starts at
const StartSpawn = "start"

// DefaultSpawnX and DefaultSpawnY are used when a named spawn is missing
const (
	DefaultSpawnX = 2
	DefaultSpawnY = 2
)

// Point is a tile coordinate
type Point struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Label is static text drawn at a tile
type Label struct {
	X    int
	Y    int
	Text string
}

// PortalTarget names the destination world and optional spawn
type PortalTarget struct {
	World string
	Spawn string
}

// Portal moves the player to another world when a door tile is used
type Portal struct {
	From Point
	To   PortalTarget
}

// Spawn is a named entry point into a world
type Spawn struct {
	Name string
	X    int
	Y    int
}

// World is a canonical, always renderable world
type World struct {
	ID      string
	Width   int
	Height  int
	Grid    *engine.Grid
	Labels  []Label
	Portals []Portal
	Spawns  []Spawn
}

// InBounds reports whether the tile lies inside the world
func (w *World) InBounds(x, y int) bool {
	return w.Grid.IsValidPosition(y, x)
}

// Tile returns the tile kind at x,y
func (w *World) Tile(x, y int) engine.TileKind {
	return w.Grid.KindAt(y, x)
}

// IsDoor reports whether x,y holds a door tile
func (w *World) IsDoor(x, y int) bool {
	return w.Grid.GetCell(y, x).IsDoor()
}

// PortalAt returns the portal leaving from x,y
func (w *World) PortalAt(x, y int) (Portal, bool) {
	for _, p := range w.Portals {
		if p.From.X == x && p.From.Y == y {
			return p, true
		}
	}
	return Portal{}, false
}

// Spawn finds a named spawn
func (w *World) Spawn(name string) (Spawn, bool) {
	for _, s := range w.Spawns {
		if s.Name == name {
			return s, true
		}
	}
	return Spawn{}, false
}

// SpawnTile resolves a spawn name to a tile, defaulting to (2,2)
func (w *World) SpawnTile(name string) Point {
	if s, ok := w.Spawn(name); ok && name != "" {
		return Point{X: s.X, Y: s.Y}
	}
	return Point{X: DefaultSpawnX, Y: DefaultSpawnY}
}
