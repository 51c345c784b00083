// Package entities contains the interactive characters that live in the worlds.
package entities

// NPC is an immutable roster entry bound to one world
type NPC struct {
	ID          string
	World       string
	X           int
	Y           int
	DisplayName string
	Theme       Theme
}

// Tile returns the NPC's base grid position
func (n NPC) Tile() (x, y int) {
	return n.X, n.Y
}
