// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

// Cell represents a single tile in the grid.
type Cell struct {
	// Grid position
	Row int
	Col int

	Kind TileKind

	// Navigation - links to adjacent cells
	North *Cell
	East  *Cell
	South *Cell
	West  *Cell
}

// NewCell creates a new cell at the given position
func NewCell(row, col int, kind TileKind) *Cell {
	return &Cell{
		Row:  row,
		Col:  col,
		Kind: kind,
	}
}

// IsDoor returns true if the cell holds a door tile
func (c *Cell) IsDoor() bool {
	return c != nil && c.Kind == Door
}

// GetNeighbor returns the neighboring cell in the given direction
func (c *Cell) GetNeighbor(dir Direction) *Cell {
	if c == nil {
		return nil
	}
	switch dir {
	case North:
		return c.North
	case East:
		return c.East
	case South:
		return c.South
	case West:
		return c.West
	default:
		return nil
	}
}

// SetNeighbor sets the neighboring cell in the given direction
func (c *Cell) SetNeighbor(dir Direction, neighbor *Cell) {
	if c == nil {
		return
	}
	switch dir {
	case North:
		c.North = neighbor
	case East:
		c.East = neighbor
	case South:
		c.South = neighbor
	case West:
		c.West = neighbor
	}
}
