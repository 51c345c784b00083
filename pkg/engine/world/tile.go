package world

// TileKind is the closed set of terrain a cell can hold.
type TileKind int

const (
	Grass TileKind = iota
	Path
	Floor
	Wood
	Door
	Wall
)

// AllTileKinds returns every tile kind in declaration order
func AllTileKinds() []TileKind {
	return []TileKind{Grass, Path, Floor, Wood, Door, Wall}
}

// TileKindFromRune maps a map character to a tile kind.
// Unknown characters are walkable ground.
func TileKindFromRune(r rune) TileKind {
	switch r {
	case 'G', 'g':
		return Grass
	case '.', 's':
		return Path
	case 'B':
		return Floor
	case 'd':
		return Wood
	case 'D':
		return Door
	case 'X', 'W':
		return Wall
	default:
		return Grass
	}
}

// Rune returns the canonical map character for the tile kind
func (k TileKind) Rune() rune {
	switch k {
	case Path:
		return 's'
	case Floor:
		return 'B'
	case Wood:
		return 'd'
	case Door:
		return 'D'
	case Wall:
		return 'X'
	default:
		return 'g'
	}
}

// String returns a human readable name
func (k TileKind) String() string {
	switch k {
	case Grass:
		return "grass"
	case Path:
		return "path"
	case Floor:
		return "floor"
	case Wood:
		return "wood"
	case Door:
		return "door"
	case Wall:
		return "wall"
	default:
		return "unknown"
	}
}
