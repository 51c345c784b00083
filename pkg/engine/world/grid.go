package world

// Grid represents a rectangular tile map with encapsulated cell storage
type Grid struct {
	cells [][]*Cell
	rows  int
	cols  int
}

// NewGrid creates a new grid of grass with the given dimensions
func NewGrid(rows, cols int) *Grid {
	g := &Grid{}
	g.Build(rows, cols)
	return g
}

// NewGridFromKinds creates a grid from a rectangular matrix of tile kinds,
// indexed [row][col]. The caller guarantees the matrix is rectangular and
// non-empty.
func NewGridFromKinds(kinds [][]TileKind) *Grid {
	g := NewGrid(len(kinds), len(kinds[0]))
	g.ForEachCell(func(row, col int, cell *Cell) {
		cell.Kind = kinds[row][col]
	})
	return g
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// GetCell returns the cell at the given position, or nil if out of bounds
func (g *Grid) GetCell(row, col int) *Cell {
	if !g.IsValidPosition(row, col) {
		return nil
	}
	return g.cells[row][col]
}

// KindAt returns the tile kind at a position; out of bounds reads as grass
func (g *Grid) KindAt(row, col int) TileKind {
	if c := g.GetCell(row, col); c != nil {
		return c.Kind
	}
	return Grass
}

// GetCellRelative returns the cell adjacent to the given cell in the specified direction
func (g *Grid) GetCellRelative(c *Cell, dir Direction) *Cell {
	if c == nil {
		return nil
	}
	if !dir.IsValid() {
		return nil
	}
	rowRel, colRel := dir.Delta()
	return g.GetCell(c.Row+rowRel, c.Col+colRel)
}

// Build initializes the grid with the given dimensions and links neighbors
func (g *Grid) Build(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.rows = rows
	g.cols = cols
	g.cells = make([][]*Cell, rows)

	for currentRow := 0; currentRow < rows; currentRow++ {
		g.cells[currentRow] = make([]*Cell, cols)
		for currentCol := 0; currentCol < cols; currentCol++ {
			g.cells[currentRow][currentCol] = NewCell(currentRow, currentCol, Grass)
		}
	}

	g.BuildAllCellConnections()
}

// BuildAllCellConnections connects all cells to their neighbors
func (g *Grid) BuildAllCellConnections() {
	g.ForEachCell(func(_, _ int, cell *Cell) {
		g.buildCellConnections(cell)
	})
}

func (g *Grid) buildCellConnections(current *Cell) {
	if current == nil {
		return
	}

	for _, dir := range AllDirections() {
		adj := g.GetCellRelative(current, dir)

		if adj == nil {
			continue
		}

		current.SetNeighbor(dir, adj)
		adj.SetNeighbor(dir.Opposite(), current)
	}
}

// ForEachCell iterates over all cells in the grid, calling the provided function for each
func (g *Grid) ForEachCell(fn func(row, col int, cell *Cell)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			fn(row, col, g.cells[row][col])
		}
	}
}

// Kinds returns a copy of the tile matrix, indexed [row][col]
func (g *Grid) Kinds() [][]TileKind {
	out := make([][]TileKind, g.rows)
	for row := range out {
		out[row] = make([]TileKind, g.cols)
		for col := range out[row] {
			out[row][col] = g.cells[row][col].Kind
		}
	}
	return out
}
