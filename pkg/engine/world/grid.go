package world

import "fmt"

// Grid is a dense 2D tile map addressed [x][y], x in [0, width) and y in [0, height)
type Grid struct {
	cells  [][]Tile
	width  int
	height int
}

// NewGrid creates a grid of the given dimensions with every cell set to TileEmpty
func NewGrid(width, height int) *Grid {
	g := &Grid{}
	g.Build(width, height)
	return g
}

// Build (re)allocates the grid storage
func (g *Grid) Build(width, height int) {
	if width <= 0 || height <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.width = width
	g.height = height
	g.cells = make([][]Tile, width)
	for x := range g.cells {
		g.cells[x] = make([]Tile, height)
	}
}

// Width returns the number of columns
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows
func (g *Grid) Height() int {
	return g.height
}

// IsValidPosition checks if an x/y position is within grid bounds
func (g *Grid) IsValidPosition(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the tile at x/y. The second result is false for out-of-range coordinates.
func (g *Grid) Get(x, y int) (Tile, bool) {
	if !g.IsValidPosition(x, y) {
		return TileWall, false
	}
	return g.cells[x][y], true
}

// At returns the tile at x/y, treating out-of-range coordinates as TileWall
func (g *Grid) At(x, y int) Tile {
	t, _ := g.Get(x, y)
	return t
}

// Set stores a tile. Returns false if out of bounds.
func (g *Grid) Set(x, y int, t Tile) bool {
	if !g.IsValidPosition(x, y) {
		return false
	}
	g.cells[x][y] = t
	return true
}

// Fill sets every cell to t
func (g *Grid) Fill(t Tile) {
	for x := range g.cells {
		for y := range g.cells[x] {
			g.cells[x][y] = t
		}
	}
}

// ForEachCell calls fn for every cell, row by row
func (g *Grid) ForEachCell(fn func(x, y int, t Tile)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(x, y, g.cells[x][y])
		}
	}
}

// Count returns how many cells hold t
func (g *Grid) Count(t Tile) int {
	n := 0
	g.ForEachCell(func(_, _ int, c Tile) {
		if c == t {
			n++
		}
	})
	return n
}

// Clone returns a deep copy
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.width, g.height)
	for x := range g.cells {
		copy(c.cells[x], g.cells[x])
	}
	return c
}

// Equal reports whether both grids have the same size and contents
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for x := range g.cells {
		for y := range g.cells[x] {
			if g.cells[x][y] != other.cells[x][y] {
				return false
			}
		}
	}
	return true
}

// String renders the grid as ASCII glyphs, one line per row
func (g *Grid) String() string {
	buf := make([]rune, 0, (g.width+1)*g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			buf = append(buf, g.cells[x][y].Rune())
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}

// Validate checks the grid for tiles that must not survive a finished map.
// Returns an error description or empty string if valid.
func (g *Grid) Validate() string {
	if g.width <= 0 || g.height <= 0 {
		return "Grid has invalid dimensions"
	}

	for x := range g.cells {
		for y := range g.cells[x] {
			if g.cells[x][y] == TileDummy {
				return fmt.Sprintf("Dummy tile left at %d,%d", x, y)
			}
			if g.cells[x][y] > TileKey {
				return fmt.Sprintf("Unknown tile code %d at %d,%d", g.cells[x][y], x, y)
			}
		}
	}

	return ""
}
