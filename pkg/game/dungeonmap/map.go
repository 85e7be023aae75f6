// Package dungeonmap rasterizes a dungeon layout into a tile grid.
//
// The pipeline runs in a fixed order: fill with walls, carve rooms, carve
// corridors, prune walls not touching any floor, drop doors that are not
// flanked by walls, then place items. Each stage is exported so it can be
// run and inspected on its own.
package dungeonmap

import (
	"dungeongen/pkg/engine/random"
	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/entities"
)

// Layout is the read-only view of a dungeon the rasterizer needs
type Layout interface {
	Rooms() []entities.Room
	Corridors() []entities.Corridor
	RoomByID(id int) (entities.Room, bool)
}

// Stats summarises the last CreateMap run
type Stats struct {
	Tiles            map[world.Tile]int
	DroppedItems     int // Items that found no free cell
	SkippedCorridors int // Corridors naming a room that does not exist
}

// Map owns a tile grid of fixed size
type Map struct {
	grid *world.Grid
	rng  random.Source

	droppedItems     int
	skippedCorridors int
}

// New creates a wall-filled map of the given size. Panics if either size is not positive.
func New(width, height int, src random.Source) *Map {
	m := &Map{
		grid: world.NewGrid(width, height),
		rng:  src,
	}
	m.Reset()
	return m
}

// Width returns the map width
func (m *Map) Width() int {
	return m.grid.Width()
}

// Height returns the map height
func (m *Map) Height() int {
	return m.grid.Height()
}

// Grid returns the tile grid. Callers must treat it as read-only.
func (m *Map) Grid() *world.Grid {
	return m.grid
}

// CreateMap runs the whole pipeline on a fresh grid and returns it.
// Running it again on the same layout with the same random sequence gives the
// same grid.
func (m *Map) CreateMap(layout Layout) *world.Grid {
	m.Reset()
	m.CarveRooms(layout)
	m.CarveCorridors(layout)
	m.RemoveRedundantWalls()
	m.RemoveInvalidDoors()
	m.PlaceItems(layout)
	return m.grid
}

// Reset fills the grid with walls and clears the run statistics
func (m *Map) Reset() {
	m.grid.Fill(world.TileWall)
	m.droppedItems = 0
	m.skippedCorridors = 0
}

// Stats returns tile counts and placement failures for the current grid
func (m *Map) Stats() Stats {
	s := Stats{
		Tiles:            make(map[world.Tile]int),
		DroppedItems:     m.droppedItems,
		SkippedCorridors: m.skippedCorridors,
	}
	for _, t := range world.AllTiles() {
		if n := m.grid.Count(t); n > 0 {
			s.Tiles[t] = n
		}
	}
	return s
}
