package dungeonmap

import "dungeongen/pkg/engine/world"

// hasWall treats out-of-range cells as walls
func (m *Map) hasWall(x, y int) bool {
	return m.grid.At(x, y).IsWallLike()
}

// hasWallsAround reports whether the cell and all eight neighbours are walls
func (m *Map) hasWallsAround(x, y int) bool {
	if !m.hasWall(x, y) {
		return false
	}
	for _, o := range world.Neighbourhood() {
		if !m.hasWall(x+o.DX, y+o.DY) {
			return false
		}
	}
	return true
}

// RemoveRedundantWalls opens every wall that does not touch floor, leaving a
// one-cell shell around carved areas. Walls are first marked TileDummy, which
// still counts as wall for later cells in the same scan, then cleared.
func (m *Map) RemoveRedundantWalls() {
	w, h := m.grid.Width(), m.grid.Height()

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if m.hasWallsAround(x, y) {
				m.grid.Set(x, y, world.TileDummy)
			}
		}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if m.grid.At(x, y) == world.TileDummy {
				m.grid.Set(x, y, world.TileEmpty)
			}
		}
	}
}

// IsValidDoorPosition reports whether a door at x/y sits in a wall line:
// walls north and south with open cells east and west, or the reverse.
func (m *Map) IsValidDoorPosition(x, y int) bool {
	var wall [4]bool
	for _, d := range world.AllDirections() {
		dx, dy := d.Delta()
		wall[d] = m.hasWall(x+dx, y+dy)
	}

	return (wall[world.North] && wall[world.South] && !wall[world.East] && !wall[world.West]) ||
		(wall[world.West] && wall[world.East] && !wall[world.North] && !wall[world.South])
}

// RemoveInvalidDoors turns doors left in open space into floor
func (m *Map) RemoveInvalidDoors() {
	w, h := m.grid.Width(), m.grid.Height()

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if m.grid.At(x, y).IsDoor() && !m.IsValidDoorPosition(x, y) {
				m.grid.Set(x, y, world.TileEmpty)
			}
		}
	}
}
