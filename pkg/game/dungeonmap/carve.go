package dungeonmap

import (
	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/entities"
)

// minCorridorLengthForDoor is the shortest run that may hold a door
const minCorridorLengthForDoor = 3

// wallAnchor is the x position a corridor leaves from, and the row span it may use
type wallAnchor struct {
	x, y, height int
}

// CarveRooms sets every cell inside every room to TileEmpty
func (m *Map) CarveRooms(layout Layout) {
	for _, room := range layout.Rooms() {
		for y := room.Y; y < room.Bottom(); y++ {
			for x := room.X; x < room.Right(); x++ {
				m.grid.Set(x, y, world.TileEmpty)
			}
		}
	}
}

// CarveCorridors carves every corridor as a horizontal run followed by a
// vertical run, in corridor order. Each corridor draws two rows.
func (m *Map) CarveCorridors(layout Layout) {
	for _, c := range layout.Corridors() {
		from, okFrom := layout.RoomByID(c.FromRoomID)
		to, okTo := layout.RoomByID(c.ToRoomID)
		if !okFrom || !okTo {
			m.skippedCorridors++
			continue
		}
		m.carveCorridor(c, from, to)
	}
}

func (m *Map) carveCorridor(c entities.Corridor, from, to entities.Room) {
	left, right := corridorAnchors(from, to)

	leftY := m.rng.Range(0, left.height) + left.y
	rightY := m.rng.Range(0, right.height) + right.y

	x0 := left.x
	xLen := right.x - left.x

	// Horizontal run along the left row, possibly holding the from-room door
	prevX := x0
	for x := 0; x <= xLen; x++ {
		prevX = x0 + x
		if x == 1 && xLen >= minCorridorLengthForDoor {
			m.grid.Set(prevX, leftY, doorTile(c.FromRoomDoor))
		} else {
			m.grid.Set(prevX, leftY, world.TileEmpty)
		}
	}

	// Vertical run at the last column, from the left row to the right row
	yLen := abs(leftY - rightY)
	incr := 1
	if leftY >= rightY {
		incr = -1
	}
	for y := 0; y <= yLen; y++ {
		m.grid.Set(prevX, leftY+y*incr, world.TileEmpty)
	}

	if yLen >= minCorridorLengthForDoor {
		m.grid.Set(prevX, leftY+(yLen-2)*incr, doorTile(c.ToRoomDoor))
	}
}

// corridorAnchors picks the left and right anchors of a corridor. The from
// room is left only when it ends at or before the to room starts.
func corridorAnchors(from, to entities.Room) (left, right wallAnchor) {
	fromWall := wallAnchor{x: from.Right(), y: from.Y, height: from.Height}
	toWall := wallAnchor{x: to.X, y: to.Y, height: to.Height}

	if from.Right() <= to.X {
		return fromWall, toWall
	}
	return toWall, fromWall
}

// doorTile returns the tile for an optional door
func doorTile(d *entities.Door) world.Tile {
	if d == nil {
		return world.TileEmpty
	}
	return d.Tile()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
