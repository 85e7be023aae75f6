// Package entities contains the records a dungeon layout is made of:
// rooms, corridors, doors and items. They carry data only.
package entities

import "dungeongen/pkg/engine/world"

// Door is an optional barrier on one end of a corridor
type Door struct {
	ID     int // Unique across the whole layout
	Locked bool
	Open   bool
}

// NewDoor creates a new closed, unlocked door
func NewDoor(id int) *Door {
	return &Door{ID: id}
}

// Tile returns the tile this door is drawn as
func (d *Door) Tile() world.Tile {
	if d.Open {
		return world.TileOpenDoor
	}
	return world.TileClosedDoor
}
