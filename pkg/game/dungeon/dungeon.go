// Package dungeon generates abstract dungeon layouts: rooms, the corridors
// between them, and optionally doors and items. The layout is rasterized
// elsewhere.
package dungeon

import (
	"fmt"

	"dungeongen/pkg/engine/random"
	"dungeongen/pkg/game/entities"
)

// Dungeon owns every room and corridor of a layout
type Dungeon struct {
	rooms     []entities.Room
	corridors []entities.Corridor

	rng      random.Source
	doorOpts DoorOptions

	width  int
	height int

	nextDoorID int
	nextItemID int

	// Set by Tree placement for the connect step that follows
	partition *partition
}

// New creates an empty dungeon drawing from src
func New(src random.Source) *Dungeon {
	return &Dungeon{rng: src}
}

// Generate places up to maxRooms rooms in a width x height area and connects
// them according to mode. Fewer rooms than requested is normal: a room slot is
// skipped once its placement attempts run out.
//
// Calling Generate again adds a second batch of rooms; it does not reset.
func (d *Dungeon) Generate(maxRooms int, mode Mode, width, height, maxRoomWidth, maxRoomHeight int) (*Dungeon, error) {
	if maxRooms <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRoomCount, maxRooms)
	}
	if maxRoomWidth >= width-2 || maxRoomHeight >= height-2 {
		return nil, fmt.Errorf("%w: room %dx%d, dungeon %dx%d", ErrRoomTooLargeForDungeon,
			maxRoomWidth, maxRoomHeight, width, height)
	}
	if maxRoomWidth < 3 || maxRoomHeight < 3 {
		return nil, fmt.Errorf("%w: room %dx%d", ErrRoomTooSmall, maxRoomWidth, maxRoomHeight)
	}

	p, ok := placers[mode]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}

	if width > d.width {
		d.width = width
	}
	if height > d.height {
		d.height = height
	}

	first := len(d.rooms)
	p.placeRooms(d, placement{
		maxRooms:      maxRooms,
		width:         width,
		height:        height,
		maxRoomWidth:  maxRoomWidth,
		maxRoomHeight: maxRoomHeight,
	})

	if maxRooms > 1 {
		p.connect(d, first)
	}
	d.partition = nil

	return d, nil
}

// Width returns the width of the generated area
func (d *Dungeon) Width() int {
	return d.width
}

// Height returns the height of the generated area
func (d *Dungeon) Height() int {
	return d.height
}

// RoomsNumber returns the number of rooms
func (d *Dungeon) RoomsNumber() int {
	return len(d.rooms)
}

// CorridorsNumber returns the number of corridors
func (d *Dungeon) CorridorsNumber() int {
	return len(d.corridors)
}

// Room returns the room at index idx
func (d *Dungeon) Room(idx int) (entities.Room, bool) {
	if idx < 0 || idx >= len(d.rooms) {
		return entities.Room{}, false
	}
	return d.rooms[idx], true
}

// RoomByID returns the room with the given id
func (d *Dungeon) RoomByID(id int) (entities.Room, bool) {
	for _, r := range d.rooms {
		if r.ID == id {
			return r, true
		}
	}
	return entities.Room{}, false
}

// Corridor returns the corridor at index idx
func (d *Dungeon) Corridor(idx int) (entities.Corridor, bool) {
	if idx < 0 || idx >= len(d.corridors) {
		return entities.Corridor{}, false
	}
	return d.corridors[idx], true
}

// Rooms returns a copy of the room list in creation order
func (d *Dungeon) Rooms() []entities.Room {
	return append([]entities.Room(nil), d.rooms...)
}

// Corridors returns a copy of the corridor list in creation order
func (d *Dungeon) Corridors() []entities.Corridor {
	return append([]entities.Corridor(nil), d.corridors...)
}

// DoorsNumber counts the filled door slots over all corridors
func (d *Dungeon) DoorsNumber() int {
	n := 0
	for _, c := range d.corridors {
		n += c.DoorCount()
	}
	return n
}

// RoomCorridors returns every corridor with an end in the given room
func (d *Dungeon) RoomCorridors(roomID int) []entities.Corridor {
	var found []entities.Corridor
	for _, c := range d.corridors {
		if c.Touches(roomID) {
			found = append(found, c)
		}
	}
	return found
}

// Items returns every item, walking rooms in creation order
func (d *Dungeon) Items() []entities.Item {
	var items []entities.Item
	for _, r := range d.rooms {
		items = append(items, r.Items...)
	}
	return items
}

// intersectsAnotherRoom checks the candidate against every committed room
func (d *Dungeon) intersectsAnotherRoom(candidate entities.Room) bool {
	for _, r := range d.rooms {
		if candidate.Overlaps(r) {
			return true
		}
	}
	return false
}

func (d *Dungeon) addCorridor(from, to int) {
	d.corridors = append(d.corridors, entities.NewCorridor(len(d.corridors), from, to))
}
