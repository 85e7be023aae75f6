package dungeon

import (
	"fmt"
	"strings"
)

// Mode selects how rooms are placed and connected
type Mode int

const (
	// Basement scatters rooms at random and joins each one to a random other room.
	// Connectivity is not guaranteed.
	Basement Mode = iota
	// SeparateRooms scatters rooms with extra spacing and joins them in creation order.
	SeparateRooms
	// Grid aligns rooms to a coarse grid and joins them in creation order.
	Grid
	// Tree partitions the area into one cell per room and joins neighbouring
	// partitions, so every room is reachable.
	Tree
)

// AllModes returns every mode in declaration order
func AllModes() []Mode {
	return []Mode{Basement, SeparateRooms, Grid, Tree}
}

// String returns the name of the mode
func (m Mode) String() string {
	if p, ok := placers[m]; ok {
		return p.Name()
	}
	return "Unknown"
}

// Valid reports whether m names a known mode
func (m Mode) Valid() bool {
	_, ok := placers[m]
	return ok
}

// ParseMode converts a mode name, as typed on a command line, to a Mode
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "basement":
		return Basement, nil
	case "separate", "separate rooms", "separate-rooms", "separaterooms", "separate_rooms":
		return SeparateRooms, nil
	case "grid":
		return Grid, nil
	case "tree", "bsp":
		return Tree, nil
	default:
		return Basement, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// placement carries the Generate arguments to a placer
type placement struct {
	maxRooms      int
	width         int
	height        int
	maxRoomWidth  int
	maxRoomHeight int
}

// placer is a room placement and connection strategy
type placer interface {
	Name() string

	// placeRooms appends rooms to the dungeon
	placeRooms(d *Dungeon, p placement)

	// connect adds corridors between the rooms starting at index first
	connect(d *Dungeon, first int)
}

// Available placers
var placers = map[Mode]placer{
	Basement:      &scatterPlacer{name: "Basement", connector: connectRandomly},
	SeparateRooms: &scatterPlacer{name: "Separate Rooms", spacing: spaceBetweenRooms, connector: connectInOrder},
	Grid:          &gridPlacer{},
	Tree:          &treePlacer{},
}
