package entities

// Corridor joins two rooms by id. Either end may carry a door.
type Corridor struct {
	ID           int
	FromRoomID   int
	ToRoomID     int
	FromRoomDoor *Door
	ToRoomDoor   *Door
}

// NewCorridor creates a corridor without doors
func NewCorridor(id, from, to int) Corridor {
	return Corridor{ID: id, FromRoomID: from, ToRoomID: to}
}

// Touches reports whether either end of the corridor is the given room
func (c Corridor) Touches(roomID int) bool {
	return c.FromRoomID == roomID || c.ToRoomID == roomID
}

// DoorCount returns how many of the two door slots are filled
func (c Corridor) DoorCount() int {
	n := 0
	if c.FromRoomDoor != nil {
		n++
	}
	if c.ToRoomDoor != nil {
		n++
	}
	return n
}
