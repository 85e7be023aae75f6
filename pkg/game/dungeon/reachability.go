package dungeon

import (
	"github.com/zyedidia/generic/mapset"
)

// Reachable returns the ids of every room reachable from the given room,
// walking corridors in both directions. The start room is included if it exists.
func (d *Dungeon) Reachable(fromRoomID int) mapset.Set[int] {
	visited := mapset.New[int]()
	if _, ok := d.RoomByID(fromRoomID); !ok {
		return visited
	}

	queue := []int{fromRoomID}
	visited.Put(fromRoomID)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, c := range d.RoomCorridors(current) {
			next := c.ToRoomID
			if next == current {
				next = c.FromRoomID
			}
			if !visited.Has(next) {
				visited.Put(next)
				queue = append(queue, next)
			}
		}
	}

	return visited
}

// IsConnected reports whether every room can reach every other room
func (d *Dungeon) IsConnected() bool {
	if len(d.rooms) == 0 {
		return true
	}
	return d.Reachable(d.rooms[0].ID).Size() == len(d.rooms)
}
