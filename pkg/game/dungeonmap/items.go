package dungeonmap

import "dungeongen/pkg/engine/world"

// itemPlacementAttempts is how many cells are tried per item before it is dropped
const itemPlacementAttempts = 10

// PlaceItems marks a random free cell of each room for every item it holds:
// TileKey for keys, TileChest for anything else. A cell already holding an
// item is not reused; an item that finds no cell stays in its room but is
// not drawn.
func (m *Map) PlaceItems(layout Layout) {
	for _, room := range layout.Rooms() {
		for _, item := range room.Items {
			placed := false
			for attempt := 0; attempt < itemPlacementAttempts; attempt++ {
				x := m.rng.Range(room.X, room.Right())
				y := m.rng.Range(room.Y, room.Bottom())

				if m.grid.At(x, y).IsItem() {
					continue
				}

				tile := world.TileChest
				if item.IsKey() {
					tile = world.TileKey
				}
				m.grid.Set(x, y, tile)
				placed = true
				break
			}
			if !placed {
				m.droppedItems++
			}
		}
	}
}
