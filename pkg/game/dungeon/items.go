package dungeon

import (
	"fmt"

	"dungeongen/pkg/game/entities"
)

const universalKeyDescription = "Universal Key"

// lootKinds are the non-key item kinds, in draw order
var lootKinds = []entities.ItemKind{entities.ItemWeapon, entities.ItemArmor, entities.ItemPotion}

// AddItems drops items into random rooms. With keys set and at least one door,
// one universal key is created per door slot; keys are not bound to a specific
// door. Then either RoomsNumber or RoomsNumber+1 loot items are added.
func (d *Dungeon) AddItems(keys bool) {
	roomsNumber := len(d.rooms)
	if roomsNumber == 0 {
		return
	}

	doorsNumber := d.DoorsNumber()
	if keys && doorsNumber > 0 {
		for i := 0; i < doorsNumber; i++ {
			item := entities.NewKey(d.nextItemID, 0, universalKeyDescription)
			room := &d.rooms[d.rng.Range(0, roomsNumber)]
			room.Items = append(room.Items, item)
			d.nextItemID++
		}
	}

	count := d.rng.Range(roomsNumber, roomsNumber+2)
	for i := 0; i < count; i++ {
		kind := lootKinds[d.rng.Range(0, len(lootKinds))]
		item := entities.NewItem(d.nextItemID, kind, fmt.Sprintf("Item: %d", d.nextItemID))
		room := &d.rooms[d.rng.Range(0, roomsNumber)]
		room.Items = append(room.Items, item)
		d.nextItemID++
	}
}
