// Package devtools provides developer tools for inspecting generated dungeons.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/dungeon"
	"dungeongen/pkg/game/dungeonmap"
	"dungeongen/pkg/game/entities"
)

// DumpMeta is the generation input echoed at the top of a dump
type DumpMeta struct {
	Seed int64
	Mode dungeon.Mode
}

// writeMapGrid writes the grid one row per line using the tile glyphs
func writeMapGrid(w io.Writer, g *world.Grid) {
	fmt.Fprint(w, g.String())
}

// WriteMapDump writes a full debug dump: metadata, legend, map, and detailed
// room/corridor/door/item lists. Format is human- and LLM-readable (sections,
// key: value, consistent structure).
func WriteMapDump(w io.Writer, meta DumpMeta, d *dungeon.Dungeon, m *dungeonmap.Map) error {
	if d == nil || m == nil {
		return fmt.Errorf("devtools: nothing to dump")
	}
	g := m.Grid()
	stats := m.Stats()

	// --- Metadata ---
	fmt.Fprintln(w, "=== DUNGEON DUMP DEBUG (layout, corridors, doors, items) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "seed: %d\n", meta.Seed)
	fmt.Fprintf(w, "mode: %s\n", meta.Mode)
	fmt.Fprintf(w, "grid_width: %d\n", g.Width())
	fmt.Fprintf(w, "grid_height: %d\n", g.Height())
	fmt.Fprintln(w, "coordinate_system: x,y (0-based, x=horizontal, y=vertical)")
	fmt.Fprintf(w, "rooms: %d\n", d.RoomsNumber())
	fmt.Fprintf(w, "corridors: %d\n", d.CorridorsNumber())
	fmt.Fprintf(w, "doors: %d\n", d.DoorsNumber())
	fmt.Fprintf(w, "items: %d\n", len(d.Items()))
	fmt.Fprintf(w, "items_not_drawn: %d\n", stats.DroppedItems)
	fmt.Fprintf(w, "corridors_skipped: %d\n", stats.SkippedCorridors)
	fmt.Fprintln(w, "")

	// --- Legend ---
	fmt.Fprintln(w, "--- Legend (tile symbols) ---")
	for _, t := range world.AllTiles() {
		if t == world.TileDummy {
			continue
		}
		fmt.Fprintf(w, "%c = %s  ", t.Rune(), t)
	}
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "")

	// --- Map ---
	fmt.Fprintln(w, "--- Map ---")
	writeMapGrid(w, g)
	fmt.Fprintln(w, "")

	// --- Tile counts ---
	fmt.Fprintln(w, "--- Tile counts ---")
	for _, t := range world.AllTiles() {
		fmt.Fprintf(w, "%s: %d\n", t, stats.Tiles[t])
	}
	fmt.Fprintln(w, "")

	// --- Rooms ---
	fmt.Fprintln(w, "Rooms:")
	for _, r := range d.Rooms() {
		fmt.Fprintf(w, "  id: %d x: %d y: %d width: %d height: %d corridors: %d items: %d\n",
			r.ID, r.X, r.Y, r.Width, r.Height, len(d.RoomCorridors(r.ID)), len(r.Items))
	}
	fmt.Fprintln(w, "")

	// --- Corridors and doors ---
	fmt.Fprintln(w, "Corridors:")
	for _, c := range d.Corridors() {
		fmt.Fprintf(w, "  id: %d from_room: %d to_room: %d from_door: %s to_door: %s\n",
			c.ID, c.FromRoomID, c.ToRoomID, doorString(c.FromRoomDoor), doorString(c.ToRoomDoor))
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Door tiles:")
	g.ForEachCell(func(x, y int, t world.Tile) {
		if t.IsDoor() {
			fmt.Fprintf(w, "  x: %d y: %d tile: %s\n", x, y, t)
		}
	})
	fmt.Fprintln(w, "")

	// --- Items ---
	fmt.Fprintln(w, "Items:")
	for _, r := range d.Rooms() {
		for _, item := range r.Items {
			fmt.Fprintf(w, "  id: %d kind: %s room: %d description: %q\n", item.ID, item.Kind, r.ID, item.Description)
		}
	}
	fmt.Fprintln(w, "")

	// --- Reachability ---
	fmt.Fprintln(w, "--- Reachability (from the first room) ---")
	if d.RoomsNumber() > 0 {
		first, _ := d.Room(0)
		reachable := d.Reachable(first.ID)
		var unreachable []int
		for _, r := range d.Rooms() {
			if !reachable.Has(r.ID) {
				unreachable = append(unreachable, r.ID)
			}
		}
		sort.Ints(unreachable)
		fmt.Fprintf(w, "reachable_rooms: %d\n", reachable.Size())
		fmt.Fprintf(w, "unreachable_rooms: %v\n", unreachable)
	}

	return nil
}

// doorString describes an optional door
func doorString(door *entities.Door) string {
	if door == nil {
		return "none"
	}
	return fmt.Sprintf("{id: %d locked: %v open: %v}", door.ID, door.Locked, door.Open)
}

// DumpMapToFile writes the dump to path and returns its absolute path
func DumpMapToFile(path string, meta DumpMeta, d *dungeon.Dungeon, m *dungeonmap.Map) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteMapDump(f, meta, d, m); err != nil {
		return "", err
	}
	return absPath, nil
}
