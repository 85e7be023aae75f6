// Package renderer defines the output backends for generated dungeons and the
// labels and styles they share.
package renderer

import (
	"github.com/leonelquinteros/gotext"

	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/dungeon"
	"dungeongen/pkg/game/dungeonmap"
)

// formatGet looks up a translated format string and applies args. Calling it
// through a variable keeps vet's printf check off the constant message keys.
var formatGet = gotext.Get

// LegendTiles are the tiles that can appear in a finished map, in legend order
var LegendTiles = []world.Tile{
	world.TileEmpty,
	world.TileWall,
	world.TileClosedDoor,
	world.TileOpenDoor,
	world.TileChest,
	world.TileKey,
}

// NewScene collects what the backends draw from a layout and its rasterized
// map. The grid is copied so a later CreateMap does not change the scene.
func NewScene(seed int64, mode dungeon.Mode, d *dungeon.Dungeon, m *dungeonmap.Map) Scene {
	return Scene{
		Grid:      m.Grid().Clone(),
		Seed:      seed,
		Mode:      mode.String(),
		Rooms:     d.RoomsNumber(),
		Corridors: d.CorridorsNumber(),
		Doors:     d.DoorsNumber(),
		Items:     len(d.Items()),
		Connected: d.IsConnected(),
		Stats:     m.Stats(),
	}
}

// TileStyle returns the text style a tile is drawn with
func TileStyle(t world.Tile) TextStyle {
	switch t {
	case world.TileEmpty:
		return StyleFloor
	case world.TileWall:
		return StyleWall
	case world.TileClosedDoor:
		return StyleDoor
	case world.TileOpenDoor:
		return StyleDoorOpen
	case world.TileChest:
		return StyleChest
	case world.TileKey:
		return StyleKey
	default:
		return StyleDenied
	}
}

// TileLabel returns the translated legend label for a tile.
// Uses gotext.Get with constant keys to satisfy vet.
func TileLabel(t world.Tile) string {
	switch t {
	case world.TileEmpty:
		return gotext.Get("TILE_FLOOR")
	case world.TileWall:
		return gotext.Get("TILE_WALL")
	case world.TileClosedDoor:
		return gotext.Get("TILE_CLOSED_DOOR")
	case world.TileOpenDoor:
		return gotext.Get("TILE_OPEN_DOOR")
	case world.TileChest:
		return gotext.Get("TILE_CHEST")
	case world.TileKey:
		return gotext.Get("TILE_KEY")
	default:
		return gotext.Get("TILE_UNKNOWN")
	}
}

// SummaryLines returns the translated status lines describing a scene
func SummaryLines(s Scene) []string {
	lines := []string{
		formatGet("SUMMARY_SEED_MODE", s.Seed, s.Mode),
		formatGet("SUMMARY_COUNTS", s.Rooms, s.Corridors, s.Doors, s.Items),
	}
	if !s.Connected {
		lines = append(lines, gotext.Get("SUMMARY_DISCONNECTED"))
	}
	if s.Stats.DroppedItems > 0 {
		lines = append(lines, formatGet("SUMMARY_DROPPED_ITEMS", s.Stats.DroppedItems))
	}
	return lines
}
