// Package world provides generic 2D tile-grid primitives.
// These are engine-level constructs with no knowledge of how a layout was produced.
package world

// Tile is the small integer code stored in each grid cell
type Tile uint8

// Tile codes. TileDummy is transient and only exists while walls are being pruned.
const (
	TileEmpty Tile = iota
	TileWall
	TileDummy
	TileClosedDoor
	TileOpenDoor
	TileChest
	TileKey
)

// AllTiles lists every tile code in code order
func AllTiles() []Tile {
	return []Tile{TileEmpty, TileWall, TileDummy, TileClosedDoor, TileOpenDoor, TileChest, TileKey}
}

// String returns the name of the tile
func (t Tile) String() string {
	switch t {
	case TileEmpty:
		return "Empty"
	case TileWall:
		return "Wall"
	case TileDummy:
		return "Dummy"
	case TileClosedDoor:
		return "ClosedDoor"
	case TileOpenDoor:
		return "OpenDoor"
	case TileChest:
		return "Chest"
	case TileKey:
		return "Key"
	default:
		return "Unknown"
	}
}

// Rune returns the single-character ASCII glyph for the tile
func (t Tile) Rune() rune {
	switch t {
	case TileEmpty:
		return '.'
	case TileWall:
		return '#'
	case TileDummy:
		return '~'
	case TileClosedDoor:
		return '+'
	case TileOpenDoor:
		return '\''
	case TileChest:
		return '$'
	case TileKey:
		return 'k'
	default:
		return '?'
	}
}

// IsWallLike reports whether the tile blocks like a wall (Wall or Dummy)
func (t Tile) IsWallLike() bool {
	return t == TileWall || t == TileDummy
}

// IsDoor reports whether the tile is an open or closed door
func (t Tile) IsDoor() bool {
	return t == TileClosedDoor || t == TileOpenDoor
}

// IsItem reports whether the tile marks a dropped item
func (t Tile) IsItem() bool {
	return t == TileChest || t == TileKey
}
