// Package ebiten provides an Ebiten-based 2D window viewer for generated dungeons.
package ebiten

import (
	"image/color"

	"dungeongen/pkg/engine/world"
)

// Color palette
var (
	colorBackground = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorFloor      = color.RGBA{100, 100, 120, 255} // Medium gray
	colorWall       = color.RGBA{180, 180, 200, 255} // Light gray-blue
	colorDoorClosed = color.RGBA{255, 255, 0, 255}   // Bright yellow
	colorDoorOpen   = color.RGBA{0, 220, 0, 255}     // Bright green
	colorChest      = color.RGBA{220, 170, 255, 255} // Bright purple
	colorKey        = color.RGBA{100, 150, 255, 255} // Bright blue
	colorUnknown    = color.RGBA{255, 80, 80, 255}   // Bright red
	colorPanel      = color.RGBA{30, 30, 50, 220}    // Semi-transparent dark
)

// Window defaults
const (
	defaultWindowWidth  = 800
	defaultWindowHeight = 800
	panelHeight         = 88
)

// tileColor returns the fill colour of a tile
func tileColor(t world.Tile) color.RGBA {
	switch t {
	case world.TileEmpty:
		return colorFloor
	case world.TileWall:
		return colorWall
	case world.TileClosedDoor:
		return colorDoorClosed
	case world.TileOpenDoor:
		return colorDoorOpen
	case world.TileChest:
		return colorChest
	case world.TileKey:
		return colorKey
	default:
		return colorUnknown
	}
}
