package renderer

import (
	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/dungeonmap"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleFloor
	StyleWall
	StyleDoor
	StyleDoorOpen
	StyleChest
	StyleKey
	StyleSubtle
	StyleAction
	StyleDenied
)

// Scene is everything a backend needs to draw one generated dungeon
type Scene struct {
	Grid *world.Grid

	Seed int64
	Mode string

	Rooms     int
	Corridors int
	Doors     int
	Items     int
	Connected bool

	Stats dungeonmap.Stats
}

// Regenerator builds a new scene on request, e.g. when the viewer asks for a new seed
type Regenerator func() (Scene, error)

// Renderer defines the interface for output backends.
// Implementations include TUI (terminal, with or without colour) and Ebiten.
type Renderer interface {
	// Init initializes the renderer (colors, window, etc.)
	Init()

	// Render draws the scene. Windowed backends block until closed.
	Render(scene Scene) error

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// FormatText formats a message with the renderer's markup system
	FormatText(msg string, args ...any) string
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Render draws a scene with the current renderer
func Render(scene Scene) error {
	if Current != nil {
		return Current.Render(scene)
	}
	return nil
}

// StyleText applies a style to text
func StyleText(text string, style TextStyle) string {
	if Current != nil {
		return Current.StyleText(text, style)
	}
	return text
}

// FormatText formats a message with markup
func FormatText(msg string, args ...any) string {
	if Current != nil {
		return Current.FormatText(msg, args...)
	}
	return msg
}
