package ebiten

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	"dungeongen/pkg/engine/input"
	"dungeongen/pkg/game/renderer"
)

// EbitenRenderer shows a scene in a window. R asks the regenerator for a new
// scene, L toggles the legend, Esc closes the window.
type EbitenRenderer struct {
	tileSize int

	scene      renderer.Scene
	regenerate renderer.Regenerator
	showLegend bool

	windowOpenedLogged bool
}

// New creates a viewer drawing tileSize pixel squares. regenerate may be nil.
func New(tileSize int, regenerate renderer.Regenerator) *EbitenRenderer {
	return &EbitenRenderer{
		tileSize:   tileSize,
		regenerate: regenerate,
		showLegend: true,
	}
}

// Init sets up the window
func (e *EbitenRenderer) Init() {
	ebiten.SetWindowSize(defaultWindowWidth, defaultWindowHeight)
	ebiten.SetWindowTitle(gotext.Get("VIEWER_TITLE"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
}

// Render opens the window and blocks until it is closed
func (e *EbitenRenderer) Render(scene renderer.Scene) error {
	if scene.Grid == nil {
		return fmt.Errorf("ebiten: scene has no grid")
	}
	e.scene = scene
	if err := ebiten.RunGame(e); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// StyleText returns text unchanged; the window draws colour per tile
func (e *EbitenRenderer) StyleText(text string, style renderer.TextStyle) string {
	return text
}

// FormatText formats a message
func (e *EbitenRenderer) FormatText(msg string, args ...any) string {
	return fmt.Sprintf(msg, args...)
}

// Update handles input (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Viewer window opened (%dx%d)", w, h)
	}

	for _, key := range inpututil.AppendJustPressedKeys(nil) {
		raw := input.RawInput{Device: input.DeviceKeyboard, Code: strings.ToLower(key.String()), Timestamp: time.Now()}
		switch input.MapToIntent(input.NewDebouncedInput(raw)).Action {
		case input.ActionQuit:
			return ebiten.Termination
		case input.ActionToggleLegend:
			e.showLegend = !e.showLegend
		case input.ActionRegenerate:
			e.regenerateScene()
		}
	}

	return nil
}

func (e *EbitenRenderer) regenerateScene() {
	if e.regenerate == nil {
		return
	}
	scene, err := e.regenerate()
	if err != nil {
		log.Printf("Regenerating failed: %v", err)
		return
	}
	e.scene = scene
}

// Draw renders every tile as a filled square, then the status panel (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	g := e.scene.Grid
	if g == nil {
		return
	}

	size := float32(e.tileSize)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			vector.DrawFilledRect(screen, float32(x)*size, float32(y)*size, size, size, tileColor(g.At(x, y)), false)
		}
	}

	if e.showLegend {
		e.drawPanel(screen)
	}
}

func (e *EbitenRenderer) drawPanel(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	top := h - panelHeight
	vector.DrawFilledRect(screen, 0, float32(top), float32(w), panelHeight, colorPanel, false)

	lines := renderer.SummaryLines(e.scene)
	lines = append(lines, input.HelpLine())
	ebitenutil.DebugPrintAt(screen, strings.Join(lines, "\n"), 8, top+4)
}

// Layout returns the logical screen size: the map plus the panel (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	g := e.scene.Grid
	if g == nil {
		return outsideWidth, outsideHeight
	}
	return g.Width() * e.tileSize, g.Height()*e.tileSize + panelHeight
}
