// Package tui draws generated dungeons as text, with ANSI colours when the
// output is a terminal.
package tui

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"dungeongen/pkg/engine/terminal"
	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/renderer"
)

// Space kept free below the map for the legend and summary
const reservedRows = 6

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since we intentionally look up translation keys dynamically from markup.
var dynamicGet = gotext.Get

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out      io.Writer
	colour   bool
	clip     bool
	maxCols  int
	maxRows  int
	legend   bool
	styles   map[renderer.TextStyle]color.Style
	markupRe *regexp.Regexp

	// Set for interactive sessions only
	keys       KeySource
	regenerate renderer.Regenerator
}

// New creates a renderer writing to out. Colour and clipping to the terminal
// size are enabled only when out is a terminal.
func New(out io.Writer) *TUIRenderer {
	t := &TUIRenderer{out: out, legend: true}
	if f, ok := out.(*os.File); ok && terminal.IsTerminal(f) {
		t.colour = true
		t.clip = true
		t.maxCols, t.maxRows = terminal.GetSize(f)
	}
	return t
}

// NewPlain creates a renderer that writes bare glyphs with no colour or legend
func NewPlain(out io.Writer) *TUIRenderer {
	return &TUIRenderer{out: out}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.styles = map[renderer.TextStyle]color.Style{
		renderer.StyleFloor:    {color.FgGray},
		renderer.StyleWall:     {color.FgWhite, color.BgGray},
		renderer.StyleDoor:     {color.FgYellow, color.OpBold},
		renderer.StyleDoorOpen: {color.FgGreen},
		renderer.StyleChest:    {color.FgMagenta, color.OpBold},
		renderer.StyleKey:      {color.FgBlue, color.OpBold},
		renderer.StyleSubtle:   {color.FgGray, color.OpBold},
		renderer.StyleAction:   {color.FgMagenta},
		renderer.StyleDenied:   {color.FgRed, color.OpBold},
	}
	t.markupRe = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:]+)}`)
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	if !t.colour {
		return text
	}
	if s, ok := t.styles[style]; ok {
		return s.Sprint(text)
	}
	return text
}

// FormatText formats a message with the markup system:
// GT{KEY} translates, ACTION{text} and DENIED{text} apply styles.
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	ret := fmt.Sprintf(msg, args...)
	if t.markupRe == nil {
		return ret
	}

	for _, match := range t.markupRe.FindAllStringSubmatch(ret, -1) {
		function := match[1]
		operand := match[2]

		var val string
		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "ACTION":
			val = t.StyleText(operand, renderer.StyleAction)
		case "DENIED":
			val = t.StyleText(operand, renderer.StyleDenied)
		default:
			val = operand
		}

		ret = strings.Replace(ret, match[0], val, 1)
	}

	return ret
}

// Render writes the map, then the legend and summary. Interactive renderers
// keep redrawing until the quit key is pressed.
func (t *TUIRenderer) Render(scene renderer.Scene) error {
	if t.keys != nil {
		return t.loop(scene)
	}
	return t.draw(scene)
}

func (t *TUIRenderer) draw(scene renderer.Scene) error {
	if scene.Grid == nil {
		return fmt.Errorf("tui: scene has no grid")
	}

	var b strings.Builder
	t.writeMap(&b, scene.Grid)

	if t.legend {
		b.WriteString("\n")
		t.writeLegend(&b)
		for _, line := range renderer.SummaryLines(scene) {
			b.WriteString(t.StyleText(line, renderer.StyleSubtle))
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(t.out, b.String())
	return err
}

// viewport returns how many columns and rows of the grid fit on screen
func (t *TUIRenderer) viewport(g *world.Grid) (cols, rows int) {
	cols, rows = g.Width(), g.Height()
	if !t.clip {
		return cols, rows
	}
	if cols > t.maxCols {
		cols = t.maxCols
	}
	if avail := t.maxRows - reservedRows; rows > avail && avail > 0 {
		rows = avail
	}
	return cols, rows
}

func (t *TUIRenderer) writeMap(b *strings.Builder, g *world.Grid) {
	cols, rows := t.viewport(g)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			tile := g.At(x, y)
			b.WriteString(t.StyleText(string(tile.Rune()), renderer.TileStyle(tile)))
		}
		b.WriteString("\n")
	}
	if cols < g.Width() || rows < g.Height() {
		b.WriteString(t.StyleText(dynamicGet("MAP_CLIPPED", cols, rows, g.Width(), g.Height()), renderer.StyleDenied))
		b.WriteString("\n")
	}
}

func (t *TUIRenderer) writeLegend(b *strings.Builder) {
	parts := make([]string, 0, len(renderer.LegendTiles))
	for _, tile := range renderer.LegendTiles {
		glyph := t.StyleText(string(tile.Rune()), renderer.TileStyle(tile))
		parts = append(parts, glyph+" "+renderer.TileLabel(tile))
	}
	b.WriteString(strings.Join(parts, "  "))
	b.WriteString("\n")
}
