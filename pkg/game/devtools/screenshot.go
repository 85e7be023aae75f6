package devtools

import (
	"fmt"
	"html"
	"os"
	"strings"

	"github.com/leonelquinteros/gotext"

	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/renderer"
)

// tileClass returns the CSS class for a tile
func tileClass(t world.Tile) string {
	switch t {
	case world.TileEmpty:
		return "floor"
	case world.TileWall:
		return "wall"
	case world.TileClosedDoor:
		return "door-closed"
	case world.TileOpenDoor:
		return "door-open"
	case world.TileChest:
		return "chest"
	case world.TileKey:
		return "key"
	default:
		return "unknown"
	}
}

// RenderHTML returns the scene as a standalone HTML page
func RenderHTML(scene renderer.Scene) string {
	var b strings.Builder

	b.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>` + html.EscapeString(gotext.Get("DUMP_TITLE")) + `</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header { color: #bb86fc; font-size: 18px; margin-bottom: 10px; }
        .summary { color: #888; margin: 5px 0; }
        .map-container {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 20px 0;
        }
        .map-row { white-space: pre; line-height: 1.2; font-size: 16px; }
        .floor { color: #555; }
        .wall { color: #aab; }
        .door-closed { color: #ffff00; font-weight: bold; }
        .door-open { color: #00aa00; }
        .chest { color: #bb86fc; font-weight: bold; }
        .key { color: #4488ff; font-weight: bold; }
        .unknown { color: #ff4444; }
        .legend { margin-top: 10px; color: #888; }
    </style>
</head>
<body>
`)

	b.WriteString(fmt.Sprintf(`    <div class="header">%s</div>`+"\n", html.EscapeString(gotext.Get("DUMP_TITLE"))))
	for _, line := range renderer.SummaryLines(scene) {
		b.WriteString(fmt.Sprintf(`    <div class="summary">%s</div>`+"\n", html.EscapeString(line)))
	}

	b.WriteString(`    <div class="map-container">` + "\n")
	if g := scene.Grid; g != nil {
		for y := 0; y < g.Height(); y++ {
			b.WriteString(`        <div class="map-row">`)
			for x := 0; x < g.Width(); x++ {
				t := g.At(x, y)
				b.WriteString(fmt.Sprintf(`<span class="%s">%s</span>`, tileClass(t), html.EscapeString(string(t.Rune()))))
			}
			b.WriteString("</div>\n")
		}
	}
	b.WriteString(`    </div>` + "\n")

	b.WriteString(`    <div class="legend">`)
	for i, t := range renderer.LegendTiles {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(fmt.Sprintf(`<span class="%s">%s</span> %s`, tileClass(t),
			html.EscapeString(string(t.Rune())), html.EscapeString(renderer.TileLabel(t))))
	}
	b.WriteString(`</div>` + "\n")

	b.WriteString(`</body>
</html>
`)

	return b.String()
}

// SaveScreenshotHTML writes the scene as an HTML file
func SaveScreenshotHTML(path string, scene renderer.Scene) error {
	return os.WriteFile(path, []byte(RenderHTML(scene)), 0644)
}
