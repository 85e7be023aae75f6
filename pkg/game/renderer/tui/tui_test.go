package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/leonelquinteros/gotext"

	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/renderer"
)

func init() {
	gotext.Configure("../../../../locales", "en_GB", "default")
}

func testScene() renderer.Scene {
	g := world.NewGrid(4, 3)
	g.Fill(world.TileWall)
	g.Set(1, 1, world.TileEmpty)
	g.Set(2, 1, world.TileClosedDoor)
	return renderer.Scene{Grid: g, Seed: 9, Mode: "Grid", Rooms: 2, Corridors: 1, Connected: true}
}

func TestRender_Plain(t *testing.T) {
	var buf bytes.Buffer
	r := NewPlain(&buf)
	r.Init()

	scene := testScene()
	if err := r.Render(scene); err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if buf.String() != scene.Grid.String() {
		t.Errorf("plain output:\n%q\nwant:\n%q", buf.String(), scene.Grid.String())
	}
}

func TestRender_WithLegend(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)
	r.Init()

	if err := r.Render(testScene()); err != nil {
		t.Fatalf("Render error: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "####\n#.+#\n####\n") {
		t.Errorf("map missing from output:\n%s", out)
	}
	for _, want := range []string{"+ closed door", "Seed 9, Grid layout", "2 rooms, 1 corridors"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("colour codes written to a non-terminal")
	}
}

func TestRender_ClippedMapIsNoted(t *testing.T) {
	var buf bytes.Buffer
	r := &TUIRenderer{out: &buf, clip: true, maxCols: 3, maxRows: 8}
	r.Init()

	if err := r.Render(testScene()); err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "###\n#.+\n") {
		t.Errorf("map not clipped to 3 columns:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "Showing 3x2 of a 4x3 map") {
		t.Errorf("clip note missing:\n%s", buf.String())
	}
}

func TestRender_NoGrid(t *testing.T) {
	r := New(&bytes.Buffer{})
	r.Init()
	if err := r.Render(renderer.Scene{}); err == nil {
		t.Error("expected an error for a scene without a grid")
	}
}

func TestFormatText(t *testing.T) {
	r := New(&bytes.Buffer{})
	r.Init()

	got := r.FormatText("GT{TILE_WALL} and ACTION{press} %d", 3)
	if got != "wall and press 3" {
		t.Errorf("FormatText = %q", got)
	}
}

func TestViewport_Clips(t *testing.T) {
	r := &TUIRenderer{clip: true, maxCols: 10, maxRows: 10}
	cols, rows := r.viewport(world.NewGrid(30, 30))
	if cols != 10 || rows != 10-reservedRows {
		t.Errorf("viewport = %dx%d, want 10x%d", cols, rows, 10-reservedRows)
	}
}
