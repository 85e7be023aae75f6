package devtools

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dungeongen/pkg/engine/random"
	"dungeongen/pkg/game/dungeon"
	"dungeongen/pkg/game/dungeonmap"
	"dungeongen/pkg/game/renderer"
)

func buildDungeon(t *testing.T) (*dungeon.Dungeon, *dungeonmap.Map) {
	t.Helper()
	d, err := dungeon.New(random.New(3)).Generate(6, dungeon.SeparateRooms, 50, 50, 8, 8)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if err := d.AddDoors(); err != nil {
		t.Fatalf("AddDoors error: %v", err)
	}
	d.AddItems(true)

	m := dungeonmap.New(d.Width(), d.Height(), random.New(3))
	m.CreateMap(d)
	return d, m
}

func TestWriteMapDump(t *testing.T) {
	d, m := buildDungeon(t)

	var buf bytes.Buffer
	if err := WriteMapDump(&buf, DumpMeta{Seed: 3, Mode: dungeon.SeparateRooms}, d, m); err != nil {
		t.Fatalf("WriteMapDump error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"seed: 3",
		"mode: Separate Rooms",
		"--- Map ---",
		m.Grid().String(),
		"Rooms:",
		"Corridors:",
		"unreachable_rooms: []",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q", want)
		}
	}
	if got := strings.Count(out, "  id: "); got < d.RoomsNumber()+d.CorridorsNumber() {
		t.Errorf("dump lists %d records, want at least %d", got, d.RoomsNumber()+d.CorridorsNumber())
	}
}

func TestWriteMapDump_Nil(t *testing.T) {
	if err := WriteMapDump(&bytes.Buffer{}, DumpMeta{}, nil, nil); err == nil {
		t.Error("expected an error without a dungeon")
	}
}

func TestDumpMapToFile(t *testing.T) {
	d, m := buildDungeon(t)
	path := filepath.Join(t.TempDir(), "map.txt")

	abs, err := DumpMapToFile(path, DumpMeta{Seed: 3, Mode: dungeon.SeparateRooms}, d, m)
	if err != nil {
		t.Fatalf("DumpMapToFile error: %v", err)
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		t.Fatalf("reading dump: %v", err)
	}
	if !strings.HasPrefix(string(data), "=== DUNGEON DUMP DEBUG") {
		t.Errorf("unexpected dump header: %.40q", data)
	}
}

func TestRenderHTML(t *testing.T) {
	d, m := buildDungeon(t)
	scene := renderer.NewScene(3, dungeon.SeparateRooms, d, m)

	page := RenderHTML(scene)
	if got := strings.Count(page, `<div class="map-row">`); got != m.Height() {
		t.Errorf("HTML has %d map rows, want %d", got, m.Height())
	}
	if !strings.Contains(page, `<span class="wall">#</span>`) {
		t.Error("HTML has no wall tiles")
	}

	path := filepath.Join(t.TempDir(), "shot.html")
	if err := SaveScreenshotHTML(path, scene); err != nil {
		t.Fatalf("SaveScreenshotHTML error: %v", err)
	}
}
