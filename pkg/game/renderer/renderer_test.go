package renderer

import (
	"reflect"
	"testing"

	"github.com/leonelquinteros/gotext"

	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/dungeonmap"
)

func init() {
	gotext.Configure("../../../locales", "en_GB", "default")
}

func TestSummaryLines(t *testing.T) {
	s := Scene{
		Seed:      42,
		Mode:      "Tree",
		Rooms:     3,
		Corridors: 2,
		Doors:     1,
		Items:     4,
		Connected: true,
	}

	want := []string{
		"Seed 42, Tree layout",
		"3 rooms, 2 corridors, 1 doors, 4 items",
	}
	if got := SummaryLines(s); !reflect.DeepEqual(got, want) {
		t.Errorf("SummaryLines() = %q, want %q", got, want)
	}
}

func TestSummaryLines_Problems(t *testing.T) {
	s := Scene{Stats: dungeonmap.Stats{DroppedItems: 2}}

	got := SummaryLines(s)
	if len(got) != 4 {
		t.Fatalf("SummaryLines() = %q, want 4 lines", got)
	}
	if got[3] != "2 items found no free cell and are not drawn" {
		t.Errorf("dropped items line = %q", got[3])
	}
}

func TestTileLabel(t *testing.T) {
	if got := TileLabel(world.TileClosedDoor); got != "closed door" {
		t.Errorf("TileLabel(closed door) = %q", got)
	}
}
