package world

import "testing"

func TestNewGrid_Dimensions(t *testing.T) {
	g := NewGrid(5, 3)
	if g.Width() != 5 || g.Height() != 3 {
		t.Fatalf("NewGrid(5, 3) = %dx%d, want 5x3", g.Width(), g.Height())
	}
	if n := g.Count(TileEmpty); n != 15 {
		t.Errorf("Count(TileEmpty) = %d, want 15", n)
	}
}

func TestNewGrid_NonPositivePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewGrid(0, 3) did not panic")
		}
	}()
	NewGrid(0, 3)
}

func TestGrid_NonSquareIndexing(t *testing.T) {
	// x ranges over the width, y over the height; a non-square grid exercises both.
	g := NewGrid(4, 2)
	if !g.Set(3, 1, TileKey) {
		t.Fatal("Set(3, 1) = false, want true")
	}
	if got, ok := g.Get(3, 1); !ok || got != TileKey {
		t.Errorf("Get(3, 1) = %v, %v; want Key, true", got, ok)
	}
	if g.Set(1, 3, TileKey) {
		t.Error("Set(1, 3) on a 4x2 grid = true, want false")
	}
}

func TestGrid_OutOfBoundsIsWall(t *testing.T) {
	g := NewGrid(2, 2)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		if _, ok := g.Get(p[0], p[1]); ok {
			t.Errorf("Get(%d, %d) ok = true, want false", p[0], p[1])
		}
		if g.At(p[0], p[1]) != TileWall {
			t.Errorf("At(%d, %d) = %v, want Wall", p[0], p[1], g.At(p[0], p[1]))
		}
	}
}

func TestGrid_CloneAndEqual(t *testing.T) {
	g := NewGrid(3, 3)
	g.Fill(TileWall)
	g.Set(1, 1, TileChest)
	c := g.Clone()
	if !g.Equal(c) {
		t.Fatal("clone is not Equal to original")
	}
	c.Set(0, 0, TileEmpty)
	if g.Equal(c) {
		t.Error("modifying the clone changed equality; clone shares storage")
	}
	if g.At(0, 0) != TileWall {
		t.Error("original changed after modifying the clone")
	}
}

func TestGrid_String(t *testing.T) {
	g := NewGrid(3, 2)
	g.Fill(TileWall)
	g.Set(1, 0, TileOpenDoor)
	g.Set(2, 1, TileEmpty)
	want := "#'#\n##.\n"
	if got := g.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestGrid_ValidateReportsDummy(t *testing.T) {
	g := NewGrid(2, 2)
	if msg := g.Validate(); msg != "" {
		t.Fatalf("Validate() on clean grid = %q, want empty", msg)
	}
	g.Set(1, 0, TileDummy)
	if msg := g.Validate(); msg == "" {
		t.Error("Validate() with a Dummy tile = empty, want error")
	}
}

func TestDirection_Delta(t *testing.T) {
	want := map[Direction]Offset{
		North: {0, -1},
		East:  {1, 0},
		South: {0, 1},
		West:  {-1, 0},
	}
	for _, d := range AllDirections() {
		dx, dy := d.Delta()
		if (Offset{dx, dy}) != want[d] {
			t.Errorf("Direction(%d).Delta() = (%d,%d), want %v", d, dx, dy, want[d])
		}
	}
	if dx, dy := Direction(7).Delta(); dx != 0 || dy != 0 {
		t.Errorf("unknown direction moved by (%d,%d)", dx, dy)
	}
	if len(Neighbourhood()) != 8 {
		t.Errorf("len(Neighbourhood()) = %d, want 8", len(Neighbourhood()))
	}
}

func TestTile_Predicates(t *testing.T) {
	if !TileDummy.IsWallLike() || !TileWall.IsWallLike() || TileEmpty.IsWallLike() {
		t.Error("IsWallLike mismatch")
	}
	if !TileOpenDoor.IsDoor() || !TileClosedDoor.IsDoor() || TileKey.IsDoor() {
		t.Error("IsDoor mismatch")
	}
	if !TileKey.IsItem() || !TileChest.IsItem() || TileWall.IsItem() {
		t.Error("IsItem mismatch")
	}
	if TileClosedDoor != 3 || TileKey != 6 {
		t.Errorf("tile codes shifted: ClosedDoor=%d Key=%d", TileClosedDoor, TileKey)
	}
}
