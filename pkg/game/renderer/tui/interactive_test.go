package tui

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"dungeongen/pkg/engine/input"
	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/renderer"
)

func scriptedKeys(actions ...input.Action) KeySource {
	return func() (input.Intent, error) {
		if len(actions) == 0 {
			return input.Intent{}, io.EOF
		}
		a := actions[0]
		actions = actions[1:]
		return input.Intent{Action: a}, nil
	}
}

func TestLoop_RegenerateThenQuit(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)
	r.Init()

	calls := 0
	r.regenerate = func() (renderer.Scene, error) {
		calls++
		g := world.NewGrid(2, 2)
		g.Fill(world.TileEmpty)
		return renderer.Scene{Grid: g, Seed: 10}, nil
	}
	r.keys = scriptedKeys(input.ActionRegenerate, input.ActionQuit)

	if err := r.Render(testScene()); err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if calls != 1 {
		t.Errorf("regenerate called %d times, want 1", calls)
	}
	if got := strings.Count(buf.String(), input.HelpLine()); got != 2 {
		t.Errorf("expected two frames, got %d", got)
	}
	if !strings.Contains(buf.String(), "..\n..\n") {
		t.Errorf("regenerated map not drawn:\n%s", buf.String())
	}
}

func TestLoop_ToggleLegend(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)
	r.Init()
	r.keys = scriptedKeys(input.ActionToggleLegend, input.ActionQuit)

	if err := r.Render(testScene()); err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if r.legend {
		t.Error("legend should be hidden after toggling")
	}
	if got := strings.Count(buf.String(), "Seed 9"); got != 1 {
		t.Errorf("summary drawn %d times, want only on the first frame", got)
	}
}

func TestLoop_RegenerateErrorKeepsScene(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)
	r.Init()
	r.regenerate = func() (renderer.Scene, error) {
		return renderer.Scene{}, errors.New("boom")
	}
	r.keys = scriptedKeys(input.ActionRegenerate)

	if err := r.Render(testScene()); err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if got := strings.Count(buf.String(), "Seed 9"); got != 2 {
		t.Errorf("original scene drawn %d times, want 2", got)
	}
}

func TestLoop_KeyError(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)
	r.Init()
	want := errors.New("read failed")
	r.keys = func() (input.Intent, error) { return input.Intent{}, want }

	if err := r.Render(testScene()); !errors.Is(err, want) {
		t.Errorf("Render error = %v, want %v", err, want)
	}
}
