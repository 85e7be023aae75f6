package tui

import (
	"errors"
	"io"
	"log"
	"os"

	"dungeongen/pkg/engine/input"
	"dungeongen/pkg/game/renderer"
)

// ANSI sequence moving the cursor home and clearing the screen
const clearScreen = "\x1b[H\x1b[2J"

// KeySource blocks until the next key press and returns what it asks for.
type KeySource func() (input.Intent, error)

// NewInteractive creates a terminal renderer that reads keys from in after
// each frame. R asks regenerate for a new scene, L toggles the legend and
// Q or Esc ends the session.
func NewInteractive(out *os.File, in *os.File, regenerate renderer.Regenerator) *TUIRenderer {
	t := New(out)
	t.regenerate = regenerate
	t.keys = func() (input.Intent, error) {
		return input.ReadIntent(in)
	}
	return t
}

func (t *TUIRenderer) loop(scene renderer.Scene) error {
	for {
		if t.colour {
			if _, err := io.WriteString(t.out, clearScreen); err != nil {
				return err
			}
		}
		if err := t.draw(scene); err != nil {
			return err
		}
		if _, err := io.WriteString(t.out, t.StyleText(input.HelpLine(), renderer.StyleAction)+"\n"); err != nil {
			return err
		}

		intent, err := t.keys()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch intent.Action {
		case input.ActionQuit:
			return nil
		case input.ActionToggleLegend:
			t.legend = !t.legend
		case input.ActionRegenerate:
			if t.regenerate == nil {
				continue
			}
			next, err := t.regenerate()
			if err != nil {
				log.Printf("Regenerating failed: %v", err)
				continue
			}
			scene = next
		}
	}
}
