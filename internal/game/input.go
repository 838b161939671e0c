package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/crownquest/internal/battle"
)

// step is one arrow key press on the overworld.
type step struct {
	dx, dy int
}

// frameInput collects the key events that arrived since the previous frame.
// A terminal only reports presses, so a key counts as down for exactly the
// frame it arrived in.
type frameInput struct {
	keys  battle.Keys
	steps []step
	runes []rune
	quit  bool
}

// addKey records one key event.
func (in *frameInput) addKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		in.quit = true

	case tcell.KeyUp:
		in.keys.Up = true
		in.steps = append(in.steps, step{0, -1})
	case tcell.KeyDown:
		in.keys.Down = true
		in.steps = append(in.steps, step{0, 1})
	case tcell.KeyLeft:
		in.steps = append(in.steps, step{-1, 0})
	case tcell.KeyRight:
		in.steps = append(in.steps, step{1, 0})

	case tcell.KeyEnter:
		in.keys.Cancel = true

	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			in.keys.Confirm = true
			return
		}
		in.runes = append(in.runes, ev.Rune())
	}
}
