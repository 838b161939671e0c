// Package game provides the main game loop and state management.
package game

import "github.com/samdwyer/crownquest/internal/progress"

// State represents the current game state.
type State int

const (
	// StateExplore is the overworld where the party walks toward the next
	// random encounter.
	StateExplore State = iota
	// StateBattle hands every frame to the active battle session.
	StateBattle
)

// String returns a human-readable state name. The names match the values
// stored in a save's LastState.
func (s State) String() string {
	switch s {
	case StateExplore:
		return progress.StateExplore
	case StateBattle:
		return progress.StateBattle
	default:
		return "unknown"
	}
}
