// Package progress holds the persistent player state that battles mutate in
// place, and the save store that writes it to disk between sessions.
package progress

import (
	"fmt"

	"github.com/samdwyer/crownquest/internal/entity"
	"github.com/samdwyer/crownquest/internal/gamedata"
)

// Values written to GameData.LastState.
const (
	StateExplore = "explore"
	StateBattle  = "battle"
)

// GameData is everything a save remembers about the player.
type GameData struct {
	Stats     *entity.Stats     `json:"stats"`
	Inventory *entity.Inventory `json:"inventory"`

	Zone          string `json:"zone"`          // Zone the party is walking in
	BattleType    string `json:"battleType"`    // Boss enemy ID for a scripted battle, "" otherwise
	LastState     string `json:"lastState"`     // Game state that was active before the current one
	BattleCounter int    `json:"battleCounter"` // Steps until the next random encounter

	CrownQuest bool `json:"crownQuest"` // Set once the evil wizard has been defeated
}

// NewGame builds a fresh save from the new-game template. Every inventory
// entry must name a known item.
func NewGame(def gamedata.NewGameDef, items *gamedata.ItemRegistry) (*GameData, error) {
	inv := entity.NewInventory()
	for _, stack := range def.Inventory {
		item := items.GetByName(stack.Name)
		if item == nil {
			return nil, fmt.Errorf("new game: unknown item %q", stack.Name)
		}
		inv.Add(*item, stack.Quantity)
	}
	inv.EquippedWeapon = def.EquippedWeapon
	inv.EquippedArmor = append([]string(nil), def.EquippedArmor...)

	return &GameData{
		Stats: &entity.Stats{
			Health:                entity.Meter{Current: def.Stats.Health.Current, Maximum: def.Stats.Health.Maximum},
			Magic:                 entity.Meter{Current: def.Stats.Magic.Current, Maximum: def.Stats.Magic.Maximum},
			Level:                 def.Stats.Level,
			ExperienceToNextLevel: def.Stats.ExperienceToNextLevel,
		},
		Inventory:     inv,
		Zone:          def.Zone,
		LastState:     StateExplore,
		BattleCounter: def.BattleCounter,
	}, nil
}

// QuestFlag sets the flag for the named quest. Unknown quests are ignored.
func (g *GameData) QuestFlag(quest string) bool {
	switch quest {
	case "crown":
		g.CrownQuest = true
		return true
	}
	return false
}

// Revive restores a defeated player to full health and magic.
func (g *GameData) Revive() {
	g.Stats.Health.Current = g.Stats.Health.Maximum
	g.Stats.Magic.Current = g.Stats.Magic.Maximum
}

// Valid reports whether a loaded save has the fields the game needs.
func (g *GameData) Valid() bool {
	return g != nil && g.Stats != nil && g.Inventory != nil && g.Stats.Level > 0
}
