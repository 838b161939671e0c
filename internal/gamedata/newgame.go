package gamedata

// MeterDef is a current/maximum pair as stored in JSON.
type MeterDef struct {
	Current int `json:"current"`
	Maximum int `json:"maximum"`
}

// StatsDef holds the player's starting stat block.
type StatsDef struct {
	Health                MeterDef `json:"health"`
	Magic                 MeterDef `json:"magic"`
	Level                 int      `json:"level"`
	ExperienceToNextLevel int      `json:"experienceToNextLevel"`
}

// StackDef is a quantity of one item in the starting inventory.
type StackDef struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// NewGameDef defines the state a fresh save starts from.
type NewGameDef struct {
	Stats          StatsDef   `json:"stats"`
	Inventory      []StackDef `json:"inventory"`
	EquippedWeapon string     `json:"equippedWeapon"`
	EquippedArmor  []string   `json:"equippedArmor"`
	Zone           string     `json:"zone"`
	BattleCounter  int        `json:"battleCounter"`
}

// LoadNewGame loads the new-game template from the embedded newgame.json file.
func LoadNewGame() (NewGameDef, error) {
	return Load[NewGameDef]("newgame.json")
}

// MustLoadNewGame loads the new-game template, panicking on error.
func MustLoadNewGame() NewGameDef {
	return MustLoad[NewGameDef]("newgame.json")
}
