package gamedata

import "github.com/gdamore/tcell/v2"

// EnemyDef defines an enemy species loaded from JSON.
type EnemyDef struct {
	ID             string `json:"id"`             // Unique identifier (e.g., "devil")
	Name           string `json:"name"`           // Display name (e.g., "Devil")
	Glyph          string `json:"glyph"`          // Single character for rendering (e.g., "D")
	Color          string `json:"color"`          // Hex color code (e.g., "#D04040")
	HealthPerLevel int    `json:"healthPerLevel"` // Starting health is level * healthPerLevel
	SpawnWeight    int    `json:"spawnWeight"`    // Relative spawn frequency within a zone
	Boss           bool   `json:"boss"`           // Bosses fight alone and are never randomly spawned

	// Quest names the quest flag set when this boss is defeated.
	Quest string `json:"quest,omitempty"`
}

// GlyphRune returns the glyph as a rune for rendering.
func (e *EnemyDef) GlyphRune() rune {
	if len(e.Glyph) == 0 {
		return '?'
	}
	return rune(e.Glyph[0])
}

// TCellColor returns the color as a tcell.Color.
func (e *EnemyDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(e.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// StartingHealth returns the health an enemy of this species spawns with.
func (e *EnemyDef) StartingHealth(level int) int {
	perLevel := e.HealthPerLevel
	if perLevel <= 0 {
		perLevel = 7
	}
	return level * perLevel
}

// EnemiesFile represents the structure of enemies.json.
type EnemiesFile struct {
	Enemies []EnemyDef `json:"enemies"`
}

// LoadEnemies loads enemy definitions from the embedded enemies.json file.
func LoadEnemies() ([]EnemyDef, error) {
	file, err := Load[EnemiesFile]("enemies.json")
	if err != nil {
		return nil, err
	}
	return file.Enemies, nil
}

// MustLoadEnemies loads enemy definitions, panicking on error.
func MustLoadEnemies() []EnemyDef {
	enemies, err := LoadEnemies()
	if err != nil {
		panic(err)
	}
	return enemies
}
