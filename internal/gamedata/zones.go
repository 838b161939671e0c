package gamedata

import "errors"

// ErrUnknownZone is returned when a battle is requested from a zone that has
// no entry in the difficulty table. It is a configuration error.
var ErrUnknownZone = errors.New("unknown zone")

// ZoneDef defines the enemy difficulty of one area of the world.
type ZoneDef struct {
	ID         string   `json:"id"`         // Zone identifier (e.g., "dungeon3")
	Name       string   `json:"name"`       // Display name
	EnemyLevel int      `json:"enemyLevel"` // Level of every enemy spawned here
	MinEnemies int      `json:"minEnemies"` // Smallest random group size
	MaxEnemies int      `json:"maxEnemies"` // Largest random group size (at most 9)
	Species    []string `json:"species"`    // Enemy IDs that roam this zone
	Boss       string   `json:"boss"`       // Enemy ID of the zone boss, if any
}

// ZonesFile represents the structure of zones.json.
type ZonesFile struct {
	Zones []ZoneDef `json:"zones"`
}

// LoadZones loads the zone difficulty table from the embedded zones.json file.
func LoadZones() ([]ZoneDef, error) {
	file, err := Load[ZonesFile]("zones.json")
	if err != nil {
		return nil, err
	}
	return file.Zones, nil
}
