package battle

import (
	"fmt"
	"math/rand"

	"github.com/samdwyer/crownquest/internal/combat"
	"github.com/samdwyer/crownquest/internal/entity"
	"github.com/samdwyer/crownquest/internal/gamedata"
	"github.com/samdwyer/crownquest/internal/progress"
)

// Battle field layout in terminal cells.
const (
	FieldWidth  = 80
	FieldHeight = 16

	GridColumns   = 3
	GridRows      = 3
	GridOriginX   = 6
	GridOriginY   = 2
	GridColumnGap = 10
	GridRowGap    = 4

	PlayerX = 62
	PlayerY = 6
)

// gridPositions returns the enemy slots, filled column by column.
func gridPositions() [][2]int {
	positions := make([][2]int, 0, GridColumns*GridRows)
	for col := 0; col < GridColumns; col++ {
		for row := 0; row < GridRows; row++ {
			positions = append(positions, [2]int{
				GridOriginX + col*GridColumnGap,
				GridOriginY + row*GridRowGap,
			})
		}
	}
	return positions
}

// makeEnemies builds the enemy party for a battle started from data.Zone.
// A boss battle (data.BattleType set) is the boss alone; otherwise a random
// group of the zone's species. All enemies share the zone's level.
func makeEnemies(data *progress.GameData, zones *gamedata.ZoneRegistry, registry *gamedata.EnemyRegistry, resolver *combat.Resolver, rng *rand.Rand) ([]*entity.Enemy, error) {
	zone, err := zones.Get(data.Zone)
	if err != nil {
		return nil, fmt.Errorf("make enemies: %w", err)
	}

	var defs []*gamedata.EnemyDef
	if data.BattleType != "" {
		boss := registry.GetByID(data.BattleType)
		if boss == nil {
			return nil, fmt.Errorf("make enemies: unknown boss %q", data.BattleType)
		}
		defs = append(defs, boss)
	} else {
		lo, hi := zone.MinEnemies, zone.MaxEnemies
		if lo < 1 {
			lo = 1
		}
		if hi > GridColumns*GridRows {
			hi = GridColumns * GridRows
		}
		count := resolver.Range(lo, hi)
		for i := 0; i < count; i++ {
			def := registry.SpawnRandom(rng, zone.Species)
			if def == nil {
				return nil, fmt.Errorf("make enemies: zone %q has no spawnable species", zone.ID)
			}
			defs = append(defs, def)
		}
	}

	positions := gridPositions()
	enemies := make([]*entity.Enemy, len(defs))
	for i, def := range defs {
		// ID 0 belongs to the player
		e := entity.NewEnemy(i+1, def, zone.EnemyLevel, positions[i][0], positions[i][1], resolver)
		e.Index = i
		enemies[i] = e
	}
	return enemies, nil
}
