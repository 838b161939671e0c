package gamedata

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
)

// EnemyRegistry holds loaded enemy definitions and provides spawning utilities.
type EnemyRegistry struct {
	enemies []EnemyDef
	byID    map[string]*EnemyDef
}

// NewEnemyRegistry creates a registry from loaded enemy definitions.
func NewEnemyRegistry(enemies []EnemyDef) *EnemyRegistry {
	r := &EnemyRegistry{
		enemies: enemies,
		byID:    make(map[string]*EnemyDef, len(enemies)),
	}
	for i := range enemies {
		r.byID[enemies[i].ID] = &enemies[i]
	}
	return r
}

// LoadEnemyRegistry loads and creates a registry from the embedded enemies.json.
func LoadEnemyRegistry() (*EnemyRegistry, error) {
	enemies, err := LoadEnemies()
	if err != nil {
		return nil, err
	}
	if len(enemies) == 0 {
		return nil, errors.New("no enemies loaded from enemies.json")
	}
	return NewEnemyRegistry(enemies), nil
}

// MustLoadEnemyRegistry loads a registry, panicking on error.
func MustLoadEnemyRegistry() *EnemyRegistry {
	registry, err := LoadEnemyRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// SpawnRandom selects one of the given species using weighted probability.
// Unknown IDs, bosses and zero weights are skipped. Returns nil when nothing
// is eligible.
func (r *EnemyRegistry) SpawnRandom(rng *rand.Rand, ids []string) *EnemyDef {
	totalWeight := 0
	candidates := make([]*EnemyDef, 0, len(ids))
	for _, id := range ids {
		def := r.byID[id]
		if def == nil || def.Boss || def.SpawnWeight <= 0 {
			continue
		}
		candidates = append(candidates, def)
		totalWeight += def.SpawnWeight
	}
	if totalWeight <= 0 {
		return nil
	}

	roll := rng.Intn(totalWeight)

	cumulative := 0
	for _, def := range candidates {
		cumulative += def.SpawnWeight
		if roll < cumulative {
			return def
		}
	}

	// Fallback (shouldn't happen)
	return candidates[0]
}

// GetByID returns the enemy definition with the given ID, or nil if not found.
func (r *EnemyRegistry) GetByID(id string) *EnemyDef {
	return r.byID[id]
}

// All returns all enemy definitions.
func (r *EnemyRegistry) All() []EnemyDef {
	return r.enemies
}

// Count returns the number of enemy types in the registry.
func (r *EnemyRegistry) Count() int {
	return len(r.enemies)
}

// =============================================================================
// ZoneRegistry
// =============================================================================

// ZoneRegistry is the enemy difficulty table keyed by originating zone.
type ZoneRegistry struct {
	zones map[string]*ZoneDef
}

// NewZoneRegistry creates a registry from loaded zone definitions.
func NewZoneRegistry(zones []ZoneDef) *ZoneRegistry {
	r := &ZoneRegistry{zones: make(map[string]*ZoneDef, len(zones))}
	for i := range zones {
		r.zones[zones[i].ID] = &zones[i]
	}
	return r
}

// LoadZoneRegistry loads and creates a registry from the embedded zones.json.
func LoadZoneRegistry() (*ZoneRegistry, error) {
	zones, err := LoadZones()
	if err != nil {
		return nil, err
	}
	if len(zones) == 0 {
		return nil, errors.New("no zones loaded from zones.json")
	}
	return NewZoneRegistry(zones), nil
}

// MustLoadZoneRegistry loads a registry, panicking on error.
func MustLoadZoneRegistry() *ZoneRegistry {
	registry, err := LoadZoneRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// Get returns the zone with the given ID. An unknown zone yields an error
// wrapping ErrUnknownZone.
func (r *ZoneRegistry) Get(id string) (*ZoneDef, error) {
	zone, ok := r.zones[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownZone, id)
	}
	return zone, nil
}

// EnemyLevel returns the level of enemies spawned in the given zone.
func (r *ZoneRegistry) EnemyLevel(id string) (int, error) {
	zone, err := r.Get(id)
	if err != nil {
		return 0, err
	}
	return zone.EnemyLevel, nil
}

// IDs returns the zone identifiers in sorted order.
func (r *ZoneRegistry) IDs() []string {
	ids := make([]string, 0, len(r.zones))
	for id := range r.zones {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// =============================================================================
// ItemRegistry
// =============================================================================

// ItemRegistry holds item and spell definitions keyed by name.
type ItemRegistry struct {
	items map[string]*ItemDef
	all   []ItemDef
}

// NewItemRegistry creates a registry from loaded item definitions.
func NewItemRegistry(items []ItemDef) *ItemRegistry {
	r := &ItemRegistry{
		items: make(map[string]*ItemDef, len(items)),
		all:   items,
	}
	for i := range items {
		r.items[items[i].Name] = &items[i]
	}
	return r
}

// LoadItemRegistry loads and creates a registry from the embedded items.json.
func LoadItemRegistry() (*ItemRegistry, error) {
	items, err := LoadItems()
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errors.New("no items loaded from items.json")
	}
	return NewItemRegistry(items), nil
}

// MustLoadItemRegistry loads a registry, panicking on error.
func MustLoadItemRegistry() *ItemRegistry {
	registry, err := LoadItemRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByName returns the item definition with the given name, or nil if not found.
func (r *ItemRegistry) GetByName(name string) *ItemDef {
	return r.items[name]
}

// All returns all item definitions.
func (r *ItemRegistry) All() []ItemDef {
	return r.all
}
