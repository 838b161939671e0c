// Package combat provides the pure calculations behind a battle: experience
// totals, hit strength and area damage. Nothing here mutates a combatant.
package combat

import "math/rand"

// Combatant is the read-only view of a fighter the resolver needs.
// Both the player and enemies implement this interface.
type Combatant interface {
	GetName() string
	GetLevel() int
	GetHP() int
	GetMaxHP() int
	IsAlive() bool
}

// Tuning constants for the hit formulas.
const (
	// WeaponSpread is how far below the weapon's power a player hit can roll.
	WeaponSpread = 7
	// EnemyStrengthPerLevel is the top of an enemy's hit range per level.
	EnemyStrengthPerLevel = 5

	minExperiencePerLevel = 5
	maxExperiencePerLevel = 10
)

// Resolver rolls the random parts of combat.
type Resolver struct {
	rng *rand.Rand
}

// NewResolver creates a resolver drawing from rng.
func NewResolver(rng *rand.Rand) *Resolver {
	return &Resolver{rng: rng}
}

// Range returns a uniformly random integer in [lo, hi]. If hi < lo, lo is returned.
func (r *Resolver) Range(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.rng.Intn(hi-lo+1)
}

// RollExperience returns the experience awarded for defeating foes:
// the sum of rand[5,10] * level for each of them.
func (r *Resolver) RollExperience(foes []Combatant) int {
	total := 0
	for _, foe := range foes {
		total += r.Range(minExperiencePerLevel, maxExperiencePerLevel) * foe.GetLevel()
	}
	return total
}

// PlayerHit returns the damage of a melee swing with a weapon of the given
// power: rand[max(0, power-7), power].
func (r *Resolver) PlayerHit(weaponPower int) int {
	if weaponPower <= 0 {
		return 0
	}
	lo := weaponPower - WeaponSpread
	if lo < 0 {
		lo = 0
	}
	return r.Range(lo, weaponPower)
}

// EnemyHit returns the damage an enemy of the given level deals to a player
// wearing armorPower worth of armor: rand[0, max(1, level*5 - armor)].
func (r *Resolver) EnemyHit(level, armorPower int) int {
	hi := level*EnemyStrengthPerLevel - armorPower
	if hi < 1 {
		hi = 1
	}
	return r.Range(0, hi)
}

// AreaDamage returns the damage an area spell of the given power deals to one
// target: rand[power/2, power].
func (r *Resolver) AreaDamage(power int) int {
	return r.Range(power/2, power)
}

// Restore adds amount to current and clamps the result at maximum.
// A current value already above maximum is clamped too.
func Restore(current, amount, maximum int) int {
	current += amount
	if current > maximum {
		current = maximum
	}
	return current
}
