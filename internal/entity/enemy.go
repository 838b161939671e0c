package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/crownquest/internal/combat"
	"github.com/samdwyer/crownquest/internal/gamedata"
	"github.com/samdwyer/crownquest/internal/notify"
)

// Enemy is a hostile combatant.
type Enemy struct {
	Actor
	Def   *gamedata.EnemyDef
	HP    int // Current health; may go below zero on the killing blow
	MaxHP int

	resolver *combat.Resolver
}

// NewEnemy creates an enemy of the given species and level at x, y.
// Health starts at level * the species' health per level.
func NewEnemy(id int, def *gamedata.EnemyDef, level, x, y int, resolver *combat.Resolver) *Enemy {
	hp := def.StartingHealth(level)
	e := &Enemy{
		Actor:    newActor(id, def.Name, def.GlyphRune(), x, y, level),
		Def:      def,
		HP:       hp,
		MaxHP:    hp,
		resolver: resolver,
	}
	e.direction = 1 // The player stands to the right
	return e
}

// Color returns the tcell color for this enemy.
func (e *Enemy) Color() tcell.Color {
	if e.Def != nil {
		return e.Def.TCellColor()
	}
	return tcell.ColorPurple
}

// CalculateHit rolls the damage this enemy deals to a player wearing
// armorPower worth of armor.
func (e *Enemy) CalculateHit(armorPower int) int {
	return e.resolver.EnemyHit(e.Level, armorPower)
}

// TakeDamage subtracts amount from health and returns what is left.
func (e *Enemy) TakeDamage(amount int) int {
	e.HP -= amount
	return e.HP
}

// EnterEnemyAttackState starts this enemy's lunge at the player.
// EnemyAttackLanded is emitted when it arrives.
func (e *Enemy) EnterEnemyAttackState(cells int) {
	e.lunge(EnemyAttacking, cells, notify.EnemyAttackLanded)
}

// QuestFlag returns the quest completed by defeating this enemy, if any.
func (e *Enemy) QuestFlag() string {
	if e.Def == nil {
		return ""
	}
	return e.Def.Quest
}

// Combatant interface implementation

// GetName returns the enemy's name.
func (e *Enemy) GetName() string { return e.Name }

// GetLevel returns the enemy's level.
func (e *Enemy) GetLevel() int { return e.Level }

// GetHP returns current health.
func (e *Enemy) GetHP() int { return e.HP }

// GetMaxHP returns maximum health.
func (e *Enemy) GetMaxHP() int { return e.MaxHP }

// IsAlive returns true if the enemy has health remaining.
func (e *Enemy) IsAlive() bool { return e.HP > 0 }

// Ensure Enemy implements combat.Combatant
var _ combat.Combatant = (*Enemy)(nil)
