package entity

import (
	"github.com/samdwyer/crownquest/internal/combat"
	"github.com/samdwyer/crownquest/internal/notify"
)

// PlayerID is the actor ID reserved for the player.
const PlayerID = 0

// Player is the player's combatant in battle. Its health, magic and level
// live in the persistent Stats; the inventory is the save's inventory.
type Player struct {
	Actor
	Stats     *Stats
	Inventory *Inventory

	Healing bool // Set while a heal or restore is being shown
	Damaged bool // Set when the last enemy hit did damage

	resolver      *combat.Resolver
	attackedEnemy int
	hasTarget     bool
}

// NewPlayer creates the player's combatant at the given position.
func NewPlayer(name string, stats *Stats, inv *Inventory, resolver *combat.Resolver, x, y int) *Player {
	p := &Player{
		Actor:     newActor(PlayerID, name, '@', x, y, stats.Level),
		Stats:     stats,
		Inventory: inv,
		resolver:  resolver,
	}
	p.direction = -1 // Enemies stand to the player's left
	return p
}

// EnterAttackState starts the melee lunge against the enemy with the given
// ID. The target is remembered until ClearAttackedEnemy; AttackLanded is
// emitted when the lunge arrives.
func (p *Player) EnterAttackState(enemyID int, cells int) {
	p.attackedEnemy = enemyID
	p.hasTarget = true
	p.lunge(Attacking, cells, notify.AttackLanded)
}

// AttackedEnemy returns the ID of the enemy being attacked, if any.
func (p *Player) AttackedEnemy() (int, bool) {
	return p.attackedEnemy, p.hasTarget
}

// ClearAttackedEnemy forgets the melee target once the hit is resolved.
func (p *Player) ClearAttackedEnemy() {
	p.attackedEnemy = 0
	p.hasTarget = false
}

// CalculateHit rolls the damage of one swing with the equipped weapon.
func (p *Player) CalculateHit() int {
	return p.resolver.PlayerHit(p.Inventory.WeaponPower())
}

// TakeDamage subtracts amount from the persistent health. Health may drop
// below zero; defeat is handled outside the battle.
func (p *Player) TakeDamage(amount int) {
	p.Stats.Health.Current -= amount
}

// EnterRunAway starts the player's exit from the field.
func (p *Player) EnterRunAway() {
	p.state = RunningAway
	p.offsetY = 0
	p.play(newRunTween(p.offsetX))
}

// EnterVictoryDance starts the looping celebration hop.
func (p *Player) EnterVictoryDance() {
	p.state = VictoryDance
	p.offsetX = 0
	p.play(newHopTween())
}

// Combatant interface implementation

// GetName returns the player's name.
func (p *Player) GetName() string { return p.Name }

// GetLevel returns the persistent level.
func (p *Player) GetLevel() int { return p.Stats.Level }

// GetHP returns current health.
func (p *Player) GetHP() int { return p.Stats.Health.Current }

// GetMaxHP returns maximum health.
func (p *Player) GetMaxHP() int { return p.Stats.Health.Maximum }

// IsAlive returns true if the player has health remaining.
func (p *Player) IsAlive() bool { return p.Stats.Health.Current > 0 }

// Ensure Player implements combat.Combatant
var _ combat.Combatant = (*Player)(nil)
