// Package battle runs a single turn-based encounter inside the real-time
// frame loop. A Session is advanced once per frame; every wait is a
// comparison against the time of the last phase change.
package battle

// State is the phase of a battle. Exactly one is active at a time.
type State int

const (
	// SelectAction - choosing Attack, Items, Magic or Run
	SelectAction State = iota
	// SelectEnemy - choosing the target of a melee attack
	SelectEnemy
	// SelectItem - choosing a potion
	SelectItem
	// SelectMagic - choosing a spell
	SelectMagic
	// PlayerAttack - the player's lunge is playing
	PlayerAttack
	// EnemyDamaged - showing the result of a melee hit
	EnemyDamaged
	// EnemyAttack - one enemy's lunge is playing
	EnemyAttack
	// PlayerDamaged - showing the result of an enemy hit
	PlayerDamaged
	// RunAway - the player is leaving the field
	RunAway
	// CureSpell - showing the cure spell
	CureSpell
	// FireSpell - showing the fire blast
	FireSpell
	// DrinkHealingPotion - showing a healing potion being used
	DrinkHealingPotion
	// DrinkEtherPotion - showing an ether potion being used
	DrinkEtherPotion
	// BattleWon - every enemy has been defeated
	BattleWon
	// ShowExperience - announcing the experience earned
	ShowExperience
	// LevelUp - announcing a new level; waits for a key press
	LevelUp
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case SelectAction:
		return "select_action"
	case SelectEnemy:
		return "select_enemy"
	case SelectItem:
		return "select_item"
	case SelectMagic:
		return "select_magic"
	case PlayerAttack:
		return "player_attack"
	case EnemyDamaged:
		return "enemy_damaged"
	case EnemyAttack:
		return "enemy_attack"
	case PlayerDamaged:
		return "player_damaged"
	case RunAway:
		return "run_away"
	case CureSpell:
		return "cure_spell"
	case FireSpell:
		return "fire_spell"
	case DrinkHealingPotion:
		return "drink_healing_potion"
	case DrinkEtherPotion:
		return "drink_ether_potion"
	case BattleWon:
		return "battle_won"
	case ShowExperience:
		return "show_experience"
	case LevelUp:
		return "level_up"
	default:
		return "unknown"
	}
}

// playerAction returns true for the phases that spend the player's turn.
func (s State) playerAction() bool {
	switch s {
	case PlayerAttack, CureSpell, FireSpell, DrinkHealingPotion, DrinkEtherPotion:
		return true
	}
	return false
}

// healing returns true for the phases that show the player recovering.
func (s State) healing() bool {
	return s == CureSpell || s == DrinkHealingPotion || s == DrinkEtherPotion
}
