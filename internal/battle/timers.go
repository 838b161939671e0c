package battle

// Phase durations in milliseconds. A phase expires once strictly more than
// its delay has passed since it was entered.
const (
	ActionDelay     = 1000 // EnemyDamaged, DrinkHealingPotion, DrinkEtherPotion
	SpellDelay      = 1500 // FireSpell, CureSpell
	RunAwayDelay    = 1500
	VictoryDelay    = 1800
	ExperienceDelay = 2200
	PlayerHurtDelay = 600
)

func (s *Session) checkTimedEvents() {
	elapsed := s.now - s.timer

	switch s.state {
	case EnemyDamaged, DrinkHealingPotion, DrinkEtherPotion:
		if elapsed > ActionDelay {
			s.startEnemyTurn()
		}
	case FireSpell, CureSpell:
		if elapsed > SpellDelay {
			s.startEnemyTurn()
		}
	case RunAway:
		if elapsed > RunAwayDelay {
			s.endBattle()
		}
	case BattleWon:
		if elapsed > VictoryDelay {
			s.enterShowExperience()
		}
	case ShowExperience:
		if elapsed > ExperienceDelay {
			s.applyExperience()
		}
	case PlayerDamaged:
		if elapsed > PlayerHurtDelay {
			s.afterPlayerDamaged()
		}
	}
}
