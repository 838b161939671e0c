package battle

import (
	"fmt"

	"github.com/samdwyer/crownquest/internal/notify"
)

// InfoBox keeps the one-line message shown under the battle field. It is
// built entirely from the events it receives.
type InfoBox struct {
	message      string
	enemyDamage  int
	playerDamage int
	experience   int
	level        int
}

// NewInfoBox creates an info box showing the action prompt.
func NewInfoBox() *InfoBox {
	return &InfoBox{message: "Select an action."}
}

// OnNotify implements notify.Listener.
func (b *InfoBox) OnNotify(e notify.Event) {
	switch e.Kind {
	case notify.EnemyHit:
		b.enemyDamage = e.Value
	case notify.PlayerHit:
		b.playerDamage = e.Value
	case notify.ExperienceEarned:
		b.experience = e.Value
	case notify.LevelUp:
		b.level = e.Value
	case notify.StateChanged:
		b.message = b.messageFor(State(e.Value))
	}
}

// Message returns the current message.
func (b *InfoBox) Message() string {
	return b.message
}

func (b *InfoBox) messageFor(s State) string {
	switch s {
	case SelectAction:
		return "Select an action."
	case SelectEnemy:
		return "Select an enemy."
	case SelectItem:
		return "Select an item."
	case SelectMagic:
		return "Select a magic spell."
	case PlayerAttack:
		return "Player attacks enemy."
	case EnemyDamaged:
		return fmt.Sprintf("Enemy damaged by %d.", b.enemyDamage)
	case EnemyAttack:
		return "Enemy attacks player!"
	case PlayerDamaged:
		return fmt.Sprintf("Player damaged by %d.", b.playerDamage)
	case RunAway:
		return "RUN AWAY!!!"
	case CureSpell, DrinkHealingPotion:
		return "Player healed."
	case DrinkEtherPotion:
		return "Magic Points Increased."
	case FireSpell:
		return "FIRE BLAST!"
	case BattleWon:
		return "Battle won!"
	case ShowExperience:
		return fmt.Sprintf("You earned %d experience points this battle!", b.experience)
	case LevelUp:
		return fmt.Sprintf("You leveled up to Level %d!", b.level)
	default:
		return b.message
	}
}
