// Package notify provides the synchronous event fan-out used between
// combatants, the battle state machine and the presentation layer.
package notify

// Kind identifies what happened.
type Kind int

const (
	// StateChanged - the battle entered a new phase. Value holds the phase.
	StateChanged Kind = iota
	// AttackLanded - the player's melee lunge reached its target.
	AttackLanded
	// EnemyAttackLanded - an enemy's lunge reached the player.
	EnemyAttackLanded
	// DeathFaded - an enemy finished its death fade and left the field.
	DeathFaded
	// EnemyHit - an enemy took Value damage.
	EnemyHit
	// EnemyKilled - an enemy's health dropped to zero or below.
	EnemyKilled
	// PlayerHit - the player took Value damage.
	PlayerHit
	// PlayerHealed - the player restored Value health.
	PlayerHealed
	// MagicRestored - the player restored Value magic points.
	MagicRestored
	// SpellCast - the player cast the spell named in Subject.
	SpellCast
	// ExperienceEarned - Value experience points were awarded.
	ExperienceEarned
	// LevelUp - the player reached level Value.
	LevelUp
	// BattleEnded - the encounter is over.
	BattleEnded
	// PlayerFallen - the player's health dropped to zero or below. The
	// battle goes on; Value holds the remaining health.
	PlayerFallen
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case StateChanged:
		return "state_changed"
	case AttackLanded:
		return "attack_landed"
	case EnemyAttackLanded:
		return "enemy_attack_landed"
	case DeathFaded:
		return "death_faded"
	case EnemyHit:
		return "enemy_hit"
	case EnemyKilled:
		return "enemy_killed"
	case PlayerHit:
		return "player_hit"
	case PlayerHealed:
		return "player_healed"
	case MagicRestored:
		return "magic_restored"
	case SpellCast:
		return "spell_cast"
	case ExperienceEarned:
		return "experience_earned"
	case LevelUp:
		return "level_up"
	case BattleEnded:
		return "battle_ended"
	case PlayerFallen:
		return "player_fallen"
	default:
		return "unknown"
	}
}

// Event is a single notification.
type Event struct {
	Kind    Kind
	Source  int    // Actor ID that raised the event (0 for the player or the session)
	Subject string // Name of the actor, item or spell involved
	Value   int    // Damage, healing, experience, level or phase
}

// Listener receives events.
type Listener interface {
	OnNotify(Event)
}

// ListenerFunc adapts an ordinary function to a Listener.
type ListenerFunc func(Event)

// OnNotify calls f(e).
func (f ListenerFunc) OnNotify(e Event) { f(e) }

// Notifier broadcasts events to an explicit list of listeners.
// The zero value is ready to use.
type Notifier struct {
	listeners []Listener
}

// Subscribe adds listeners. Nil listeners are ignored.
func (n *Notifier) Subscribe(listeners ...Listener) {
	for _, l := range listeners {
		if l != nil {
			n.listeners = append(n.listeners, l)
		}
	}
}

// Notify delivers e to every listener in subscription order.
func (n *Notifier) Notify(e Event) {
	for _, l := range n.listeners {
		l.OnNotify(e)
	}
}

// Len returns the number of subscribed listeners.
func (n *Notifier) Len() int {
	return len(n.listeners)
}
