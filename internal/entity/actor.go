package entity

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/samdwyer/crownquest/internal/notify"
)

// AnimState is the per-combatant animation state. It runs independently of
// the battle phase.
type AnimState int

const (
	// Resting - standing in place
	Resting AnimState = iota
	// KnockBack - recoiling from a hit
	KnockBack
	// Attacking - the player's melee lunge
	Attacking
	// EnemyAttacking - an enemy's lunge toward the player
	EnemyAttacking
	// FadeDeath - fading out after health reached zero
	FadeDeath
	// Gone - fully faded, no longer drawn
	Gone
	// RunningAway - the player leaving the field
	RunningAway
	// VictoryDance - the player celebrating a won battle
	VictoryDance
)

// String returns a human-readable state name.
func (s AnimState) String() string {
	switch s {
	case Resting:
		return "resting"
	case KnockBack:
		return "knock_back"
	case Attacking:
		return "attacking"
	case EnemyAttacking:
		return "enemy_attacking"
	case FadeDeath:
		return "fade_death"
	case Gone:
		return "gone"
	case RunningAway:
		return "running_away"
	case VictoryDance:
		return "victory_dance"
	default:
		return "unknown"
	}
}

// Animation timings in seconds and distances in cells.
const (
	LungeOutSeconds    = 0.30
	LungeBackSeconds   = 0.20
	KnockOutSeconds    = 0.10
	KnockBackSeconds   = 0.15
	FadeSeconds        = 0.60
	RunAwaySeconds     = 1.20
	VictoryHopSeconds  = 0.25
	KnockBackDistance  = 1
	RunAwayDistance    = 24
	VictoryHopDistance = 1
	DefaultLungeCells  = 6
)

// Actor is the shared state of everything that fights: identity, position,
// level, its slot among live enemies, and a small tween-driven animation
// state machine.
type Actor struct {
	ID     int    // Stable within a battle; 0 is the player
	Name   string // Display name
	Symbol rune   // Display glyph
	X, Y   int    // Resting position in cells
	Level  int    // Combat level
	Index  int    // Position among live enemies (unused for the player)

	// Events carries this actor's combat events to its listeners.
	Events notify.Notifier

	state      AnimState
	tween      *gween.Tween
	returning  bool
	direction  float32 // -1 lunges/recoils left, +1 right
	landed     notify.Kind
	offsetX    float32
	offsetY    float32
	alpha      float32
	lastUpdate int64
	started    bool
}

func newActor(id int, name string, symbol rune, x, y, level int) Actor {
	return Actor{
		ID:     id,
		Name:   name,
		Symbol: symbol,
		X:      x,
		Y:      y,
		Level:  level,
		alpha:  1,
	}
}

// State returns the current animation state.
func (a *Actor) State() AnimState { return a.state }

// Offset returns the current draw offset from the resting position.
func (a *Actor) Offset() (dx, dy int) {
	return int(a.offsetX), int(a.offsetY)
}

// Alpha returns the opacity in [0, 1].
func (a *Actor) Alpha() float32 { return a.alpha }

// Visible returns false once a death fade has completed.
func (a *Actor) Visible() bool { return a.state != Gone }

// EnterKnockBackState starts a short recoil away from the attacker.
func (a *Actor) EnterKnockBackState() {
	if a.state == FadeDeath || a.state == Gone {
		return
	}
	a.state = KnockBack
	a.returning = false
	a.play(gween.New(0, a.direction*-KnockBackDistance, KnockOutSeconds, ease.OutQuad))
}

// EnterFadeDeath starts fading the actor out. It emits DeathFaded when done.
func (a *Actor) EnterFadeDeath() {
	a.state = FadeDeath
	a.offsetX = 0
	a.play(gween.New(a.alpha, 0, FadeSeconds, ease.Linear))
}

// lunge starts a two-part attack animation: out toward the target, emitting
// landed on arrival, then back to the resting position.
func (a *Actor) lunge(state AnimState, cells int, landed notify.Kind) {
	a.state = state
	a.landed = landed
	a.returning = false
	a.offsetX = 0
	a.play(gween.New(0, a.direction*float32(cells), LungeOutSeconds, ease.OutQuad))
}

// play starts a new tween. Its first step is measured from the next
// Update, so time spent before the tween started never counts toward it.
func (a *Actor) play(t *gween.Tween) {
	a.tween = t
	a.started = false
}

// Update advances the animation to now (milliseconds).
func (a *Actor) Update(now int64) {
	var dt float32
	if a.started && now > a.lastUpdate {
		dt = float32(now-a.lastUpdate) / 1000
	}
	a.lastUpdate = now
	a.started = true

	if a.tween == nil {
		return
	}
	value, finished := a.tween.Update(dt)

	switch a.state {
	case Attacking, EnemyAttacking:
		a.offsetX = value
		if !finished {
			return
		}
		if !a.returning {
			a.returning = true
			a.tween = gween.New(a.offsetX, 0, LungeBackSeconds, ease.InQuad)
			a.Events.Notify(notify.Event{Kind: a.landed, Source: a.ID, Subject: a.Name})
			return
		}
		a.rest()

	case KnockBack:
		a.offsetX = value
		if !finished {
			return
		}
		if !a.returning {
			a.returning = true
			a.tween = gween.New(a.offsetX, 0, KnockBackSeconds, ease.InQuad)
			return
		}
		a.rest()

	case FadeDeath:
		a.alpha = value
		if finished {
			a.state = Gone
			a.tween = nil
			a.Events.Notify(notify.Event{Kind: notify.DeathFaded, Source: a.ID, Subject: a.Name})
		}

	case RunningAway:
		a.offsetX = value
		if finished {
			a.tween = nil
		}

	case VictoryDance:
		a.offsetY = value
		if finished {
			// Hop forever: up, down, up...
			a.tween = gween.New(a.offsetY, -VictoryHopDistance-a.offsetY, VictoryHopSeconds, ease.OutQuad)
		}

	default:
		a.tween = nil
	}
}

func (a *Actor) rest() {
	a.state = Resting
	a.tween = nil
	a.returning = false
	a.offsetX = 0
	a.offsetY = 0
}

func newRunTween(from float32) *gween.Tween {
	return gween.New(from, RunAwayDistance, RunAwaySeconds, ease.InQuad)
}

func newHopTween() *gween.Tween {
	return gween.New(0, -VictoryHopDistance, VictoryHopSeconds, ease.OutQuad)
}
