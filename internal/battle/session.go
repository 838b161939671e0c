package battle

import (
	"context"
	"errors"
	"math/rand"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/crownquest/internal/combat"
	"github.com/samdwyer/crownquest/internal/entity"
	"github.com/samdwyer/crownquest/internal/gamedata"
	"github.com/samdwyer/crownquest/internal/notify"
	"github.com/samdwyer/crownquest/internal/progress"
	"github.com/samdwyer/crownquest/internal/telemetry"
)

// Deps are the collaborators a battle needs.
type Deps struct {
	Data    *progress.GameData
	Zones   *gamedata.ZoneRegistry
	Enemies *gamedata.EnemyRegistry
	Rng     *rand.Rand

	// Listeners receive every battle event, after the info box.
	Listeners []notify.Listener
}

// Session is one battle. The state field is the single source of truth for
// the phase; it is only written by transition.
type Session struct {
	id   string
	zone string
	data *progress.GameData

	resolver *combat.Resolver
	player   *entity.Player
	enemies  []*entity.Enemy // Live enemies; enemies[i].Index == i
	fading   []*entity.Enemy // Dead enemies still playing their fade
	overlay  *Overlay
	info     *InfoBox
	events   notify.Notifier

	popups []*Popup
	fires  []*FireEffect

	state      State
	timer      int64
	now        int64
	input      latch
	enemyIndex int
	runAway    bool
	experience int
	boss       *entity.Enemy
	leveledUp  bool
	turns      int

	done    bool
	outcome Outcome
	span    trace.Span
}

// New starts a battle in deps.Data.Zone at time now. It returns an error
// wrapping gamedata.ErrUnknownZone if the zone has no difficulty entry.
func New(ctx context.Context, deps Deps, now int64) (*Session, error) {
	if deps.Data == nil || deps.Zones == nil || deps.Enemies == nil || deps.Rng == nil {
		return nil, errors.New("battle: missing dependency")
	}
	resolver := combat.NewResolver(deps.Rng)

	enemies, err := makeEnemies(deps.Data, deps.Zones, deps.Enemies, resolver, deps.Rng)
	if err != nil {
		return nil, err
	}

	return newSession(ctx, deps, resolver, enemies, now), nil
}

// newSession wires a session around an already built enemy party.
func newSession(ctx context.Context, deps Deps, resolver *combat.Resolver, enemies []*entity.Enemy, now int64) *Session {
	s := &Session{
		id:       uuid.NewString(),
		zone:     deps.Data.Zone,
		data:     deps.Data,
		resolver: resolver,
		enemies:  enemies,
		info:     NewInfoBox(),
		now:      now,
	}
	s.player = entity.NewPlayer("Player", deps.Data.Stats, deps.Data.Inventory, resolver, PlayerX, PlayerY)
	if deps.Data.BattleType != "" {
		for _, e := range enemies {
			if e.Def != nil && e.Def.ID == deps.Data.BattleType {
				s.boss = e
			}
		}
	}

	// Experience is rolled once, up front, from the full enemy party.
	foes := make([]combat.Combatant, len(enemies))
	targets := make([]Target, len(enemies))
	for i, e := range enemies {
		e.Index = i
		foes[i] = e
		targets[i] = Target{ID: e.ID, Name: e.Name, X: e.X, Y: e.Y}
	}
	s.experience = resolver.RollExperience(foes)
	s.overlay = NewOverlay(targets)

	_, s.span = telemetry.Tracer("battle").Start(ctx, "battle")
	s.span.SetAttributes(
		attribute.String("battle.id", s.id),
		attribute.String("battle.zone", s.zone),
		attribute.String("battle.type", deps.Data.BattleType),
		attribute.Int("enemy_count", len(enemies)),
		attribute.Int("experience", s.experience),
	)

	s.events.Subscribe(s.info, spanListener{span: s.span})
	s.events.Subscribe(deps.Listeners...)

	actorEvents := notify.ListenerFunc(s.onActorEvent)
	s.player.Events.Subscribe(actorEvents)
	for _, e := range enemies {
		e.Events.Subscribe(actorEvents)
	}

	s.transition(SelectAction)
	return s
}

// Update advances the battle by one frame: input, timers, the victory
// check, animations, the overlay and effects, then painting. After the
// battle is done it only paints.
func (s *Session) Update(p Painter, keys Keys, now int64) {
	s.now = now
	if !s.done {
		s.checkInput(keys)
		s.checkTimedEvents()
		s.checkIfBattleWon()
		s.updateActors(now)
		s.overlay.Update(keys)
		s.updateEffects(now)
	}
	if p != nil {
		p.PaintBattle(s.View())
	}
}

// Done returns true once the battle has ended.
func (s *Session) Done() bool { return s.done }

// Outcome returns the result of a finished battle.
func (s *Session) Outcome() Outcome { return s.outcome }

// ID returns the battle's unique identifier.
func (s *Session) ID() string { return s.id }

// State returns the current phase.
func (s *Session) State() State { return s.state }

// Experience returns the experience this battle is worth.
func (s *Session) Experience() int { return s.experience }

// Enemies returns the live enemies in index order.
func (s *Session) Enemies() []*entity.Enemy {
	return append([]*entity.Enemy(nil), s.enemies...)
}

// Player returns the player's combatant.
func (s *Session) Player() *entity.Player { return s.player }

// Overlay returns the selection overlay.
func (s *Session) Overlay() *Overlay { return s.overlay }

// Message returns the info box text.
func (s *Session) Message() string { return s.info.Message() }

func (s *Session) checkInput(keys Keys) {
	if !s.input.check(keys.Confirm, keys.Cancel) {
		return
	}
	switch {
	case keys.Confirm && keys.Cancel:
		// Ambiguous; ignored
	case keys.Confirm:
		s.confirm()
	case keys.Cancel:
		s.cancel()
	}
}

func (s *Session) confirm() {
	switch s.state {
	case SelectAction:
		switch s.overlay.SelectedAction() {
		case ActionAttack:
			s.transition(SelectEnemy)
		case ActionItem:
			s.transition(SelectItem)
		case ActionMagic:
			s.transition(SelectMagic)
		case ActionRun:
			s.tryToRunAway()
		}
	case SelectEnemy:
		s.enterPlayerAttack()
	case SelectItem, SelectMagic:
		s.useSelectedOption()
	case LevelUp:
		s.endBattle()
	}
}

func (s *Session) cancel() {
	switch s.state {
	case SelectEnemy, SelectItem, SelectMagic:
		s.transition(SelectAction)
	case LevelUp:
		s.endBattle()
	}
}

func (s *Session) checkIfBattleWon() {
	if s.state == SelectAction && len(s.enemies) == 0 {
		s.enterBattleWon()
	}
}

// onActorEvent receives every combatant event. Landed attacks drive the
// attack phases forward; finished fades leave the field.
func (s *Session) onActorEvent(e notify.Event) {
	s.events.Notify(e)

	switch e.Kind {
	case notify.AttackLanded:
		if s.state == PlayerAttack {
			s.enterEnemyDamaged()
		}
	case notify.EnemyAttackLanded:
		if s.state == EnemyAttack {
			s.enterPlayerDamaged()
		}
	case notify.DeathFaded:
		for i, dead := range s.fading {
			if dead.ID == e.Source {
				s.fading = append(s.fading[:i], s.fading[i+1:]...)
				break
			}
		}
	}
}

func (s *Session) updateActors(now int64) {
	s.player.Update(now)
	for _, e := range append([]*entity.Enemy(nil), s.enemies...) {
		e.Update(now)
	}
	for _, e := range append([]*entity.Enemy(nil), s.fading...) {
		e.Update(now)
	}
}

func (s *Session) updateEffects(now int64) {
	popups := s.popups[:0]
	for _, p := range s.popups {
		p.update(now)
		if !p.expired {
			popups = append(popups, p)
		}
	}
	s.popups = popups

	fires := s.fires[:0]
	for _, f := range s.fires {
		f.update(now)
		if !f.expired {
			fires = append(fires, f)
		}
	}
	s.fires = fires
}

// spanListener records phase changes on the battle span.
type spanListener struct {
	span trace.Span
}

func (l spanListener) OnNotify(e notify.Event) {
	switch e.Kind {
	case notify.StateChanged:
		l.span.AddEvent("battle.transition", trace.WithAttributes(
			attribute.String("state", State(e.Value).String()),
		))
	case notify.PlayerFallen:
		l.span.AddEvent("player.fallen", trace.WithAttributes(
			attribute.Int("player.health", e.Value),
		))
	}
}
