package battle

import (
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/crownquest/internal/entity"
	"github.com/samdwyer/crownquest/internal/gamedata"
	"github.com/samdwyer/crownquest/internal/notify"
	"github.com/samdwyer/crownquest/internal/progress"
)

// transition is the only place the phase changes. It stamps the timer,
// re-syncs the overlay and announces the new phase.
func (s *Session) transition(next State) {
	s.state = next
	s.timer = s.now
	if next.playerAction() {
		s.turns++
	}
	if !next.healing() {
		s.player.Healing = false
	}
	if next != PlayerDamaged {
		s.player.Damaged = false
	}
	s.syncOverlay()
	s.events.Notify(notify.Event{Kind: notify.StateChanged, Subject: next.String(), Value: int(next)})
}

func (s *Session) syncOverlay() {
	switch s.state {
	case SelectAction:
		s.overlay.ShowActions()
	case SelectEnemy:
		s.overlay.ShowEnemies()
	case SelectItem:
		s.overlay.ShowOptions(ModeItems, s.options(gamedata.KindPotion))
	case SelectMagic:
		s.overlay.ShowOptions(ModeMagic, s.options(gamedata.KindSpell))
	default:
		s.overlay.Hide()
	}
}

// options lists the held items of a kind for the overlay.
func (s *Session) options(kind gamedata.ItemKind) []Option {
	items := s.data.Inventory.OfKind(kind)
	options := make([]Option, len(items))
	for i, item := range items {
		options[i] = Option{ID: item.Name, Label: optionLabel(item)}
	}
	return options
}

func optionLabel(item *entity.Item) string {
	if item.Kind == gamedata.KindSpell {
		return fmt.Sprintf("%s (%d MP)", item.Name, item.MagicPoints)
	}
	return fmt.Sprintf("%s x%d", item.Name, item.Quantity)
}

func (s *Session) enterPlayerAttack() {
	target, ok := s.overlay.SelectedTarget()
	if !ok {
		return
	}
	enemy := s.enemyByID(target.ID)
	if enemy == nil {
		return
	}
	s.transition(PlayerAttack)
	s.player.EnterAttackState(enemy.ID, lungeCells(s.player.X, enemy.X))
}

// lungeCells is how far the player steps to reach an enemy standing at x.
func lungeCells(from, to int) int {
	cells := from - to - 2
	if cells < 1 {
		cells = 1
	}
	return cells
}

// enterEnemyDamaged resolves the player's melee hit once the lunge lands.
func (s *Session) enterEnemyDamaged() {
	hit := s.player.CalculateHit()
	id, _ := s.player.AttackedEnemy()
	enemy := s.enemyByID(id)

	subject := ""
	if enemy != nil {
		subject = enemy.Name
	}
	s.events.Notify(notify.Event{Kind: notify.EnemyHit, Source: id, Subject: subject, Value: hit})
	s.transition(EnemyDamaged)
	if enemy != nil {
		s.addPopup(hit, PopupDamage, enemy.X+1, enemy.Y-1)
	}
	s.attackEnemy(hit)
}

// startEnemyTurn hands the turn to the first live enemy, or declares the
// battle won when none are left.
func (s *Session) startEnemyTurn() {
	if len(s.enemies) == 0 {
		s.enterBattleWon()
		return
	}
	s.enemyIndex = 0
	s.enterEnemyAttack()
}

func (s *Session) enterEnemyAttack() {
	if len(s.enemies) == 0 {
		if s.runAway {
			s.enterRunAway()
		} else {
			s.transition(SelectAction)
		}
		return
	}
	if s.enemyIndex > len(s.enemies)-1 {
		s.enemyIndex = 0
	}
	enemy := s.enemies[s.enemyIndex]
	s.transition(EnemyAttack)
	enemy.EnterEnemyAttackState(entity.DefaultLungeCells)
}

// enterPlayerDamaged resolves the attacking enemy's hit once its lunge lands.
func (s *Session) enterPlayerDamaged() {
	if len(s.enemies) == 0 {
		s.transition(SelectAction)
		return
	}
	if s.enemyIndex > len(s.enemies)-1 {
		s.enemyIndex = 0
	}
	enemy := s.enemies[s.enemyIndex]
	hit := enemy.CalculateHit(s.data.Inventory.ArmorPower())

	s.events.Notify(notify.Event{Kind: notify.PlayerHit, Source: enemy.ID, Subject: enemy.Name, Value: hit})
	s.transition(PlayerDamaged)
	s.addPopup(hit, PopupDamage, s.player.X+1, s.player.Y-1)
	wasStanding := s.data.Stats.Health.Current > 0
	s.player.TakeDamage(hit)
	if hit > 0 {
		s.player.Damaged = true
		s.player.EnterKnockBackState()
	}
	if wasStanding && s.data.Stats.Health.Current <= 0 {
		s.events.Notify(notify.Event{Kind: notify.PlayerFallen, Subject: s.player.Name, Value: s.data.Stats.Health.Current})
	}
}

// afterPlayerDamaged passes the turn to the next enemy, or back to the
// player once the last one has attacked.
func (s *Session) afterPlayerDamaged() {
	if s.enemyIndex >= len(s.enemies)-1 {
		if s.runAway {
			s.enterRunAway()
		} else {
			s.transition(SelectAction)
		}
		return
	}
	s.enemyIndex++
	s.enterEnemyAttack()
}

func (s *Session) tryToRunAway() {
	s.runAway = true
	s.enemyIndex = 0
	if len(s.enemies) == 0 {
		s.enterRunAway()
		return
	}
	s.turns++
	s.enterEnemyAttack()
}

func (s *Session) enterRunAway() {
	s.transition(RunAway)
	s.player.EnterRunAway()
}

func (s *Session) enterBattleWon() {
	s.transition(BattleWon)
	s.player.EnterVictoryDance()
}

func (s *Session) enterShowExperience() {
	s.events.Notify(notify.Event{Kind: notify.ExperienceEarned, Value: s.experience})
	s.transition(ShowExperience)
}

// applyExperience runs when the experience announcement expires. At most one
// level is gained per battle and any overflow is discarded.
func (s *Session) applyExperience() {
	if !s.data.Stats.ApplyExperience(s.experience) {
		s.endBattle()
		return
	}
	s.leveledUp = true
	s.player.Level = s.data.Stats.Level
	s.events.Notify(notify.Event{Kind: notify.LevelUp, Value: s.data.Stats.Level})
	s.transition(LevelUp)
}

// endBattle finishes the encounter and writes its effects to the game data.
func (s *Session) endBattle() {
	if s.done {
		return
	}
	s.done = true

	result := ResultWon
	if s.runAway {
		result = ResultFled
	}
	s.outcome = Outcome{
		BattleID:  s.id,
		Result:    result,
		LeveledUp: s.leveledUp,
		Turns:     s.turns,
	}
	if result == ResultWon {
		s.outcome.Experience = s.experience
		if s.boss != nil {
			s.outcome.BossDefeated = true
			s.data.QuestFlag(s.boss.QuestFlag())
		}
	}

	s.data.LastState = progress.StateBattle
	s.data.BattleCounter = s.resolver.Range(50, 255)
	s.data.BattleType = ""

	s.events.Notify(notify.Event{Kind: notify.BattleEnded, Subject: result.String(), Value: s.turns})

	s.span.SetAttributes(
		attribute.String("outcome", result.String()),
		attribute.Int("turns", s.turns),
		attribute.Bool("leveled_up", s.leveledUp),
		attribute.Int("player.health", s.data.Stats.Health.Current),
	)
	if s.data.Stats.Health.Current <= 0 {
		s.span.SetStatus(codes.Error, "player defeated")
	}
	s.span.End()
}

func (s *Session) enemyByID(id int) *entity.Enemy {
	for _, e := range s.enemies {
		if e.ID == id {
			return e
		}
	}
	return nil
}
