package battle

import (
	"github.com/samdwyer/crownquest/internal/entity"
	"github.com/samdwyer/crownquest/internal/gamedata"
	"github.com/samdwyer/crownquest/internal/notify"
)

// useSelectedOption uses the item or spell under the arrow. Choosing BACK
// returns to the action menu. An item that cannot be afforded does nothing.
func (s *Session) useSelectedOption() {
	if s.overlay.AtBack() {
		s.transition(SelectAction)
		return
	}
	opt, ok := s.overlay.SelectedOption()
	if !ok {
		return
	}
	item, ok := s.data.Inventory.Get(opt.ID)
	if !ok {
		return
	}

	switch item.Kind {
	case gamedata.KindPotion:
		if item.Quantity <= 0 {
			return
		}
		switch item.Effect {
		case gamedata.EffectHeal:
			s.drinkHealingPotion(item)
		case gamedata.EffectMagic:
			s.drinkEtherPotion(item)
		}
	case gamedata.KindSpell:
		if s.data.Stats.Magic.Current < item.MagicPoints {
			return
		}
		switch item.Effect {
		case gamedata.EffectHeal:
			s.castCure(item)
		case gamedata.EffectArea:
			s.castFireBlast(item)
		}
	}
}

// attackEnemy applies a melee hit to the enemy the player attacked. The
// target is looked up by ID and forgotten once the hit is resolved.
func (s *Session) attackEnemy(damage int) {
	defer s.player.ClearAttackedEnemy()

	id, ok := s.player.AttackedEnemy()
	if !ok {
		return
	}
	enemy := s.enemyByID(id)
	if enemy == nil {
		return
	}

	enemy.TakeDamage(damage)
	enemy.EnterKnockBackState()
	if !enemy.IsAlive() {
		s.kill(enemy)
	}
	s.removeDead()
	s.enemyIndex = 0
}

// kill starts an enemy's death. It stays in the live list until removeDead.
func (s *Session) kill(enemy *entity.Enemy) {
	enemy.EnterFadeDeath()
	s.overlay.RemoveTarget(enemy.ID)
	s.events.Notify(notify.Event{Kind: notify.EnemyKilled, Source: enemy.ID, Subject: enemy.Name})
}

// removeDead moves dead enemies from the live list to the fading list and
// re-indexes the survivors.
func (s *Session) removeDead() {
	live := s.enemies[:0]
	for _, e := range s.enemies {
		if e.IsAlive() {
			live = append(live, e)
		} else {
			s.fading = append(s.fading, e)
		}
	}
	for i := len(live); i < len(s.enemies); i++ {
		s.enemies[i] = nil
	}
	s.enemies = live
	for i, e := range s.enemies {
		e.Index = i
	}
}

// castFireBlast damages every live enemy by a separate roll.
func (s *Session) castFireBlast(spell *entity.Item) {
	s.transition(FireSpell)
	s.data.Stats.Magic.Current -= spell.MagicPoints
	s.events.Notify(notify.Event{Kind: notify.SpellCast, Subject: spell.Name, Value: spell.MagicPoints})

	for _, enemy := range s.enemies {
		damage := s.resolver.AreaDamage(spell.Power)
		s.addPopup(damage, PopupDamage, enemy.X+1, enemy.Y-1)
		s.fires = append(s.fires, newFireEffect(enemy.X, enemy.Y))
		enemy.TakeDamage(damage)
		s.events.Notify(notify.Event{Kind: notify.EnemyHit, Source: enemy.ID, Subject: enemy.Name, Value: damage})
		if enemy.IsAlive() {
			enemy.EnterKnockBackState()
		} else {
			s.kill(enemy)
		}
	}
	s.removeDead()
	s.enemyIndex = 0
}

// castCure restores health for the spell's magic cost.
func (s *Session) castCure(spell *entity.Item) {
	s.transition(CureSpell)
	s.data.Stats.Magic.Current -= spell.MagicPoints
	healed := s.data.Stats.Health.Restore(spell.Power)
	s.player.Healing = true
	s.enemyIndex = 0

	s.addPopup(spell.Power, PopupHeal, s.player.X+1, s.player.Y-1)
	s.events.Notify(notify.Event{Kind: notify.SpellCast, Subject: spell.Name, Value: spell.MagicPoints})
	s.events.Notify(notify.Event{Kind: notify.PlayerHealed, Subject: spell.Name, Value: healed})
}

func (s *Session) drinkHealingPotion(potion *entity.Item) {
	s.transition(DrinkHealingPotion)
	healed := s.data.Stats.Health.Restore(potion.Power)
	s.data.Inventory.Consume(potion.Name)
	s.player.Healing = true
	s.enemyIndex = 0

	s.addPopup(potion.Power, PopupHeal, s.player.X+1, s.player.Y-1)
	s.events.Notify(notify.Event{Kind: notify.PlayerHealed, Subject: potion.Name, Value: healed})
}

func (s *Session) drinkEtherPotion(potion *entity.Item) {
	s.transition(DrinkEtherPotion)
	restored := s.data.Stats.Magic.Restore(potion.Power)
	s.data.Inventory.Consume(potion.Name)
	s.player.Healing = true
	s.enemyIndex = 0

	s.addPopup(potion.Power, PopupMagic, s.player.X+1, s.player.Y-1)
	s.events.Notify(notify.Event{Kind: notify.MagicRestored, Subject: potion.Name, Value: restored})
}

func (s *Session) addPopup(value int, kind PopupKind, x, y int) {
	s.popups = append(s.popups, newPopup(value, kind, x, y))
}
