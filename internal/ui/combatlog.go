package ui

import (
	"fmt"

	"github.com/samdwyer/crownquest/internal/notify"
)

// DefaultLogLines is how many lines a CombatLog keeps.
const DefaultLogLines = 12

// CombatLog keeps a short history of battle events for the side panel.
type CombatLog struct {
	lines []string
	max   int
}

// NewCombatLog creates a log keeping the last size lines.
func NewCombatLog(size int) *CombatLog {
	if size <= 0 {
		size = DefaultLogLines
	}
	return &CombatLog{max: size}
}

// OnNotify implements notify.Listener.
func (l *CombatLog) OnNotify(e notify.Event) {
	line := formatEvent(e)
	if line == "" {
		return
	}
	l.lines = append(l.lines, line)
	if len(l.lines) > l.max {
		l.lines = l.lines[len(l.lines)-l.max:]
	}
}

// Lines returns the kept lines, oldest first.
func (l *CombatLog) Lines() []string {
	return append([]string(nil), l.lines...)
}

// Clear empties the log.
func (l *CombatLog) Clear() {
	l.lines = nil
}

func formatEvent(e notify.Event) string {
	switch e.Kind {
	case notify.EnemyHit:
		return fmt.Sprintf("%s takes %d damage.", e.Subject, e.Value)
	case notify.EnemyKilled:
		return fmt.Sprintf("%s is defeated!", e.Subject)
	case notify.PlayerHit:
		if e.Value == 0 {
			return fmt.Sprintf("%s misses.", e.Subject)
		}
		return fmt.Sprintf("%s hits you for %d.", e.Subject, e.Value)
	case notify.PlayerHealed:
		return fmt.Sprintf("%s restores %d HP.", e.Subject, e.Value)
	case notify.MagicRestored:
		return fmt.Sprintf("%s restores %d MP.", e.Subject, e.Value)
	case notify.SpellCast:
		return fmt.Sprintf("You cast %s.", e.Subject)
	case notify.ExperienceEarned:
		return fmt.Sprintf("+%d experience.", e.Value)
	case notify.LevelUp:
		return fmt.Sprintf("Reached level %d!", e.Value)
	case notify.BattleEnded:
		return fmt.Sprintf("Battle %s.", e.Subject)
	case notify.PlayerFallen:
		return "You have fallen! Win or flee to recover."
	default:
		return ""
	}
}
