// Package entity provides the combatants and the persistent player state
// they act on.
package entity

import "github.com/samdwyer/crownquest/internal/combat"

// Meter is a current/maximum pair such as health or magic points.
type Meter struct {
	Current int `json:"current"`
	Maximum int `json:"maximum"`
}

// Restore adds amount to the meter, never going above the maximum.
// Returns the amount actually restored.
func (m *Meter) Restore(amount int) int {
	if amount <= 0 {
		return 0
	}
	before := m.Current
	m.Current = combat.Restore(m.Current, amount, m.Maximum)
	if m.Current < before {
		// Already above the maximum; clamping must never count as a gain.
		return 0
	}
	return m.Current - before
}

// Stats is the player's stat block. It is owned by the save and mutated in
// place by the battle.
type Stats struct {
	Health                Meter `json:"health"`
	Magic                 Meter `json:"magic"`
	Level                 int   `json:"level"`
	ExperienceToNextLevel int   `json:"experienceToNextLevel"`
}

// Growth applied on level up.
const (
	HealthGrowthPercent = 25
	MagicGrowthPercent  = 20
)

// ExperienceForLevel returns the experience needed to leave the given level:
// floor(level * 100 * 0.75).
func ExperienceForLevel(level int) int {
	return level * 100 * 3 / 4
}

// ApplyExperience subtracts earned experience from ExperienceToNextLevel.
// When that reaches zero or below the player gains exactly one level: maximum
// health grows by 25% and maximum magic by 20% (rounded down), and the
// threshold resets to ExperienceForLevel of the new level. Any overflow is
// discarded. Returns true on level up.
func (s *Stats) ApplyExperience(earned int) bool {
	s.ExperienceToNextLevel -= earned
	if s.ExperienceToNextLevel > 0 {
		return false
	}

	s.Level++
	s.Health.Maximum += s.Health.Maximum * HealthGrowthPercent / 100
	s.Magic.Maximum += s.Magic.Maximum * MagicGrowthPercent / 100
	s.ExperienceToNextLevel = ExperienceForLevel(s.Level)
	return true
}
