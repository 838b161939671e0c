package combat

import (
	"math/rand"
	"testing"
)

// mockCombatant is a test implementation of the Combatant interface.
type mockCombatant struct {
	name      string
	level     int
	hp, maxHP int
}

func newMockCombatant(name string, level, hp int) *mockCombatant {
	return &mockCombatant{name: name, level: level, hp: hp, maxHP: hp}
}

func (m *mockCombatant) GetName() string { return m.name }
func (m *mockCombatant) GetLevel() int   { return m.level }
func (m *mockCombatant) GetHP() int      { return m.hp }
func (m *mockCombatant) GetMaxHP() int   { return m.maxHP }
func (m *mockCombatant) IsAlive() bool   { return m.hp > 0 }

func newTestResolver(seed int64) *Resolver {
	return NewResolver(rand.New(rand.NewSource(seed)))
}

func TestRollExperienceThreeLevelTwo(t *testing.T) {
	foes := []Combatant{
		newMockCombatant("Devil", 2, 14),
		newMockCombatant("Devil", 2, 14),
		newMockCombatant("Devil", 2, 14),
	}

	// 3 enemies * rand[5,10] * level 2 is always within [30, 60]
	for seed := int64(0); seed < 200; seed++ {
		r := newTestResolver(seed)
		got := r.RollExperience(foes)
		if got < 30 || got > 60 {
			t.Fatalf("seed %d: RollExperience() = %d, want within [30, 60]", seed, got)
		}
		if got%2 != 0 {
			t.Fatalf("seed %d: RollExperience() = %d, want a multiple of the level", seed, got)
		}
	}
}

func TestRollExperienceEmpty(t *testing.T) {
	r := newTestResolver(1)
	if got := r.RollExperience(nil); got != 0 {
		t.Errorf("RollExperience(nil) = %d, want 0", got)
	}
}

func TestRange(t *testing.T) {
	r := newTestResolver(7)

	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		v := r.Range(3, 6)
		if v < 3 || v > 6 {
			t.Fatalf("Range(3, 6) = %d, out of bounds", v)
		}
		seen[v] = true
	}
	if len(seen) != 4 {
		t.Errorf("Range(3, 6) produced %d distinct values, want 4", len(seen))
	}

	if got := r.Range(5, 5); got != 5 {
		t.Errorf("Range(5, 5) = %d, want 5", got)
	}
	if got := r.Range(9, 2); got != 9 {
		t.Errorf("Range(9, 2) = %d, want 9", got)
	}
}

func TestPlayerHit(t *testing.T) {
	tests := []struct {
		power  int
		lo, hi int
	}{
		{10, 3, 10},
		{4, 0, 4}, // Lower bound clamped at zero
		{0, 0, 0},
	}

	r := newTestResolver(3)
	for _, tt := range tests {
		for i := 0; i < 100; i++ {
			got := r.PlayerHit(tt.power)
			if got < tt.lo || got > tt.hi {
				t.Fatalf("PlayerHit(%d) = %d, want within [%d, %d]", tt.power, got, tt.lo, tt.hi)
			}
		}
	}
}

func TestEnemyHit(t *testing.T) {
	tests := []struct {
		level, armor int
		hi           int
	}{
		{1, 0, 5},
		{2, 2, 8},
		{1, 10, 1}, // Armor never reduces the ceiling below 1
	}

	r := newTestResolver(11)
	for _, tt := range tests {
		for i := 0; i < 100; i++ {
			got := r.EnemyHit(tt.level, tt.armor)
			if got < 0 || got > tt.hi {
				t.Fatalf("EnemyHit(%d, %d) = %d, want within [0, %d]", tt.level, tt.armor, got, tt.hi)
			}
		}
	}
}

func TestAreaDamage(t *testing.T) {
	r := newTestResolver(5)
	for i := 0; i < 200; i++ {
		got := r.AreaDamage(20)
		if got < 10 || got > 20 {
			t.Fatalf("AreaDamage(20) = %d, want within [10, 20]", got)
		}
	}
	for i := 0; i < 50; i++ {
		got := r.AreaDamage(15)
		if got < 7 || got > 15 {
			t.Fatalf("AreaDamage(15) = %d, want within [7, 15]", got)
		}
	}
}

func TestRestore(t *testing.T) {
	tests := []struct {
		current, amount, maximum int
		expected                 int
	}{
		{10, 30, 70, 40},
		{60, 30, 70, 70}, // Capped
		{70, 30, 70, 70}, // Already full: idempotent at the cap
		{-5, 30, 70, 25}, // Negative health still heals
	}

	for _, tt := range tests {
		got := Restore(tt.current, tt.amount, tt.maximum)
		if got != tt.expected {
			t.Errorf("Restore(%d, %d, %d) = %d, want %d", tt.current, tt.amount, tt.maximum, got, tt.expected)
		}
	}
}
