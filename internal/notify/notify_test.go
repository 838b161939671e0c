package notify

import "testing"

func TestNotifierOrder(t *testing.T) {
	var n Notifier
	var got []string

	n.Subscribe(
		ListenerFunc(func(e Event) { got = append(got, "first:"+e.Kind.String()) }),
		nil,
		ListenerFunc(func(e Event) { got = append(got, "second:"+e.Kind.String()) }),
	)

	if n.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (nil listener should be skipped)", n.Len())
	}

	n.Notify(Event{Kind: EnemyHit, Value: 4})

	want := []string{"first:enemy_hit", "second:enemy_hit"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNotifierZeroValue(t *testing.T) {
	var n Notifier
	// Must not panic with no listeners
	n.Notify(Event{Kind: BattleEnded})
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{StateChanged, "state_changed"},
		{AttackLanded, "attack_landed"},
		{EnemyAttackLanded, "enemy_attack_landed"},
		{DeathFaded, "death_faded"},
		{LevelUp, "level_up"},
		{BattleEnded, "battle_ended"},
		{PlayerFallen, "player_fallen"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.expected)
		}
	}
}
