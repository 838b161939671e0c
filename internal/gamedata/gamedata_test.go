package gamedata

import (
	"errors"
	"math/rand"
	"testing"
	"testing/fstest"
)

func TestLoadEnemies(t *testing.T) {
	enemies, err := LoadEnemies()
	if err != nil {
		t.Fatalf("Failed to load enemies: %v", err)
	}

	expectedIDs := map[string]bool{"devil": false, "skeleton": false, "evilwizard": false}
	for _, e := range enemies {
		if _, ok := expectedIDs[e.ID]; ok {
			expectedIDs[e.ID] = true
		}
	}

	for id, found := range expectedIDs {
		if !found {
			t.Errorf("Expected enemy %q not found", id)
		}
	}
}

func TestEnemyRegistry(t *testing.T) {
	registry, err := LoadEnemyRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	devil := registry.GetByID("devil")
	if devil == nil {
		t.Fatal("Devil not found by ID")
	}
	if devil.Name != "Devil" {
		t.Errorf("Expected name 'Devil', got %q", devil.Name)
	}

	wizard := registry.GetByID("evilwizard")
	if wizard == nil || !wizard.Boss {
		t.Fatal("evilwizard should be a boss")
	}
	if wizard.Quest != "crown" {
		t.Errorf("evilwizard quest = %q, want crown", wizard.Quest)
	}

	// Weighted spawning is deterministic with the same seed
	rng1 := rand.New(rand.NewSource(12345))
	rng2 := rand.New(rand.NewSource(12345))
	species := []string{"devil", "skeleton"}

	for i := 0; i < 10; i++ {
		a := registry.SpawnRandom(rng1, species)
		b := registry.SpawnRandom(rng2, species)
		if a == nil || b == nil {
			t.Fatalf("SpawnRandom returned nil at spawn %d", i)
		}
		if a.ID != b.ID {
			t.Errorf("Spawn %d mismatch: %s != %s", i, a.ID, b.ID)
		}
	}
}

func TestSpawnRandomSkipsBossesAndUnknown(t *testing.T) {
	registry := MustLoadEnemyRegistry()
	rng := rand.New(rand.NewSource(1))

	if def := registry.SpawnRandom(rng, []string{"evilwizard", "nope"}); def != nil {
		t.Errorf("SpawnRandom() = %q, want nil for boss/unknown only", def.ID)
	}

	for i := 0; i < 20; i++ {
		def := registry.SpawnRandom(rng, []string{"evilwizard", "devil"})
		if def == nil || def.ID != "devil" {
			t.Fatalf("SpawnRandom() should only ever pick devil")
		}
	}
}

func TestZoneRegistry(t *testing.T) {
	zones := MustLoadZoneRegistry()

	tests := []struct {
		zone  string
		level int
	}{
		{"overworld", 1},
		{"dungeon", 2},
		{"dungeon2", 2},
		{"dungeon3", 3},
		{"dungeon4", 2},
	}

	for _, tt := range tests {
		level, err := zones.EnemyLevel(tt.zone)
		if err != nil {
			t.Errorf("EnemyLevel(%q) error: %v", tt.zone, err)
			continue
		}
		if level != tt.level {
			t.Errorf("EnemyLevel(%q) = %d, want %d", tt.zone, level, tt.level)
		}
	}

	if _, err := zones.EnemyLevel("castle"); !errors.Is(err, ErrUnknownZone) {
		t.Errorf("EnemyLevel(castle) error = %v, want ErrUnknownZone", err)
	}

	if got := len(zones.IDs()); got != 5 {
		t.Errorf("IDs() length = %d, want 5", got)
	}
}

func TestItemRegistry(t *testing.T) {
	items := MustLoadItemRegistry()

	for _, name := range []string{HealingPotion, EtherPotion, Cure, FireBlast} {
		def := items.GetByName(name)
		if def == nil {
			t.Errorf("item %q not found", name)
			continue
		}
		if !def.Usable() {
			t.Errorf("item %q should be usable in battle", name)
		}
	}

	cure := items.GetByName(Cure)
	if cure.MagicPoints != 25 {
		t.Errorf("Cure cost = %d, want 25", cure.MagicPoints)
	}

	sword := items.GetByName("Long Sword")
	if sword == nil || sword.Usable() {
		t.Error("Long Sword should exist and not be usable from the battle menu")
	}
}

func TestLoadNewGame(t *testing.T) {
	def, err := LoadNewGame()
	if err != nil {
		t.Fatalf("LoadNewGame() error: %v", err)
	}
	if def.Stats.Level != 1 {
		t.Errorf("starting level = %d, want 1", def.Stats.Level)
	}
	if def.Stats.Health.Current != def.Stats.Health.Maximum {
		t.Error("new game should start at full health")
	}
	if def.EquippedWeapon == "" {
		t.Error("new game should equip a weapon")
	}
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"zones.json": {Data: []byte(`{"zones":[{"id":"moon","enemyLevel":9}]}`)},
		"bad.json":   {Data: []byte(`{not json`)},
	}

	file, err := LoadFS[ZonesFile](fsys, "zones.json")
	if err != nil {
		t.Fatalf("LoadFS() error: %v", err)
	}
	if len(file.Zones) != 1 || file.Zones[0].EnemyLevel != 9 {
		t.Errorf("LoadFS() = %+v, want one zone at level 9", file)
	}

	if _, err := LoadFS[ZonesFile](fsys, "bad.json"); err == nil {
		t.Error("LoadFS(bad.json) should fail to parse")
	}
	if _, err := LoadFS[ZonesFile](fsys, "missing.json"); err == nil {
		t.Error("LoadFS(missing.json) should fail to read")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00FF00", true},
		{"#FFF", true}, // Shorthand
		{"F80", true},
		{"#000000", true},
		{"invalid", false},
		{"#FFFF", false},
		{"#GG0000", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}

	short := MustParseHexColor("#F80")
	long := MustParseHexColor("#FF8800")
	if short != long {
		t.Errorf("shorthand #F80 = %v, want %v", short, long)
	}
}

func TestEnemyDefMethods(t *testing.T) {
	def := EnemyDef{
		ID:             "test",
		Name:           "Test Enemy",
		Glyph:          "T",
		Color:          "#FF0000",
		HealthPerLevel: 7,
		SpawnWeight:    50,
	}

	if def.GlyphRune() != 'T' {
		t.Errorf("Expected glyph 'T', got %c", def.GlyphRune())
	}
	if def.TCellColor() == 0 {
		t.Error("TCellColor returned zero color")
	}
	if got := def.StartingHealth(3); got != 21 {
		t.Errorf("StartingHealth(3) = %d, want 21", got)
	}

	empty := EnemyDef{}
	if empty.GlyphRune() != '?' {
		t.Error("empty glyph should render as '?'")
	}
	if got := empty.StartingHealth(2); got != 14 {
		t.Errorf("StartingHealth default = %d, want 14", got)
	}
}
