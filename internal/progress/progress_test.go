package progress

import (
	"errors"
	"testing"

	"github.com/samdwyer/crownquest/internal/gamedata"
)

// memStore is an in-memory itemStore.
type memStore struct {
	items   map[string][]byte
	loadErr error
	saveErr error
}

func newMemStore() *memStore {
	return &memStore{items: make(map[string][]byte)}
}

func (m *memStore) LoadItem(key string) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.items[key], nil
}

func (m *memStore) SaveItem(key string, data []byte) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.items[key] = data
	return nil
}

func newTestGame(t *testing.T) *GameData {
	t.Helper()
	g, err := NewGame(gamedata.MustLoadNewGame(), gamedata.MustLoadItemRegistry())
	if err != nil {
		t.Fatalf("NewGame() error: %v", err)
	}
	return g
}

func TestNewGame(t *testing.T) {
	g := newTestGame(t)

	if g.Stats.Level != 1 {
		t.Errorf("Level = %d, want 1", g.Stats.Level)
	}
	if g.Stats.Health.Current != 70 || g.Stats.Health.Maximum != 70 {
		t.Errorf("Health = %+v, want 70/70", g.Stats.Health)
	}
	if got := g.Inventory.Quantity(gamedata.HealingPotion); got != 2 {
		t.Errorf("Healing Potion quantity = %d, want 2", got)
	}
	if got := g.Inventory.WeaponPower(); got != 10 {
		t.Errorf("WeaponPower() = %d, want 10", got)
	}
	if g.Zone != "overworld" {
		t.Errorf("Zone = %q, want overworld", g.Zone)
	}
	if g.LastState != StateExplore {
		t.Errorf("LastState = %q, want %q", g.LastState, StateExplore)
	}
	if !g.Valid() {
		t.Error("new game should be valid")
	}
}

func TestNewGameUnknownItem(t *testing.T) {
	def := gamedata.NewGameDef{
		Stats:     gamedata.StatsDef{Level: 1},
		Inventory: []gamedata.StackDef{{Name: "Excalibur", Quantity: 1}},
	}
	if _, err := NewGame(def, gamedata.MustLoadItemRegistry()); err == nil {
		t.Error("NewGame() with an unknown item should fail")
	}
}

func TestStoreRoundTrip(t *testing.T) {
	mem := newMemStore()
	store := &Store{backend: mem}

	g := newTestGame(t)
	g.Stats.Level = 4
	g.Inventory.Consume(gamedata.EtherPotion)
	g.CrownQuest = true

	if err := store.Save(g); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded == nil {
		t.Fatal("Load() returned no save")
	}
	if loaded.Stats.Level != 4 || !loaded.CrownQuest {
		t.Errorf("loaded save = %+v, want level 4 with the crown quest done", loaded)
	}
	if _, ok := loaded.Inventory.Get(gamedata.EtherPotion); ok {
		t.Error("consumed Ether Potion should stay gone after a reload")
	}
}

func TestStoreMissingAndBroken(t *testing.T) {
	mem := newMemStore()
	store := &Store{backend: mem}

	if g, err := store.Load(); g != nil || err != nil {
		t.Errorf("Load() on empty store = %v, %v; want nil, nil", g, err)
	}

	mem.items[saveKey] = []byte("{broken")
	if _, err := store.Load(); err == nil {
		t.Error("Load() of a corrupt save should fail")
	}

	mem.items[saveKey] = []byte(`{"zone":"overworld"}`)
	if g, err := store.Load(); g != nil || err != nil {
		t.Errorf("Load() of an incomplete save = %v, %v; want nil, nil", g, err)
	}

	mem.loadErr = errors.New("disk gone")
	if g, err := store.Load(); g != nil || err != nil {
		t.Errorf("Load() with a read error = %v, %v; want nil, nil", g, err)
	}
}

func TestStoreSaveError(t *testing.T) {
	mem := newMemStore()
	mem.saveErr = errors.New("read-only")
	store := &Store{backend: mem}

	if err := store.Save(newTestGame(t)); err == nil {
		t.Error("Save() should report the backend error")
	}
}

func TestDisabledStore(t *testing.T) {
	store := Disabled()
	if store.Enabled() {
		t.Fatal("Disabled() store should not be enabled")
	}
	if err := store.Save(newTestGame(t)); err != nil {
		t.Errorf("Save() on disabled store = %v, want nil", err)
	}
	if g, err := store.Load(); g != nil || err != nil {
		t.Errorf("Load() on disabled store = %v, %v; want nil, nil", g, err)
	}
}

func TestQuestFlagsAndRevive(t *testing.T) {
	g := newTestGame(t)

	if !g.QuestFlag("crown") || !g.CrownQuest {
		t.Error(`QuestFlag("crown") should set CrownQuest`)
	}
	if g.QuestFlag("dragon") {
		t.Error("unknown quest should be ignored")
	}

	g.Stats.Health.Current = -3
	g.Revive()
	if g.Stats.Health.Current != g.Stats.Health.Maximum {
		t.Error("Revive() should restore full health")
	}
}
