package progress

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

const saveKey = "save"

// itemStore is the part of the gdata manager the store uses.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// Store reads and writes GameData. A Store with no backend (see Disabled)
// accepts every call and never touches disk.
type Store struct {
	backend itemStore
}

// Open creates a store backed by gdata's per-user data directory for appName.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return nil, err
	}
	return &Store{backend: m}, nil
}

// Disabled returns a store that never persists anything.
func Disabled() *Store {
	return &Store{}
}

// Enabled returns true if the store has a backend.
func (s *Store) Enabled() bool {
	return s != nil && s.backend != nil
}

// Load returns the saved game, or nil if there is none. A save that cannot
// be read is reported and treated as missing; one that cannot be parsed is
// an error.
func (s *Store) Load() (*GameData, error) {
	if !s.Enabled() {
		return nil, nil
	}

	data, err := s.backend.LoadItem(saveKey)
	if err != nil {
		log.Printf("Warning: Could not load save: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No save yet
		return nil, nil
	}

	var save GameData
	if err := json.Unmarshal(data, &save); err != nil {
		log.Printf("Warning: Could not parse save: %v", err)
		return nil, err
	}
	if !save.Valid() {
		log.Printf("Warning: Ignoring incomplete save")
		return nil, nil
	}

	return &save, nil
}

// Save writes g to the store.
func (s *Store) Save(g *GameData) error {
	if !s.Enabled() || g == nil {
		return nil
	}

	data, err := json.Marshal(g)
	if err != nil {
		log.Printf("Warning: Could not serialize save: %v", err)
		return err
	}

	if err := s.backend.SaveItem(saveKey, data); err != nil {
		log.Printf("Warning: Could not save game: %v", err)
		return err
	}
	return nil
}
