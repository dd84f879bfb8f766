package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/gofrs/flock"
	"github.com/rs/zerolog/log"
)

// Store holds the current settings in memory and persists them to a
// JSON file. File writes are serialized with an advisory lock so two
// processes pointed at the same config file cannot interleave writes.
type Store struct {
	path string
	lock *flock.Flock

	mu      sync.RWMutex
	current Settings
}

// Open reads the settings file, falling back to defaults when it is
// missing or unreadable.
func Open(path string) *Store {
	s := &Store{
		path:    path,
		lock:    flock.New(path + ".lock"),
		current: Defaults(),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("file", path).Msg("Failed to read settings, using defaults")
		}
		return s
	}

	var loaded Settings
	if err := json.Unmarshal(data, &loaded); err != nil {
		log.Warn().Err(err).Str("file", path).Msg("Failed to parse settings, using defaults")
		return s
	}
	if len(loaded.VideoExtensions) == 0 {
		loaded.VideoExtensions = Defaults().VideoExtensions
	}
	s.current = loaded
	return s
}

// Get returns a copy of the current settings.
func (s *Store) Get() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.clone()
}

// Save replaces the settings wholesale, on disk first and in memory
// only once the write succeeded.
func (s *Store) Save(next Settings) error {
	if len(next.VideoExtensions) == 0 {
		next.VideoExtensions = Defaults().VideoExtensions
	}

	data, err := json.MarshalIndent(next, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("lock settings file: %w", err)
	}
	defer s.lock.Unlock()

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace settings: %w", err)
	}

	s.mu.Lock()
	s.current = next.clone()
	s.mu.Unlock()

	return nil
}
