package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/sgphoto/photoreview-api/internal/domain/review"
	"github.com/sgphoto/photoreview-api/internal/domain/settings"
)

// Manager owns all live sessions
type Manager struct {
	settings *settings.Store

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager creates session manager
func NewManager(store *settings.Store) *Manager {
	return &Manager{
		settings: store,
		sessions: make(map[string]*Session),
	}
}

// Create starts a fresh session
func (m *Manager) Create() *Session {
	s := &Session{
		ID:     uuid.New().String(),
		role:   review.RoleNormal,
		marked: make(map[int]struct{}),
	}
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// Get returns a session by id
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

// Navigate points a session at a folder, classifying its role from the
// configured review folder name.
func (m *Manager) Navigate(id, folder string, photoCount int) (*Session, error) {
	s, err := m.Get(id)
	if err != nil {
		return nil, err
	}
	cfg := m.settings.Get()
	s.Navigate(folder, review.RoleFor(folder, cfg.DestinationFolder), photoCount)
	return s, nil
}

// AllowedActions derives what the UI may offer for a folder role.
// Deletion is gated twice: the folder must be the review folder and
// the delete button must be enabled in settings.
func (m *Manager) AllowedActions(role review.Role) []string {
	cfg := m.settings.Get()
	if role == review.RoleReview {
		actions := []string{"restore"}
		if cfg.EnableDeleteButton {
			actions = append(actions, "delete")
		}
		return actions
	}
	return []string{"move", "delete-jpgs"}
}
