package travel

import (
	"sync"

	"github.com/google/uuid"
)

// SessionStore tracks the current city per chat session so follow-up
// questions ("what about food?") stay scoped to the city the user last
// asked about. State is process-local and in-memory only.
type SessionStore struct {
	mu          sync.RWMutex
	cities      map[string]string
	defaultCity string
}

// NewSessionStore creates a SessionStore that answers defaultCity for
// sessions with no recorded city.
func NewSessionStore(defaultCity string) *SessionStore {
	return &SessionStore{
		cities:      make(map[string]string),
		defaultCity: defaultCity,
	}
}

// Ensure returns id unchanged when non-empty, else a fresh session id.
func (s *SessionStore) Ensure(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}

// City returns the session's current city, or the default.
func (s *SessionStore) City(id string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if city, ok := s.cities[id]; ok && city != "" {
		return city
	}
	return s.defaultCity
}

// SetCity records the session's current city.
func (s *SessionStore) SetCity(id, city string) {
	if id == "" || city == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cities[id] = city
}
