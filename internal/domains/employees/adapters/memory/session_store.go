package memory

import (
	"context"
	"sync"
	"time"

	"github.com/retaildesk/storefront-api/internal/domains/employees/ports"
)

var _ ports.SessionStore = (*SessionStore)(nil)

type session struct {
	employeeCode string
	expiresAt    time.Time
}

// SessionStore holds bearer sessions in memory.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]session
	now      func() time.Time
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: map[string]session{}, now: time.Now}
}

func (s *SessionStore) Save(_ context.Context, token, employeeCode string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = session{employeeCode: employeeCode, expiresAt: expiresAt}
	return nil
}

func (s *SessionStore) Lookup(_ context.Context, token string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.sessions[token]
	if !ok || s.now().After(entry.expiresAt) {
		return "", ports.ErrSessionNotFound
	}
	return entry.employeeCode, nil
}

func (s *SessionStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

func (s *SessionStore) PurgeExpired(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var purged int64
	now := s.now()
	for token, entry := range s.sessions {
		if now.After(entry.expiresAt) {
			delete(s.sessions, token)
			purged++
		}
	}
	return purged, nil
}
