package memory

import (
	"context"
	"sync"

	"github.com/retaildesk/storefront-api/internal/domains/catalog/ports"
)

var _ ports.SettingsStore = (*SettingsStore)(nil)

// SettingsStore holds key-value configuration in memory.
type SettingsStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewSettingsStore() *SettingsStore {
	return &SettingsStore{values: map[string]string{}}
}

func (s *SettingsStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

func (s *SettingsStore) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	if !ok {
		return "", ports.ErrSettingNotFound
	}
	return value, nil
}
