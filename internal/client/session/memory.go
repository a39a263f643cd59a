package session

import (
	"context"
	"sync"
)

// MemoryStore is the in-memory fallback used when durable storage is not
// available. State lives only for the process lifetime.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemory() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) get(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[key]
}

func (s *MemoryStore) set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

func (s *MemoryStore) Token(context.Context) string { return s.get(keyToken) }

func (s *MemoryStore) SetToken(_ context.Context, token string) error {
	s.set(keyToken, token)
	return nil
}

func (s *MemoryStore) ClearToken(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, keyToken)
	return nil
}

func (s *MemoryStore) Theme(context.Context) string {
	if theme := s.get(keyTheme); theme == ThemeLight {
		return ThemeLight
	}
	return ThemeDark
}

func (s *MemoryStore) SetTheme(_ context.Context, theme string) error {
	s.set(keyTheme, theme)
	return nil
}

func (s *MemoryStore) Close() error { return nil }
