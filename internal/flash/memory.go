package flash

import (
	"context"
	"sync"
)

// MemoryStore is an in-process flash store used in development when no
// Redis address is configured, and in tests.
type MemoryStore struct {
	mu       sync.Mutex
	messages map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		messages: make(map[string]string),
	}
}

func (s *MemoryStore) Set(ctx context.Context, sessionID string, severity Severity, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages[key(sessionID, severity)] = message
	return nil
}

func (s *MemoryStore) Take(ctx context.Context, sessionID string, severity Severity) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key(sessionID, severity)
	message, ok := s.messages[k]
	if !ok {
		return "", false, nil
	}
	delete(s.messages, k)
	return message, true, nil
}
