package credstore

import (
	"context"
	"sync"
)

// MemoryStore implements Store in memory. Sessions stored here do not survive
// process restart; intended for tests and explicitly ephemeral sessions.
type MemoryStore struct {
	mu         sync.RWMutex
	credential string
}

// NewMemoryStore creates an empty in-memory credential store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load reads the stored credential.
func (s *MemoryStore) Load(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.credential == "" {
		return "", ErrNotFound
	}
	return s.credential, nil
}

// Save replaces the stored credential.
func (s *MemoryStore) Save(ctx context.Context, credential string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if credential == "" {
		return ErrEmptyCredential
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.credential = credential
	return nil
}

// Clear removes the stored credential.
func (s *MemoryStore) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.credential = ""
	return nil
}
