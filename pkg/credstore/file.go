package credstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FileStore persists the credential in a single file. Writes go through a
// temp file followed by rename so a crash mid-write never leaves a truncated
// credential behind. The file is created with 0600: the token grants full
// account access and must not be readable by other users.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a file-backed credential store at path. The parent
// directory is created if it doesn't exist.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, ErrInvalidConfig
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: resolving %q: %v", ErrInvalidConfig, path, err)
	}

	if err := os.MkdirAll(filepath.Dir(absPath), 0700); err != nil {
		return nil, errors.Join(ErrStorageFailed, err)
	}

	return &FileStore{path: absPath}, nil
}

// Load reads the persisted credential.
func (s *FileStore) Load(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", errors.Join(ErrStorageFailed, err)
	}

	credential := strings.TrimSpace(string(data))
	if credential == "" {
		return "", ErrNotFound
	}

	return credential, nil
}

// Save replaces the persisted credential.
func (s *FileStore) Save(ctx context.Context, credential string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if credential == "" {
		return ErrEmptyCredential
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".credential-*")
	if err != nil {
		return errors.Join(ErrStorageFailed, err)
	}
	tmpName := tmp.Name()

	if err := tmp.Chmod(0600); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return errors.Join(ErrStorageFailed, err)
	}

	if _, err := tmp.WriteString(credential); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return errors.Join(ErrStorageFailed, err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return errors.Join(ErrStorageFailed, err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return errors.Join(ErrStorageFailed, err)
	}

	return nil
}

// Clear removes the persisted credential. Clearing an empty store succeeds.
func (s *FileStore) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Join(ErrStorageFailed, err)
	}

	return nil
}
