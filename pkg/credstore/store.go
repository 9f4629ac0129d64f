package credstore

import "context"

// Store persists a single bearer credential across process restarts. This is
// the durable half of the session: exactly one entry, the raw token string.
//
// Implementations must be safe for concurrent use. Load returns ErrNotFound
// when no credential is persisted; Clear on an empty store is a no-op.
type Store interface {
	// Load reads the persisted credential
	Load(ctx context.Context) (string, error)

	// Save replaces the persisted credential
	Save(ctx context.Context, credential string) error

	// Clear removes the persisted credential
	Clear(ctx context.Context) error
}
