package credstore

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// defaultRedisKey namespaces the credential entry so the store can share a
// database with other application data.
const defaultRedisKey = "familydom:credential"

// RedisStore persists the credential in Redis. Useful when several processes
// share one session, for example a kiosk fleet or a server-side renderer
// behind a load balancer. An optional TTL lets Redis expire the credential
// together with the token itself.
type RedisStore struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// RedisOption configures a RedisStore.
type RedisOption func(*RedisStore)

// WithRedisKey overrides the key the credential is stored under.
func WithRedisKey(key string) RedisOption {
	return func(s *RedisStore) {
		if key != "" {
			s.key = key
		}
	}
}

// WithRedisTTL sets an expiry on the stored credential. Zero keeps it until
// explicitly cleared.
func WithRedisTTL(ttl time.Duration) RedisOption {
	return func(s *RedisStore) {
		s.ttl = ttl
	}
}

// NewRedisStore creates a Redis-backed credential store on an existing client.
func NewRedisStore(client *redis.Client, opts ...RedisOption) (*RedisStore, error) {
	if client == nil {
		return nil, ErrInvalidConfig
	}

	s := &RedisStore{
		client: client,
		key:    defaultRedisKey,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Load reads the persisted credential.
func (s *RedisStore) Load(ctx context.Context) (string, error) {
	credential, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", errors.Join(ErrStorageFailed, err)
	}

	if credential == "" {
		return "", ErrNotFound
	}

	return credential, nil
}

// Save replaces the persisted credential.
func (s *RedisStore) Save(ctx context.Context, credential string) error {
	if credential == "" {
		return ErrEmptyCredential
	}

	if err := s.client.Set(ctx, s.key, credential, s.ttl).Err(); err != nil {
		return errors.Join(ErrStorageFailed, err)
	}

	return nil
}

// Clear removes the persisted credential.
func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return errors.Join(ErrStorageFailed, err)
	}

	return nil
}
