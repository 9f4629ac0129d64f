package credstore

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/redis/go-redis/v9"
)

// Config holds credential storage configuration.
type Config struct {
	// Path is the credential file location (file backend)
	Path string `env:"CREDENTIAL_FILE" envDefault:""`

	// RedisURL selects the Redis backend when set (e.g. "redis://localhost:6379/0")
	RedisURL string `env:"CREDENTIAL_REDIS_URL" envDefault:""`

	// RedisKey overrides the default Redis key
	RedisKey string `env:"CREDENTIAL_REDIS_KEY" envDefault:""`
}

// DefaultConfig returns the default credential storage configuration: a
// credential file under the user's config directory, falling back to the
// working directory when none is available.
func DefaultConfig() Config {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return Config{
		Path: filepath.Join(dir, "familydom", "credential"),
	}
}

// NewFromConfig builds the store the configuration selects: Redis when
// RedisURL is set, the credential file otherwise.
func NewFromConfig(cfg Config) (Store, error) {
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, errors.Join(ErrInvalidConfig, err)
		}

		var opts []RedisOption
		if cfg.RedisKey != "" {
			opts = append(opts, WithRedisKey(cfg.RedisKey))
		}
		store, err := NewRedisStore(redis.NewClient(opt), opts...)
		if err != nil {
			return nil, err
		}
		return store, nil
	}

	path := cfg.Path
	if path == "" {
		path = DefaultConfig().Path
	}
	store, err := NewFileStore(path)
	if err != nil {
		return nil, err
	}
	return store, nil
}
