package apiclient

import "time"

// Config holds API client configuration.
type Config struct {
	// BaseURL is the backend root; "/api" is appended by the client
	BaseURL string `env:"API_BASE_URL" envDefault:"http://localhost:8000"`

	// Timeout is the per-request timeout
	Timeout time.Duration `env:"API_TIMEOUT" envDefault:"30s"`

	// UserAgent identifies this client to the backend
	UserAgent string `env:"API_USER_AGENT" envDefault:"domkit/1.0"`
}

// NewFromConfig creates a Client from the provided Config.
func NewFromConfig(cfg Config, opts ...Option) (*Client, error) {
	configOpts := []Option{
		WithTimeout(cfg.Timeout),
		WithUserAgent(cfg.UserAgent),
	}
	configOpts = append(configOpts, opts...)

	return New(cfg.BaseURL, configOpts...)
}
