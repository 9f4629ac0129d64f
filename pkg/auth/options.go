package auth

import (
	"log/slog"
	"time"
)

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger for lifecycle events. Nil loggers are ignored;
// the default discards everything.
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// WithExpiryLeeway treats persisted credentials expiring within the given
// window as already stale, skipping the doomed profile fetch.
func WithExpiryLeeway(leeway time.Duration) Option {
	return func(m *Manager) {
		if leeway > 0 {
			m.expiryLeeway = leeway
		}
	}
}
