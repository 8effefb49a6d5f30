package session

import (
	"log/slog"
	"time"

	"github.com/sessionforge/sessionkit/cookie"
)

// Option is a functional option for configuring the Manager.
type Option func(*Manager)

// WithStore sets the session backend. Defaults to an in-memory store.
func WithStore(store Store) Option {
	return func(m *Manager) {
		m.store = store
	}
}

// WithTransport replaces the default cookie transport.
func WithTransport(transport Transport) Option {
	return func(m *Manager) {
		m.transport = transport
	}
}

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(m *Manager) {
		m.config = cfg
	}
}

// WithCookieManager supplies the cookie manager used by the default cookie
// transport. Extra cookie options override the configured attributes.
func WithCookieManager(cookies *cookie.Manager, opts ...cookie.Option) Option {
	return func(m *Manager) {
		m.cookies = cookies
		m.cookieOpts = opts
	}
}

// WithLogger sets the structured logger used for resolve/persist failures.
// The default logger discards everything.
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// WithErrorHandler overrides the response written when the store is
// unreachable. The default is a plain 500.
func WithErrorHandler(h ErrorHandler) Option {
	return func(m *Manager) {
		if h != nil {
			m.errorHandler = h
		}
	}
}

// WithCookieName sets the session cookie name.
func WithCookieName(name string) Option {
	return func(m *Manager) {
		m.config.CookieName = name
	}
}

// WithTTL sets the session time-to-live.
func WithTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		m.config.TTL = ttl
	}
}

// WithSlidingExpiry enables TTL refresh on read-only requests, throttled by
// interval (zero refreshes on every request).
func WithSlidingExpiry(interval time.Duration) Option {
	return func(m *Manager) {
		m.config.SlidingExpiry = true
		m.config.TouchInterval = interval
	}
}

// WithTokenLength sets the number of random bytes per session token.
// Values below MinTokenLength are raised to the minimum.
func WithTokenLength(n int) Option {
	return func(m *Manager) {
		m.config.TokenLength = n
	}
}

// WithCleanupInterval sets the default MemoryStore's sweep interval.
func WithCleanupInterval(interval time.Duration) Option {
	return func(m *Manager) {
		m.config.CleanupInterval = interval
	}
}
