package session

import (
	"net/http"
	"time"

	"github.com/sessionforge/sessionkit/cookie"
)

// Config holds session engine configuration. Cookie attributes are fixed at
// construction time; per-response emission only varies value and MaxAge.
type Config struct {
	// CookieName is the name of the session cookie.
	CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"sid"`

	CookiePath     string        `env:"SESSION_COOKIE_PATH" envDefault:"/"`
	CookieDomain   string        `env:"SESSION_COOKIE_DOMAIN" envDefault:""`
	CookieSecure   bool          `env:"SESSION_COOKIE_SECURE" envDefault:"false"`
	CookieHTTPOnly bool          `env:"SESSION_COOKIE_HTTP_ONLY" envDefault:"true"`
	CookieSameSite http.SameSite `env:"SESSION_COOKIE_SAME_SITE" envDefault:"2"` // 2 = SameSiteLaxMode

	// TTL is how long an untouched session stays valid.
	TTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`

	// SlidingExpiry refreshes the TTL on every request that reads an active
	// session, instead of only on writes. Disabled by default because it
	// adds a store round trip per request.
	SlidingExpiry bool `env:"SESSION_SLIDING_EXPIRY" envDefault:"false"`

	// TouchInterval throttles sliding-expiry refreshes; zero touches on
	// every request.
	TouchInterval time.Duration `env:"SESSION_TOUCH_INTERVAL" envDefault:"0"`

	// TokenLength is the number of random bytes per token.
	TokenLength int `env:"SESSION_TOKEN_LENGTH" envDefault:"32"`

	// CleanupInterval drives the default MemoryStore's background sweep
	// (0 disables it).
	CleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL" envDefault:"5m"`
}

// DefaultConfig returns the defaults used when no environment is present.
func DefaultConfig() Config {
	return Config{
		CookieName:      "sid",
		CookiePath:      "/",
		CookieHTTPOnly:  true,
		CookieSameSite:  http.SameSiteLaxMode,
		TTL:             24 * time.Hour,
		TokenLength:     DefaultTokenLength,
		CleanupInterval: 5 * time.Minute,
	}
}

// cookieOptions translates the configured cookie attributes for the
// transport.
func (c Config) cookieOptions() []cookie.Option {
	return []cookie.Option{
		cookie.WithPath(c.CookiePath),
		cookie.WithDomain(c.CookieDomain),
		cookie.WithSecure(c.CookieSecure),
		cookie.WithHTTPOnly(c.CookieHTTPOnly),
		cookie.WithSameSite(c.CookieSameSite),
	}
}

// NewFromConfig creates a Manager from the provided Config. Options take
// precedence over config values.
func NewFromConfig(cfg Config, opts ...Option) *Manager {
	return New(append([]Option{WithConfig(cfg)}, opts...)...)
}
