package session

import (
	"net/http"
	"time"

	"github.com/sessionforge/sessionkit/cookie"
)

// CookieTransport carries the session token in a signed cookie. The
// signature means a token the server never issued fails verification before
// it ever reaches the store.
type CookieTransport struct {
	cookies *cookie.Manager
	name    string
	opts    []cookie.Option
}

// NewCookieTransport creates a cookie-based transport. The options fix the
// cookie attributes (path, domain, Secure, HttpOnly, SameSite) for every
// emission; SetToken only adds the lifetime.
func NewCookieTransport(cookies *cookie.Manager, name string, opts ...cookie.Option) *CookieTransport {
	return &CookieTransport{
		cookies: cookies,
		name:    name,
		opts:    opts,
	}
}

// Token returns the verified token from the request cookie. A missing
// cookie, a broken signature or a malformed value all read as "no session".
func (t *CookieTransport) Token(r *http.Request) (string, error) {
	token, err := t.cookies.GetSigned(r, t.name)
	if err != nil {
		return "", ErrSessionNotFound
	}
	return token, nil
}

// SetToken writes the signed session cookie.
func (t *CookieTransport) SetToken(w http.ResponseWriter, token string, ttl time.Duration) error {
	opts := t.opts
	if ttl > 0 {
		opts = append(append([]cookie.Option{}, t.opts...), cookie.WithMaxAge(int(ttl.Seconds())))
	}
	return t.cookies.SetSigned(w, t.name, token, opts...)
}

// ClearToken emits the removal cookie.
func (t *CookieTransport) ClearToken(w http.ResponseWriter) error {
	t.cookies.Delete(w, t.name)
	return nil
}
