package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/sessionforge/sessionkit/cookie"
)

// ErrorHandler writes the response for requests that cannot proceed because
// the session store is unreachable.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// Manager drives the session lifecycle: it resolves inbound requests to a
// session handle and persists the handle's final state while the response is
// being written.
type Manager struct {
	store        Store
	transport    Transport
	config       Config
	cookies      *cookie.Manager
	cookieOpts   []cookie.Option
	log          *slog.Logger
	errorHandler ErrorHandler
}

// New creates a session manager. Without WithStore it falls back to an
// in-memory store; without WithTransport it requires a cookie manager for
// the default cookie transport and panics otherwise, since silently running
// without a token carrier would strand every session.
func New(opts ...Option) *Manager {
	m := &Manager{
		config: DefaultConfig(),
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		errorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		},
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.store == nil {
		m.store = NewMemoryStore(m.config.CleanupInterval)
	}

	if m.transport == nil {
		if m.cookies == nil {
			panic("session: cookie manager is required when using the default cookie transport")
		}
		opts := append(m.config.cookieOptions(), m.cookieOpts...)
		m.transport = NewCookieTransport(m.cookies, m.config.CookieName, opts...)
	}

	return m
}

// Resolve turns an inbound request into a session handle. A missing,
// malformed or unknown token yields a fresh unsaved session; only an
// unreachable store is an error.
func (m *Manager) Resolve(ctx context.Context, r *http.Request) (*Session, error) {
	token, err := m.transport.Token(r)
	if err != nil || !ValidToken(token, m.config.TokenLength) {
		return m.issue()
	}

	sess, err := m.store.Get(ctx, token)
	switch {
	case err == nil:
		return sess, nil
	case errors.Is(err, ErrSessionNotFound),
		errors.Is(err, ErrSessionExpired),
		errors.Is(err, ErrInvalidSession):
		// Stale, forged or corrupt: the client transparently starts over.
		return m.issue()
	default:
		return nil, err
	}
}

// Persist writes the handle's final state to the store and emits the
// matching Set-Cookie. It must run before the response headers are flushed.
func (m *Manager) Persist(ctx context.Context, w http.ResponseWriter, sess *Session) error {
	if sess == nil {
		return nil
	}

	switch {
	case sess.IsDestroyed():
		if err := m.store.Delete(ctx, sess.Token); err != nil {
			return err
		}
		return m.transport.ClearToken(w)

	case sess.IsRegenerated():
		old := sess.Token
		token, err := GenerateToken(m.config.TokenLength)
		if err != nil {
			return err
		}
		sess.Token = token
		sess.extend(m.config.TTL)
		// Save under the fresh token before removing the old entry so a
		// failure between the two never strands the client without a record.
		if err := m.store.Save(ctx, sess); err != nil {
			return err
		}
		if err := m.store.Delete(ctx, old); err != nil {
			return err
		}
		sess.markSaved()
		return m.transport.SetToken(w, sess.Token, m.config.TTL)

	case sess.IsModified():
		sess.extend(m.config.TTL)
		if err := m.store.Save(ctx, sess); err != nil {
			return err
		}
		sess.markSaved()
		return m.transport.SetToken(w, sess.Token, m.config.TTL)

	case sess.Status() == StatusActive && m.config.SlidingExpiry:
		if m.config.TouchInterval > 0 && time.Since(sess.UpdatedAt) < m.config.TouchInterval {
			return nil
		}
		if err := m.store.Touch(ctx, sess.Token, m.config.TTL); err != nil {
			// The entry vanished between Get and Touch; nothing to refresh.
			if errors.Is(err, ErrSessionNotFound) {
				return nil
			}
			return err
		}
		return m.transport.SetToken(w, sess.Token, m.config.TTL)

	default:
		// Untouched new session: no store write, no cookie.
		return nil
	}
}

// Destroy deletes the session referenced by the request, if any, and emits
// the removal cookie. Handlers normally call Session.Destroy instead and let
// the middleware persist; this exists for paths outside the middleware.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	token, err := m.transport.Token(r)
	if err == nil && ValidToken(token, m.config.TokenLength) {
		if err := m.store.Delete(ctx, token); err != nil {
			return err
		}
	}
	return m.transport.ClearToken(w)
}

// TTL returns the configured session time-to-live.
func (m *Manager) TTL() time.Duration {
	return m.config.TTL
}

func (m *Manager) issue() (*Session, error) {
	token, err := GenerateToken(m.config.TokenLength)
	if err != nil {
		return nil, err
	}
	return NewSession(token, m.config.TTL), nil
}
