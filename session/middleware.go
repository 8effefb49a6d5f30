package session

import (
	"net/http"

	"github.com/sessionforge/sessionkit/logger"
)

// Middleware resolves the request to a session handle, exposes it through
// the request context and persists its final state exactly once: just
// before the response headers flush, or after the handler returns if it
// never wrote anything.
//
// An unreachable store fails the request with the configured error handler;
// the middleware never fabricates an empty session over an outage, since the
// client would walk away with a cookie no record backs.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		sess, err := m.Resolve(ctx, r)
		if err != nil {
			m.log.ErrorContext(ctx, "session: resolve failed", logger.Error(err))
			m.errorHandler(w, r, err)
			return
		}

		persisted := false
		persist := func() error {
			if persisted {
				return nil
			}
			persisted = true
			return m.Persist(ctx, w, sess)
		}

		ww := newHookWriter(w, persist, func(err error) {
			m.log.ErrorContext(ctx, "session: persist failed",
				logger.Error(err),
				logger.SessionID(sess.ID),
			)
		})

		next.ServeHTTP(ww, r.WithContext(WithSession(ctx, sess)))

		if ww.failed {
			return
		}

		// Handler produced no output; persist now so the implicit 200 still
		// carries the right cookie.
		if err := persist(); err != nil {
			m.log.ErrorContext(ctx, "session: persist failed",
				logger.Error(err),
				logger.SessionID(sess.ID),
			)
			if !ww.Written() {
				m.errorHandler(w, r, err)
			}
		}
	})
}
