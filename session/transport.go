package session

import (
	"net/http"
	"time"
)

// Transport moves the session token between HTTP requests and responses.
// The engine never looks at raw headers itself; whatever carries the token
// (cookie, custom header) hides behind this interface.
type Transport interface {
	// Token extracts the session token from the request. Absence and
	// malformed values are both reported as an error the resolver treats
	// as "no session".
	Token(r *http.Request) (string, error)

	// SetToken emits the token on the response with the given lifetime.
	// A non-positive ttl emits a session-lifetime cookie.
	SetToken(w http.ResponseWriter, token string, ttl time.Duration) error

	// ClearToken instructs the client to discard the token.
	ClearToken(w http.ResponseWriter) error
}
