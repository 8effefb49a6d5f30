package session

import (
	"context"
	"time"
)

// Store defines the persistence contract shared by all session backends.
// Implementations must be safe for concurrent use by many in-flight requests;
// operations on the same token resolve to last-writer-wins at the granularity
// of a whole Save.
type Store interface {
	// Get returns the session stored under token. A missing or expired entry
	// yields ErrSessionNotFound or ErrSessionExpired; an unreachable backend
	// wraps ErrStoreUnavailable so callers can tell outage from absence.
	Get(ctx context.Context, token string) (*Session, error)

	// Save upserts the session under its token. The caller refreshes the
	// session's expiry before saving; the store enforces it.
	Save(ctx context.Context, sess *Session) error

	// Delete removes the session. Deleting an unknown token succeeds silently.
	Delete(ctx context.Context, token string) error

	// Touch refreshes the entry's TTL without rewriting its payload.
	Touch(ctx context.Context, token string, ttl time.Duration) error
}
