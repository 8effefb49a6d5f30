package session

import (
	"maps"
	"time"

	"github.com/google/uuid"
)

// Status describes where a session is in its lifecycle.
type Status uint8

const (
	// StatusNew marks a session created for the current request that has
	// never been persisted. New sessions are only written to the store once
	// they are actually mutated (lazy creation).
	StatusNew Status = iota

	// StatusActive marks a session that was loaded from the store.
	StatusActive

	// StatusDestroyed marks a session scheduled for deletion at the end of
	// the request. The transition is terminal: no later mutation can bring
	// the same token back to life.
	StatusDestroyed

	// StatusRegenerated marks a session whose token is rotated when the
	// request is persisted: the payload is saved under a fresh token, the old
	// store entry is deleted and the client receives the new cookie. Used
	// after privilege changes such as login to defeat session fixation.
	StatusRegenerated
)

// Session is the per-request mutable view over server-side session state.
// All mutations stay local to the handle until the middleware persists them,
// so nothing becomes visible to concurrent requests before Save completes.
type Session struct {
	// ID is a stable identifier used for correlation in logs. It is not the
	// storage key; the token is.
	ID uuid.UUID `json:"id"`

	// Token is the client-visible session identifier and the storage key.
	Token string `json:"token"`

	// Data holds the application payload.
	Data map[string]any `json:"data,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ExpiresAt time.Time `json:"expires_at"`

	status   Status
	modified bool
}

// NewSession creates a fresh unsaved session around the given token. The
// session is not persisted until it is mutated.
func NewSession(token string, ttl time.Duration) *Session {
	now := time.Now()
	return &Session{
		ID:        uuid.New(),
		Token:     token,
		Data:      make(map[string]any),
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(ttl),
		status:    StatusNew,
	}
}

// Status returns the session's lifecycle state.
func (s *Session) Status() Status {
	if s == nil {
		return StatusNew
	}
	return s.status
}

// IsNew reports whether the session has never been persisted.
func (s *Session) IsNew() bool {
	return s != nil && s.status == StatusNew
}

// IsDestroyed reports whether the session is scheduled for deletion.
func (s *Session) IsDestroyed() bool {
	return s != nil && s.status == StatusDestroyed
}

// IsRegenerated reports whether the session's token will be rotated on
// persist.
func (s *Session) IsRegenerated() bool {
	return s != nil && s.status == StatusRegenerated
}

// IsModified reports whether the session carries unsaved changes.
func (s *Session) IsModified() bool {
	return s != nil && s.modified
}

// IsExpired reports whether the session's TTL has elapsed.
func (s *Session) IsExpired() bool {
	return s != nil && time.Now().After(s.ExpiresAt)
}

// Get retrieves a value from the session payload.
func (s *Session) Get(key string) (any, bool) {
	if s == nil || s.Data == nil {
		return nil, false
	}
	val, ok := s.Data[key]
	return val, ok
}

// GetString retrieves a string value from the session payload.
func (s *Session) GetString(key string) (string, bool) {
	val, ok := s.Get(key)
	if !ok {
		return "", false
	}
	str, ok := val.(string)
	return str, ok
}

// GetInt retrieves an int value from the session payload. JSON round trips
// turn numbers into float64, so those are converted back.
func (s *Session) GetInt(key string) (int, bool) {
	val, ok := s.Get(key)
	if !ok {
		return 0, false
	}
	switch v := val.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

// GetBool retrieves a bool value from the session payload.
func (s *Session) GetBool(key string) (bool, bool) {
	val, ok := s.Get(key)
	if !ok {
		return false, false
	}
	b, ok := val.(bool)
	return b, ok
}

// Set stores a value in the session payload and marks the session dirty.
func (s *Session) Set(key string, value any) {
	if s == nil {
		return
	}
	if s.Data == nil {
		s.Data = make(map[string]any)
	}
	s.Data[key] = value
	s.touchLocal()
}

// Delete removes a value from the session payload and marks the session dirty.
func (s *Session) Delete(key string) {
	if s == nil || s.Data == nil {
		return
	}
	delete(s.Data, key)
	s.touchLocal()
}

// Clear removes the whole payload and marks the session dirty.
func (s *Session) Clear() {
	if s == nil {
		return
	}
	s.Data = make(map[string]any)
	s.touchLocal()
}

// Regenerate schedules a token rotation: on persist the payload moves to a
// fresh token and the old store entry is removed. Call it whenever the
// session's privilege level changes, typically right after authentication,
// so a token fixed before login is worthless afterwards. A destroyed session
// cannot be regenerated.
func (s *Session) Regenerate() {
	if s == nil || s.status == StatusDestroyed {
		return
	}
	s.status = StatusRegenerated
	s.modified = true
}

// Destroy schedules the session for deletion. The store entry is removed and
// a removal cookie is emitted when the request is persisted. Destroy is
// terminal: later Set calls still record data on the handle but cannot revive
// the session.
func (s *Session) Destroy() {
	if s == nil {
		return
	}
	s.status = StatusDestroyed
	s.modified = true
}

// touchLocal records a mutation on the handle without promoting a destroyed
// session back to life.
func (s *Session) touchLocal() {
	s.UpdatedAt = time.Now()
	s.modified = true
}

// extend pushes the expiry forward; called by the manager right before Save
// so persisted records always carry a fresh TTL.
func (s *Session) extend(ttl time.Duration) {
	now := time.Now()
	s.UpdatedAt = now
	s.ExpiresAt = now.Add(ttl)
}

// markSaved transitions the session to Active with no pending changes.
func (s *Session) markSaved() {
	s.status = StatusActive
	s.modified = false
}

// clone returns a deep copy so stored state is never aliased by callers.
func (s *Session) clone() *Session {
	cp := *s
	if s.Data != nil {
		cp.Data = make(map[string]any, len(s.Data))
		maps.Copy(cp.Data, s.Data)
	}
	return &cp
}
