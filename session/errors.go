package session

import "errors"

var (
	// ErrSessionNotFound indicates no session exists for the presented token
	ErrSessionNotFound = errors.New("session.not_found")

	// ErrSessionExpired indicates the session exists but its TTL has elapsed
	ErrSessionExpired = errors.New("session.expired")

	// ErrStoreUnavailable indicates the backing store could not be reached
	ErrStoreUnavailable = errors.New("session.store_unavailable")

	// ErrTokenGeneration indicates the secure random source failed
	ErrTokenGeneration = errors.New("session.token_generation_failed")

	// ErrInvalidSession indicates a malformed session or stored record
	ErrInvalidSession = errors.New("session.invalid")

	// ErrResponseAborted indicates the response was replaced with an error
	// page after persistence failed; further handler writes are discarded
	ErrResponseAborted = errors.New("session.response_aborted")
)
