package session

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
)

const (
	// DefaultTokenLength is the number of random bytes in a generated token.
	DefaultTokenLength = 32

	// MinTokenLength is the smallest accepted token size (128 bits). Shorter
	// values requested via configuration are raised to this floor.
	MinTokenLength = 16
)

// GenerateToken creates a cryptographically secure session token of n random
// bytes encoded as base64 URL-safe without padding. Tokens are the only way a
// client can reference server-side session state, so they must never be
// derived from anything but the system's secure random source.
func GenerateToken(n int) (string, error) {
	if n < MinTokenLength {
		n = MinTokenLength
	}

	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}

// ValidToken reports whether s has the exact shape of a token produced by
// GenerateToken with n random bytes. Anything else is treated as "no session"
// by the resolver rather than as an error.
func ValidToken(s string, n int) bool {
	if n < MinTokenLength {
		n = MinTokenLength
	}

	if len(s) != base64.RawURLEncoding.EncodedLen(n) {
		return false
	}

	raw, err := base64.RawURLEncoding.DecodeString(s)
	return err == nil && len(raw) == n
}
