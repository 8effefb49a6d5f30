package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultKeyPrefix namespaces session keys inside a shared Redis database.
const DefaultKeyPrefix = "session:"

// RedisStore is a Store backed by Redis. Records survive process restarts and
// are shared across instances. Every operation leases a connection from the
// client's pool and returns it when the command completes, so a failed call
// never leaks a connection. Expiry is delegated to Redis TTLs; an expired
// entry is simply absent.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

// RedisStoreOption configures a RedisStore.
type RedisStoreOption func(*RedisStore)

// WithKeyPrefix overrides the key namespace, e.g. "myapp:sess:".
func WithKeyPrefix(prefix string) RedisStoreOption {
	return func(s *RedisStore) {
		s.prefix = prefix
	}
}

// NewRedisStore creates a Redis-backed session store. Pool sizing and
// timeouts belong to the client (see the redis package in this module).
func NewRedisStore(client redis.UniversalClient, opts ...RedisStoreOption) *RedisStore {
	store := &RedisStore{
		client: client,
		prefix: DefaultKeyPrefix,
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

func (s *RedisStore) key(token string) string {
	return s.prefix + token
}

// Get fetches and deserializes the session stored under token.
func (s *RedisStore) Get(ctx context.Context, token string) (*Session, error) {
	val, err := s.client.Get(ctx, s.key(token)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, errors.Join(ErrStoreUnavailable, err)
	}

	var sess Session
	if err := json.Unmarshal([]byte(val), &sess); err != nil {
		// A corrupt record is unusable; treat it like a stale token so the
		// client transparently gets a fresh session.
		return nil, errors.Join(ErrInvalidSession, err)
	}

	sess.markSaved()
	return &sess, nil
}

// Save serializes the session and writes it with the TTL implied by its
// expiry. Saving an already-expired session degrades to a delete.
func (s *RedisStore) Save(ctx context.Context, sess *Session) error {
	if sess == nil || sess.Token == "" {
		return ErrInvalidSession
	}

	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return s.Delete(ctx, sess.Token)
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return errors.Join(ErrInvalidSession, err)
	}

	if err := s.client.Set(ctx, s.key(sess.Token), data, ttl).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

// Delete removes the session. DEL on a missing key is a no-op, which gives
// the idempotence the contract requires.
func (s *RedisStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, s.key(token)).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

// Touch refreshes the key's TTL without rewriting the payload.
func (s *RedisStore) Touch(ctx context.Context, token string, ttl time.Duration) error {
	ok, err := s.client.Expire(ctx, s.key(token), ttl).Result()
	if err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	if !ok {
		return ErrSessionNotFound
	}
	return nil
}
