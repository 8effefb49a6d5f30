package session

import (
	"context"
	"hash/fnv"
	"sync"
	"time"
)

// shardCount fixes the number of independently locked buckets. Power of two
// so the modulo compiles to a mask.
const shardCount = 32

type memoryShard struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// MemoryStore is an in-process Store. State is lost on restart, which makes
// it suitable for development and single-instance deployments. The map is
// sharded by token hash so unrelated sessions never contend on one lock.
type MemoryStore struct {
	shards    [shardCount]*memoryShard
	ticker    *time.Ticker
	done      chan struct{}
	closeOnce sync.Once
}

// NewMemoryStore creates an in-memory session store. When cleanupInterval is
// positive a background sweep removes expired entries that are never loaded
// again; expiry itself is enforced lazily on Get either way.
func NewMemoryStore(cleanupInterval time.Duration) *MemoryStore {
	store := &MemoryStore{
		done: make(chan struct{}),
	}
	for i := range store.shards {
		store.shards[i] = &memoryShard{sessions: make(map[string]*Session)}
	}

	if cleanupInterval > 0 {
		store.ticker = time.NewTicker(cleanupInterval)
		go store.sweepLoop()
	}

	return store
}

func (m *MemoryStore) shard(token string) *memoryShard {
	h := fnv.New32a()
	h.Write([]byte(token))
	return m.shards[h.Sum32()%shardCount]
}

// Get returns a deep copy of the session stored under token. Expired entries
// are treated as absent and dropped opportunistically.
func (m *MemoryStore) Get(ctx context.Context, token string) (*Session, error) {
	shard := m.shard(token)

	var (
		cp      *Session
		exists  bool
		expired bool
	)

	shard.mu.RLock()
	if sess, ok := shard.sessions[token]; ok {
		exists = true
		if expired = sess.IsExpired(); !expired {
			// Clone while still holding the lock; Touch mutates entries in place.
			cp = sess.clone()
		}
	}
	shard.mu.RUnlock()

	if !exists {
		return nil, ErrSessionNotFound
	}

	if expired {
		shard.mu.Lock()
		// Re-check under the write lock; a concurrent Save may have refreshed it.
		if cur, ok := shard.sessions[token]; ok && cur.IsExpired() {
			delete(shard.sessions, token)
		}
		shard.mu.Unlock()
		return nil, ErrSessionExpired
	}

	cp.markSaved()
	return cp, nil
}

// Save upserts a deep copy of the session under its token.
func (m *MemoryStore) Save(ctx context.Context, sess *Session) error {
	if sess == nil || sess.Token == "" {
		return ErrInvalidSession
	}

	shard := m.shard(sess.Token)
	cp := sess.clone()
	cp.markSaved()

	shard.mu.Lock()
	shard.sessions[sess.Token] = cp
	shard.mu.Unlock()

	return nil
}

// Delete removes the session. Unknown tokens are not an error.
func (m *MemoryStore) Delete(ctx context.Context, token string) error {
	shard := m.shard(token)

	shard.mu.Lock()
	delete(shard.sessions, token)
	shard.mu.Unlock()

	return nil
}

// Touch pushes the entry's expiry forward without touching its payload.
func (m *MemoryStore) Touch(ctx context.Context, token string, ttl time.Duration) error {
	shard := m.shard(token)

	shard.mu.Lock()
	defer shard.mu.Unlock()

	sess, exists := shard.sessions[token]
	if !exists {
		return ErrSessionNotFound
	}

	// An expired entry is absent, exactly as Get reports it; refreshing it
	// here would revive a session past its TTL.
	if sess.IsExpired() {
		delete(shard.sessions, token)
		return ErrSessionNotFound
	}

	now := time.Now()
	sess.UpdatedAt = now
	sess.ExpiresAt = now.Add(ttl)
	return nil
}

// DeleteExpired removes every expired entry and returns how many were dropped.
func (m *MemoryStore) DeleteExpired(ctx context.Context) int {
	now := time.Now()
	var removed int

	for _, shard := range m.shards {
		shard.mu.Lock()
		for token, sess := range shard.sessions {
			if now.After(sess.ExpiresAt) {
				delete(shard.sessions, token)
				removed++
			}
		}
		shard.mu.Unlock()
	}

	return removed
}

// Len reports the number of stored sessions, expired ones included.
func (m *MemoryStore) Len() int {
	var n int
	for _, shard := range m.shards {
		shard.mu.RLock()
		n += len(shard.sessions)
		shard.mu.RUnlock()
	}
	return n
}

// Close stops the background sweep. Safe to call more than once.
func (m *MemoryStore) Close() error {
	m.closeOnce.Do(func() {
		if m.ticker != nil {
			m.ticker.Stop()
		}
		close(m.done)
	})
	return nil
}

func (m *MemoryStore) sweepLoop() {
	for {
		select {
		case <-m.ticker.C:
			m.DeleteExpired(context.Background())
		case <-m.done:
			return
		}
	}
}
