package session_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sessionforge/sessionkit/session"
)

// Exercises the sharded store and the middleware under -race: many clients,
// each with its own session, hammering the same manager concurrently.
func TestConcurrentSessions(t *testing.T) {
	manager, store, cookies := setupManager(t)
	ctx := context.Background()

	const clients = 50

	handler := manager.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := session.MustFromContext(r.Context())
		n, _ := sess.GetInt("visits")
		sess.Set("visits", n+1)
	}))

	tokens := make([]string, clients)
	for i := range tokens {
		sess := newTestSession(t)
		sess.Set("client", fmt.Sprintf("client-%d", i))
		require.NoError(t, store.Save(ctx, sess))
		tokens[i] = sess.Token
	}

	var wg sync.WaitGroup
	for i := 0; i < clients; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				w := httptest.NewRecorder()
				handler.ServeHTTP(w, signedCookieRequest(t, cookies, tokens[i]))
			}
		}()
	}
	wg.Wait()

	// Every client's session stayed isolated.
	for i, token := range tokens {
		sess, err := store.Get(ctx, token)
		require.NoError(t, err)

		name, _ := sess.GetString("client")
		assert.Equal(t, fmt.Sprintf("client-%d", i), name)

		visits, _ := sess.GetInt("visits")
		assert.Equal(t, 10, visits)
	}
}

func TestConcurrentStoreAccess(t *testing.T) {
	store := session.NewMemoryStore(0)
	defer store.Close()

	ctx := context.Background()

	const workers = 20

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sess := newTestSession(t)
			for j := 0; j < 25; j++ {
				require.NoError(t, store.Save(ctx, sess))
				_, err := store.Get(ctx, sess.Token)
				require.NoError(t, err)
			}
			require.NoError(t, store.Delete(ctx, sess.Token))
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, store.Len())
}
