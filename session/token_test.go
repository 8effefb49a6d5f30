package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sessionforge/sessionkit/session"
)

func TestGenerateToken(t *testing.T) {
	t.Run("default length", func(t *testing.T) {
		token, err := session.GenerateToken(session.DefaultTokenLength)
		require.NoError(t, err)
		assert.True(t, session.ValidToken(token, session.DefaultTokenLength))
	})

	t.Run("raises short lengths to the minimum", func(t *testing.T) {
		token, err := session.GenerateToken(1)
		require.NoError(t, err)
		assert.True(t, session.ValidToken(token, session.MinTokenLength))
	})

	t.Run("no collisions across a large sample", func(t *testing.T) {
		const n = 10000
		seen := make(map[string]struct{}, n)
		for i := 0; i < n; i++ {
			token, err := session.GenerateToken(session.DefaultTokenLength)
			require.NoError(t, err)
			_, dup := seen[token]
			require.False(t, dup, "duplicate token generated")
			seen[token] = struct{}{}
		}
	})
}

func TestValidToken(t *testing.T) {
	token, err := session.GenerateToken(32)
	require.NoError(t, err)

	t.Run("accepts generated tokens", func(t *testing.T) {
		assert.True(t, session.ValidToken(token, 32))
	})

	t.Run("rejects wrong length", func(t *testing.T) {
		assert.False(t, session.ValidToken(token[:10], 32))
		assert.False(t, session.ValidToken(token+"A", 32))
		assert.False(t, session.ValidToken("", 32))
	})

	t.Run("rejects invalid charset", func(t *testing.T) {
		bad := "!" + token[1:]
		assert.False(t, session.ValidToken(bad, 32))
	})

	t.Run("rejects standard base64 padding", func(t *testing.T) {
		assert.False(t, session.ValidToken(token[:len(token)-1]+"=", 32))
	})
}
