package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sessionforge/sessionkit/cookie"
)

const (
	secretA = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	secretB = "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
)

func requestWith(w *httptest.ResponseRecorder) *http.Request {
	r := httptest.NewRequest("GET", "/", nil)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func TestNew(t *testing.T) {
	t.Run("valid secret", func(t *testing.T) {
		m, err := cookie.New([]string{secretA})
		require.NoError(t, err)
		assert.NotNil(t, m)
	})

	t.Run("no secrets", func(t *testing.T) {
		_, err := cookie.New(nil)
		assert.ErrorIs(t, err, cookie.ErrNoSecret)

		_, err = cookie.New([]string{"", ""})
		assert.ErrorIs(t, err, cookie.ErrNoSecret)
	})

	t.Run("short secret", func(t *testing.T) {
		_, err := cookie.New([]string{"too-short"})
		assert.ErrorIs(t, err, cookie.ErrSecretTooShort)
	})

	t.Run("short rotated secret", func(t *testing.T) {
		_, err := cookie.New([]string{secretA, "short"})
		assert.ErrorIs(t, err, cookie.ErrSecretTooShort)
	})
}

func TestSetGet(t *testing.T) {
	m, err := cookie.New([]string{secretA})
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		w := httptest.NewRecorder()
		require.NoError(t, m.Set(w, "name", "value"))

		got, err := m.Get(requestWith(w), "name")
		require.NoError(t, err)
		assert.Equal(t, "value", got)
	})

	t.Run("default attributes", func(t *testing.T) {
		w := httptest.NewRecorder()
		require.NoError(t, m.Set(w, "name", "value"))

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "/", cookies[0].Path)
		assert.True(t, cookies[0].HttpOnly)
		assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
		assert.False(t, cookies[0].Secure)
	})

	t.Run("constructor options become defaults", func(t *testing.T) {
		m, err := cookie.New([]string{secretA},
			cookie.WithSecure(true),
			cookie.WithDomain("example.com"),
			cookie.WithSameSite(http.SameSiteStrictMode),
		)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		require.NoError(t, m.Set(w, "name", "value"))

		c := w.Result().Cookies()[0]
		assert.True(t, c.Secure)
		assert.Equal(t, "example.com", c.Domain)
		assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
	})

	t.Run("per-call options override defaults", func(t *testing.T) {
		w := httptest.NewRecorder()
		require.NoError(t, m.Set(w, "name", "value", cookie.WithMaxAge(3600), cookie.WithPath("/app")))

		c := w.Result().Cookies()[0]
		assert.Equal(t, 3600, c.MaxAge)
		assert.Equal(t, "/app", c.Path)
	})

	t.Run("missing cookie", func(t *testing.T) {
		_, err := m.Get(httptest.NewRequest("GET", "/", nil), "absent")
		assert.ErrorIs(t, err, cookie.ErrCookieNotFound)
	})
}

func TestDelete(t *testing.T) {
	m, err := cookie.New([]string{secretA})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	m.Delete(w, "name")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Equal(t, -1, cookies[0].MaxAge)
	assert.True(t, cookies[0].Expires.Before(time.Now()))
}

func TestSigned(t *testing.T) {
	m, err := cookie.New([]string{secretA})
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		w := httptest.NewRecorder()
		require.NoError(t, m.SetSigned(w, "name", "value"))

		got, err := m.GetSigned(requestWith(w), "name")
		require.NoError(t, err)
		assert.Equal(t, "value", got)
	})

	t.Run("value is not stored in the clear", func(t *testing.T) {
		w := httptest.NewRecorder()
		require.NoError(t, m.SetSigned(w, "name", "value"))
		assert.NotEqual(t, "value", w.Result().Cookies()[0].Value)
	})

	t.Run("tampered value is rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		require.NoError(t, m.SetSigned(w, "name", "value"))

		c := w.Result().Cookies()[0]
		encoded, sig, ok := strings.Cut(c.Value, ".")
		require.True(t, ok)

		// Swap in a different payload and keep the original signature.
		forged := strings.Replace(encoded, encoded[:1], "X", 1) + "." + sig
		r := httptest.NewRequest("GET", "/", nil)
		r.AddCookie(&http.Cookie{Name: "name", Value: forged})

		_, err := m.GetSigned(r, "name")
		assert.Error(t, err)
	})

	t.Run("unsigned value is rejected", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		r.AddCookie(&http.Cookie{Name: "name", Value: "just-a-value"})

		_, err := m.GetSigned(r, "name")
		assert.ErrorIs(t, err, cookie.ErrInvalidFormat)
	})

	t.Run("foreign key is rejected", func(t *testing.T) {
		other, err := cookie.New([]string{secretB})
		require.NoError(t, err)

		w := httptest.NewRecorder()
		require.NoError(t, other.SetSigned(w, "name", "value"))

		_, err = m.GetSigned(requestWith(w), "name")
		assert.ErrorIs(t, err, cookie.ErrInvalidSignature)
	})
}

func TestSecretRotation(t *testing.T) {
	old, err := cookie.New([]string{secretA})
	require.NoError(t, err)

	// Cookie issued before the rotation.
	w := httptest.NewRecorder()
	require.NoError(t, old.SetSigned(w, "name", "value"))

	// New deployments sign with secretB but still accept secretA.
	rotated, err := cookie.New([]string{secretB, secretA})
	require.NoError(t, err)

	got, err := rotated.GetSigned(requestWith(w), "name")
	require.NoError(t, err)
	assert.Equal(t, "value", got)

	// Once secretA is dropped entirely, its cookies stop verifying.
	final, err := cookie.New([]string{secretB})
	require.NoError(t, err)

	_, err = final.GetSigned(requestWith(w), "name")
	assert.ErrorIs(t, err, cookie.ErrInvalidSignature)
}
