// Package session provides server-side session management for HTTP services.
//
// A Manager resolves each inbound request to a Session handle, loaded from a
// pluggable Store when the request carries a valid token and freshly issued
// otherwise, and persists the handle's final state while the response is
// written, emitting the matching Set-Cookie.
//
// # Basic usage
//
//	cookies, err := cookie.New([]string{secret})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	manager := session.New(
//		session.WithCookieManager(cookies),
//		session.WithTTL(12*time.Hour),
//	)
//
//	mux.Handle("/", manager.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
//		sess := session.MustFromContext(r.Context())
//		visits, _ := sess.GetInt("visits")
//		sess.Set("visits", visits+1)
//	})))
//
// # Lifecycle
//
// New sessions are created lazily: a request without a usable token gets a
// handle, but nothing is written to the store and no cookie is emitted until
// the handler actually mutates the session. Set, Delete and Clear mark the
// handle dirty; the middleware then saves the record with a fresh TTL and
// sets the cookie. Regenerate rotates the token on persist, moving the
// payload to a fresh identifier and deleting the old entry; call it after
// login so a token fixed beforehand grants nothing. Destroy schedules
// deletion: the store entry is removed, the client receives a removal
// cookie, and the token cannot be revived.
//
// # Stores
//
// Two backends ship with the package. MemoryStore keeps sessions in a
// sharded in-process map with lazy expiry and an optional background sweep.
// RedisStore persists JSON records under a key prefix, delegating expiry to
// Redis TTLs and pooling connections through the go-redis client, so
// sessions survive restarts and can be shared between instances.
//
// Tokens carry at least 128 bits of entropy from crypto/rand and travel in
// an HMAC-signed cookie, so neither the token nor the cookie can be forged.
// A malformed or unknown token transparently degrades to a fresh anonymous
// session; only an unreachable store fails the request.
package session
