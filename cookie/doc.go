// Package cookie manages HTTP cookies with fixed attribute defaults and
// HMAC-signed values.
//
// A Manager is constructed once with the attribute set every emitted cookie
// should carry (path, domain, Secure, HttpOnly, SameSite) plus one or more
// signing secrets. Per-call options then only vary what a single response
// needs, typically MaxAge.
//
//	mgr, err := cookie.New([]string{os.Getenv("COOKIE_SECRET")})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	mgr.SetSigned(w, "sid", token, cookie.WithMaxAge(3600))
//	token, err := mgr.GetSigned(r, "sid")
//
// Signed cookies carry an HMAC-SHA256 signature so clients cannot forge or
// alter them. Verification tries every configured secret, which allows
// rotating secrets without logging everyone out: put the new secret first
// and keep the old one in the list until its cookies have aged out.
//
// Delete emits a removal cookie (empty value, MaxAge -1, Expires in the
// past) using the same attribute defaults, so the browser matches it against
// the cookie being removed.
package cookie
