// Package cookie reads and writes HTTP cookies with shared defaults and
// HMAC-SHA256 signing.
//
// Signed values are stored as base64url(value) "." base64url(mac). Several
// secrets may be configured: the first signs, every one verifies, which
// allows rotating secrets without dropping live sessions.
//
// The donor forms use it for one thing: an anonymous, signed browser
// session id that pending notifications are stored under.
//
//	cookies, err := cookie.NewFromConfig(cfg)
//	if err != nil {
//		return err
//	}
//	sid := cookies.SessionID(w, r)
package cookie
