// Package cookie writes and reads the small, tamper-evident cookies used to
// remember a visitor's device preference.
//
// Values are stored as base64(value) + "|" + base64(HMAC-SHA256(value)). A cookie
// whose signature does not verify is treated the same as a missing cookie by
// callers, so a visitor cannot forge a preference for someone else's browser
// and a rotated key silently drops old preferences only once every secret that
// signed them has been removed.
//
// # Usage
//
//	man, err := cookie.New([]string{os.Getenv("COOKIE_SECRETS")}, cookie.WithMaxAge(365*24*3600))
//	if err != nil { ... }
//
//	_ = man.SetSigned(w, "device_preference", "mobile")
//
//	if c, err := r.Cookie("device_preference"); err == nil {
//	    value, err := man.Verify(c.Value)
//	    ...
//	}
//
// # Key rotation
//
// Several secrets may be configured. The first one signs new cookies, all of
// them are tried when verifying.
//
// # Configuration
//
// Config binds COOKIE_* environment variables through github.com/caarlos0/env;
// NewFromConfig only applies non-zero fields.
package cookie
