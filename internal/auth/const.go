package auth

import "time"

const (
	// SessionMarkerValue is the literal cookie value treated as proof of a
	// successful login. It is not signed and carries no identity.
	SessionMarkerValue = "authenticated"

	DefaultCookieName = "supplier_admin_session"
	CookiePath        = "/"

	// DefaultSessionLifetime gives a Max-Age of 604800 seconds.
	DefaultSessionLifetime = 7 * 24 * time.Hour
)
