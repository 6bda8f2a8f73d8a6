package auth

import (
	"net/http"
	"supplier-admin/internal/config"
	"supplier-admin/internal/middlewares"
	"time"
)

// SessionManager writes and reads the client-held session marker cookie.
// There is no server-side session state.
type SessionManager struct {
	cookieName string
	lifetime   time.Duration
	secure     bool
	now        func() time.Time
}

func NewSessionManager(cfg *config.Config) *SessionManager {
	name := cfg.Sessions.Name
	if name == "" {
		name = DefaultCookieName
	}

	lifetime := cfg.Sessions.Lifetime
	if lifetime <= 0 {
		lifetime = DefaultSessionLifetime
	}

	return &SessionManager{
		cookieName: name,
		lifetime:   lifetime,
		secure:     cfg.IsProduction(),
		now:        time.Now,
	}
}

func (s *SessionManager) CookieName() string {
	return s.cookieName
}

// Issue sets the session marker. Call it only after a successful credential check.
func (s *SessionManager) Issue(ctx *middlewares.AppContext) {
	http.SetCookie(ctx.Response, &http.Cookie{
		Name:     s.cookieName,
		Value:    SessionMarkerValue,
		Path:     CookiePath,
		MaxAge:   int(s.lifetime.Seconds()),
		Expires:  s.now().Add(s.lifetime),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Revoke deletes the session marker and redirects to the login entry point.
func (s *SessionManager) Revoke(ctx *middlewares.AppContext) {
	http.SetCookie(ctx.Response, &http.Cookie{
		Name:     s.cookieName,
		Value:    "",
		Path:     CookiePath,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})

	ctx.Redirect(middlewares.LoginPath, http.StatusSeeOther)
}

// IsAuthenticated treats a missing, malformed or mismatched cookie the same way.
func (s *SessionManager) IsAuthenticated(ctx *middlewares.AppContext) bool {
	if ctx.Request == nil {
		return false
	}

	cookie, err := ctx.Request.Cookie(s.cookieName)
	if err != nil {
		return false
	}

	return cookie.Value == SessionMarkerValue
}

var (
	_ middlewares.SessionProvider   = (*SessionManager)(nil)
	_ middlewares.CredentialChecker = (*Credentials)(nil)
)
