package middlewares

import (
	"net/http"
	"strings"
	"supplier-admin/internal/metrics"
)

const (
	LoginPath   = "/login"
	AssetPrefix = "/assets/"
	FaviconPath = "/favicon.ico"
	APIPrefix   = "/api/"
)

// PathRule reports whether a request path is exempt from the access gate.
type PathRule func(path string) bool

func ExactPath(p string) PathRule {
	return func(path string) bool {
		return path == p
	}
}

func PathPrefix(prefix string) PathRule {
	return func(path string) bool {
		return strings.HasPrefix(path, prefix)
	}
}

// AllowList is evaluated in order; the first matching rule wins.
type AllowList []PathRule

func (a AllowList) Allows(path string) bool {
	for _, rule := range a {
		if rule(path) {
			return true
		}
	}
	return false
}

// DefaultAllowList is the login entry point, the static asset prefix, the
// favicon and the API prefix.
func DefaultAllowList() AllowList {
	return AllowList{
		ExactPath(LoginPath),
		PathPrefix(AssetPrefix),
		ExactPath(FaviconPath),
		PathPrefix(APIPrefix),
	}
}

// AccessGate forwards allow-listed paths untouched and redirects every other
// request without a valid session marker to the login entry point. The
// redirect is path-only so the client keeps its host.
func AccessGate(allow AllowList) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if allow.Allows(r.URL.Path) {
				metrics.AccessGateDecisions.WithLabelValues(metrics.GateDecisionPublic).Inc()
				next.ServeHTTP(w, r)
				return
			}

			appCtx := GetAppContext(r)
			if appCtx == nil {
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			if !appCtx.SessionManager.IsAuthenticated(appCtx) {
				metrics.AccessGateDecisions.WithLabelValues(metrics.GateDecisionRedirect).Inc()
				appCtx.Logger.Debug("redirecting unauthenticated request", "path", r.URL.Path)
				http.Redirect(w, r, LoginPath, http.StatusFound)
				return
			}

			metrics.AccessGateDecisions.WithLabelValues(metrics.GateDecisionAllow).Inc()
			next.ServeHTTP(w, r)
		})
	}
}
