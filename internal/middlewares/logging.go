package middlewares

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

var quietPaths = []PathRule{
	PathPrefix(AssetPrefix),
	ExactPath(FaviconPath),
	ExactPath("/api/v1/health"),
}

var sensitiveParams = []string{"password", "token", "secret", "code", "key"}

// RequestLogger logs one line per request once the response is written.
func RequestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if AllowList(quietPaths).Allows(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			attrs := []any{
				"method", r.Method,
				"path", sanitizePath(r.URL),
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"ip", ClientIP(r),
				"request_id", middleware.GetReqID(r.Context()),
			}

			if status >= http.StatusInternalServerError {
				logger.Warn("request", attrs...)
			} else {
				logger.Info("request", attrs...)
			}
		})
	}
}

// sanitizePath redacts credential-like query parameters.
func sanitizePath(u *url.URL) string {
	if u.RawQuery == "" {
		return u.Path
	}

	query := u.Query()
	for key := range query {
		for _, sensitive := range sensitiveParams {
			if strings.EqualFold(key, sensitive) {
				query.Set(key, "REDACTED")
			}
		}
	}

	return u.Path + "?" + query.Encode()
}
