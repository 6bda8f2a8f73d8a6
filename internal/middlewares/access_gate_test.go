package middlewares_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"supplier-admin/internal/auth"
	"supplier-admin/internal/config"
	"supplier-admin/internal/middlewares"
	"supplier-admin/internal/testutil"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultAllowList(t *testing.T) {
	allow := middlewares.DefaultAllowList()

	tests := []struct {
		path string
		want bool
	}{
		{"/login", true},
		{"/login/", false},
		{"/loginx", false},
		{"/assets/app.css", true},
		{"/assets/", true},
		{"/assets", false},
		{"/favicon.ico", true},
		{"/favicon.ico/x", false},
		{"/api/v1/health", true},
		{"/api", false},
		{"/", false},
		{"/overview", false},
		{"/logout", false},
		{"/does-not-exist", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, allow.Allows(tt.path))
		})
	}
}

func newGatedHandler(t *testing.T) (http.Handler, *testutil.TestLogHandler) {
	t.Helper()

	cfg := &config.Config{}
	logHandler := testutil.NewTestLogHandler()
	base := middlewares.NewAppContext(context.Background(), cfg, slog.New(logHandler),
		auth.NewSessionManager(cfg), nil, nil, nil)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	return middlewares.AppContextMiddleware(base)(
		middlewares.AccessGate(middlewares.DefaultAllowList())(next),
	), logHandler
}

func TestAccessGate(t *testing.T) {
	handler, _ := newGatedHandler(t)

	tests := []struct {
		name       string
		path       string
		cookie     *http.Cookie
		wantStatus int
	}{
		{name: "gated path without cookie", path: "/overview", wantStatus: http.StatusFound},
		{name: "root without cookie", path: "/", wantStatus: http.StatusFound},
		{name: "unknown path without cookie", path: "/nope", wantStatus: http.StatusFound},
		{name: "gated path with marker", path: "/overview", cookie: &http.Cookie{Name: auth.DefaultCookieName, Value: "authenticated"}, wantStatus: http.StatusTeapot},
		{name: "unknown path with marker", path: "/nope", cookie: &http.Cookie{Name: auth.DefaultCookieName, Value: "authenticated"}, wantStatus: http.StatusTeapot},
		{name: "tampered value", path: "/overview", cookie: &http.Cookie{Name: auth.DefaultCookieName, Value: "admin"}, wantStatus: http.StatusFound},
		{name: "empty value", path: "/overview", cookie: &http.Cookie{Name: auth.DefaultCookieName, Value: ""}, wantStatus: http.StatusFound},
		{name: "login is public", path: "/login", wantStatus: http.StatusTeapot},
		{name: "login is public with stale cookie", path: "/login", cookie: &http.Cookie{Name: auth.DefaultCookieName, Value: "x"}, wantStatus: http.StatusTeapot},
		{name: "assets are public", path: "/assets/app.css", wantStatus: http.StatusTeapot},
		{name: "favicon is public", path: "/favicon.ico", wantStatus: http.StatusTeapot},
		{name: "api is excluded", path: "/api/v1/health", wantStatus: http.StatusTeapot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "http://admin.example.com"+tt.path, nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusFound {
				assert.Equal(t, "/login", rr.Header().Get("Location"))
			}
		})
	}
}

func TestAccessGate_LogsRedirectAtDebug(t *testing.T) {
	handler, logs := newGatedHandler(t)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/overview", nil))

	record, ok := logs.FindRecord(slog.LevelDebug, "redirecting unauthenticated request")
	assert.True(t, ok)
	assert.Equal(t, "/overview", record.Attrs["path"])
}

func TestAccessGate_WithoutAppContext(t *testing.T) {
	handler := middlewares.AccessGate(middlewares.DefaultAllowList())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("gated request must not be forwarded")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/overview", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
