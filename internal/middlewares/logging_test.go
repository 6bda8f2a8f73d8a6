package middlewares

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizePath(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"/overview", "/overview"},
		{"/login?password=movoit", "/login?password=REDACTED"},
		{"/login?Password=movoit&next=%2F", "/login?Password=REDACTED&next=%2F"},
		{"/x?page=2", "/x?page=2"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			u, err := url.Parse(tt.raw)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, sanitizePath(u))
		})
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	handler := RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusFound)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/overview?token=abc", nil))
	out := buf.String()
	assert.Contains(t, out, "status=302")
	assert.Contains(t, out, "token=REDACTED")
	assert.NotContains(t, out, "abc")

	buf.Reset()
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/assets/app.css", nil))
	assert.Empty(t, buf.String())
}
