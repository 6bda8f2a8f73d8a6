package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientIPMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		remoteAddr     string
		headers        map[string]string
		expectedRemote string
	}{
		{
			name:           "direct connection keeps its port",
			remoteAddr:     "203.0.113.1:54321",
			expectedRemote: "203.0.113.1:54321",
		},
		{
			name:           "direct connection without port gets port 0",
			remoteAddr:     "203.0.113.1",
			expectedRemote: "203.0.113.1:0",
		},
		{
			name:           "true-client-ip wins over every other header",
			remoteAddr:     "10.0.0.1:12345",
			headers:        map[string]string{"True-Client-IP": "198.51.100.1", "X-Real-IP": "198.51.100.2", "X-Forwarded-For": "198.51.100.3"},
			expectedRemote: "198.51.100.1:12345",
		},
		{
			name:           "x-forwarded-for uses the first hop",
			remoteAddr:     "10.0.0.1:12345",
			headers:        map[string]string{"X-Forwarded-For": "  198.51.100.4 , 10.0.0.2"},
			expectedRemote: "198.51.100.4:12345",
		},
		{
			name:           "invalid header falls through to the next one",
			remoteAddr:     "10.0.0.1:12345",
			headers:        map[string]string{"True-Client-IP": "not-an-ip", "X-Real-IP": "198.51.100.5"},
			expectedRemote: "198.51.100.5:12345",
		},
		{
			name:           "ipv6 forwarded address",
			remoteAddr:     "10.0.0.1:12345",
			headers:        map[string]string{"X-Forwarded-For": "2001:db8::2"},
			expectedRemote: "[2001:db8::2]:12345",
		},
		{
			name:           "unparseable remote addr is left alone",
			remoteAddr:     "invalid",
			expectedRemote: "invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured string
			handler := ClientIPMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				captured = r.RemoteAddr
			}))

			req := httptest.NewRequest(http.MethodGet, "/overview", nil)
			req.RemoteAddr = tt.remoteAddr
			for key, value := range tt.headers {
				req.Header.Set(key, value)
			}

			handler.ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, tt.expectedRemote, captured)
		})
	}
}

func TestClientIP_EmptyHeadersFallBackToRemoteAddr(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "[2001:db8::1]:443"
	req.Header.Set("X-Real-IP", "")

	assert.Equal(t, "2001:db8::1", ClientIP(req))
}

func BenchmarkClientIP(b *testing.B) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.1:12345"
	req.Header.Set("X-Forwarded-For", "203.0.113.1, 10.0.0.1")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ClientIP(req)
	}
}
