package middlewares

import (
	"net"
	"net/http"
	"strings"
)

// proxyHeaders are consulted in order; X-Forwarded-For contributes its first hop.
var proxyHeaders = []string{"True-Client-IP", "X-Real-IP", "X-Forwarded-For"}

// ClientIPMiddleware rewrites RemoteAddr to "IP:port" using the first valid
// proxy header so login attempts are logged against the real client.
func ClientIPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if clientIP := ClientIP(r); clientIP != "" {
			_, port, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil || port == "" {
				port = "0"
			}
			r.RemoteAddr = net.JoinHostPort(clientIP, port)
		}

		next.ServeHTTP(w, r)
	})
}

// ClientIP returns the best-effort client address without a port, or "".
func ClientIP(r *http.Request) string {
	for _, header := range proxyHeaders {
		value := r.Header.Get(header)
		if value == "" {
			continue
		}
		if first, _, found := strings.Cut(value, ","); found {
			value = first
		}
		if ip := net.ParseIP(strings.TrimSpace(value)); ip != nil {
			return ip.String()
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}

	if ip := net.ParseIP(host); ip != nil {
		return ip.String()
	}

	return ""
}
