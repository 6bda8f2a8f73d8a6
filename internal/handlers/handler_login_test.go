package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"supplier-admin/internal/auth"
	"supplier-admin/internal/config"
	"supplier-admin/internal/testutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGETLoginHandler_RendersForm(t *testing.T) {
	tc := testutil.NewTestContext(t, http.MethodGet, "/login")

	tc.CallHandler(GETLoginHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertContentType(t, "text/html; charset=utf-8")
	body := tc.Response.Body.String()
	assert.Contains(t, body, `name="password"`)
	assert.Contains(t, body, "Adgangskode")
	assert.NotContains(t, body, `class="error"`)
}

func TestGETLoginHandler_English(t *testing.T) {
	tc := testutil.NewTestContext(t, http.MethodGet, "/login").WithTranslator("en")

	tc.CallHandler(GETLoginHandler)

	tc.AssertStatus(t, http.StatusOK)
	assert.Contains(t, tc.Response.Body.String(), "Sign in")
}

func TestPOSTLoginHandler_ShouldIssueSessionOnMatch(t *testing.T) {
	tc := testutil.NewTestContextWithForm(t, "/login", url.Values{"password": {"movoit"}})

	tc.ExpectCredentialCheck("movoit", nil)
	tc.ExpectSessionIssue()

	tc.CallHandler(POSTLoginHandler)

	tc.AssertRedirect(t, http.StatusSeeOther, "/")
	tc.AssertLogContains(t, slog.LevelInfo, "admin logged in")
}

func TestPOSTLoginHandler_LogsForwardedClientIP(t *testing.T) {
	tc := testutil.NewTestContextWithForm(t, "/login", url.Values{"password": {"movoit"}}).
		WithHeader("X-Forwarded-For", "203.0.113.7, 10.0.0.1")

	tc.ExpectCredentialCheck("movoit", nil)
	tc.ExpectSessionIssue()

	tc.CallHandler(POSTLoginHandler)

	record, ok := tc.LogHandler.FindRecord(slog.LevelInfo, "admin logged in")
	require.True(t, ok)
	assert.Equal(t, "203.0.113.7", record.Attrs["ip"])
}

func TestGETLoginHandler_UnsupportedLocaleRendersDanish(t *testing.T) {
	tc := testutil.NewTestContext(t, http.MethodGet, "/login").WithTranslator("fr")

	tc.CallHandler(GETLoginHandler)

	body := tc.Response.Body.String()
	assert.Contains(t, body, `<html lang="da">`)
	assert.Contains(t, body, "Adgangskode")
	assert.NotContains(t, body, "Sign in")
}

func TestPOSTLoginHandler_ShouldRejectWrongPassword(t *testing.T) {
	tc := testutil.NewTestContextWithForm(t, "/login", url.Values{"password": {"Movoit"}})

	tc.ExpectCredentialCheck("Movoit", auth.ErrInvalidCredential)

	tc.CallHandler(POSTLoginHandler)

	tc.AssertStatus(t, http.StatusUnauthorized)
	tc.AssertContentType(t, "text/html; charset=utf-8")
	assert.Contains(t, tc.Response.Body.String(), "Forkert adgangskode")
	assert.Empty(t, tc.Response.Result().Cookies())
	tc.AssertLogContains(t, slog.LevelWarn, "rejected login attempt")
	tc.AssertNoLogValue(t, "Movoit")
}

func TestPOSTLoginHandler_ShouldHideUnexpectedErrors(t *testing.T) {
	tc := testutil.NewTestContextWithForm(t, "/login", url.Values{"password": {"movoit"}})

	tc.ExpectCredentialCheck("movoit", errors.New("hash store unavailable"))

	tc.CallHandler(POSTLoginHandler)

	tc.AssertStatus(t, http.StatusInternalServerError)
	body := tc.Response.Body.String()
	assert.Contains(t, body, "Der opstod en uventet fejl. Prøv igen.")
	assert.NotContains(t, body, "hash store unavailable")
	tc.AssertLogContains(t, slog.LevelError, "failed to check credentials")
}

func TestPOSTLoginHandler_ShouldRejectUnparsableForm(t *testing.T) {
	tc := testutil.NewTestContextWithBody(t, http.MethodPost, "/login",
		"application/x-www-form-urlencoded", strings.NewReader("password=%zz"))

	tc.CallHandler(POSTLoginHandler)

	tc.AssertStatus(t, http.StatusBadRequest)
	assert.Contains(t, tc.Response.Body.String(), "Forespørgslen kunne ikke læses.")
}

func TestPOSTLoginHandler_EndToEndWithRealCollaborators(t *testing.T) {
	cfg := &config.Config{Auth: config.AuthConfig{Password: "movoit", Locale: "da"}}

	tests := []struct {
		name       string
		password   string
		wantStatus int
		wantCookie bool
	}{
		{name: "correct secret", password: "movoit", wantStatus: http.StatusSeeOther, wantCookie: true},
		{name: "wrong case", password: "Movoit", wantStatus: http.StatusUnauthorized},
		{name: "empty", password: "", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := testutil.NewTestContextWithForm(t, "/login", url.Values{"password": {tt.password}})
			tc.WithConfig(cfg).
				WithCredentials(auth.NewCredentials(cfg.Auth)).
				WithSessionManager(auth.NewSessionManager(cfg))

			tc.CallHandler(POSTLoginHandler)

			tc.AssertStatus(t, tt.wantStatus)
			cookies := tc.Response.Result().Cookies()
			if !tt.wantCookie {
				assert.Empty(t, cookies)
				return
			}
			require.Len(t, cookies, 1)
			assert.Equal(t, auth.SessionMarkerValue, cookies[0].Value)
			assert.Equal(t, "/", tc.Response.Header().Get("Location"))
		})
	}
}
