package handlers

import (
	"log/slog"
	"net/http"
	"supplier-admin/internal/auth"
	"supplier-admin/internal/config"
	"supplier-admin/internal/testutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPOSTLogoutHandler_ShouldRevokeSession(t *testing.T) {
	tc := testutil.NewTestContext(t, http.MethodPost, "/logout")

	tc.ExpectSessionRevoke()

	tc.CallHandler(POSTLogoutHandler)

	tc.AssertLogContains(t, slog.LevelInfo, "admin logged out")
	tc.AssertLogCount(t, slog.LevelInfo, 1)
}

func TestPOSTLogoutHandler_ClearsCookieAndRedirects(t *testing.T) {
	cfg := &config.Config{}
	tc := testutil.NewTestContext(t, http.MethodPost, "/logout").
		WithSessionManager(auth.NewSessionManager(cfg))

	tc.CallHandler(POSTLogoutHandler)

	tc.AssertRedirect(t, http.StatusSeeOther, "/login")
	cookies := tc.Response.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Less(t, cookies[0].MaxAge, 0)
}
