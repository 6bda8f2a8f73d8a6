package handlers

import (
	"supplier-admin/internal/metrics"
	"supplier-admin/internal/middlewares"
)

// POSTLogoutHandler revokes the session marker; Revoke also redirects to the
// login entry point.
func POSTLogoutHandler(ctx *middlewares.AppContext) {
	ctx.SessionManager.Revoke(ctx)
	metrics.Logouts.Inc()
	ctx.Logger.Info("admin logged out", "ip", middlewares.ClientIP(ctx.Request))
}
