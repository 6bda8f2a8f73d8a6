package handlers

import (
	"errors"
	"net/http"
	"supplier-admin/internal/auth"
	"supplier-admin/internal/i18n"
	"supplier-admin/internal/metrics"
	"supplier-admin/internal/middlewares"
	"supplier-admin/internal/web"
)

const passwordField = "password"

func GETLoginHandler(ctx *middlewares.AppContext) {
	renderLogin(ctx, http.StatusOK, "")
}

// POSTLoginHandler checks the submitted secret and, on a match, issues the
// session marker and sends the client to the root path. Every failure
// re-renders the form with a localized message.
func POSTLoginHandler(ctx *middlewares.AppContext) {
	if err := ctx.Request.ParseForm(); err != nil {
		ctx.Logger.Warn("failed to parse login form", "error", err)
		renderLogin(ctx, http.StatusBadRequest, ctx.T(i18n.KeyInvalidRequest))
		return
	}

	status, message := authenticate(ctx, ctx.Request.PostFormValue(passwordField))
	if status != http.StatusOK {
		renderLogin(ctx, status, message)
		return
	}

	ctx.Redirect("/", http.StatusSeeOther)
}

// authenticate runs the credential check and issues the session on success.
// It returns the status to respond with and, on failure, the localized
// message for the user.
func authenticate(ctx *middlewares.AppContext, submitted string) (int, string) {
	err := ctx.Credentials.Check(submitted)
	switch {
	case err == nil:
		ctx.SessionManager.Issue(ctx)
		metrics.LoginAttempts.WithLabelValues(metrics.LoginResultSuccess).Inc()
		ctx.Logger.Info("admin logged in", "ip", middlewares.ClientIP(ctx.Request))
		return http.StatusOK, ""
	case errors.Is(err, auth.ErrInvalidCredential):
		metrics.LoginAttempts.WithLabelValues(metrics.LoginResultInvalid).Inc()
		ctx.Logger.Warn("rejected login attempt", "ip", middlewares.ClientIP(ctx.Request))
		return http.StatusUnauthorized, ctx.T(i18n.KeyInvalidPassword)
	default:
		metrics.LoginAttempts.WithLabelValues(metrics.LoginResultError).Inc()
		ctx.Logger.Error("failed to check credentials", "error", err)
		return http.StatusInternalServerError, ctx.T(i18n.KeyUnexpectedError)
	}
}

func renderLogin(ctx *middlewares.AppContext, status int, message string) {
	ctx.RenderPage(status, web.PageLogin, web.PageData{
		Title: ctx.T(i18n.KeyLoginTitle),
		Error: message,
	})
}
