package handlers

import (
	"net/http"
	"supplier-admin/internal/middlewares"
)

type AuthStatusResponse struct {
	Authenticated bool `json:"authenticated"`
}

func GETAuthStatusHandler(ctx *middlewares.AppContext) {
	if !ctx.SessionManager.IsAuthenticated(ctx) {
		ctx.WriteJSON(http.StatusUnauthorized, AuthStatusResponse{Authenticated: false})
		return
	}

	ctx.WriteJSON(http.StatusOK, AuthStatusResponse{Authenticated: true})
}
