package handlers

import (
	"net/http"
	"supplier-admin/internal/middlewares"
	"supplier-admin/internal/version"
)

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func HandlerHealth(ctx *middlewares.AppContext) {
	ctx.WriteJSON(http.StatusOK, HealthResponse{
		Status:  "OK",
		Version: version.Version,
	})
}
