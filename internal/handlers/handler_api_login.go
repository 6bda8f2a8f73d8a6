package handlers

import (
	"encoding/json"
	"net/http"
	"supplier-admin/internal/i18n"
	"supplier-admin/internal/middlewares"
)

// maxLoginBodyBytes bounds the JSON login payload.
const maxLoginBodyBytes = 4 << 10

type LoginRequest struct {
	Password string `json:"password"`
}

// POSTAPILoginHandler is the JSON twin of POSTLoginHandler for scripted
// clients. It sets the same session marker cookie.
func POSTAPILoginHandler(ctx *middlewares.AppContext) {
	var req LoginRequest

	body := http.MaxBytesReader(ctx.Response, ctx.Request.Body, maxLoginBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		ctx.Logger.Warn("failed to decode login request", "error", err)
		ctx.SetJSONError(http.StatusBadRequest, ctx.T(i18n.KeyInvalidRequest))
		return
	}

	status, message := authenticate(ctx, req.Password)
	if status != http.StatusOK {
		ctx.SetJSONError(status, message)
		return
	}

	ctx.SetJSONStatus(http.StatusOK, "OK")
}
