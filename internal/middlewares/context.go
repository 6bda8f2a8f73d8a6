package middlewares

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"supplier-admin/internal/config"
	"supplier-admin/internal/i18n"
	"supplier-admin/internal/web"
)

type AppContext struct {
	context.Context
	Config         *config.Config
	Logger         *slog.Logger
	SessionManager SessionProvider
	Credentials    CredentialChecker
	Translator     *i18n.Translator
	Renderer       *web.Renderer

	Request  *http.Request
	Response http.ResponseWriter
}

type contextKey string

const appContextKey contextKey = "appContext"

func AppContextMiddleware(baseCtx *AppContext) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestCtx := &AppContext{
				Context:        r.Context(),
				Config:         baseCtx.Config,
				Logger:         baseCtx.Logger,
				SessionManager: baseCtx.SessionManager,
				Credentials:    baseCtx.Credentials,
				Translator:     baseCtx.Translator,
				Renderer:       baseCtx.Renderer,
				Response:       w,
			}

			ctx := context.WithValue(r.Context(), appContextKey, requestCtx)
			r = r.WithContext(ctx)
			requestCtx.Request = r
			next.ServeHTTP(w, r)
		})
	}
}

type AppHandler func(*AppContext)

// HandlerFunc converts AppHandler to a http.HandlerFunc
func (ctx *AppContext) HandlerFunc(h AppHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		appCtx := GetAppContext(r)
		if appCtx == nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		// chi may have wrapped the writer or request since the context was attached
		appCtx.Request = r
		appCtx.Response = w

		h(appCtx)
	}
}

func (ctx *AppContext) Redirect(url string, status int) {
	http.Redirect(ctx.Response, ctx.Request, url, status)
}

func NewAppContext(ctx context.Context, cfg *config.Config, logger *slog.Logger, sessionManager SessionProvider, credentials CredentialChecker, translator *i18n.Translator, renderer *web.Renderer) *AppContext {
	return &AppContext{
		Context:        ctx,
		Config:         cfg,
		Logger:         logger,
		SessionManager: sessionManager,
		Credentials:    credentials,
		Translator:     translator,
		Renderer:       renderer,
	}
}

func GetAppContext(r *http.Request) *AppContext {
	if ctx, ok := r.Context().Value(appContextKey).(*AppContext); ok {
		return ctx
	}

	return nil
}

func (ctx *AppContext) WriteJSON(status int, data interface{}) {
	ctx.Response.Header().Set("Content-Type", "application/json")
	ctx.Response.WriteHeader(status)
	if err := json.NewEncoder(ctx.Response).Encode(data); err != nil {
		ctx.Logger.Error("failed to marshal json", "error", err)
	}
}

func (ctx *AppContext) SetJSONError(status int, message string) {
	ctx.WriteJSON(status, map[string]string{
		"error": message,
	})
}

func (ctx *AppContext) SetJSONStatus(status int, message string) {
	ctx.WriteJSON(status, map[string]string{
		"status": message,
	})
}

// RenderPage renders an HTML page, falling back to a plain-text error if the
// template itself fails.
func (ctx *AppContext) RenderPage(status int, page string, data web.PageData) {
	if data.Tr == nil {
		data.Tr = ctx.Translator
	}

	if err := ctx.Renderer.Render(ctx.Response, status, page, data); err != nil {
		ctx.Logger.Error("failed to render page", "page", page, "error", err)
		http.Error(ctx.Response, ctx.Translator.T(i18n.KeyUnexpectedError), http.StatusInternalServerError)
	}
}

// T translates a message key into the configured locale.
func (ctx *AppContext) T(key string, args ...any) string {
	return ctx.Translator.T(key, args...)
}
