package server

import (
	"net/http"
	"supplier-admin/internal/handlers"
	"supplier-admin/internal/middlewares"
	"supplier-admin/internal/web"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func setupRouter(ctx *middlewares.AppContext) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middlewares.ClientIPMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.MetricsMiddleware)
	r.Use(middlewares.RequestLogger(ctx.Logger))
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middlewares.SecurityHeaders(ctx.Config.IsProduction()))
	r.Use(middleware.Compress(5))
	r.Use(middleware.GetHead)

	r.Use(middlewares.AppContextMiddleware(ctx))

	// router-level so unknown paths are gated too
	r.Use(middlewares.AccessGate(middlewares.DefaultAllowList()))

	r.Handle(middlewares.AssetPrefix+"*", http.StripPrefix(middlewares.AssetPrefix, web.StaticHandler()))
	r.Handle(middlewares.FaviconPath, web.FaviconHandler())

	r.Get(middlewares.LoginPath, ctx.HandlerFunc(handlers.GETLoginHandler))
	r.Post(middlewares.LoginPath, ctx.HandlerFunc(handlers.POSTLoginHandler))
	r.Post("/logout", ctx.HandlerFunc(handlers.POSTLogoutHandler))

	r.Get("/", ctx.HandlerFunc(handlers.GETRootHandler))
	r.Get(handlers.OverviewPath, ctx.HandlerFunc(handlers.GETOverviewHandler))

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   ctx.Config.CORS.AllowedOrigins,
			AllowedMethods:   ctx.Config.CORS.AllowedMethods,
			AllowedHeaders:   ctx.Config.CORS.AllowedHeaders,
			ExposedHeaders:   ctx.Config.CORS.ExposedHeaders,
			AllowCredentials: ctx.Config.CORS.AllowCredentials,
			MaxAge:           ctx.Config.CORS.MaxAgeSeconds,
		}))

		r.Route("/auth", func(r chi.Router) {
			r.Get("/status", ctx.HandlerFunc(handlers.GETAuthStatusHandler))
			r.Post("/login", ctx.HandlerFunc(handlers.POSTAPILoginHandler))
		})

		r.Route("/v1", func(r chi.Router) {
			r.Get("/health", ctx.HandlerFunc(handlers.HandlerHealth))
		})
	})

	return r
}

func setupDebugRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middlewares.ClientIPMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Mount("/debug", middleware.Profiler())

	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	return r
}
