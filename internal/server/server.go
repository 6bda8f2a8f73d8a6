package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"supplier-admin/internal/auth"
	"supplier-admin/internal/config"
	"supplier-admin/internal/i18n"
	"supplier-admin/internal/middlewares"
	"supplier-admin/internal/version"
	"supplier-admin/internal/web"
	"syscall"
	"time"

	"github.com/google/uuid"
)

const shutdownTimeout = 30 * time.Second

type Server struct {
	cfg            *config.Config
	logger         *slog.Logger
	appCtx         *middlewares.AppContext
	sessionManager *auth.SessionManager
	httpServer     *http.Server
	debugServer    *http.Server
	instanceID     string
	cancel         context.CancelFunc
}

func New(cfg *config.Config) (*Server, error) {
	logger := setupLogger(cfg, os.Stderr)

	translator, err := i18n.NewTranslator(cfg.Auth.Locale)
	if err != nil {
		return nil, fmt.Errorf("failed to set up translations: %w", err)
	}

	renderer, err := web.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to set up templates: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	sessionManager := auth.NewSessionManager(cfg)

	appCtx := middlewares.NewAppContext(
		ctx,
		cfg,
		logger,
		sessionManager,
		auth.NewCredentials(cfg.Auth),
		translator,
		renderer,
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           setupRouter(appCtx),
		ReadHeaderTimeout: 10 * time.Second,
	}

	var debugServer *http.Server
	if cfg.Server.Debug.Enabled {
		debugServer = &http.Server{
			Addr:              fmt.Sprintf("%s:%d", cfg.Server.Debug.Host, cfg.Server.Debug.Port),
			Handler:           setupDebugRouter(),
			ReadHeaderTimeout: 10 * time.Second,
		}
	}

	instanceID := os.Getenv("HOSTNAME")
	if instanceID == "" {
		instanceID = uuid.New().String()
	}

	return &Server{
		cfg:            cfg,
		logger:         logger,
		appCtx:         appCtx,
		sessionManager: sessionManager,
		httpServer:     server,
		debugServer:    debugServer,
		instanceID:     instanceID,
		cancel:         cancel,
	}, nil
}

// Handler exposes the fully wired router.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start serves until SIGINT/SIGTERM or a listener failure, then shuts down
// gracefully.
func (s *Server) Start() error {
	if s.cfg.Auth.UsingDefaultPassword {
		s.logger.Warn("no admin password configured, using the development default",
			"env", config.EnvPrefix+"PASSWORD")
	}

	go func() {
		s.logger.Info("Server Started",
			"port", s.cfg.Server.Port,
			"instance", s.instanceID,
			"environment", s.cfg.Server.Environment,
			"version", version.String(),
			"session_cookie", s.sessionManager.CookieName(),
		)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server failed to start", "error", err)
			s.cancel()
		}
	}()

	if s.debugServer != nil {
		go func() {
			s.logger.Info("Debug server starting", "address", s.debugServer.Addr)
			if err := s.debugServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				s.logger.Error("Debug server failed to start", "error", err)
				s.cancel()
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case <-quit:
		s.logger.Info("Shutdown signal received")
	case <-s.appCtx.Done():
		s.logger.Info("Context canceled")
	}

	return s.Shutdown()
}

func (s *Server) Shutdown() error {
	defer s.cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	s.logger.Info("Shutting Down Server")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("Server forced to shutdown", "error", err)
		return err
	}

	if s.debugServer != nil {
		if err := s.debugServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Debug server forced to shutdown", "error", err)
		}
	}

	s.logger.Info("Server Exited")
	return nil
}
