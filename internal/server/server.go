package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/osa911/portfolio/internal/api/handlers"
	"github.com/osa911/portfolio/internal/api/middleware"
	"github.com/osa911/portfolio/internal/config"
	"github.com/osa911/portfolio/internal/logging"
	"github.com/osa911/portfolio/internal/server/routes"

	"github.com/gin-gonic/gin"
)

// ShutdownTimeout bounds the drain of in-flight requests
const ShutdownTimeout = 10 * time.Second

// Server represents the HTTP server
type Server struct {
	router     *gin.Engine
	cfg        *config.Config
	httpServer *http.Server
	logger     *logging.Logger
}

// NewServer creates a new server instance with all routes registered
func NewServer(deps Dependencies) *Server {
	if deps.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Request logging goes through our own logger
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	router := gin.New()
	router.RedirectTrailingSlash = false
	logger := logging.GetGlobalLogger()

	routes.SetupGlobalMiddleware(router, logger, deps.Config)

	throttle := deps.Throttle
	if throttle == nil {
		throttle = middleware.NewMemoryThrottle(deps.Config.ContactRateLimit, deps.Config.ContactRateWindow)
	}

	routes.Setup(router, &routes.Handlers{
		Contact: handlers.NewContactHandler(deps.Contact),
		Project: handlers.NewProjectHandler(deps.Projects),
		Health:  handlers.NewHealthHandler(deps.Store),
	}, &routes.Middleware{
		ContactThrottle: middleware.ContactThrottle(throttle),
		RequireAdmin:    middleware.RequireAdmin(deps.Admin),
	}, deps.Config)

	s := &Server{
		router: router,
		cfg:    deps.Config,
		logger: logger,
	}
	s.httpServer = &http.Server{
		Addr:              ":" + deps.Config.Port,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return s
}

// Handler returns the root handler, with trailing slashes stripped before routing
func (s *Server) Handler() http.Handler {
	return stripTrailingSlash(s.router)
}

// Run serves until ctx is cancelled, then drains in-flight requests
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Server running on port %s (%s mode)", s.cfg.Port, s.cfg.Environment)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.logger.Info("Server stopped")
	return nil
}

func stripTrailingSlash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if path := r.URL.Path; len(path) > 1 && strings.HasSuffix(path, "/") {
			r.URL.Path = strings.TrimRight(path, "/")
			if r.URL.Path == "" {
				r.URL.Path = "/"
			}
			r.URL.RawPath = ""
		}
		next.ServeHTTP(w, r)
	})
}
