package app

import (
	"context"
	"time"

	"github.com/osa911/portfolio/internal/config"
	"github.com/osa911/portfolio/internal/logging"
	"github.com/osa911/portfolio/internal/server/routes"
	"github.com/osa911/portfolio/internal/telemetry"
	"github.com/osa911/portfolio/internal/version"
)

// Run boots tracing, the store and the HTTP server, and blocks until ctx is
// cancelled and the server has drained
func Run(ctx context.Context, cfg *config.Config) error {
	logger := logging.GetGlobalLogger()
	logger.Info("Starting portfolio API %s in %s mode", version.GetVersionString(), cfg.Environment)

	shutdownTracer, err := telemetry.InitTracer(ctx, telemetry.Config{
		ServiceName: routes.ServiceName,
		Version:     version.Version,
		Environment: cfg.Environment,
		Endpoint:    cfg.OTLPEndpoint,
		Insecure:    cfg.OTLPInsecure,
	})
	if err != nil {
		return logging.WrapError(err, "failed to initialize tracing")
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracer(flushCtx); err != nil {
			logger.Warn("Failed to flush traces: %v", err)
		}
	}()

	a, err := New(ctx, cfg)
	if err != nil {
		return logging.WrapError(err, "failed to initialize application")
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.Close(closeCtx); err != nil {
			logger.Warn("Failed to close database: %v", err)
		}
	}()

	// Submissions still reach the operator by email while the store is down,
	// so a failed migration is not fatal
	migrateCtx, cancel := context.WithTimeout(ctx, cfg.StoreTimeout)
	if err := a.DB.Migrate(migrateCtx); err != nil {
		logger.Warn("Database not ready, contact submissions will not be stored until it is: %v", err)
	}
	cancel()

	srv, err := a.Server(ctx)
	if err != nil {
		return logging.WrapError(err, "failed to create server")
	}
	return srv.Run(ctx)
}
