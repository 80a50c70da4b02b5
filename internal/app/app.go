package app

import (
	"context"
	"fmt"
	"time"

	"github.com/osa911/portfolio/internal/api/middleware"
	"github.com/osa911/portfolio/internal/config"
	"github.com/osa911/portfolio/internal/config/firebase"
	"github.com/osa911/portfolio/internal/db"
	"github.com/osa911/portfolio/internal/logging"
	"github.com/osa911/portfolio/internal/mailer"
	"github.com/osa911/portfolio/internal/server"
	"github.com/osa911/portfolio/internal/service"

	"github.com/redis/go-redis/v9"
)

// ContactThrottlePrefix namespaces the shared contact throttle counters
const ContactThrottlePrefix = "portfolio:contact"

// App holds the long-lived collaborators shared by the server and the admin CLI
type App struct {
	Config   *config.Config
	DB       *db.Database
	Mailer   *mailer.Mailer
	Contacts *service.ContactService
	Projects *service.ProjectService

	redis *redis.Client
}

// New connects the store and builds the services
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.GetGlobalLogger()

	database, err := db.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	logger.Info("Using %s store", database.Backend())

	m, err := NewMailer(cfg)
	if err != nil {
		_ = database.Close(ctx)
		return nil, err
	}

	var opts []service.ContactOption
	if cfg.TelegramBotToken != "" && cfg.TelegramChatID != "" {
		opts = append(opts, service.WithChatNotifier(service.NewTelegramService(cfg.TelegramBotToken, cfg.TelegramChatID, "")))
		logger.Info("Telegram notifications enabled")
	}
	if cfg.RecaptchaSecret != "" {
		opts = append(opts, service.WithCaptcha(service.NewRecaptchaService(cfg.RecaptchaSecret, ""), cfg.RecaptchaMinScore))
		logger.Info("reCAPTCHA verification enabled (min score %.2f)", cfg.RecaptchaMinScore)
	}

	contacts := service.NewContactService(database.Contacts, m, service.ContactServiceConfig{
		Recipient:    cfg.Recipient(),
		StoreTimeout: cfg.StoreTimeout,
		MailTimeout:  cfg.MailTimeout,
	}, opts...)

	return &App{
		Config:   cfg,
		DB:       database,
		Mailer:   m,
		Contacts: contacts,
		Projects: service.NewProjectService(database.Projects),
	}, nil
}

// NewMailer builds the SMTP relay client from configuration
func NewMailer(cfg *config.Config) (*mailer.Mailer, error) {
	return mailer.New(mailer.Config{
		Service:  cfg.EmailService,
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.EmailUser,
		Password: cfg.EmailPassword,
		Timeout:  cfg.MailTimeout,
	})
}

// Throttle returns the per-client contact throttle.
// Redis is used when REDIS_URL is set and reachable; otherwise limits are per process.
func (a *App) Throttle(ctx context.Context) middleware.Throttle {
	logger := logging.GetGlobalLogger()
	cfg := a.Config

	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Warn("Invalid REDIS_URL, using in-memory contact throttle: %v", err)
		} else {
			client := redis.NewClient(opts)
			pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := client.Ping(pingCtx).Err()
			cancel()
			if err == nil {
				a.redis = client
				logger.Info("Contact throttle backed by Redis (%d per %s)", cfg.ContactRateLimit, cfg.ContactRateWindow)
				return middleware.NewRedisThrottle(client, ContactThrottlePrefix, cfg.ContactRateLimit, cfg.ContactRateWindow)
			}
			logger.Warn("Redis unreachable, using in-memory contact throttle: %v", err)
			_ = client.Close()
		}
	}

	logger.Info("Contact throttle in memory (%d per %s)", cfg.ContactRateLimit, cfg.ContactRateWindow)
	return middleware.NewMemoryThrottle(cfg.ContactRateLimit, cfg.ContactRateWindow)
}

// AdminConfig builds the guard for project writes
func (a *App) AdminConfig(ctx context.Context) (middleware.AdminConfig, error) {
	cfg := a.Config
	admin := middleware.AdminConfig{
		AdminUIDs:   cfg.AdminUIDs,
		StaticToken: cfg.AdminToken,
	}

	if cfg.FirebaseCredentialsFile != "" {
		verifier, err := firebase.NewVerifier(ctx, cfg.FirebaseCredentialsFile)
		if err != nil {
			return admin, fmt.Errorf("failed to initialize Firebase: %w", err)
		}
		admin.Verifier = verifier
		logging.GetGlobalLogger().Info("Firebase admin authentication enabled")
	}
	return admin, nil
}

// Server wires the HTTP server onto the app's services
func (a *App) Server(ctx context.Context) (*server.Server, error) {
	admin, err := a.AdminConfig(ctx)
	if err != nil {
		return nil, err
	}

	return server.NewServer(server.Dependencies{
		Config:   a.Config,
		Store:    a.DB,
		Contact:  a.Contacts,
		Projects: a.Projects,
		Throttle: a.Throttle(ctx),
		Admin:    admin,
	}), nil
}

// Close releases the store and Redis connections
func (a *App) Close(ctx context.Context) error {
	if a.redis != nil {
		_ = a.redis.Close()
	}
	return a.DB.Close(ctx)
}
