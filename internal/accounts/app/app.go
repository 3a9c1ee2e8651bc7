package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aussiebroadwan/accounts/internal/accounts/breach"
	"github.com/aussiebroadwan/accounts/internal/accounts/deliverability"
	httpapi "github.com/aussiebroadwan/accounts/internal/accounts/http"
	"github.com/aussiebroadwan/accounts/internal/accounts/mail"
	"github.com/aussiebroadwan/accounts/internal/accounts/service"
	"github.com/aussiebroadwan/accounts/internal/accounts/store"
	"github.com/aussiebroadwan/accounts/internal/accounts/store/drivers/sqlite"
	"github.com/aussiebroadwan/accounts/pkg/cryptox"
	"github.com/aussiebroadwan/accounts/pkg/jwtx"
	"github.com/aussiebroadwan/accounts/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the accounts service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db     store.Store
	minter *jwtx.SessionMinter

	// Services
	accountService      *service.AccountService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "accounts-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	// Set pepper path for password hashing
	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initMinter()
	if err := app.initServices(); err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	// Start housekeeping service
	app.housekeepingService.Start()

	app.logger.Info("accounts service starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down accounts service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	// Shutdown the HTTP server
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	// Stop the housekeeping service
	app.housekeepingService.Stop()

	// Close database connection
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("accounts service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initMinter initializes the session token minter. Without a configured
// secret, sessions do not survive a restart.
func (app *Application) initMinter() {
	secret := app.cfg.SessionSecret
	if secret == "" {
		secret = cryptox.MustGenerateToken(cryptox.TokenSize256)
		app.logger.Warn("no session secret configured, generated an ephemeral one")
	}

	app.minter = &jwtx.SessionMinter{
		Secret: []byte(secret),
		Issuer: app.cfg.Issuer,
		TTL:    app.cfg.SessionTTL,
	}
}

// initServices initializes all business logic services
func (app *Application) initServices() error {
	mailer, err := app.buildMailer()
	if err != nil {
		return err
	}

	var verifier deliverability.Verifier
	if app.cfg.DeliverabilityURL != "" {
		verifier = deliverability.NewClient(app.cfg.DeliverabilityURL, app.cfg.DeliverabilityAPIKey)
	} else {
		verifier = deliverability.Disabled()
		app.logger.Info("deliverability verifier not configured, relying on local typo detection")
	}

	svcCfg := service.Config{
		VerifyEmailTTL:        app.cfg.VerifyEmailTTL,
		MagicLinkTTL:          app.cfg.MagicLinkTTL,
		ResetPasswordTTL:      app.cfg.ResetPasswordTTL,
		VerifiedRenewalWindow: app.cfg.VerifiedRenewalWindow,
	}

	app.accountService = service.NewAccountService(
		app.db,
		mailer,
		breach.NewClient(app.cfg.BreachBaseURL),
		verifier,
		svcCfg,
	)

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
		svcCfg,
	)

	return nil
}

// buildMailer returns an SMTP mailer when a relay is configured, otherwise a
// disabled one that fails every send with a clear reason.
func (app *Application) buildMailer() (mail.Mailer, error) {
	if app.cfg.SMTPHost == "" {
		app.logger.Warn("smtp not configured, outgoing mail is disabled")
		return mail.NewDisabledMailer("smtp not configured"), nil
	}

	mailer, err := mail.NewSMTPMailer(mail.SMTPConfig{
		Host:     app.cfg.SMTPHost,
		Port:     app.cfg.SMTPPort,
		Username: app.cfg.SMTPUsername,
		Password: app.cfg.SMTPPassword,
		From:     app.cfg.SMTPFrom,
		FromName: app.cfg.SMTPFromName,
		UseTLS:   app.cfg.SMTPUseTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize smtp mailer: %w", err)
	}
	return mailer, nil
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.minter,
		app.cfg.BaseURL,
		BuildVersion,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.AccountService = app.accountService
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
