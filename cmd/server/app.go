package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/tastypoint/account-api/internal/config"
	"github.com/tastypoint/account-api/internal/platform/postgres"
	"github.com/tastypoint/account-api/internal/service"
	"github.com/tastypoint/account-api/internal/service/auth"
	"github.com/tastypoint/account-api/internal/store"
)

// application holds the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userService  service.UserService
	tokenService auth.TokenService
}

// newApplication wires up stores and services from the loaded
// configuration and an open database handle.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	tokenService, err := auth.NewTokenService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	userStore := postgres.NewPostgresUserStore(db, logger)
	txRunner := store.NewSQLRunner(db)
	hasher := auth.NewBcryptHasher(0)

	userService := service.NewUserService(userStore, txRunner, hasher, tokenService, logger)

	return &application{
		config:       cfg,
		logger:       logger,
		db:           db,
		userService:  userService,
		tokenService: tokenService,
	}, nil
}

// Run starts the HTTP server and blocks until the context is cancelled,
// then shuts the server down gracefully.
func (app *application) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", app.config.Server.Port),
		Handler:           app.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info("starting HTTP server", "port", app.config.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	app.logger.Info("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	return nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database", "error", err)
		}
	}
}
