package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-backend/internal/bootstrap"
	"portfolio-backend/internal/config"
	"portfolio-backend/internal/infrastructure/database/migrations"
	"portfolio-backend/pkg/container"
	"portfolio-backend/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// Serve runs the API until SIGINT or SIGTERM.
func Serve(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================
	// 1. BUILD DI CONTAINER
	// ========================================
	app, err := container.NewContainer(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	defer app.Cleanup()

	// ========================================
	// 2. SCHEMA + SEED DATA
	// ========================================
	if err := migrations.Up(app.DB.Pool); err != nil {
		return err
	}
	if _, err := bootstrap.Run(ctx, app.UserService, app.SettingsService, cfg.Admin); err != nil {
		return err
	}

	// ========================================
	// 3. CONFIGURE HTTP SERVER
	// ========================================
	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           SetupRouter(app),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	// ========================================
	// 4. START SERVER (NON-BLOCKING)
	// ========================================
	serveErr := make(chan error, 1)
	go func() {
		logger.Info("[SERVER] listening", map[string]interface{}{
			"addr": srv.Addr,
			"env":  cfg.App.Environment,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// ========================================
	// 5. GRACEFUL SHUTDOWN
	// ========================================
	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("[SERVER] shutting down", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Info("[SERVER] exited gracefully", nil)
	return nil
}
