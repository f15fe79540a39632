package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/amirasaad/fxconv/infra/initializer"
	"github.com/amirasaad/fxconv/pkg/app"
	"github.com/amirasaad/fxconv/pkg/config"
	"github.com/amirasaad/fxconv/webapi"
	log "github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := run(ctx); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	fiberApp, a, err := setup(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close() //nolint:errcheck

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger := a.Deps.Logger
	logger.Info("Starting server",
		"env", cfg.Env,
		"address", addr,
		"scheme", cfg.Server.Scheme,
	)

	errCh := make(chan error, 1)
	go func() { errCh <- fiberApp.Listen(addr) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("Shutting down server")
		return fiberApp.ShutdownWithTimeout(shutdownTimeout)
	}
}

// setup wires dependencies and routes for cfg.
func setup(ctx context.Context, cfg *config.App) (*fiber.App, *app.App, error) {
	deps, err := initializer.InitializeDependencies(ctx, cfg, os.Stdout)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	a := app.New(deps, cfg)
	slog.Debug("Application wired", "language", deps.Language.String())
	return webapi.SetupApp(a), a, nil
}
