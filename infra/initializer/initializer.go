package initializer

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	infra_provider "github.com/amirasaad/fxconv/infra/provider"
	"github.com/amirasaad/fxconv/infra/provider/exchangeratehost"
	"github.com/amirasaad/fxconv/infra/provider/frankfurter"
	"github.com/amirasaad/fxconv/infra/themestore"
	"github.com/amirasaad/fxconv/pkg/app"
	"github.com/amirasaad/fxconv/pkg/config"
	"github.com/amirasaad/fxconv/pkg/i18n"
	"github.com/amirasaad/fxconv/pkg/provider"
)

// InitializeDependencies initializes all the application dependencies.
// Logs go to logOut (stdout when nil).
func InitializeDependencies(
	ctx context.Context,
	cfg *config.App,
	logOut io.Writer,
) (deps *app.Deps, err error) {
	logger := SetupLogger(cfg.Log, logOut)
	deps = &app.Deps{Logger: logger}

	deps.Rates = NewProviderChain(cfg.Provider, logger)

	store, closeStore, err := themestore.Open(ctx, ThemeStoreOptions(cfg), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize theme store: %w", err)
	}
	deps.ThemeStore = store
	deps.Close = closeStore

	deps.Language = i18n.FromEnv(cfg.Locale)

	logger.Debug("Dependencies initialized",
		"rates", deps.Rates.Name(),
		"store", cfg.Theme.Store,
		"language", deps.Language.String(),
	)
	return deps, nil
}

// NewProviderChain builds exchangerate.host followed by frankfurter.app.
func NewProviderChain(cfg *config.Provider, logger *slog.Logger) *provider.Chain {
	if cfg == nil {
		cfg = &config.Provider{}
	}
	httpCfg := infra_provider.DefaultHTTPConfig()
	httpCfg.Timeout = cfg.HTTPTimeout
	client := infra_provider.NewHTTPClient(httpCfg)

	return provider.NewChain(logger,
		exchangeratehost.New(exchangeratehost.Config{
			BaseURL:   cfg.PrimaryURL,
			AccessKey: cfg.AccessKey,
		}, client, logger),
		frankfurter.New(cfg.SecondaryURL, client, logger),
	)
}

// ThemeStoreOptions maps configuration onto the store factory.
func ThemeStoreOptions(cfg *config.App) themestore.Options {
	opts := themestore.Options{AppEnv: cfg.Env}
	if cfg.Theme != nil {
		opts.Kind = cfg.Theme.Store
		opts.FilePath = cfg.Theme.File
	}
	if cfg.Redis != nil {
		opts.RedisURL = cfg.Redis.URL
		opts.RedisPrefix = cfg.Redis.KeyPrefix
	}
	if cfg.DB != nil {
		opts.DatabaseURL = cfg.DB.Url
	}
	return opts
}
