package themestore

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/amirasaad/fxconv/pkg/theme"
)

// Backend names accepted by Open.
const (
	KindMemory   = "memory"
	KindFile     = "file"
	KindRedis    = "redis"
	KindSQLite   = "sqlite"
	KindPostgres = "postgres"
)

// DefaultSQLiteDSN is used for the sqlite backend when no DSN is given.
const DefaultSQLiteDSN = "fxconv.db"

// Options selects and configures a backend.
type Options struct {
	Kind        string
	FilePath    string
	RedisURL    string
	RedisPrefix string
	DatabaseURL string
	AppEnv      string
}

// CloseFunc releases backend resources.
type CloseFunc func() error

func noopClose() error { return nil }

// Open builds the configured store.
func Open(ctx context.Context, opts Options, logger *slog.Logger) (theme.Store, CloseFunc, error) {
	if logger == nil {
		logger = slog.Default()
	}
	kind := strings.ToLower(strings.TrimSpace(opts.Kind))
	if kind == "" {
		kind = KindMemory
	}
	logger = logger.With("store", kind)

	switch kind {
	case KindMemory:
		return NewMemory(), noopClose, nil

	case KindFile:
		path := opts.FilePath
		if path == "" {
			p, err := DefaultFilePath()
			if err != nil {
				return nil, nil, err
			}
			path = p
		}
		logger.Debug("Using file theme store", "path", path)
		return NewFile(path), noopClose, nil

	case KindRedis:
		prefix := opts.RedisPrefix
		if prefix == "" {
			prefix = DefaultRedisPrefix
		}
		r, err := NewRedis(opts.RedisURL, prefix, logger)
		if err != nil {
			return nil, nil, err
		}
		if err := r.Ping(ctx); err != nil {
			_ = r.Close()
			return nil, nil, fmt.Errorf("redis ping: %w", err)
		}
		return r, r.Close, nil

	case KindSQLite:
		dsn := opts.DatabaseURL
		if dsn == "" {
			dsn = DefaultSQLiteDSN
		}
		s, err := OpenSQLite(dsn, opts.AppEnv)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil

	case KindPostgres:
		s, err := OpenPostgres(opts.DatabaseURL, opts.AppEnv)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown theme store %q", opts.Kind)
	}
}
