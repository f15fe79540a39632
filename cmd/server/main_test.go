package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/amirasaad/fxconv/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain runs before any tests and applies globally for all tests in the package.
func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	os.Exit(m.Run())
}

func TestSetup_Routes(t *testing.T) {
	cfg := &config.App{
		Env:       "test",
		Log:       &config.Log{Format: "text", Level: 8},
		RateLimit: &config.RateLimit{},
		Provider:  &config.Provider{},
		Theme:     &config.Theme{Store: "file", File: filepath.Join(t.TempDir(), "s.json")},
		Redis:     &config.Redis{},
		DB:        &config.DB{},
	}
	fiberApp, a, err := setup(context.Background(), cfg)
	require.NoError(t, err)
	defer a.Close() //nolint:errcheck

	for _, path := range []string{"/health", "/", "/api/currencies", "/api/theme"} {
		resp, err := fiberApp.Test(httptest.NewRequest(http.MethodGet, path, nil))
		require.NoError(t, err)
		resp.Body.Close() //nolint:errcheck
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}
}
