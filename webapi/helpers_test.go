package webapi_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirasaad/fxconv/infra/initializer"
	"github.com/amirasaad/fxconv/infra/themestore"
	"github.com/amirasaad/fxconv/pkg/app"
	"github.com/amirasaad/fxconv/pkg/config"
	"github.com/amirasaad/fxconv/pkg/service/conversion"
	"github.com/amirasaad/fxconv/webapi"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

var testNow = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

type testServer struct {
	app   *fiber.App
	store *themestore.Memory
}

func newTestServer(t *testing.T, primary, secondary http.HandlerFunc, rateLimit *config.RateLimit) *testServer {
	t.Helper()
	p := httptest.NewServer(primary)
	t.Cleanup(p.Close)
	s := httptest.NewServer(secondary)
	t.Cleanup(s.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.App{
		Env:       "test",
		RateLimit: rateLimit,
		Provider:  &config.Provider{PrimaryURL: p.URL, SecondaryURL: s.URL},
	}
	store := themestore.NewMemory()
	a := app.New(&app.Deps{
		Rates:      initializer.NewProviderChain(cfg.Provider, logger),
		ThemeStore: store,
		Language:   language.BrazilianPortuguese,
		Logger:     logger,
	}, cfg, conversion.WithClock(func() time.Time { return testNow }))

	return &testServer{app: webapi.SetupApp(a), store: store}
}

func (ts *testServer) do(t *testing.T, method, path string, body any, headers ...string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp, err := ts.app.Test(req, 10000)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close() //nolint:errcheck
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func clientCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == "fxconv_client" {
			return c
		}
	}
	return nil
}

func convertOK(rate, result float64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"info":   map[string]any{"rate": rate},
			"result": result,
		})
	}
}

func failing(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusServiceUnavailable)
}

func unexpected(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected provider call %s", r.URL.String())
		w.WriteHeader(http.StatusTeapot)
	}
}
