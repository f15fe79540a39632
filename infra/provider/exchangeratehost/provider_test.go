package exchangeratehost

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/amirasaad/fxconv/pkg/currency"
	"github.com/amirasaad/fxconv/pkg/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var params = provider.Params{
	From:   currency.USD,
	To:     currency.EUR,
	Date:   "2024-01-15",
	Amount: "100.00",
}

func newTestProvider(t *testing.T, handler http.HandlerFunc) *Provider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Config{BaseURL: srv.URL}, srv.Client(), nil)
}

func TestProvider_Quote_Convert(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/convert", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "USD", q.Get("from"))
		assert.Equal(t, "EUR", q.Get("to"))
		assert.Equal(t, "2024-01-15", q.Get("date"))
		assert.Equal(t, "100.00", q.Get("amount"))
		assert.Empty(t, q.Get("access_key"))
		_, _ = w.Write([]byte(`{"info":{"rate":0.92},"result":92}`))
	})

	q, err := p.Quote(context.Background(), params)
	require.NoError(t, err)
	assert.InDelta(t, 0.92, q.Rate, 1e-9)
	assert.InDelta(t, 92.0, q.Result, 1e-9)
	assert.Equal(t, Name, q.Source)
}

func TestProvider_Quote_AccessKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.URL.Query().Get("access_key"))
		_, _ = w.Write([]byte(`{"info":{"rate":2},"result":200}`))
	}))
	defer srv.Close()

	p := New(Config{BaseURL: srv.URL, AccessKey: "secret"}, srv.Client(), nil)
	_, err := p.Quote(context.Background(), params)
	require.NoError(t, err)
}

func TestProvider_Quote_FallsBackToHistorical(t *testing.T) {
	tests := []struct {
		name    string
		convert func(w http.ResponseWriter)
	}{
		{
			name: "missing rate",
			convert: func(w http.ResponseWriter) {
				_, _ = w.Write([]byte(`{"result":92}`))
			},
		},
		{
			name: "missing result",
			convert: func(w http.ResponseWriter) {
				_, _ = w.Write([]byte(`{"info":{"rate":0.92}}`))
			},
		},
		{
			name: "server error",
			convert: func(w http.ResponseWriter) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "not json",
			convert: func(w http.ResponseWriter) {
				_, _ = w.Write([]byte(`<html>`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var historicalCalls atomic.Int32
			p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
				switch r.URL.Path {
				case "/convert":
					tt.convert(w)
				case "/2024-01-15":
					historicalCalls.Add(1)
					assert.Equal(t, "USD", r.URL.Query().Get("base"))
					assert.Equal(t, "EUR", r.URL.Query().Get("symbols"))
					_, _ = w.Write([]byte(`{"base":"USD","rates":{"EUR":0.5}}`))
				default:
					t.Errorf("unexpected path %s", r.URL.Path)
				}
			})

			q, err := p.Quote(context.Background(), params)
			require.NoError(t, err)
			assert.Equal(t, int32(1), historicalCalls.Load())
			assert.InDelta(t, 0.5, q.Rate, 1e-9)
			assert.InDelta(t, 50.0, q.Result, 1e-9)
		})
	}
}

func TestProvider_Quote_Unavailable(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/convert" {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"rates":{}}`))
	})

	q, err := p.Quote(context.Background(), params)
	require.Error(t, err)
	assert.Nil(t, q)
	assert.ErrorIs(t, err, provider.ErrProviderUnavailable)
	assert.ErrorIs(t, err, provider.ErrUnexpectedStatus)
	assert.ErrorIs(t, err, provider.ErrRateNotFound)
	assert.Contains(t, err.Error(), "exchangerate.host provider unavailable")
}

func TestProvider_Quote_ContextCanceled(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"info":{"rate":1},"result":100}`))
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Quote(ctx, params)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNew_Defaults(t *testing.T) {
	p := New(Config{}, nil, nil)
	assert.Equal(t, DefaultBaseURL, p.baseURL)
	assert.Equal(t, http.DefaultClient, p.httpClient)
	assert.Equal(t, Name, p.Name())
}
