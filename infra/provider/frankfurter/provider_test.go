package frankfurter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/amirasaad/fxconv/pkg/currency"
	"github.com/amirasaad/fxconv/pkg/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider_Quote(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantRate   float64
		wantResult float64
		wantErr    error
	}{
		{
			name:       "computes result locally",
			status:     http.StatusOK,
			body:       `{"amount":1.0,"base":"USD","date":"2024-01-15","rates":{"EUR":0.5}}`,
			wantRate:   0.5,
			wantResult: 50,
		},
		{
			name:    "target missing",
			status:  http.StatusOK,
			body:    `{"rates":{"GBP":0.8}}`,
			wantErr: provider.ErrRateNotFound,
		},
		{
			name:    "rate not numeric",
			status:  http.StatusOK,
			body:    `{"rates":{"EUR":"0.5"}}`,
			wantErr: provider.ErrMalformedPayload,
		},
		{
			name:    "not found",
			status:  http.StatusNotFound,
			body:    `{"message":"not found"}`,
			wantErr: provider.ErrProviderUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/2024-01-15", r.URL.Path)
				assert.Equal(t, "USD", r.URL.Query().Get("from"))
				assert.Equal(t, "EUR", r.URL.Query().Get("to"))
				assert.Empty(t, r.URL.Query().Get("amount"))
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			p := New(srv.URL, srv.Client(), nil)
			q, err := p.Quote(context.Background(), provider.Params{
				From:   currency.USD,
				To:     currency.EUR,
				Date:   "2024-01-15",
				Amount: "100.00",
			})
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Contains(t, err.Error(), Name)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.wantRate, q.Rate, 1e-9)
			assert.InDelta(t, tt.wantResult, q.Result, 1e-9)
			assert.Equal(t, Name, q.Source)
		})
	}
}

func TestNew_Defaults(t *testing.T) {
	p := New("", nil, nil)
	assert.Equal(t, DefaultBaseURL, p.baseURL)
	assert.Equal(t, Name, p.Name())
}
