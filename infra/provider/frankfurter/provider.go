// Package frankfurter implements the secondary rate provider on top of the
// frankfurter.app API.
package frankfurter

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	infra_provider "github.com/amirasaad/fxconv/infra/provider"
	"github.com/amirasaad/fxconv/pkg/money"
	"github.com/amirasaad/fxconv/pkg/provider"
)

// Name identifies the provider in logs and error messages.
const Name = "frankfurter.app"

// DefaultBaseURL is the public API root.
const DefaultBaseURL = "https://api.frankfurter.app"

// Provider reads historical bilateral rates. The amount is never sent: the
// result is always amount × rate computed here.
type Provider struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates the provider. A nil client gets http.DefaultClient.
func New(baseURL string, client *http.Client, logger *slog.Logger) *Provider {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Provider{
		baseURL:    baseURL,
		httpClient: client,
		logger:     logger.With("provider", Name),
	}
}

// Name implements provider.Strategy.
func (p *Provider) Name() string {
	return Name
}

// Quote implements provider.Strategy.
func (p *Provider) Quote(ctx context.Context, params provider.Params) (*provider.Quote, error) {
	query := url.Values{
		"from": {params.From.String()},
		"to":   {params.To.String()},
	}
	u, err := infra_provider.BuildURL(p.baseURL, query, params.Date)
	if err != nil {
		return nil, err
	}

	var resp infra_provider.RatesResponse
	if err := infra_provider.GetJSON(ctx, p.httpClient, u, &resp); err != nil {
		return nil, fmt.Errorf("%s %w: %w", Name, provider.ErrProviderUnavailable, err)
	}
	rate, err := resp.Rate(params.To)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", Name, err)
	}
	result, err := money.Multiply(params.Amount, rate)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", Name, err)
	}

	p.logger.Debug("Rate resolved", "from", params.From, "to", params.To, "date", params.Date, "rate", rate)
	return &provider.Quote{
		Rate:   rate,
		Result: result,
		Source: Name,
	}, nil
}

var _ provider.Strategy = (*Provider)(nil)
