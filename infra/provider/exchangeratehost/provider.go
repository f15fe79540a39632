// Package exchangeratehost implements the primary rate provider on top of
// the exchangerate.host API.
package exchangeratehost

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	infra_provider "github.com/amirasaad/fxconv/infra/provider"
	"github.com/amirasaad/fxconv/pkg/money"
	"github.com/amirasaad/fxconv/pkg/provider"
)

// Name identifies the provider in logs and error messages.
const Name = "exchangerate.host"

// DefaultBaseURL is the public API root.
const DefaultBaseURL = "https://api.exchangerate.host"

// Config holds the provider settings.
type Config struct {
	BaseURL   string
	AccessKey string
}

// Provider asks the convert endpoint first and falls back to the historical
// rates endpoint of the same API.
type Provider struct {
	baseURL    string
	accessKey  string
	httpClient *http.Client
	logger     *slog.Logger
}

// convertResponse is the payload of GET /convert.
type convertResponse struct {
	Info *struct {
		Rate *float64 `json:"rate"`
	} `json:"info"`
	Result *float64 `json:"result"`
}

// New creates the provider. A nil client gets http.DefaultClient.
func New(cfg Config, client *http.Client, logger *slog.Logger) *Provider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Provider{
		baseURL:    cfg.BaseURL,
		accessKey:  cfg.AccessKey,
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
	q, convErr := p.Convert(ctx, params)
	if convErr == nil {
		return q, nil
	}
	p.logger.Warn("Convert endpoint failed, trying historical rates", "error", convErr)

	q, histErr := p.Historical(ctx, params)
	if histErr == nil {
		return q, nil
	}
	p.logger.Warn("Historical endpoint failed", "error", histErr)

	return nil, fmt.Errorf("%s %w: %w", Name, provider.ErrProviderUnavailable, errors.Join(convErr, histErr))
}

// Convert asks the provider to do the conversion itself.
func (p *Provider) Convert(ctx context.Context, params provider.Params) (*provider.Quote, error) {
	query := url.Values{
		"from":   {params.From.String()},
		"to":     {params.To.String()},
		"date":   {params.Date},
		"amount": {params.Amount},
	}
	p.withKey(query)

	u, err := infra_provider.BuildURL(p.baseURL, query, "convert")
	if err != nil {
		return nil, err
	}

	var resp convertResponse
	if err := infra_provider.GetJSON(ctx, p.httpClient, u, &resp); err != nil {
		return nil, fmt.Errorf("convert: %w", err)
	}
	if resp.Info == nil || resp.Info.Rate == nil || resp.Result == nil {
		return nil, fmt.Errorf("convert: %w: rate or result missing", provider.ErrMalformedPayload)
	}

	return &provider.Quote{
		Rate:   *resp.Info.Rate,
		Result: *resp.Result,
		Source: Name,
	}, nil
}

// Historical reads the bilateral rate for the date and multiplies locally.
func (p *Provider) Historical(ctx context.Context, params provider.Params) (*provider.Quote, error) {
	query := url.Values{
		"base":    {params.From.String()},
		"symbols": {params.To.String()},
	}
	p.withKey(query)

	u, err := infra_provider.BuildURL(p.baseURL, query, params.Date)
	if err != nil {
		return nil, err
	}

	var resp infra_provider.RatesResponse
	if err := infra_provider.GetJSON(ctx, p.httpClient, u, &resp); err != nil {
		return nil, fmt.Errorf("historical: %w", err)
	}
	rate, err := resp.Rate(params.To)
	if err != nil {
		return nil, fmt.Errorf("historical: %w", err)
	}
	result, err := money.Multiply(params.Amount, rate)
	if err != nil {
		return nil, fmt.Errorf("historical: %w", err)
	}

	return &provider.Quote{
		Rate:   rate,
		Result: result,
		Source: Name,
	}, nil
}

func (p *Provider) withKey(query url.Values) {
	if p.accessKey != "" {
		query.Set("access_key", p.accessKey)
	}
}

var _ provider.Strategy = (*Provider)(nil)
