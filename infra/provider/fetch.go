package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/amirasaad/fxconv/pkg/currency"
	"github.com/amirasaad/fxconv/pkg/provider"
)

// maxErrorBody bounds how much of a failed response ends up in an error.
const maxErrorBody = 512

// BuildURL joins base with path segments and encodes query.
func BuildURL(base string, query url.Values, segments ...string) (string, error) {
	u, err := url.JoinPath(base, segments...)
	if err != nil {
		return "", fmt.Errorf("invalid provider url %q: %w", base, err)
	}
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u, nil
}

// GetJSON issues a GET request and decodes a 2xx JSON body into out.
func GetJSON(ctx context.Context, client *http.Client, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("%w: status %d: %s", provider.ErrUnexpectedStatus, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", provider.ErrMalformedPayload, err)
	}
	return nil
}

// RatesResponse is the historical rates payload both providers share.
type RatesResponse struct {
	Rates map[string]any `json:"rates"`
}

// Rate extracts the numeric rate for code.
func (r RatesResponse) Rate(code currency.Code) (float64, error) {
	raw, ok := r.Rates[code.String()]
	if !ok {
		return 0, fmt.Errorf("%w: %s missing from rates", provider.ErrRateNotFound, code)
	}
	rate, ok := raw.(float64)
	if !ok {
		return 0, fmt.Errorf("%w: rate for %s is %T", provider.ErrMalformedPayload, code, raw)
	}
	return rate, nil
}
