// Package provider defines exchange rate strategies and the chain that tries
// them in order.
package provider

import (
	"context"
	"errors"

	"github.com/amirasaad/fxconv/pkg/currency"
)

// Common errors for provider operations
var (
	ErrProviderUnavailable = errors.New("provider unavailable")
	ErrMalformedPayload    = errors.New("malformed provider payload")
	ErrUnexpectedStatus    = errors.New("unexpected provider status")
	ErrRateNotFound        = errors.New("rate not available")
	ErrAllProvidersFailed  = errors.New("all exchange rate providers failed")
	ErrNoStrategies        = errors.New("no exchange rate providers configured")
)

// Params identifies one bilateral lookup.
type Params struct {
	From currency.Code
	To   currency.Code
	// Date is the quote date as YYYY-MM-DD.
	Date string
	// Amount is a fixed-point decimal string with exactly two fraction digits.
	Amount string
}

// Quote is the outcome of a successful lookup.
type Quote struct {
	Rate   float64 `json:"rate"`
	Result float64 `json:"result"`
	Source string  `json:"source"`
}

// Strategy is one way of obtaining a quote.
type Strategy interface {
	// Name returns the provider's name for logging and error messages.
	Name() string
	// Quote returns the rate and converted amount for p.
	Quote(ctx context.Context, p Params) (*Quote, error)
}

// StrategyFunc adapts a plain function to a Strategy.
type StrategyFunc func(ctx context.Context, p Params) (*Quote, error)

type namedFunc struct {
	name string
	fn   StrategyFunc
}

// Named wraps fn into a Strategy called name.
func Named(name string, fn StrategyFunc) Strategy {
	return namedFunc{name: name, fn: fn}
}

func (n namedFunc) Name() string { return n.name }

func (n namedFunc) Quote(ctx context.Context, p Params) (*Quote, error) {
	return n.fn(ctx, p)
}
