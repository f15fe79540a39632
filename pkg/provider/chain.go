package provider

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Attempt records one failed strategy inside a chain run.
type Attempt struct {
	Provider string
	Err      error
}

// ChainError is returned when every strategy of a chain failed.
type ChainError struct {
	Attempts []Attempt
}

// Error returns the message of the last failure, which names the last
// provider that was tried.
func (e *ChainError) Error() string {
	if len(e.Attempts) == 0 {
		return ErrAllProvidersFailed.Error()
	}
	return e.Attempts[len(e.Attempts)-1].Err.Error()
}

// Unwrap exposes ErrAllProvidersFailed and every attempt error to errors.Is/As.
func (e *ChainError) Unwrap() []error {
	errs := make([]error, 0, len(e.Attempts)+1)
	errs = append(errs, ErrAllProvidersFailed)
	for _, a := range e.Attempts {
		errs = append(errs, a.Err)
	}
	return errs
}

// Summary lists every attempt, e.g. "exchangerate.host: ...; frankfurter.app: ...".
func (e *ChainError) Summary() string {
	parts := make([]string, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		parts = append(parts, fmt.Sprintf("%s: %v", a.Provider, a.Err))
	}
	return strings.Join(parts, "; ")
}

// Chain tries its strategies in order and returns the first success.
// Strategies run strictly one after the other.
type Chain struct {
	strategies []Strategy
	logger     *slog.Logger
}

// NewChain creates a chain over strategies in the given order.
func NewChain(logger *slog.Logger, strategies ...Strategy) *Chain {
	if logger == nil {
		logger = slog.Default()
	}
	return &Chain{
		strategies: strategies,
		logger:     logger,
	}
}

// Name implements Strategy.
func (c *Chain) Name() string {
	names := make([]string, 0, len(c.strategies))
	for _, s := range c.strategies {
		names = append(names, s.Name())
	}
	return "chain(" + strings.Join(names, ",") + ")"
}

// Strategies returns the configured strategies in order.
func (c *Chain) Strategies() []Strategy {
	out := make([]Strategy, len(c.strategies))
	copy(out, c.strategies)
	return out
}

// Quote implements Strategy by folding over the strategies and stopping at
// the first one that succeeds.
func (c *Chain) Quote(ctx context.Context, p Params) (*Quote, error) {
	if len(c.strategies) == 0 {
		return nil, ErrNoStrategies
	}

	chainErr := &ChainError{}
	for _, s := range c.strategies {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		c.logger.Debug("Requesting quote", "provider", s.Name(), "from", p.From, "to", p.To, "date", p.Date)
		q, err := s.Quote(ctx, p)
		if err == nil && q != nil {
			if q.Source == "" {
				q.Source = s.Name()
			}
			c.logger.Debug("Quote resolved", "provider", s.Name(), "rate", q.Rate, "result", q.Result)
			return q, nil
		}
		if err == nil {
			err = fmt.Errorf("%s: %w", s.Name(), ErrRateNotFound)
		}

		c.logger.Warn("Provider failed", "provider", s.Name(), "error", err)
		chainErr.Attempts = append(chainErr.Attempts, Attempt{Provider: s.Name(), Err: err})
	}
	return nil, chainErr
}

var _ Strategy = (*Chain)(nil)
