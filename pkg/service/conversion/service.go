// Package conversion orchestrates one submission of the conversion form:
// validate, clamp the date, then ask the provider chain for a quote.
package conversion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/amirasaad/fxconv/pkg/currency"
	"github.com/amirasaad/fxconv/pkg/money"
	"github.com/amirasaad/fxconv/pkg/provider"
	"golang.org/x/sync/singleflight"
)

// DateLayout is the quote date format shared with the providers.
const DateLayout = "2006-01-02"

// IdentitySource marks quotes resolved without a provider.
const IdentitySource = "identity"

var (
	// ErrNothingToConvert is returned for a zero amount. Callers stay silent.
	ErrNothingToConvert = errors.New("nothing to convert")
	// ErrUnsupportedCurrency mirrors currency.ErrUnsupportedCurrency.
	ErrUnsupportedCurrency = currency.ErrUnsupportedCurrency
	// ErrInvalidDate is returned when the date is not YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date")
)

// Request is one form submission.
type Request struct {
	Cents money.Cents
	From  currency.Code
	To    currency.Code
	// Date as YYYY-MM-DD. Empty means today.
	Date string
}

// Outcome is a resolved quote with the inputs that produced it.
type Outcome struct {
	Quote  provider.Quote
	Date   string
	Amount money.Cents
}

// Clock returns the current time.
type Clock func() time.Time

// Service handles conversion requests. Identical requests that arrive
// while one is in flight share its quote.
type Service struct {
	rates    provider.Strategy
	logger   *slog.Logger
	now      Clock
	inflight singleflight.Group
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the clock used for date clamping.
func WithClock(c Clock) Option {
	return func(s *Service) {
		if c != nil {
			s.now = c
		}
	}
}

// New creates a new conversion service backed by rates.
func New(rates provider.Strategy, logger *slog.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		rates:  rates,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Today returns the current date in DateLayout (UTC).
func (s *Service) Today() string {
	return s.now().UTC().Format(DateLayout)
}

// ClampDate parses date and caps it at today. Empty means today.
func ClampDate(date string, now time.Time) (string, error) {
	today := now.UTC().Format(DateLayout)
	if date == "" {
		return today, nil
	}
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	if d := t.Format(DateLayout); d < today {
		return d, nil
	}
	return today, nil
}

// Convert resolves a quote for req.
func (s *Service) Convert(ctx context.Context, req Request) (*Outcome, error) {
	if !req.Cents.IsPositive() {
		return nil, ErrNothingToConvert
	}
	if !req.From.IsSupported() {
		return nil, fmt.Errorf("from: %w: %q", ErrUnsupportedCurrency, req.From)
	}
	if !req.To.IsSupported() {
		return nil, fmt.Errorf("to: %w: %q", ErrUnsupportedCurrency, req.To)
	}
	date, err := ClampDate(req.Date, s.now())
	if err != nil {
		return nil, err
	}
	if date != req.Date && req.Date != "" {
		s.logger.Debug("Quote date clamped to today", "requested", req.Date, "date", date)
	}

	amount := req.Cents.FixedPoint()
	if req.From == req.To {
		result, _ := req.Cents.Decimal().Float64()
		return &Outcome{
			Quote:  provider.Quote{Rate: 1, Result: result, Source: IdentitySource},
			Date:   date,
			Amount: req.Cents,
		}, nil
	}

	if s.rates == nil {
		return nil, provider.ErrNoStrategies
	}

	log := s.logger.With("from", req.From, "to", req.To, "date", date, "amount", amount)
	key := strings.Join([]string{req.From.String(), req.To.String(), date, amount}, "|")
	v, err, shared := s.inflight.Do(key, func() (any, error) {
		return s.rates.Quote(ctx, provider.Params{
			From:   req.From,
			To:     req.To,
			Date:   date,
			Amount: amount,
		})
	})
	if shared {
		log.Debug("Joined in-flight quote")
	}
	if err != nil {
		log.Warn("Conversion failed", "error", err)
		return nil, err
	}
	q := v.(*provider.Quote)
	log.Info("Conversion resolved", "rate", q.Rate, "result", q.Result, "source", q.Source)

	return &Outcome{Quote: *q, Date: date, Amount: req.Cents}, nil
}

// DisplayResult renders the result for the form.
func (o *Outcome) DisplayResult() string {
	if o == nil {
		return money.FormatResult(nil)
	}
	return money.FormatResult(&o.Quote.Result)
}

// DisplayRate renders the rate for the form.
func (o *Outcome) DisplayRate() string {
	if o == nil {
		return money.FormatRate(nil)
	}
	return money.FormatRate(&o.Quote.Rate)
}
