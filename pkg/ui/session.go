// Package ui holds the state of one conversion form, independent of how it
// is rendered.
package ui

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/amirasaad/fxconv/pkg/currency"
	"github.com/amirasaad/fxconv/pkg/i18n"
	"github.com/amirasaad/fxconv/pkg/mask"
	"github.com/amirasaad/fxconv/pkg/money"
	"github.com/amirasaad/fxconv/pkg/provider"
	"github.com/amirasaad/fxconv/pkg/service/conversion"
)

// ErrBusy is returned when a submission is already outstanding.
var ErrBusy = errors.New("conversion in progress")

// Converter resolves conversion requests.
type Converter interface {
	Convert(ctx context.Context, req conversion.Request) (*conversion.Outcome, error)
	Today() string
}

// View is a snapshot of everything a renderer needs.
type View struct {
	AmountCents  money.Cents
	AmountText   string
	Symbol       string
	From         currency.Code
	To           currency.Code
	Date         string
	Loading      bool
	HasOutcome   bool
	Result       string
	Rate         string
	Source       string
	Alert        string
	CopiedResult bool
	CopiedRate   bool
}

// Session is one conversion form.
type Session struct {
	Amount *mask.AmountField
	Date   *mask.DateField

	mu      sync.Mutex
	conv    Converter
	tr      i18n.Translator
	from    currency.Code
	to      currency.Code
	loading bool
	outcome *conversion.Outcome
	alert   string
	copy    *CopyFeedback
}

// Option configures a Session.
type Option func(*Session)

// WithClipboard sets the clipboard and clock used by copy feedback.
func WithClipboard(clip Clipboard, now func() time.Time) Option {
	return func(s *Session) {
		s.copy = NewCopyFeedback(clip, now)
	}
}

// NewSession returns a fresh form: amount zero, CHF to USD, dated today.
func NewSession(conv Converter, tr i18n.Translator, opts ...Option) *Session {
	s := &Session{
		Amount: mask.NewAmountField(tr.Tag()),
		Date:   mask.NewDateField(conv.Today()),
		conv:   conv,
		tr:     tr,
		from:   currency.DefaultFrom,
		to:     currency.DefaultTo,
		copy:   NewCopyFeedback(nil, nil),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Translator returns the language of the session.
func (s *Session) Translator() i18n.Translator { return s.tr }

// From returns the source currency.
func (s *Session) From() currency.Code {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.from
}

// To returns the target currency.
func (s *Session) To() currency.Code {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.to
}

// SetFrom selects the source currency.
func (s *Session) SetFrom(c currency.Code) error {
	if !c.IsSupported() {
		return currency.ErrUnsupportedCurrency
	}
	s.mu.Lock()
	s.from = c
	s.mu.Unlock()
	return nil
}

// SetTo selects the target currency.
func (s *Session) SetTo(c currency.Code) error {
	if !c.IsSupported() {
		return currency.ErrUnsupportedCurrency
	}
	s.mu.Lock()
	s.to = c
	s.mu.Unlock()
	return nil
}

// Swap exchanges the two currencies. Amount and outcome are untouched.
func (s *Session) Swap() {
	s.mu.Lock()
	s.from, s.to = s.to, s.from
	s.mu.Unlock()
}

// Submit runs one conversion. A zero amount returns
// conversion.ErrNothingToConvert and changes nothing. Any other failure
// clears the outcome and records the alert.
func (s *Session) Submit(ctx context.Context) (*conversion.Outcome, error) {
	req, err := s.begin()
	if err != nil {
		return nil, err
	}

	out, err := s.conv.Convert(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.outcome = nil
		if !errors.Is(err, conversion.ErrNothingToConvert) {
			s.alert = AlertMessage(s.tr, err)
		}
		return nil, err
	}
	s.outcome = out
	return out, nil
}

func (s *Session) begin() (conversion.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loading {
		return conversion.Request{}, ErrBusy
	}
	cents := s.Amount.Cents()
	if !cents.IsPositive() {
		return conversion.Request{}, conversion.ErrNothingToConvert
	}
	s.loading = true
	s.outcome = nil
	s.alert = ""
	return conversion.Request{
		Cents: cents,
		From:  s.from,
		To:    s.to,
		Date:  s.Date.Value(),
	}, nil
}

// Loading reports whether a submission is outstanding.
func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Outcome returns the last successful outcome, or nil.
func (s *Session) Outcome() *conversion.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outcome
}

// Alert returns the pending alert message.
func (s *Session) Alert() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.alert
}

// DismissAlert clears the alert message.
func (s *Session) DismissAlert() {
	s.mu.Lock()
	s.alert = ""
	s.mu.Unlock()
}

// Copy writes the displayed result or rate to the clipboard. Nothing is
// copied while there is no outcome.
func (s *Session) Copy(field Field) bool {
	s.mu.Lock()
	out := s.outcome
	s.mu.Unlock()
	if out == nil {
		return false
	}
	text := out.DisplayResult()
	if field == FieldRate {
		text = out.DisplayRate()
	}
	return s.copy.Copy(field, text)
}

// CopyFeedback exposes the acknowledgment state.
func (s *Session) CopyFeedback() *CopyFeedback { return s.copy }

// View snapshots the session.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := View{
		AmountCents: s.Amount.Cents(),
		AmountText:  s.Amount.Value(),
		Symbol:      s.from.Symbol(),
		From:        s.from,
		To:          s.to,
		Date:        s.Date.Value(),
		Loading:     s.loading,
		HasOutcome:  s.outcome != nil,
		Result:      s.outcome.DisplayResult(),
		Rate:        s.outcome.DisplayRate(),
		Alert:       s.alert,
	}
	if s.outcome != nil {
		v.Source = s.outcome.Quote.Source
	}
	v.CopiedResult = s.copy.Active(FieldResult)
	v.CopiedRate = s.copy.Active(FieldRate)
	return v
}

// providerCopy maps a provider name to its unavailable and missing-rate copy.
var providerCopy = map[string][2]i18n.Key{
	"exchangerate.host": {i18n.PrimaryDown, i18n.PrimaryDown},
	"frankfurter.app":   {i18n.SecondaryDown, i18n.SecondaryNoRate},
}

// AlertMessage turns a conversion error into the single message shown to
// the user. Chain failures report the last provider tried.
func AlertMessage(tr i18n.Translator, err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrBusy):
		return tr.T(i18n.Busy)
	case errors.Is(err, conversion.ErrInvalidDate):
		return tr.T(i18n.InvalidDate)
	case errors.Is(err, conversion.ErrUnsupportedCurrency):
		return tr.T(i18n.InvalidCurrency)
	}

	var chainErr *provider.ChainError
	if errors.As(err, &chainErr) && len(chainErr.Attempts) > 0 {
		last := chainErr.Attempts[len(chainErr.Attempts)-1]
		if keys, ok := providerCopy[last.Provider]; ok {
			if errors.Is(last.Err, provider.ErrRateNotFound) {
				return tr.T(keys[1])
			}
			return tr.T(keys[0])
		}
		if msg := last.Err.Error(); msg != "" {
			return msg
		}
	}
	return tr.T(i18n.ConversionError)
}
