// Package currency holds the fixed set of currencies the converter offers.
//
// The set is closed: both sides of a conversion are picked from the same list
// and nothing prevents picking the same code twice.
package currency

import (
	"errors"
	"fmt"
	"strings"
)

// Code represents a currency code (e.g., "USD", "EUR").
type Code string

// Supported currency codes, in display order.
const (
	USD Code = "USD" // US Dollar
	EUR Code = "EUR" // Euro
	BRL Code = "BRL" // Brazilian Real
	GBP Code = "GBP" // British Pound
	JPY Code = "JPY" // Japanese Yen
	CHF Code = "CHF" // Swiss Franc
	CAD Code = "CAD" // Canadian Dollar
	AUD Code = "AUD" // Australian Dollar
	CNY Code = "CNY" // Chinese Yuan
	ARS Code = "ARS" // Argentine Peso
	MXN Code = "MXN" // Mexican Peso
)

const (
	// DefaultFrom is the source currency of a fresh form.
	DefaultFrom = CHF
	// DefaultTo is the target currency of a fresh form.
	DefaultTo = USD
)

// ErrUnsupportedCurrency is returned when a code is not part of the fixed set.
var ErrUnsupportedCurrency = errors.New("unsupported currency")

// Meta holds currency-specific display metadata
type Meta struct {
	Code   Code   `json:"code"`
	Symbol string `json:"symbol"`
	NamePT string `json:"name_pt"`
	NameEN string `json:"name_en"`
}

var ordered = []Meta{
	{Code: USD, Symbol: "$", NamePT: "Dólar Americano", NameEN: "US Dollar"},
	{Code: EUR, Symbol: "€", NamePT: "Euro", NameEN: "Euro"},
	{Code: BRL, Symbol: "R$", NamePT: "Real Brasileiro", NameEN: "Brazilian Real"},
	{Code: GBP, Symbol: "£", NamePT: "Libra Esterlina", NameEN: "British Pound"},
	{Code: JPY, Symbol: "¥", NamePT: "Iene Japonês", NameEN: "Japanese Yen"},
	{Code: CHF, Symbol: "Fr", NamePT: "Franco Suíço", NameEN: "Swiss Franc"},
	{Code: CAD, Symbol: "$", NamePT: "Dólar Canadense", NameEN: "Canadian Dollar"},
	{Code: AUD, Symbol: "$", NamePT: "Dólar Australiano", NameEN: "Australian Dollar"},
	{Code: CNY, Symbol: "¥", NamePT: "Yuan Chinês", NameEN: "Chinese Yuan"},
	{Code: ARS, Symbol: "$", NamePT: "Peso Argentino", NameEN: "Argentine Peso"},
	{Code: MXN, Symbol: "$", NamePT: "Peso Mexicano", NameEN: "Mexican Peso"},
}

var byCode = func() map[Code]Meta {
	m := make(map[Code]Meta, len(ordered))
	for _, meta := range ordered {
		m[meta.Code] = meta
	}
	return m
}()

// String returns the string representation of the currency code.
func (c Code) String() string {
	return string(c)
}

// IsSupported reports whether the code is part of the fixed set.
func (c Code) IsSupported() bool {
	_, ok := byCode[c]
	return ok
}

// Symbol returns the display symbol, falling back to the code itself.
func (c Code) Symbol() string {
	if meta, ok := byCode[c]; ok {
		return meta.Symbol
	}
	return string(c)
}

// Name returns the localized currency name for a two-letter language.
// Anything other than "pt" gets the English name.
func (m Meta) Name(lang string) string {
	if lang == "pt" {
		return m.NamePT
	}
	return m.NameEN
}

// Label renders the option text used by the currency selectors ("USD - US Dollar").
func (m Meta) Label(lang string) string {
	return fmt.Sprintf("%s - %s", m.Code, m.Name(lang))
}

// Parse normalizes and validates a user supplied code.
func Parse(s string) (Code, error) {
	c := Code(strings.ToUpper(strings.TrimSpace(s)))
	if !c.IsSupported() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedCurrency, s)
	}
	return c, nil
}

// Get returns the metadata for a code.
func Get(c Code) (Meta, bool) {
	meta, ok := byCode[c]
	return meta, ok
}

// List returns all supported currencies in display order.
func List() []Meta {
	out := make([]Meta, len(ordered))
	copy(out, ordered)
	return out
}

// Codes returns the supported codes in display order.
func Codes() []Code {
	codes := make([]Code, 0, len(ordered))
	for _, meta := range ordered {
		codes = append(codes, meta.Code)
	}
	return codes
}
