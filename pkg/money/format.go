package money

import (
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Placeholder is shown instead of a value when there is no outcome.
const Placeholder = "--"

// ResultLocale is the locale the converted amount is always rendered in.
var ResultLocale = language.BrazilianPortuguese

// Format renders d with the grouping and decimal separators of tag and
// exactly two fraction digits.
func Format(tag language.Tag, d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return message.NewPrinter(tag).Sprint(number.Decimal(f, number.Scale(2)))
}

// FormatCents renders cents as a localized decimal ("1.234,50" for pt-BR).
func FormatCents(tag language.Tag, c Cents) string {
	return Format(tag, c.Decimal())
}

// FormatResult renders a converted amount the way the result box shows it.
// Half cents round on the exact binary value, like FormatRate.
func FormatResult(v *float64) string {
	if v == nil {
		return Placeholder
	}
	d, err := decimal.NewFromString(fixed2(*v))
	if err != nil {
		return Placeholder
	}
	return Format(ResultLocale, d)
}

// FormatRate renders a rate with two decimals and a dot separator ("1.10").
func FormatRate(v *float64) string {
	if v == nil {
		return Placeholder
	}
	return fixed2(*v)
}

// fixed2 rounds the float as stored, so 1.005 (really 1.00499...) gives "1.00".
func fixed2(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
