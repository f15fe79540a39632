package mask

import (
	"sync"

	"github.com/amirasaad/fxconv/pkg/money"
	"golang.org/x/text/language"
)

// Selection is a cursor range inside a field.
type Selection struct {
	Start int
	End   int
}

// AmountField holds the cents behind the amount input.
type AmountField struct {
	mu     sync.RWMutex
	cents  money.Cents
	locale language.Tag
}

// NewAmountField returns an empty amount field rendered for locale.
func NewAmountField(locale language.Tag) *AmountField {
	return &AmountField{locale: locale}
}

// Cents returns the canonical amount.
func (f *AmountField) Cents() money.Cents {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.cents
}

// SetCents replaces the canonical amount.
func (f *AmountField) SetCents(c money.Cents) {
	f.mu.Lock()
	f.cents = c
	f.mu.Unlock()
}

// Value is the text the field displays: the locale-formatted cents.
func (f *AmountField) Value() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return money.FormatCents(f.locale, f.cents)
}

// Focus resets the selection to the left edge of the field.
func (f *AmountField) Focus() Selection {
	return Selection{}
}

// KeyDown filters a keystroke and applies it. Digits are appended at the
// right of the running integer, Backspace and Delete drop the rightmost digit
// and other control keys pass through without changing the amount.
func (f *AmountField) KeyDown(ev KeyEvent) Decision {
	if IsControlKey(ev) {
		if !ev.Ctrl && !ev.Meta && (ev.Key == KeyBackspace || ev.Key == KeyDelete) {
			f.mu.Lock()
			f.cents /= 10
			f.mu.Unlock()
		}
		return Allow
	}
	if !IsDigit(ev.Key) {
		return Suppress
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	next, err := money.ParseDigits(f.cents.DigitString() + ev.Key)
	if err != nil {
		// too many digits: keep the current amount
		return Suppress
	}
	f.cents = next
	return Allow
}

// Input re-derives the amount from whatever text the field now holds.
// Text that cannot be represented leaves the amount unchanged.
func (f *AmountField) Input(text string) {
	c, err := money.FromText(text)
	if err != nil {
		return
	}
	f.SetCents(c)
}

// Paste replaces the amount with the digits of the pasted text, read as cents.
func (f *AmountField) Paste(text string) {
	f.Input(text)
}

// Clear resets the amount to zero.
func (f *AmountField) Clear() {
	f.SetCents(0)
}
