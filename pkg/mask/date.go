package mask

import (
	"sync"

	"github.com/amirasaad/fxconv/pkg/money"
)

// DateField holds the YYYY-MM-DD text of the quote date input.
type DateField struct {
	mu    sync.RWMutex
	value string
}

// NewDateField returns a date field holding value.
func NewDateField(value string) *DateField {
	return &DateField{value: value}
}

// Value returns the current text.
func (f *DateField) Value() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.value
}

// Set replaces the text, as a native date picker would.
func (f *DateField) Set(value string) {
	f.mu.Lock()
	f.value = value
	f.mu.Unlock()
}

// KeyDown accepts digits, '-' and control keys.
func (f *DateField) KeyDown(ev KeyEvent) Decision {
	if IsControlKey(ev) {
		return Allow
	}
	if IsDigit(ev.Key) || ev.Key == "-" {
		return Allow
	}
	return Suppress
}

// Type applies an accepted keystroke to the text: printable keys are appended
// and Backspace removes the last character.
func (f *DateField) Type(ev KeyEvent) Decision {
	d := f.KeyDown(ev)
	if d == Suppress {
		return d
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	switch {
	case ev.Key == KeyBackspace && !ev.Ctrl && !ev.Meta:
		if n := len(f.value); n > 0 {
			f.value = f.value[:n-1]
		}
	case IsDigit(ev.Key) || ev.Key == "-":
		if len(f.value) < len("2006-01-02") {
			f.value += ev.Key
		}
	}
	return d
}

// Paste normalizes pasted text. With at least eight digits the first eight
// become year, month and day; otherwise the field is left unchanged.
// It reports whether the value changed.
func (f *DateField) Paste(text string) bool {
	formatted, ok := NormalizeDate(text)
	if !ok {
		return false
	}
	f.Set(formatted)
	return true
}

// NormalizeDate strips non-digits from text and reassembles the first eight
// as YYYY-MM-DD.
func NormalizeDate(text string) (string, bool) {
	digits := money.Digits(text)
	if len(digits) < 8 {
		return "", false
	}
	return digits[0:4] + "-" + digits[4:6] + "-" + digits[6:8], true
}
