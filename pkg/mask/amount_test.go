package mask

import (
	"strings"
	"testing"

	"github.com/amirasaad/fxconv/pkg/money"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func typeDigits(f *AmountField, digits string) {
	for _, r := range digits {
		f.KeyDown(KeyEvent{Key: string(r)})
	}
}

func TestAmountField_TypingBuildsCents(t *testing.T) {
	tests := []struct {
		name    string
		typed   string
		cents   money.Cents
		display string
	}{
		{"nothing typed", "", 0, "0,00"},
		{"single digit", "5", 5, "0,05"},
		{"hundred", "10000", 10000, "100,00"},
		{"leading zeros ignored", "0012", 12, "0,12"},
		{"grouping", "123456", 123456, "1.234,56"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewAmountField(language.BrazilianPortuguese)
			typeDigits(f, tt.typed)
			assert.Equal(t, tt.cents, f.Cents())
			assert.Equal(t, tt.display, f.Value())
		})
	}
}

func TestAmountField_DisplayAlwaysTwoDecimals(t *testing.T) {
	f := NewAmountField(language.AmericanEnglish)
	for _, c := range []money.Cents{0, 1, 10, 99, 100, 101, 999999, 100000000} {
		f.SetCents(c)
		v := f.Value()
		idx := strings.LastIndex(v, ".")
		if assert.NotEqual(t, -1, idx, "value %q", v) {
			assert.Len(t, v[idx+1:], 2, "value %q", v)
		}
		assert.Equal(t, money.FormatCents(language.AmericanEnglish, c), v)
	}
}

func TestAmountField_KeyDown(t *testing.T) {
	f := NewAmountField(language.BrazilianPortuguese)

	assert.Equal(t, Suppress, f.KeyDown(KeyEvent{Key: "a"}))
	assert.Equal(t, Suppress, f.KeyDown(KeyEvent{Key: ","}))
	assert.Equal(t, Suppress, f.KeyDown(KeyEvent{Key: "-"}))
	assert.Equal(t, money.Cents(0), f.Cents())

	assert.Equal(t, Allow, f.KeyDown(KeyEvent{Key: "1"}))
	assert.Equal(t, Allow, f.KeyDown(KeyEvent{Key: "2"}))
	assert.Equal(t, money.Cents(12), f.Cents())

	assert.Equal(t, Allow, f.KeyDown(KeyEvent{Key: KeyArrowLeft}))
	assert.Equal(t, Allow, f.KeyDown(KeyEvent{Key: "v", Ctrl: true}))
	assert.Equal(t, Allow, f.KeyDown(KeyEvent{Key: "C", Meta: true}))
	assert.Equal(t, money.Cents(12), f.Cents())

	assert.Equal(t, Allow, f.KeyDown(KeyEvent{Key: KeyBackspace}))
	assert.Equal(t, money.Cents(1), f.Cents())
}

func TestAmountField_KeyDownStopsAtMaxDigits(t *testing.T) {
	f := NewAmountField(language.AmericanEnglish)
	typeDigits(f, strings.Repeat("9", money.MaxDigits))
	before := f.Cents()

	assert.Equal(t, Suppress, f.KeyDown(KeyEvent{Key: "9"}))
	assert.Equal(t, before, f.Cents())
}

func TestAmountField_Paste(t *testing.T) {
	f := NewAmountField(language.BrazilianPortuguese)
	typeDigits(f, "77")

	f.Paste("R$ 1.234,50")
	assert.Equal(t, money.Cents(123450), f.Cents())
	assert.Equal(t, "1.234,50", f.Value())

	f.Paste("no digits here")
	assert.Equal(t, money.Cents(0), f.Cents())
}

func TestAmountField_InputReprojects(t *testing.T) {
	f := NewAmountField(language.BrazilianPortuguese)
	f.Input("1,005")
	assert.Equal(t, money.Cents(1005), f.Cents())
	assert.Equal(t, "10,05", f.Value())

	f.Input(strings.Repeat("1", money.MaxDigits+3))
	assert.Equal(t, money.Cents(1005), f.Cents(), "unrepresentable input keeps the amount")
}

func TestAmountField_Focus(t *testing.T) {
	f := NewAmountField(language.BrazilianPortuguese)
	typeDigits(f, "1234")
	assert.Equal(t, Selection{Start: 0, End: 0}, f.Focus())
}

func TestIsControlKey(t *testing.T) {
	for _, key := range []string{KeyBackspace, KeyDelete, KeyTab, KeyEnter, KeyArrowLeft, KeyArrowRight, KeyArrowUp, KeyArrowDown, KeyHome, KeyEnd} {
		assert.True(t, IsControlKey(KeyEvent{Key: key}), key)
	}
	assert.True(t, IsControlKey(KeyEvent{Key: "x", Ctrl: true}))
	assert.False(t, IsControlKey(KeyEvent{Key: "z", Ctrl: true}))
	assert.False(t, IsControlKey(KeyEvent{Key: "a"}))
	assert.Equal(t, "allow", Allow.String())
	assert.Equal(t, "suppress", Suppress.String())
}
