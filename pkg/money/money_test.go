package money_test

import (
	"strings"
	"testing"

	"github.com/amirasaad/fxconv/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestDigits(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already digits", "12345", "12345"},
		{"formatted pt-BR", "1.234,50", "123450"},
		{"currency prefix", "R$ 10,00", "1000"},
		{"no digits", "abc", ""},
		{"non ascii digits are dropped", "١٢3", "3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, money.Digits(tt.input))
		})
	}
}

func TestParseDigits(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    money.Cents
		wantErr error
	}{
		{"empty is zero", "", 0, nil},
		{"leading zeros", "000150", 150, nil},
		{"max digits", strings.Repeat("9", money.MaxDigits), 999999999999999, nil},
		{"too many digits", strings.Repeat("1", money.MaxDigits+1), 0, money.ErrTooManyDigits},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := money.ParseDigits(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCents_FixedPoint(t *testing.T) {
	assert.Equal(t, "100.00", money.Cents(10000).FixedPoint())
	assert.Equal(t, "0.05", money.Cents(5).FixedPoint())
	assert.Equal(t, "0.00", money.Cents(0).FixedPoint())
	assert.Equal(t, "50.00", money.Cents(5000).FixedPoint())
}

func TestMultiply(t *testing.T) {
	got, err := money.Multiply("50.00", 1.05)
	require.NoError(t, err)
	assert.Equal(t, 52.5, got)

	got, err = money.Multiply("100.00", 1.1)
	require.NoError(t, err)
	assert.Equal(t, 110.0, got)

	_, err = money.Multiply("abc", 1)
	assert.ErrorIs(t, err, money.ErrInvalidAmount)
}

func TestFormatCents(t *testing.T) {
	tests := []struct {
		name  string
		tag   language.Tag
		cents money.Cents
		want  string
	}{
		{"zero pt", language.BrazilianPortuguese, 0, "0,00"},
		{"hundred pt", language.BrazilianPortuguese, 10000, "100,00"},
		{"grouping pt", language.BrazilianPortuguese, 123450, "1.234,50"},
		{"grouping en", language.AmericanEnglish, 123450, "1,234.50"},
		{"single cent en", language.AmericanEnglish, 1, "0.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, money.FormatCents(tt.tag, tt.cents))
		})
	}
}

func TestFormatResultAndRate(t *testing.T) {
	result := 110.0
	rate := 1.1
	assert.Equal(t, "110,00", money.FormatResult(&result))
	assert.Equal(t, "1.10", money.FormatRate(&rate))

	half := 52.5
	assert.Equal(t, "52,50", money.FormatResult(&half))

	// half cents round on the stored binary value
	for _, tt := range []struct {
		v          float64
		rate, want string
	}{
		{v: 1.005, rate: "1.00", want: "1,00"},
		{v: 2.675, rate: "2.67", want: "2,67"},
		{v: 1234.565, rate: "1234.57", want: "1.234,57"},
	} {
		v := tt.v
		assert.Equal(t, tt.rate, money.FormatRate(&v), "rate %v", tt.v)
		assert.Equal(t, tt.want, money.FormatResult(&v), "result %v", tt.v)
	}

	assert.Equal(t, money.Placeholder, money.FormatResult(nil))
	assert.Equal(t, money.Placeholder, money.FormatRate(nil))
}
