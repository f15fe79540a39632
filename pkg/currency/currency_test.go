package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Code
		wantErr bool
	}{
		{name: "upper case", input: "USD", want: USD},
		{name: "lower case with spaces", input: " chf ", want: CHF},
		{name: "unknown code", input: "XYZ", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedCurrency)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestList(t *testing.T) {
	list := List()
	require.Len(t, list, 11)
	assert.Equal(t, USD, list[0].Code)
	assert.Equal(t, MXN, list[len(list)-1].Code)

	list[0].Symbol = "changed"
	assert.Equal(t, "$", USD.Symbol(), "List must return a copy")
}

func TestCodeSymbol(t *testing.T) {
	assert.Equal(t, "R$", BRL.Symbol())
	assert.Equal(t, "Fr", CHF.Symbol())
	assert.Equal(t, "XYZ", Code("XYZ").Symbol())
}

func TestMetaLabel(t *testing.T) {
	meta, ok := Get(USD)
	require.True(t, ok)
	assert.Equal(t, "USD - Dólar Americano", meta.Label("pt"))
	assert.Equal(t, "USD - US Dollar", meta.Label("en"))
}

func TestDefaults(t *testing.T) {
	assert.True(t, DefaultFrom.IsSupported())
	assert.True(t, DefaultTo.IsSupported())
	assert.Len(t, Codes(), 11)
}
