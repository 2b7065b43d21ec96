package amountutils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"plain", "1234.56", "1234.56", false},
		{"empty is zero", "", "0", false},
		{"swiss apostrophes", "1'234.56", "1234.56", false},
		{"european format", "1.234,56", "1234.56", false},
		{"us thousands", "1,234.56", "1234.56", false},
		{"comma decimal", "1234,56", "1234.56", false},
		{"comma thousands only", "1,234", "1234", false},
		{"currency symbol", "€1234.56", "1234.56", false},
		{"currency code", "CHF 12.50", "12.5", false},
		{"negative", "-42.00", "-42", false},
		{"garbage", "twelve", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestFormatAmount(t *testing.T) {
	amount := decimal.RequireFromString("12.5")

	assert.Equal(t, "12.50 CHF", FormatAmount(amount, "chf"))
	assert.Equal(t, "12.50", FormatAmount(amount, ""))
}

func TestRenderValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"float", 12.5, "12.50 CHF"},
		{"numeric string", "1'234.56", "1234.56 CHF"},
		{"unparseable string passes through", "n/a", "n/a"},
		{"other type", true, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderValue(tt.value, "CHF"))
		})
	}
}
