// Package amountutils provides decimal-safe parsing and rendering of
// monetary amounts for test-result and report display.
package amountutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var currencyNoise = regexp.MustCompile(`[€$£¥₣₤₧₹₺₽₩฿₫CHF\s]`)

// ParseAmount parses a string representation of an amount into a decimal
// value. It handles formats like "1'234.56", "1.234,56" and "€1234.56".
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	if amountStr == "" {
		return decimal.Zero, nil
	}

	standardized := StandardizeAmount(amountStr)

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}

	return amount, nil
}

// StandardizeAmount converts various currency string formats to a form
// decimal.NewFromString accepts.
func StandardizeAmount(amountStr string) string {
	amountStr = currencyNoise.ReplaceAllString(amountStr, "")

	if strings.Contains(amountStr, ",") && strings.Contains(amountStr, ".") {
		if strings.LastIndex(amountStr, ".") < strings.LastIndex(amountStr, ",") {
			// European format (1.234,56)
			amountStr = strings.ReplaceAll(amountStr, ".", "")
			amountStr = strings.ReplaceAll(amountStr, ",", ".")
		} else {
			// US thousand separators (1,234.56)
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	} else if strings.Contains(amountStr, ",") {
		parts := strings.Split(amountStr, ",")
		if len(parts) > 1 && len(parts[len(parts)-1]) <= 2 {
			// Comma used as decimal separator (1234,56)
			amountStr = strings.ReplaceAll(amountStr, ",", ".")
		} else {
			// Comma used as thousand separator (1,234)
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	}

	// Apostrophes as thousand separators (1'234.56)
	amountStr = strings.ReplaceAll(amountStr, "'", "")

	return amountStr
}

// FormatAmount renders a decimal amount with two decimal places and the
// currency code, e.g. "123.45 CHF".
func FormatAmount(amount decimal.Decimal, currency string) string {
	formatted := amount.StringFixed(2)
	if currency == "" {
		return formatted
	}
	return formatted + " " + strings.ToUpper(currency)
}

// RenderValue renders a raw extracted amount value, whatever JSON type it
// arrived as. Unparseable values are passed through unchanged so the
// operator still sees what the backend returned.
func RenderValue(value any, currency string) string {
	switch v := value.(type) {
	case float64:
		return FormatAmount(decimal.NewFromFloat(v), currency)
	case string:
		amount, err := ParseAmount(v)
		if err != nil {
			return v
		}
		return FormatAmount(amount, currency)
	default:
		return fmt.Sprintf("%v", value)
	}
}
