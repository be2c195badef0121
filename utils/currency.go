package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrencyEUR formats amount the way invoices are printed in Portugal.
// Example: 1234.5 -> "1.234,50 €"
func FormatCurrencyEUR(amount decimal.Decimal) string {
	formatted := amount.StringFixed(2)

	negative := strings.HasPrefix(formatted, "-")
	formatted = strings.TrimPrefix(formatted, "-")

	parts := strings.Split(formatted, ".")
	integerPart := parts[0]
	decimalPart := parts[1]

	// thousands separators
	var result []string
	for i := len(integerPart); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		result = append([]string{integerPart[start:i]}, result...)
	}

	out := strings.Join(result, ".") + "," + decimalPart + " €"
	if negative {
		out = "-" + out
	}
	return out
}
