package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

const CurrencySymbol = "₹"

// FormatCurrency renders an amount with thousands separators and two decimals,
// e.g. 1234.5 becomes "₹1,234.50".
func FormatCurrency(value float64) string {
	amount := decimal.NewFromFloat(value).StringFixed(2)
	sign := ""
	if strings.HasPrefix(amount, "-") {
		sign, amount = "-", amount[1:]
	}
	intPart, fraction, _ := strings.Cut(amount, ".")
	return sign + CurrencySymbol + AddCommasToInteger(intPart) + "." + fraction
}

func AddCommasToInteger(digits string) string {
	var parts []string
	for i := len(digits); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		parts = append([]string{digits[start:i]}, parts...)
	}
	return strings.Join(parts, ",")
}
