package services

import (
	"fmt"
	"math"
	"strings"
)

// FormatEUR formats an amount in Italian euro notation: dot as thousands
// separator, comma as decimal separator, trailing euro sign
// (e.g. 1.234.567,89 €). Always two decimal places.
func FormatEUR(amount float64) string {
	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}

	raw := fmt.Sprintf("%.2f", amount)

	parts := strings.SplitN(raw, ".", 2)
	intPart := parts[0]
	decPart := parts[1]

	result := groupThousands(intPart) + "," + decPart + " €"
	if negative {
		result = "-" + result
	}
	return result
}

// groupThousands inserts dots into an integer string every three digits from
// the right.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	remaining := s[:n-3]
	for len(remaining) > 3 {
		result = remaining[len(remaining)-3:] + "." + result
		remaining = remaining[:len(remaining)-3]
	}
	return remaining + "." + result
}

// FormatQty renders a quantity: whole numbers without decimals, fractional
// values with two, comma as decimal separator.
func FormatQty(qty float64) string {
	if qty == math.Trunc(qty) {
		return fmt.Sprintf("%.0f", qty)
	}
	return strings.Replace(fmt.Sprintf("%.2f", qty), ".", ",", 1)
}

// FormatSignedQty renders a variation quantity with its explicit sign, the
// way matrix cells display "+15" and "-5" as separate entries.
func FormatSignedQty(v Variation) string {
	if v.Type == VariationDecrease {
		return "-" + FormatQty(v.Quantity)
	}
	return "+" + FormatQty(v.Quantity)
}
