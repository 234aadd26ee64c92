// Package renderer turns derived tracker state into markdown documents.
package renderer

import (
	"strings"

	"github.com/shopspring/decimal"
)

// formatAmount renders a value for display. TWD is conventionally shown in
// whole dollars, AUD and USD with cents. This is the only place amounts are
// rounded.
func formatAmount(v decimal.Decimal, currency string) string {
	if currency == "TWD" {
		return groupDigits(v.Round(0).String())
	}
	return groupDigits(v.StringFixed(2))
}

// groupDigits inserts thousands separators into the integer part of a
// plain decimal string.
func groupDigits(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := sign + b.String()
	if hasFrac {
		out += "." + fracPart
	}
	return out
}

// progressBar renders a completion fraction as a fixed-width text bar.
func progressBar(fraction float64, width int) string {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	filled := int(fraction * float64(width))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
