package ozpocket

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Currencies are the currency codes tracked by the ledger, in display order.
// AUD is the pivot currency for all conversions.
var Currencies = []string{"AUD", "TWD", "USD"}

// ValidateCurrency checks that a currency code is one of the tracked currencies.
func ValidateCurrency(currency string) error {
	if slices.Contains(Currencies, currency) {
		return nil
	}
	return fmt.Errorf("unsupported currency %q (want one of %s)", currency, strings.Join(Currencies, ", "))
}

// ParseAmount parses a user-entered amount into an exact decimal.
func ParseAmount(str string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(str))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q: %w", str, err)
	}
	return v, nil
}
