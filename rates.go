package ozpocket

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RateTable holds the three cross-rates used for conversion and valuation.
//
// AUD is the pivot: AUDTWD and AUDUSD are the source of truth for
// conversions. USDTWD is stored on its own and only used by the net worth
// valuation, so the valuation matches the quoted USD/TWD cross even when it
// drifts slightly from the pivot-derived one.
type RateTable struct {
	AUDTWD decimal.Decimal
	AUDUSD decimal.Decimal
	USDTWD decimal.Decimal
}

// DefaultRates returns the built-in rates used until the first successful refresh.
func DefaultRates() RateTable {
	return RateTable{
		AUDTWD: decimal.NewFromFloat(21.75),
		AUDUSD: decimal.NewFromFloat(0.692),
		USDTWD: decimal.NewFromFloat(31.45),
	}
}

// Validate checks that all cross-rates are positive.
func (r RateTable) Validate() error {
	for _, c := range []struct {
		name string
		rate decimal.Decimal
	}{
		{"AUD_TWD", r.AUDTWD},
		{"AUD_USD", r.AUDUSD},
		{"USD_TWD", r.USDTWD},
	} {
		if !c.rate.IsPositive() {
			return fmt.Errorf("rate %s must be positive, got %s", c.name, c.rate)
		}
	}
	return nil
}

// audTo returns how many units of the given currency one AUD buys.
func (r RateTable) audTo(currency string) (decimal.Decimal, error) {
	switch currency {
	case "AUD":
		return decimal.NewFromInt(1), nil
	case "TWD":
		return r.AUDTWD, nil
	case "USD":
		return r.AUDUSD, nil
	}
	return decimal.Decimal{}, fmt.Errorf("no AUD cross-rate for currency %q", currency)
}

// Rate returns the conversion factor from one currency to another, pivoting
// through AUD when neither side is AUD. Identical currencies yield 1.
func (r RateTable) Rate(from, to string) (decimal.Decimal, error) {
	if from == to {
		return decimal.NewFromInt(1), nil
	}
	audFrom, err := r.audTo(from)
	if err != nil {
		return decimal.Decimal{}, err
	}
	audTo, err := r.audTo(to)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if !audFrom.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("rate AUD/%s is not positive: %s", from, audFrom)
	}
	return audTo.Div(audFrom), nil
}

// Convert converts a monetary amount into the target currency.
// The conversion is exact, rounding only happens at display time.
func (r RateTable) Convert(m Money, to string) (Money, error) {
	rate, err := r.Rate(m.Currency(), to)
	if err != nil {
		return Money{}, err
	}
	return Money{value: m.value.Mul(rate), cur: to}, nil
}
