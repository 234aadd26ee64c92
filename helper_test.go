package ozpocket

import "github.com/shopspring/decimal"

// AUD is a helper for tests to create Australian dollar money from a const.
func AUD(v float64) Money { return M(v, "AUD") }

// TWD is a helper for tests to create Taiwan dollar money from a const.
func TWD(v float64) Money { return M(v, "TWD") }

// USD is a helper for tests to create US dollar money from a const.
func USD(v float64) Money { return M(v, "USD") }

// testRates are the fixed rates used across the test suite.
func testRates() RateTable {
	return RateTable{
		AUDTWD: decimal.NewFromFloat(21.75),
		AUDUSD: decimal.NewFromFloat(0.692),
		USDTWD: decimal.NewFromFloat(31.45),
	}
}

// newTestLedger creates an empty ledger pinned to the test rates.
func newTestLedger() *Ledger {
	l := NewLedger()
	l.rates = testRates()
	return l
}
