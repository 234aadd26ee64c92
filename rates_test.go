package ozpocket

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func TestRateTable_Rate(t *testing.T) {
	r := testRates()

	testCases := []struct {
		name string
		from string
		to   string
		want float64
	}{
		{"identity", "AUD", "AUD", 1},
		{"pivot outbound", "AUD", "TWD", 21.75},
		{"pivot inbound", "TWD", "AUD", 1 / 21.75},
		{"cross via pivot", "USD", "TWD", 21.75 / 0.692},
		{"cross via pivot reversed", "TWD", "USD", 0.692 / 21.75},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := r.Rate(tc.from, tc.to)
			if err != nil {
				t.Fatalf("Rate(%s, %s) failed: %v", tc.from, tc.to, err)
			}
			if diff := math.Abs(got.InexactFloat64() - tc.want); diff > 1e-9 {
				t.Errorf("Rate(%s, %s) = %s, want %v", tc.from, tc.to, got, tc.want)
			}
		})
	}

	if _, err := r.Rate("AUD", "EUR"); err == nil {
		t.Error("Rate() accepted an untracked currency")
	}
}

func TestRateTable_ConvertRoundTrip(t *testing.T) {
	r := testRates()
	pairs := [][2]string{{"AUD", "TWD"}, {"AUD", "USD"}, {"TWD", "USD"}}

	for _, p := range pairs {
		start := M(123.45, p[0])
		there, err := r.Convert(start, p[1])
		if err != nil {
			t.Fatalf("Convert(%s, %s) failed: %v", start, p[1], err)
		}
		back, err := r.Convert(there, p[0])
		if err != nil {
			t.Fatalf("Convert(%s, %s) failed: %v", there, p[0], err)
		}
		// Conversion never rounds internally, so the round trip is exact
		// within decimal division precision.
		diff := back.Value().Sub(start.Value()).Abs()
		if diff.GreaterThan(decimal.New(1, -9)) {
			t.Errorf("round trip %s -> %s -> %s drifted by %s", p[0], p[1], back, diff)
		}
	}
}

func TestRateTable_Validate(t *testing.T) {
	good := testRates()
	if err := good.Validate(); err != nil {
		t.Errorf("Validate() rejected valid rates: %v", err)
	}

	bad := good
	bad.AUDUSD = decimal.Zero
	if err := bad.Validate(); err == nil {
		t.Error("Validate() accepted a zero rate")
	}

	negative := good
	negative.USDTWD = decimal.NewFromInt(-1)
	if err := negative.Validate(); err == nil {
		t.Error("Validate() accepted a negative rate")
	}
}

func TestDefaultRates(t *testing.T) {
	if err := DefaultRates().Validate(); err != nil {
		t.Errorf("DefaultRates() are invalid: %v", err)
	}
}
