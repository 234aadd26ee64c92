package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/yihsuan/ozpocket"
)

func TestFormatAmount(t *testing.T) {
	testCases := []struct {
		in       float64
		currency string
		want     string
	}{
		{2175.4, "TWD", "2,175"},
		{-320, "TWD", "-320"},
		{1234567.891, "TWD", "1,234,568"},
		{100, "AUD", "100.00"},
		{69.2, "USD", "69.20"},
		{-1250.5, "AUD", "-1,250.50"},
	}
	for _, tc := range testCases {
		got := formatAmount(ozpocket.M(tc.in, tc.currency).Value(), tc.currency)
		if got != tc.want {
			t.Errorf("formatAmount(%v, %s) = %q, want %q", tc.in, tc.currency, got, tc.want)
		}
	}
}

func TestProgressBar(t *testing.T) {
	if got := progressBar(0, 4); got != "░░░░" {
		t.Errorf("progressBar(0) = %q", got)
	}
	if got := progressBar(0.5, 4); got != "██░░" {
		t.Errorf("progressBar(0.5) = %q", got)
	}
	if got := progressBar(1, 4); got != "████" {
		t.Errorf("progressBar(1) = %q", got)
	}
	// Fractions past 1 clamp instead of widening the bar.
	if got := progressBar(3.4, 4); got != "████" {
		t.Errorf("progressBar(3.4) = %q", got)
	}
}

func TestSummary_RendersKeyFigures(t *testing.T) {
	l := ozpocket.NewLedger()
	if _, err := l.AddTransaction(ozpocket.Income, "opening balance", ozpocket.M(100, "AUD"), ozpocket.Date{}); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 90; i++ {
		l.AddWorkDay()
	}

	out := Summary(l.Summarize())

	for _, want := range []string{
		"Pocket Summary",
		"Net Worth",
		"100.00",   // AUD cash
		"2,175",    // TWD revaluation at default rates
		"88 / 88",  // second stage complete
		"2 / 179",  // third stage started
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary output is missing %q:\n%s", want, out)
		}
	}
}

func TestTransactions_Empty(t *testing.T) {
	out := Transactions(nil)
	if !strings.Contains(out, "No transactions recorded.") {
		t.Errorf("empty transaction list rendered unexpectedly:\n%s", out)
	}
}

func TestHoldings(t *testing.T) {
	l := ozpocket.NewLedger()
	if _, err := l.AddInvestment("VTI", ozpocket.Q(3), ozpocket.M(30, "USD"), ozpocket.Date{}); err != nil {
		t.Fatal(err)
	}

	out := Holdings(l.GroupedHoldings())
	for _, want := range []string{"VTI", "10.00", "30.00", "USD"} {
		if !strings.Contains(out, want) {
			t.Errorf("holdings output is missing %q:\n%s", want, out)
		}
	}
}

func TestWorkLog(t *testing.T) {
	entries := []time.Time{
		time.Date(2026, time.August, 25, 9, 0, 0, 0, time.UTC),
		time.Date(2026, time.August, 24, 9, 0, 0, 0, time.UTC),
	}
	out := WorkLog(2, entries)
	if !strings.Contains(out, "Work Days: 2") {
		t.Errorf("work log output is missing the count:\n%s", out)
	}
	if !strings.Contains(out, "day 2, checked in 2026-08-25 09:00") {
		t.Errorf("work log output is missing the latest entry:\n%s", out)
	}
}
