package ozpocket

import (
	"testing"
)

func TestVisaProgress(t *testing.T) {
	testCases := []struct {
		workDays       int
		wantSecond     int
		wantThird      int
		wantSecondFrac float64
		wantThirdFrac  float64
	}{
		{0, 0, 0, 0, 0},
		{42, 42, 0, 42.0 / 88, 0},
		{88, 88, 0, 1, 0},
		{100, 88, 12, 1, 12.0 / 179},
		{267, 88, 179, 1, 1},
		{300, 88, 179, 1, 1}, // no overflow past the thresholds
	}

	prevSecond, prevThird := -1.0, -1.0
	for _, tc := range testCases {
		second, third := VisaProgress(tc.workDays)
		if second.Done != tc.wantSecond {
			t.Errorf("VisaProgress(%d) second stage = %d, want %d", tc.workDays, second.Done, tc.wantSecond)
		}
		if third.Done != tc.wantThird {
			t.Errorf("VisaProgress(%d) third stage = %d, want %d", tc.workDays, third.Done, tc.wantThird)
		}
		if got := second.Fraction(); got != tc.wantSecondFrac {
			t.Errorf("VisaProgress(%d) second fraction = %v, want %v", tc.workDays, got, tc.wantSecondFrac)
		}
		if got := third.Fraction(); got != tc.wantThirdFrac {
			t.Errorf("VisaProgress(%d) third fraction = %v, want %v", tc.workDays, got, tc.wantThirdFrac)
		}
		// Progress is monotonically non-decreasing in the work-day count.
		if second.Fraction() < prevSecond || third.Fraction() < prevThird {
			t.Errorf("VisaProgress(%d) went backwards", tc.workDays)
		}
		prevSecond, prevThird = second.Fraction(), third.Fraction()
	}
}

func TestSummarize_NetWorth(t *testing.T) {
	l := newTestLedger()
	if _, err := l.AddTransaction(Income, "opening balance", AUD(100), Date{}); err != nil {
		t.Fatalf("AddTransaction() failed: %v", err)
	}

	s := l.Summarize()

	// With rates {AUD_TWD:21.75, AUD_USD:0.692, USD_TWD:31.45} and only
	// 100 AUD of cash, the revaluation is linear.
	if got := s.NetWorth["AUD"].StringFixed(2); got != "100.00" {
		t.Errorf("net worth in AUD = %s, want 100.00", got)
	}
	if got := s.NetWorth["TWD"].Round(0).String(); got != "2175" {
		t.Errorf("net worth in TWD = %s, want 2175", got)
	}
	if got := s.NetWorth["USD"].StringFixed(2); got != "69.20" {
		t.Errorf("net worth in USD = %s, want 69.20", got)
	}
}

func TestSummarize_UsesQuotedCrossForValuation(t *testing.T) {
	l := newTestLedger()
	if _, err := l.AddTransaction(Income, "savings", USD(100), Date{}); err != nil {
		t.Fatalf("AddTransaction() failed: %v", err)
	}

	s := l.Summarize()

	// The TWD valuation of a USD total uses the quoted USD_TWD cross, not
	// the pivot-derived AUD_TWD/AUD_USD.
	if got := s.NetWorth["TWD"].StringFixed(2); got != "3145.00" {
		t.Errorf("net worth in TWD = %s, want 3145.00", got)
	}
}

func TestSummarize_IncludesInvestmentCostBasis(t *testing.T) {
	l := newTestLedger()
	if _, err := l.AddTransaction(Income, "wage", AUD(500), Date{}); err != nil {
		t.Fatal(err)
	}
	if _, err := l.AddInvestment("VAS", Q(4), AUD(400), Date{}); err != nil {
		t.Fatal(err)
	}

	s := l.Summarize()

	// Buying moves cash into cost basis, the net worth stays put.
	if got := s.Balances["AUD"].StringFixed(2); got != "100.00" {
		t.Errorf("AUD cash = %s, want 100.00", got)
	}
	if got := s.InvestmentTotals["AUD"].StringFixed(2); got != "400.00" {
		t.Errorf("AUD cost basis = %s, want 400.00", got)
	}
	if got := s.NetWorth["AUD"].StringFixed(2); got != "500.00" {
		t.Errorf("net worth in AUD = %s, want 500.00", got)
	}
}

func TestSummarize_RecentTransactions(t *testing.T) {
	l := newTestLedger()
	for i := 0; i < 15; i++ {
		if _, err := l.AddTransaction(Income, "wage", AUD(10), Date{}); err != nil {
			t.Fatal(err)
		}
	}

	s := l.Summarize()
	if len(s.Recent) != recentHistorySize {
		t.Errorf("summary shows %d transactions, want %d", len(s.Recent), recentHistorySize)
	}
	// Most recent first: ids are strictly increasing at creation.
	for i := 1; i < len(s.Recent); i++ {
		if s.Recent[i-1].ID < s.Recent[i].ID {
			t.Fatalf("recent transactions are not most-recent-first at %d", i)
		}
	}
}

func TestSummarize_WeeklySpend(t *testing.T) {
	l := newTestLedger()
	if _, err := l.AddTransaction(Income, "wage", AUD(1000), Date{}); err != nil {
		t.Fatal(err)
	}
	if _, err := l.AddTransaction(Expense, "groceries", AUD(80), Today()); err != nil {
		t.Fatal(err)
	}
	// 217.50 TWD is 10 AUD at the test rates.
	if _, err := l.AddTransaction(Expense, "night market", TWD(217.50), Today()); err != nil {
		t.Fatal(err)
	}
	// An old expense stays out of the trailing week.
	if _, err := l.AddTransaction(Expense, "flight", AUD(500), Today().Add(-30)); err != nil {
		t.Fatal(err)
	}

	s := l.Summarize()
	if got := s.WeeklySpend.StringFixed(2); got != "90.00" {
		t.Errorf("weekly spend = %s AUD, want 90.00", got)
	}
}
