package ozpocket

import (
	"time"

	"github.com/shopspring/decimal"
)

// Visa work-day thresholds: 88 days qualify for the second-year stay, 179
// further days for the third.
const (
	SecondYearDays = 88
	ThirdYearDays  = 179
)

// VisaStage is the progress through one work-day threshold.
type VisaStage struct {
	Done     int // days counted toward this stage, clamped to Required
	Required int
}

// Fraction returns the stage completion in [0,1] for progress rendering.
func (s VisaStage) Fraction() float64 {
	if s.Required == 0 {
		return 0
	}
	return float64(s.Done) / float64(s.Required)
}

// VisaProgress derives the two stage progressions from the work-day count.
// Both numerators are clamped so neither stage overflows its threshold.
func VisaProgress(workDays int) (second, third VisaStage) {
	second = VisaStage{Done: min(workDays, SecondYearDays), Required: SecondYearDays}
	third = VisaStage{Done: min(max(0, workDays-SecondYearDays), ThirdYearDays), Required: ThirdYearDays}
	return second, third
}

// Summary is the derived view of the whole ledger: everything the
// presentation layer renders.
type Summary struct {
	Date             Date
	Balances         map[string]decimal.Decimal
	InvestmentTotals map[string]decimal.Decimal
	// NetWorth is the total of cash plus investment cost basis revalued
	// into each currency.
	NetWorth     map[string]decimal.Decimal
	Rates        RateTable
	WorkDays     int
	SecondYear   VisaStage
	ThirdYear    VisaStage
	WeeklySpend  decimal.Decimal // AUD-equivalent expenses over the trailing 7 days
	WeeklyBudget decimal.Decimal
	Recent       []Transaction
}

// recentHistorySize is how many transactions the summary shows.
const recentHistorySize = 10

// Summarize folds the ledger and its rate table into the displayed summary.
//
// Net worth is a linear revaluation of cash plus cost basis: the TWD and
// USD cross terms use the quoted USD/TWD rate directly, everything else
// pivots through AUD.
func (l *Ledger) Summarize() *Summary {
	l.mu.Lock()
	defer l.mu.Unlock()

	s := &Summary{
		Date:             Today(),
		Balances:         make(map[string]decimal.Decimal, len(Currencies)),
		InvestmentTotals: l.investmentTotals(),
		NetWorth:         make(map[string]decimal.Decimal, len(Currencies)),
		Rates:            l.rates,
		WorkDays:         l.workDays,
		WeeklyBudget:     l.settings.WeeklyBudget,
	}
	for _, c := range Currencies {
		s.Balances[c] = l.balances[c]
	}
	s.SecondYear, s.ThirdYear = VisaProgress(l.workDays)

	// Per-currency totals of cash plus investment cost basis.
	aud := s.Balances["AUD"].Add(s.InvestmentTotals["AUD"])
	twd := s.Balances["TWD"].Add(s.InvestmentTotals["TWD"])
	usd := s.Balances["USD"].Add(s.InvestmentTotals["USD"])

	r := l.rates
	s.NetWorth["AUD"] = aud.Add(twd.Div(r.AUDTWD)).Add(usd.Div(r.AUDUSD))
	s.NetWorth["TWD"] = aud.Mul(r.AUDTWD).Add(twd).Add(usd.Mul(r.USDTWD))
	s.NetWorth["USD"] = aud.Mul(r.AUDUSD).Add(twd.Div(r.USDTWD)).Add(usd)

	s.WeeklySpend = l.weeklySpend()

	n := recentHistorySize
	if n > len(l.transactions) {
		n = len(l.transactions)
	}
	s.Recent = append(s.Recent, l.transactions[:n]...)
	return s
}

// weeklySpend sums expenses dated within the trailing 7 days, converted to
// AUD at the current rates.
func (l *Ledger) weeklySpend() decimal.Decimal {
	weekAgo := NewDate(time.Now().Date()).Add(-7)
	total := decimal.Zero
	for _, tx := range l.transactions {
		if tx.Kind != Expense || tx.Date.Before(weekAgo) {
			continue
		}
		in, err := l.rates.Convert(tx.Amount, "AUD")
		if err != nil {
			continue
		}
		total = total.Add(in.value)
	}
	return total
}
