package ozpocket

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// Settings are user preferences persisted with the snapshot.
type Settings struct {
	DarkMode     bool
	WeeklyBudget decimal.Decimal // in AUD, zero disables the budget line
}

// Ledger owns the whole tracker state: cash balances, the transaction and
// investment logs, the work-day counter and its log, the rate table and the
// user settings.
//
// All mutation goes through its methods. Every mutation keeps the cash
// balances consistent with the logs: for each currency the balance equals
// the signed sum of remaining transactions minus the cost of remaining
// investments in that currency.
type Ledger struct {
	mu sync.Mutex

	balances     map[string]decimal.Decimal
	transactions []Transaction // most recent first
	investments  []Investment  // most recent first
	workDays     int
	workLog      []time.Time // most recent first, len(workLog) == workDays
	rates        RateTable
	settings     Settings

	lastID int64
}

// NewLedger creates an empty ledger with zero balances and default rates.
func NewLedger() *Ledger {
	l := &Ledger{
		balances: make(map[string]decimal.Decimal, len(Currencies)),
		rates:    DefaultRates(),
	}
	for _, c := range Currencies {
		l.balances[c] = decimal.Zero
	}
	return l
}

// nextID returns a new identifier based on the current time in unix
// milliseconds. Two entries created within the same millisecond still get
// distinct, strictly increasing ids.
func (l *Ledger) nextID() int64 {
	id := time.Now().UnixMilli()
	if id <= l.lastID {
		id = l.lastID + 1
	}
	l.lastID = id
	return id
}

// apply adds a signed amount to the balance of its currency.
func (l *Ledger) apply(m Money) {
	l.balances[m.Currency()] = l.balances[m.Currency()].Add(m.value)
}

// insertTransaction prepends a transaction and applies its balance effect.
func (l *Ledger) insertTransaction(tx Transaction) {
	l.transactions = append([]Transaction{tx}, l.transactions...)
	l.apply(tx.Signed())
}

// Balance returns the cash balance held in the given currency.
func (l *Ledger) Balance(currency string) Money {
	l.mu.Lock()
	defer l.mu.Unlock()
	return Money{value: l.balances[currency], cur: currency}
}

// Balances returns a copy of the per-currency cash balances.
func (l *Ledger) Balances() map[string]decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make(map[string]decimal.Decimal, len(l.balances))
	for c, v := range l.balances {
		out[c] = v
	}
	return out
}

// Rates returns the current rate table.
func (l *Ledger) Rates() RateTable {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rates
}

// SetRates atomically replaces all three cross-rates.
func (l *Ledger) SetRates(table RateTable) error {
	if err := table.Validate(); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rates = table
	return nil
}

// Settings returns the persisted user settings.
func (l *Ledger) Settings() Settings {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.settings
}

// SetDarkMode toggles the appearance preference.
func (l *Ledger) SetDarkMode(on bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.settings.DarkMode = on
}

// SetWeeklyBudget sets the weekly spending budget in AUD. A zero budget
// disables the budget line in the summary.
func (l *Ledger) SetWeeklyBudget(budget decimal.Decimal) error {
	if budget.IsNegative() {
		return fmt.Errorf("weekly budget cannot be negative, got %s", budget)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.settings.WeeklyBudget = budget
	return nil
}

// AddTransaction validates and records a cash movement, updating the balance
// of its currency in the same operation. The day defaults to today.
func (l *Ledger) AddTransaction(kind Kind, description string, amount Money, day Date) (Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if kind != Income && kind != Expense {
		return Transaction{}, fmt.Errorf("unknown transaction kind: %q", kind)
	}
	if strings.TrimSpace(description) == "" {
		return Transaction{}, errors.New("transaction description is missing")
	}
	if err := ValidateCurrency(amount.Currency()); err != nil {
		return Transaction{}, err
	}
	if !amount.IsPositive() {
		return Transaction{}, fmt.Errorf("transaction amount must be positive, got %s", amount)
	}
	if day.IsZero() {
		day = Today()
	}
	tx := Transaction{ID: l.nextID(), Kind: kind, Description: description, Amount: amount, Date: day}
	l.insertTransaction(tx)
	return tx, nil
}

// AddInvestment validates and records a purchase, debiting the balance of
// the purchase currency by its cost. Shares and cost must be positive so the
// average cost of a holding stays defined.
func (l *Ledger) AddInvestment(name string, shares Quantity, cost Money, day Date) (Investment, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if strings.TrimSpace(name) == "" {
		return Investment{}, errors.New("investment name is missing")
	}
	if err := ValidateCurrency(cost.Currency()); err != nil {
		return Investment{}, err
	}
	if !shares.IsPositive() {
		return Investment{}, fmt.Errorf("investment shares must be positive, got %s", shares)
	}
	if !cost.IsPositive() {
		return Investment{}, fmt.Errorf("investment cost must be positive, got %s", cost)
	}
	if day.IsZero() {
		day = Today()
	}
	inv := Investment{ID: l.nextID(), Name: name, Shares: shares, Cost: cost, Date: day}
	l.investments = append([]Investment{inv}, l.investments...)
	l.apply(cost.Neg())
	return inv, nil
}

// DeleteEntry removes the entry with the given id, reversing its balance
// effect. Transactions and investments share the same id space, so the id is
// looked up in both logs: the UI issues one generic delete for the combined
// view.
func (l *Ledger) DeleteEntry(id int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, tx := range l.transactions {
		if tx.ID == id {
			l.apply(tx.Signed().Neg())
			l.transactions = slices.Delete(l.transactions, i, i+1)
			return nil
		}
	}
	for i, inv := range l.investments {
		if inv.ID == id {
			l.apply(inv.Cost)
			l.investments = slices.Delete(l.investments, i, i+1)
			return nil
		}
	}
	return fmt.Errorf("no entry with id %d", id)
}

// Exchange converts cash between two currencies at the current pivot rate.
//
// It debits the source currency and credits the destination, and records the
// movement as a paired expense and income sharing correlated ids, keeping
// the transaction log reconcilable against the balances.
func (l *Ledger) Exchange(amount Money, to string) (out, in Transaction, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	from := amount.Currency()
	if err := ValidateCurrency(from); err != nil {
		return Transaction{}, Transaction{}, err
	}
	if err := ValidateCurrency(to); err != nil {
		return Transaction{}, Transaction{}, err
	}
	if from == to {
		return Transaction{}, Transaction{}, fmt.Errorf("cannot exchange %s to the same currency", from)
	}
	if !amount.IsPositive() {
		return Transaction{}, Transaction{}, fmt.Errorf("exchange amount must be positive, got %s", amount)
	}
	if l.balances[from].LessThan(amount.value) {
		return Transaction{}, Transaction{}, fmt.Errorf("cannot exchange %s, balance is only %s",
			amount, Money{value: l.balances[from], cur: from})
	}
	rate, err := l.rates.Rate(from, to)
	if err != nil {
		return Transaction{}, Transaction{}, err
	}
	converted := Money{value: amount.value.Mul(rate), cur: to}
	day := Today()
	out = Transaction{ID: l.nextID(), Kind: Expense, Description: fmt.Sprintf("Exchange %s to %s", from, to), Amount: amount, Date: day}
	in = Transaction{ID: l.nextID(), Kind: Income, Description: fmt.Sprintf("Exchange %s to %s", from, to), Amount: converted, Date: day}
	l.insertTransaction(out)
	l.insertTransaction(in)
	return out, in, nil
}

// AddWorkDay increments the visa work-day counter and logs the check-in.
// It returns the new count.
func (l *Ledger) AddWorkDay() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.workDays++
	l.workLog = append([]time.Time{time.Now()}, l.workLog...)
	return l.workDays
}

// UndoWorkDay removes the most recent check-in. It is a no-op at zero.
// It returns the new count.
func (l *Ledger) UndoWorkDay() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.workDays == 0 {
		return 0
	}
	l.workDays--
	l.workLog = l.workLog[1:]
	return l.workDays
}

// WorkDays returns the visa work-day count.
func (l *Ledger) WorkDays() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.workDays
}

// WorkLog returns a copy of the check-in log, most recent first.
func (l *Ledger) WorkLog() []time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.workLog)
}

// Transactions returns a copy of the transaction log, most recent first.
func (l *Ledger) Transactions() []Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.transactions)
}

// RecentTransactions returns up to n transactions, most recent first.
func (l *Ledger) RecentTransactions(n int) []Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()
	if n > len(l.transactions) {
		n = len(l.transactions)
	}
	return slices.Clone(l.transactions[:n])
}

// Investments returns a copy of the investment log, most recent first.
func (l *Ledger) Investments() []Investment {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.investments)
}

// InvestmentTotals folds the investment log into per-currency sums of cost
// basis. The tracker has no notion of market price, so cost basis stands in
// for value everywhere.
func (l *Ledger) InvestmentTotals() map[string]decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.investmentTotals()
}

func (l *Ledger) investmentTotals() map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal, len(Currencies))
	for _, c := range Currencies {
		totals[c] = decimal.Zero
	}
	for _, inv := range l.investments {
		totals[inv.Cost.Currency()] = totals[inv.Cost.Currency()].Add(inv.Cost.value)
	}
	return totals
}

// Holding is a position aggregated from all purchases sharing a name.
type Holding struct {
	Name      string
	Currency  string
	Shares    Quantity
	Cost      Money
	Purchases []Investment // chronological, oldest first
}

// AverageCost returns the cost per share. The boolean is false when the
// holding has no shares.
func (h Holding) AverageCost() (Money, bool) {
	if h.Shares.IsZero() {
		return Money{}, false
	}
	return h.Cost.Div(h.Shares), true
}

// GroupedHoldings groups investments by name, summing shares and cost, and
// returns the holdings sorted by name. The currency of a holding is the
// currency of its earliest purchase.
func (l *Ledger) GroupedHoldings() []Holding {
	l.mu.Lock()
	defer l.mu.Unlock()

	index := make(map[string]*Holding)
	// The log is most recent first; walk it backwards to build each
	// holding's purchase history in chronological order.
	for i := len(l.investments) - 1; i >= 0; i-- {
		inv := l.investments[i]
		h, ok := index[inv.Name]
		if !ok {
			h = &Holding{Name: inv.Name, Currency: inv.Cost.Currency()}
			index[inv.Name] = h
		}
		h.Shares = h.Shares.Add(inv.Shares)
		h.Cost = Money{value: h.Cost.value.Add(inv.Cost.value), cur: h.Currency}
		h.Purchases = append(h.Purchases, inv)
	}

	holdings := make([]Holding, 0, len(index))
	for _, h := range index {
		holdings = append(holdings, *h)
	}
	slices.SortFunc(holdings, func(a, b Holding) int { return strings.Compare(a.Name, b.Name) })
	return holdings
}

// CheckConsistency recomputes every balance from the logs and compares it to
// the stored running total. It returns an error naming each currency that
// does not reconcile.
func (l *Ledger) CheckConsistency() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	derived := make(map[string]decimal.Decimal, len(Currencies))
	for _, c := range Currencies {
		derived[c] = decimal.Zero
	}
	for _, tx := range l.transactions {
		s := tx.Signed()
		derived[s.Currency()] = derived[s.Currency()].Add(s.value)
	}
	for _, inv := range l.investments {
		c := inv.Cost.Currency()
		derived[c] = derived[c].Sub(inv.Cost.value)
	}

	var errs error
	for _, c := range Currencies {
		if !derived[c].Equal(l.balances[c]) {
			errs = errors.Join(errs, fmt.Errorf("balance %s is %s but the logs sum to %s", c, l.balances[c], derived[c]))
		}
	}
	return errs
}

// Reset wipes all state back to an empty ledger with default rates.
func (l *Ledger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, c := range Currencies {
		l.balances[c] = decimal.Zero
	}
	l.transactions = nil
	l.investments = nil
	l.workDays = 0
	l.workLog = nil
	l.rates = DefaultRates()
	l.settings = Settings{}
}
