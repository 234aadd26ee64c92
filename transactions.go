package ozpocket

import "fmt"

// Kind identifies the direction of a cash transaction.
type Kind string

const (
	// Income credits the balance of the transaction's currency.
	Income Kind = "income"
	// Expense debits the balance of the transaction's currency.
	Expense Kind = "expense"
)

// ParseKind parses a string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case Income:
		return Income, nil
	case Expense:
		return Expense, nil
	default:
		return "", fmt.Errorf("unknown transaction kind: %q", s)
	}
}

// Transaction is a single cash movement in one currency.
//
// The ID is the creation timestamp in unix milliseconds. It is both the
// identity of the entry and the sort key of the most-recent-first log, and
// it is shared with the investment log so a single "delete by id" resolves
// in either.
type Transaction struct {
	ID          int64
	Kind        Kind
	Description string
	Amount      Money // always positive, the sign is implied by Kind
	Date        Date
}

// Signed returns the transaction amount with the sign implied by its kind.
func (t Transaction) Signed() Money {
	if t.Kind == Expense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// Equal reports whether two transactions are identical.
func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID && t.Kind == o.Kind && t.Description == o.Description &&
		t.Amount.Equal(o.Amount) && t.Date == o.Date
}

// Investment is a purchase of a named asset at a cost in the asset's own
// currency. The name is a grouping key, not a unique key: multiple purchases
// under the same name accumulate into one holding.
type Investment struct {
	ID     int64
	Name   string
	Shares Quantity
	Cost   Money
	Date   Date
}

// Equal reports whether two investments are identical.
func (v Investment) Equal(o Investment) bool {
	return v.ID == o.ID && v.Name == o.Name && v.Shares.Equal(o.Shares) &&
		v.Cost.Equal(o.Cost) && v.Date == o.Date
}
