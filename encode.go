package ozpocket

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// SnapshotVersion is the schema version written in every snapshot.
// Snapshots without a version field are accepted as legacy (version 0).
const SnapshotVersion = 1

// Wire shapes of the persisted snapshot. Monetary values are persisted as a
// separate amount and currency field.

type jtransaction struct {
	ID          int64           `json:"id"`
	Kind        Kind            `json:"kind"`
	Description string          `json:"desc"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Date        Date            `json:"date"`
}

type jinvestment struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Shares   Quantity        `json:"shares"`
	Cost     decimal.Decimal `json:"cost"`
	Currency string          `json:"currency"`
	Date     Date            `json:"date"`
}

type jrates struct {
	AUDTWD decimal.Decimal `json:"AUD_TWD"`
	AUDUSD decimal.Decimal `json:"AUD_USD"`
	USDTWD decimal.Decimal `json:"USD_TWD"`
}

type jsettings struct {
	DarkMode     bool            `json:"darkMode"`
	WeeklyBudget decimal.Decimal `json:"weeklyBudget"`
}

type jsnapshot struct {
	Version      int                        `json:"version"`
	Balance      map[string]decimal.Decimal `json:"balance"`
	Transactions []jtransaction             `json:"transactions"`
	Investments  []jinvestment              `json:"investments"`
	WorkDays     int                        `json:"workDays"`
	WorkLog      []time.Time                `json:"workLogs"`
	Rates        *jrates                    `json:"rates,omitempty"`
	Settings     *jsettings                 `json:"settings,omitempty"`
}

// EncodeSnapshot writes the whole ledger state as an indented JSON snapshot.
func EncodeSnapshot(w io.Writer, l *Ledger) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	snap := jsnapshot{
		Version:  SnapshotVersion,
		Balance:  make(map[string]decimal.Decimal, len(l.balances)),
		WorkDays: l.workDays,
		WorkLog:  l.workLog,
		Rates:    &jrates{AUDTWD: l.rates.AUDTWD, AUDUSD: l.rates.AUDUSD, USDTWD: l.rates.USDTWD},
		Settings: &jsettings{DarkMode: l.settings.DarkMode, WeeklyBudget: l.settings.WeeklyBudget},
	}
	for c, v := range l.balances {
		snap.Balance[c] = v
	}
	for _, tx := range l.transactions {
		snap.Transactions = append(snap.Transactions, jtransaction{
			ID:          tx.ID,
			Kind:        tx.Kind,
			Description: tx.Description,
			Amount:      tx.Amount.value,
			Currency:    tx.Amount.Currency(),
			Date:        tx.Date,
		})
	}
	for _, inv := range l.investments {
		snap.Investments = append(snap.Investments, jinvestment{
			ID:       inv.ID,
			Name:     inv.Name,
			Shares:   inv.Shares,
			Cost:     inv.Cost.value,
			Currency: inv.Cost.Currency(),
			Date:     inv.Date,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("cannot encode snapshot: %w", err)
	}
	return nil
}

// DecodeSnapshot reads a snapshot and rebuilds a ledger from it.
//
// Absent fields fall back to defaults (empty logs, zero balances, built-in
// rates). Malformed input is an error, distinct from "field absent": every
// entry is re-validated so a hand-edited snapshot cannot smuggle in an
// unknown currency or kind.
func DecodeSnapshot(r io.Reader) (*Ledger, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read snapshot: %w", err)
	}
	var snap jsnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("cannot parse snapshot: %w", err)
	}
	if snap.Version > SnapshotVersion {
		return nil, fmt.Errorf("snapshot version %d is newer than supported version %d", snap.Version, SnapshotVersion)
	}

	l := NewLedger()

	for c, v := range snap.Balance {
		if err := ValidateCurrency(c); err != nil {
			return nil, fmt.Errorf("snapshot balance: %w", err)
		}
		l.balances[c] = v
	}

	for _, jt := range snap.Transactions {
		if _, err := ParseKind(string(jt.Kind)); err != nil {
			return nil, fmt.Errorf("snapshot transaction %d: %w", jt.ID, err)
		}
		if err := ValidateCurrency(jt.Currency); err != nil {
			return nil, fmt.Errorf("snapshot transaction %d: %w", jt.ID, err)
		}
		l.transactions = append(l.transactions, Transaction{
			ID:          jt.ID,
			Kind:        jt.Kind,
			Description: jt.Description,
			Amount:      Money{value: jt.Amount, cur: jt.Currency},
			Date:        jt.Date,
		})
		if jt.ID > l.lastID {
			l.lastID = jt.ID
		}
	}

	for _, ji := range snap.Investments {
		if err := ValidateCurrency(ji.Currency); err != nil {
			return nil, fmt.Errorf("snapshot investment %d: %w", ji.ID, err)
		}
		l.investments = append(l.investments, Investment{
			ID:     ji.ID,
			Name:   ji.Name,
			Shares: ji.Shares,
			Cost:   Money{value: ji.Cost, cur: ji.Currency},
			Date:   ji.Date,
		})
		if ji.ID > l.lastID {
			l.lastID = ji.ID
		}
	}

	if snap.WorkDays < 0 {
		return nil, fmt.Errorf("snapshot work-day count cannot be negative, got %d", snap.WorkDays)
	}
	l.workDays = snap.WorkDays
	l.workLog = snap.WorkLog
	if len(l.workLog) != l.workDays {
		return nil, fmt.Errorf("snapshot work log has %d entries for a count of %d", len(l.workLog), l.workDays)
	}

	if snap.Rates != nil {
		table := RateTable{AUDTWD: snap.Rates.AUDTWD, AUDUSD: snap.Rates.AUDUSD, USDTWD: snap.Rates.USDTWD}
		if err := table.Validate(); err != nil {
			return nil, fmt.Errorf("snapshot rates: %w", err)
		}
		l.rates = table
	}
	if snap.Settings != nil {
		if snap.Settings.WeeklyBudget.IsNegative() {
			return nil, fmt.Errorf("snapshot weekly budget cannot be negative, got %s", snap.Settings.WeeklyBudget)
		}
		l.settings = Settings{DarkMode: snap.Settings.DarkMode, WeeklyBudget: snap.Settings.WeeklyBudget}
	}

	return l, nil
}
