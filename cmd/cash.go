package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/yihsuan/ozpocket"
)

// cashCmd records an income or an expense, the kind set at registration.
type cashCmd struct {
	kind     ozpocket.Kind
	currency string
	date     string
}

func (c *cashCmd) Name() string { return string(c.kind) }
func (c *cashCmd) Synopsis() string {
	if c.kind == ozpocket.Income {
		return "record money coming in"
	}
	return "record money going out"
}
func (c *cashCmd) Usage() string {
	return fmt.Sprintf(`ozp %s [-c <currency>] [-d <date>] <amount> <description>

  Records a cash movement and updates the balance of the given currency.

Usage Examples:
$ ozp %s -c TWD 320 groceries

`, c.kind, c.kind)
}

func (c *cashCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", "AUD", "Currency of the amount (AUD, TWD or USD).")
	f.StringVar(&c.date, "d", "", "Date of the movement (defaults to today).")
}

func (c *cashCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "Error: expected an amount and a description.")
		return subcommands.ExitUsageError
	}
	amount, err := ozpocket.ParseAmount(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}
	description := strings.Join(f.Args()[1:], " ")

	var day ozpocket.Date
	if c.date != "" {
		day, err = ozpocket.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	tx, err := ledger.AddTransaction(c.kind, description, ozpocket.M(amount, c.currency), day)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded %s %q of %s, %s balance is now %s\n",
		tx.Kind, tx.Description, tx.Amount, c.currency, ledger.Balance(c.currency))
	return subcommands.ExitSuccess
}
