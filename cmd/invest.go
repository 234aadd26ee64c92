package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/yihsuan/ozpocket"
)

type investCmd struct {
	currency string
	date     string
}

func (*investCmd) Name() string     { return "invest" }
func (*investCmd) Synopsis() string { return "record an investment purchase" }
func (*investCmd) Usage() string {
	return `ozp invest [-c <currency>] [-d <date>] <name> <shares> <cost>

  Records buying <shares> of <name> for a total <cost>, and debits the
  cash balance of the purchase currency.

Usage Examples:
$ ozp invest -c USD VTI 2 610.50

`
}

func (c *investCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", "AUD", "Currency of the cost (AUD, TWD or USD).")
	f.StringVar(&c.date, "d", "", "Date of the purchase (defaults to today).")
}

func (c *investCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 3 {
		fmt.Fprintln(os.Stderr, "Error: expected a name, a number of shares and a total cost.")
		return subcommands.ExitUsageError
	}
	name := f.Arg(0)
	shares, err := ozpocket.ParseAmount(f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing shares: %v\n", err)
		return subcommands.ExitUsageError
	}
	cost, err := ozpocket.ParseAmount(f.Arg(2))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing cost: %v\n", err)
		return subcommands.ExitUsageError
	}

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
	inv, err := ledger.AddInvestment(name, ozpocket.Q(shares), ozpocket.M(cost, c.currency), day)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded buying %s %s for %s, %s balance is now %s\n",
		inv.Shares, inv.Name, inv.Cost, c.currency, ledger.Balance(c.currency))
	return subcommands.ExitSuccess
}
