package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/yihsuan/ozpocket"
)

type exchangeCmd struct {
	amount  string
	from    string
	to      string
	preview bool
}

func (*exchangeCmd) Name() string     { return "exchange" }
func (*exchangeCmd) Synopsis() string { return "convert cash from one currency to another" }
func (*exchangeCmd) Usage() string {
	return `ozp exchange -amount <amount> -from <currency> -to <currency> [-preview]

  Converts cash at the stored rates. The exchange is recorded as two
  entries, an expense in the source currency and an income in the
  destination currency.

Usage Examples:
$ ozp exchange -amount 50 -from AUD -to TWD

`
}

func (c *exchangeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "amount", "", "Amount to convert, in the source currency.")
	f.StringVar(&c.from, "from", "", "Source currency.")
	f.StringVar(&c.to, "to", "", "Destination currency.")
	f.BoolVar(&c.preview, "preview", false, "Show the converted amount without recording anything.")
}

func (c *exchangeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount == "" || c.from == "" || c.to == "" {
		fmt.Fprintln(os.Stderr, "Error: -amount, -from and -to are all required.")
		return subcommands.ExitUsageError
	}
	amount, err := ozpocket.ParseAmount(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	source := ozpocket.M(amount, c.from)

	if c.preview {
		converted, err := ledger.Rates().Convert(source, c.to)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("%s would become %s\n", source, converted)
		return subcommands.ExitSuccess
	}

	out, in, err := ledger.Exchange(source, c.to)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Exchanged %s for %s\n", out.Amount, in.Amount)
	fmt.Printf("%s balance is now %s, %s balance is now %s\n",
		c.from, ledger.Balance(c.from), c.to, ledger.Balance(c.to))
	return subcommands.ExitSuccess
}
