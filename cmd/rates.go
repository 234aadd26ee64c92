package cmd

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/google/subcommands"
	"github.com/yihsuan/ozpocket"
)

type ratesCmd struct {
	refresh bool
}

func (*ratesCmd) Name() string     { return "rates" }
func (*ratesCmd) Synopsis() string { return "show or refresh the stored exchange rates" }
func (*ratesCmd) Usage() string {
	return `ozp rates [-refresh]

  Shows the stored exchange rates. With -refresh, fetches fresh rates
  from the rate API first; on failure the stored rates are kept.
`
}

func (c *ratesCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.refresh, "refresh", false, "Fetch fresh rates before showing them.")
}

func (c *ratesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.refresh {
		r := ozpocket.Refresher{Ledger: ledger, Client: http.DefaultClient, URL: resolveRateURL()}
		if !r.RefreshOnce(ctx) {
			fmt.Fprintln(os.Stderr, "Warning: rate refresh failed, keeping the stored rates.")
		} else if err := SaveLedger(ledger); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	rates := ledger.Rates()
	fmt.Printf("1 AUD = %s TWD\n", rates.AUDTWD)
	fmt.Printf("1 AUD = %s USD\n", rates.AUDUSD)
	fmt.Printf("1 USD = %s TWD\n", rates.USDTWD)
	return subcommands.ExitSuccess
}
