package cmd

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/google/subcommands"
	"github.com/yihsuan/ozpocket"
	"github.com/yihsuan/ozpocket/renderer"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	refresh bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display balances, net worth and visa progress" }
func (*summaryCmd) Usage() string {
	return `ozp summary [-refresh]

  Displays cash balances, investments at cost, net worth in each
  currency, and visa work-day progress.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.refresh, "refresh", false, "Fetch fresh exchange rates before summarizing.")
}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.refresh {
		r := ozpocket.Refresher{Ledger: ledger, Client: http.DefaultClient, URL: resolveRateURL()}
		if r.RefreshOnce(ctx) {
			if err := SaveLedger(ledger); err != nil {
				fmt.Fprintln(os.Stderr, err)
				return subcommands.ExitFailure
			}
		}
	}

	printMarkdown(renderer.Summary(ledger.Summarize()), ledger.Settings())
	return subcommands.ExitSuccess
}
