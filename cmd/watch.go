package cmd

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/subcommands"
	"github.com/yihsuan/ozpocket"
	"github.com/yihsuan/ozpocket/renderer"
)

type watchCmd struct {
	interval time.Duration
}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "keep a live summary on screen, refreshing rates" }
func (*watchCmd) Usage() string {
	return `ozp watch [-interval <duration>]

  Displays the summary and redraws it whenever fresh exchange rates
  arrive. Stop with Ctrl-C.
`
}

func (c *watchCmd) SetFlags(f *flag.FlagSet) {
	interval := ozpocket.DefaultRefreshInterval
	if m := loadConfig().RefreshMinutes; m > 0 {
		interval = time.Duration(m) * time.Minute
	}
	f.DurationVar(&c.interval, "interval", interval, "Time between rate refreshes.")
}

func (c *watchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	redraw := func() {
		fmt.Print("\033[2J\033[H") // clear the terminal
		printMarkdown(renderer.Summary(ledger.Summarize()), ledger.Settings())
		fmt.Printf("(refreshing every %s, Ctrl-C to stop)\n", c.interval)
	}

	refresher := ozpocket.Refresher{
		Ledger:   ledger,
		Client:   http.DefaultClient,
		URL:      resolveRateURL(),
		Interval: c.interval,
		OnUpdate: func() {
			if err := SaveLedger(ledger); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
			redraw()
		},
	}

	redraw()
	refresher.Run(ctx)
	return subcommands.ExitSuccess
}
