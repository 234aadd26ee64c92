package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/yihsuan/ozpocket"
	"github.com/yihsuan/ozpocket/renderer"
)

type workdayCmd struct {
	undo bool
	log  bool
}

func (*workdayCmd) Name() string     { return "workday" }
func (*workdayCmd) Synopsis() string { return "check in a day of visa-qualifying work" }
func (*workdayCmd) Usage() string {
	return `ozp workday [-undo | -log]

  Checks in one day of specified work toward the visa extension.
  Use -undo to remove the most recent check-in, -log to list them all.
`
}

func (c *workdayCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.undo, "undo", false, "Remove the most recent check-in.")
	f.BoolVar(&c.log, "log", false, "List all check-ins instead of adding one.")
}

func (c *workdayCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.undo && c.log {
		fmt.Fprintln(os.Stderr, "Error: -undo and -log flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.log {
		printMarkdown(renderer.WorkLog(ledger.WorkDays(), ledger.WorkLog()), ledger.Settings())
		return subcommands.ExitSuccess
	}

	var count int
	if c.undo {
		count = ledger.UndoWorkDay()
	} else {
		count = ledger.AddWorkDay()
	}
	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	second, third := ozpocket.VisaProgress(count)
	fmt.Printf("Work days: %d (2nd year %d/%d, 3rd year %d/%d)\n",
		count, second.Done, second.Required, third.Done, third.Required)
	return subcommands.ExitSuccess
}
