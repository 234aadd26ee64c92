package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/yihsuan/ozpocket"
)

type settingsCmd struct {
	dark   string
	budget string
}

func (*settingsCmd) Name() string     { return "settings" }
func (*settingsCmd) Synopsis() string { return "show or change display and budget settings" }
func (*settingsCmd) Usage() string {
	return `ozp settings [-dark on|off] [-weekly-budget <amount>]

  Without flags, shows the current settings. Dark mode changes the
  terminal rendering style. The weekly budget is in AUD; set it to 0 to
  remove the budget line from the summary.
`
}

func (c *settingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dark, "dark", "", "Turn dark mode on or off.")
	f.StringVar(&c.budget, "weekly-budget", "", "Weekly spending budget in AUD.")
}

func (c *settingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	changed := false
	switch c.dark {
	case "":
	case "on":
		ledger.SetDarkMode(true)
		changed = true
	case "off":
		ledger.SetDarkMode(false)
		changed = true
	default:
		fmt.Fprintf(os.Stderr, "Error: -dark must be on or off, got %q\n", c.dark)
		return subcommands.ExitUsageError
	}

	if c.budget != "" {
		budget, err := ozpocket.ParseAmount(c.budget)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing budget: %v\n", err)
			return subcommands.ExitUsageError
		}
		if err := ledger.SetWeeklyBudget(budget); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		changed = true
	}

	if changed {
		if err := SaveLedger(ledger); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	settings := ledger.Settings()
	mode := "off"
	if settings.DarkMode {
		mode = "on"
	}
	fmt.Printf("dark mode: %s\n", mode)
	if settings.WeeklyBudget.IsPositive() {
		fmt.Printf("weekly budget: %s AUD\n", settings.WeeklyBudget)
	} else {
		fmt.Println("weekly budget: none")
	}
	return subcommands.ExitSuccess
}
