package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/yihsuan/ozpocket"
)

type restoreCmd struct{}

func (*restoreCmd) Name() string     { return "restore" }
func (*restoreCmd) Synopsis() string { return "replace the state with a backup snapshot" }
func (*restoreCmd) Usage() string {
	return `ozp restore <file>

  Validates the given backup file and replaces the current state with
  it. On any validation error the current state is left untouched.
`
}

func (*restoreCmd) SetFlags(f *flag.FlagSet) {}

func (c *restoreCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one backup file.")
		return subcommands.ExitUsageError
	}
	data, err := os.ReadFile(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	ledger, err := ozpocket.Restore(string(data))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error restoring %s: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Restored %d transactions and %d investments from %s\n",
		len(ledger.Transactions()), len(ledger.Investments()), f.Arg(0))
	return subcommands.ExitSuccess
}
