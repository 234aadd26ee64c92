package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/yihsuan/ozpocket"
)

type backupCmd struct{}

func (*backupCmd) Name() string     { return "backup" }
func (*backupCmd) Synopsis() string { return "write the full state snapshot to stdout" }
func (*backupCmd) Usage() string {
	return `ozp backup > <file>

  Writes the complete state as a JSON snapshot to stdout, suitable for
  feeding back to 'ozp restore'.
`
}

func (*backupCmd) SetFlags(f *flag.FlagSet) {}

func (c *backupCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := ozpocket.Backup(os.Stdout, ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
