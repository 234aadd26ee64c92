// Package cmd implements the CLI application to manage the pocket tracker.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/yihsuan/ozpocket"
)

// Register the subcommands.
// A main package calls Register() to install them, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&cashCmd{kind: ozpocket.Income}, "ledger")
	c.Register(&cashCmd{kind: ozpocket.Expense}, "ledger")
	c.Register(&investCmd{}, "ledger")
	c.Register(&exchangeCmd{}, "ledger")
	c.Register(&deleteCmd{}, "ledger")
	c.Register(&txCmd{}, "ledger")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&holdingsCmd{}, "reports")
	c.Register(&watchCmd{}, "reports")
	c.Register(&exportCmd{}, "reports")

	c.Register(&workdayCmd{}, "visa")

	c.Register(&ratesCmd{}, "state")
	c.Register(&settingsCmd{}, "state")
	c.Register(&backupCmd{}, "state")
	c.Register(&restoreCmd{}, "state")
	c.Register(&resetCmd{}, "state")

	c.Register(&topicCmd{}, "")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var snapshotFile = flag.String("snapshot-file", "", "Path to the snapshot file (default ~/.ozpocket/snapshot.json)")
var rateURL = flag.String("rate-url", "", "Exchange rate API endpoint (default "+ozpocket.DefaultRateURL+")")

// store resolves the snapshot store from the flag, the config file, or
// the default location, in that order.
func store() ozpocket.SnapshotStore {
	path := *snapshotFile
	if path == "" {
		path = loadConfig().SnapshotFile
	}
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		path = filepath.Join(home, ".ozpocket", "snapshot.json")
	}
	return ozpocket.SnapshotStore{Path: path}
}

func resolveRateURL() string {
	if *rateURL != "" {
		return *rateURL
	}
	if u := loadConfig().RateURL; u != "" {
		return u
	}
	return ozpocket.DefaultRateURL
}

// LoadLedger is the central function to open the tracker state.
func LoadLedger() (*ozpocket.Ledger, error) {
	return store().Load()
}

// SaveLedger persists the tracker state back to the snapshot file.
func SaveLedger(l *ozpocket.Ledger) error {
	return store().Save(l)
}

// printMarkdown renders a markdown document to the terminal. The glamour
// style follows the dark mode setting; on render failure the raw
// markdown is printed instead.
func printMarkdown(md string, settings ozpocket.Settings) {
	style := "light"
	if settings.DarkMode {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
